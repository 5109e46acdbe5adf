// The MIT License (MIT)
//
// Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rs16

// Code is a configured Reed-Solomon codec: a shared field table plus a
// generator polynomial (stored in index form for fast encoding). Codes are
// obtained from Init and are safe for concurrent Encode/Decode/IsCodeword
// calls once constructed; apart from the registry's reference count, they
// are never mutated after construction.
type Code struct {
	table *fieldTable

	nroots int
	fcr    int
	prim   int
	iprim  int

	// genpoly holds the nroots+1 coefficients of the generator polynomial,
	// in index (discrete-log) form.
	genpoly []uint16

	users int
}

// Symsize returns the field's symbol size in bits.
func (c *Code) Symsize() int { return c.table.mm }

// NN returns 2^Symsize - 1, the field's nonzero-element count and the
// codec's block length in symbols.
func (c *Code) NN() int { return c.table.nn }

// Nroots returns the number of parity symbols appended per block.
func (c *Code) Nroots() int { return c.nroots }

// Fcr returns the index of the first consecutive root of the generator
// polynomial.
func (c *Code) Fcr() int { return c.fcr }

// Prim returns the primitive element spacing between generator roots.
func (c *Code) Prim() int { return c.prim }

// MinDistance returns the code's designed minimum distance, nroots + 1.
func (c *Code) MinDistance() int { return c.nroots + 1 }

// buildCode constructs the generator polynomial for the given field table
// and RS parameters. tab must already carry a reference held on the
// caller's behalf; buildCode does not acquire or release field table
// references itself.
func buildCode(tab *fieldTable, fcr, prim, nroots int) (*Code, error) {
	c := &Code{
		table:   tab,
		nroots:  nroots,
		fcr:     fcr,
		prim:    prim,
		genpoly: make([]uint16, nroots+1),
	}

	nn, mm := tab.nn, tab.mm
	alphaTo, indexOf := tab.alphaTo, tab.indexOf

	// Find prim-th root of 1, used in decoding.
	iprim := 1
	for (iprim % prim) != 0 {
		iprim += nn
	}
	c.iprim = iprim / prim

	// Form the RS generator polynomial from its roots, in polynomial form.
	c.genpoly[0] = 1
	root := fcr * prim
	for i := 0; i < nroots; i++ {
		c.genpoly[i+1] = 1

		// Multiply genpoly[] by (x + alpha**root).
		for j := i; j > 0; j-- {
			if c.genpoly[j] != 0 {
				tmp := int(indexOf[c.genpoly[j]]) + root
				c.genpoly[j] = c.genpoly[j-1] ^ alphaTo[modnn(nn, mm, tmp)]
			} else {
				c.genpoly[j] = c.genpoly[j-1]
			}
		}

		// genpoly[0] can never be zero.
		tmp := int(indexOf[c.genpoly[0]]) + root
		c.genpoly[0] = alphaTo[modnn(nn, mm, tmp)]

		root += prim
	}

	// Convert genpoly[] to index form for quicker encoding.
	for i := 0; i <= nroots; i++ {
		c.genpoly[i] = indexOf[c.genpoly[i]]
	}

	return c, nil
}
