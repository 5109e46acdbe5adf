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

// fieldTable holds the GF(2^m) discrete-log tables shared by every Code
// built with the same (m, gfpoly) pair. alphaTo[i] is alpha^i in
// polynomial form; indexOf[e] is the discrete log of e. Both carry an
// in-band sentinel at nn for "log of zero" / "alpha^-inf".
type fieldTable struct {
	mm      int
	gfpoly  int
	nn      int
	alphaTo []uint16
	indexOf []uint16
	users   int
}

// newFieldTable builds the log/antilog tables for GF(2^m) by shift-register
// iteration over gfpoly. It returns ErrNotPrimitive if gfpoly fails to cycle
// through every nonzero field element.
func newFieldTable(mm, gfpoly int) (*fieldTable, error) {
	nn := (1 << uint(mm)) - 1

	// One contiguous allocation for both tables keeps them close together.
	buf := make([]uint16, 2*(nn+1))
	tab := &fieldTable{
		mm:      mm,
		gfpoly:  gfpoly,
		nn:      nn,
		alphaTo: buf[:nn+1],
		indexOf: buf[nn+1:],
	}

	tab.indexOf[0] = uint16(nn)
	tab.alphaTo[nn] = 0

	sr := 1
	for i := 0; i < nn; i++ {
		tab.indexOf[sr] = uint16(i)
		tab.alphaTo[i] = uint16(sr)
		sr <<= 1
		if sr&(1<<uint(mm)) != 0 {
			sr ^= gfpoly
		}
		sr &= nn
		if sr == 1 && i < nn-1 {
			// The shift register came back to 1 before visiting every
			// nonzero element: alpha's order is below nn.
			return nil, ErrNotPrimitive
		}
	}
	if sr != 1 {
		// gfpoly isn't primitive: the shift register didn't cycle back to 1
		// after nn steps.
		return nil, ErrNotPrimitive
	}

	tab.users = 1
	return tab, nil
}

// modnn reduces x into [0, nn) using the identity 2^m === 1 (mod nn), which
// is cheaper than a general modulo for the sizes this codec deals with.
// Never call this on a sentinel value.
func modnn(nn, mm, x int) int {
	for x >= nn {
		x -= nn
		x = (x >> uint(mm)) + (x & nn)
	}
	return x
}
