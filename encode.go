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

// encodeCore runs the systematic LFSR division of the dlen data symbols
// (stride apart, starting at data[0]) against c's generator polynomial,
// leaving the nroots parity symbols in par. par is zeroed here before the
// division starts, so its prior contents do not matter.
func (c *Code) encodeCore(data, par []uint16, dlen, stride int) {
	nroots := c.nroots
	if nroots == 0 {
		// No parity symbols: nothing to compute or store.
		return
	}

	alphaTo := c.table.alphaTo
	indexOf := c.table.indexOf
	gp := c.genpoly
	nn := c.table.nn
	mm := c.table.mm

	for i := range par[:nroots] {
		par[i] = 0
	}

	cutoff := dlen * stride
	for i := 0; i < cutoff; i += stride {
		fb := indexOf[data[i]^par[0]]
		if int(fb) != nn {
			for j := 1; j < nroots; j++ {
				par[j] ^= alphaTo[modnn(nn, mm, int(fb)+int(gp[nroots-j]))]
			}
		}

		copy(par[0:nroots-1], par[1:nroots])
		if int(fb) != nn {
			par[nroots-1] = alphaTo[modnn(nn, mm, int(fb)+int(gp[0]))]
		} else {
			par[nroots-1] = 0
		}
	}
}

// Encode computes systematic parity for the first len-nroots symbols of
// data (stride apart) and writes it into the trailing nroots symbol slots,
// also stride apart. data must hold at least (len-1)*stride+1 elements.
//
// When stride == 1 the parity is written directly into data's trailing
// nroots elements; for stride > 1 a small scratch buffer is used and then
// scattered into place.
func (c *Code) Encode(data []uint16, length, stride int) error {
	if stride < 1 {
		return ErrInvalidStride
	}
	if length < c.nroots {
		return ErrInvalidLength
	}
	if len(data) < (length-1)*stride+1 {
		return ErrShortBuffer
	}

	dlen := length - c.nroots

	if stride == 1 {
		c.encodeCore(data, data[dlen:length], dlen, stride)
		return nil
	}

	parity := make([]uint16, c.nroots)
	c.encodeCore(data, parity, dlen, stride)

	base := dlen * stride
	for i := 0; i < c.nroots; i++ {
		data[base+i*stride] = parity[i]
	}
	return nil
}
