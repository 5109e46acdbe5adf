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

package main

// packSymbols reinterprets a byte stream as symsize-bit big-endian symbols,
// padding the final symbol with zero bits if len(raw) isn't an exact
// multiple of symsize bits. It returns the symbols and the number of
// padding bits added to the last one.
func packSymbols(raw []byte, symsize int) ([]uint16, int) {
	totalBits := len(raw) * 8
	nsyms := (totalBits + symsize - 1) / symsize
	out := make([]uint16, nsyms)

	bitPos := 0
	for i := 0; i < nsyms; i++ {
		var sym uint16
		for b := 0; b < symsize; b++ {
			sym <<= 1
			if bitPos < totalBits {
				byteIdx := bitPos / 8
				bitIdx := 7 - bitPos%8
				if raw[byteIdx]&(1<<uint(bitIdx)) != 0 {
					sym |= 1
				}
			}
			bitPos++
		}
		out[i] = sym
	}

	padBits := nsyms*symsize - totalBits
	return out, padBits
}

// unpackSymbols is the inverse of packSymbols: it packs symsize-bit symbols
// back into a byte stream, dropping the trailing padBits bits that
// packSymbols added to reach a whole number of symbols.
func unpackSymbols(syms []uint16, symsize, padBits int) []byte {
	totalBits := len(syms)*symsize - padBits
	out := make([]byte, (totalBits+7)/8)

	bitPos := 0
	for _, sym := range syms {
		for b := symsize - 1; b >= 0; b-- {
			if bitPos >= totalBits {
				return out
			}
			if sym&(1<<uint(b)) != 0 {
				out[bitPos/8] |= 1 << uint(7-bitPos%8)
			}
			bitPos++
		}
	}
	return out
}
