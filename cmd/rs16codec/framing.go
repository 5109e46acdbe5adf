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

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// blockHeader precedes the encoded symbol stream an "encode" run produces,
// so "decode" and "verify" can reconstruct the Code and block layout
// without being told the profile again.
type blockHeader struct {
	Symsize int32
	Gfpoly  int32
	Fcr     int32
	Prim    int32
	Nroots  int32
	Length   int32 // symbols per block, parity included
	PadBits  int32 // zero bits appended to the final symbol of the last block
	NBlocks  int32
	NSymbols int32 // data symbols before block-level zero padding
}

func writeBlockHeader(w io.Writer, h blockHeader) error {
	return binary.Write(w, binary.LittleEndian, h)
}

func readBlockHeader(r io.Reader) (blockHeader, error) {
	var h blockHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return h, errors.Wrap(err, "readBlockHeader()")
	}
	return h, nil
}

func writeSymbols(w io.Writer, syms []uint16) error {
	return binary.Write(w, binary.LittleEndian, syms)
}

func readSymbols(r io.Reader, n int) ([]uint16, error) {
	syms := make([]uint16, n)
	if err := binary.Read(r, binary.LittleEndian, syms); err != nil {
		return nil, errors.Wrap(err, "readSymbols()")
	}
	return syms, nil
}
