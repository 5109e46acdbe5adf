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

import "fmt"

// Profile names one of the built-in (symsize, gfpoly, fcr, prim, nroots)
// tuples a Config can select with --profile instead of spelling out every
// flag. Names and tuples are the ones this codec's original test suite
// exercised.
type Profile struct {
	Name    string
	Symsize int
	Gfpoly  int
	Fcr     int
	Prim    int
	Nroots  int
}

var profiles = []Profile{
	{"gf4", 2, 0x7, 1, 1, 1},
	{"gf8-2", 3, 0xb, 1, 1, 2},
	{"gf8-3", 3, 0xb, 1, 1, 3},
	{"gf8-4", 3, 0xb, 2, 1, 4},
	{"gf16", 4, 0x13, 1, 1, 5},
	{"gf32", 5, 0x25, 1, 1, 6},
	{"gf64", 6, 0x43, 3, 1, 8},
	{"gf128", 7, 0x89, 1, 1, 10},
	{"rs255-223", 8, 0x11d, 1, 1, 32},
	{"rs255-223-alt", 8, 0x187, 112, 11, 32},
	{"gf512", 9, 0x211, 1, 1, 29},
	{"gf1024", 10, 0x409, 1, 1, 30},
	{"gf2048", 11, 0x805, 4, 1, 31},
	{"gf65536", 16, 0x1100b, 5, 1, 33},
}

func lookupProfile(name string) (Profile, error) {
	for _, p := range profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}
