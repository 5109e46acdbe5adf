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

import (
	"errors"
	"fmt"
)

// Kind identifies why Decode gave up on producing a corrected codeword. The
// numeric values match the historic RS_ERROR_* codes this library's
// reference implementation returned.
type Kind int

const (
	KindDegLambdaZero     Kind = -1
	KindImpossibleErrPos  Kind = -2
	KindDegLambdaNeqCount Kind = -3
	KindNotACodeword      Kind = -4
	KindTooManyErasures   Kind = -5
)

func (k Kind) String() string {
	switch k {
	case KindDegLambdaZero:
		return "deg(lambda) is zero: corruption beyond nroots"
	case KindImpossibleErrPos:
		return "error location falls inside the padded prefix"
	case KindDegLambdaNeqCount:
		return "fewer locator roots than deg(lambda): miscorrection"
	case KindNotACodeword:
		return "recomputed error syndrome does not match the received word"
	case KindTooManyErasures:
		return "erasure count exceeds nroots"
	default:
		return fmt.Sprintf("rs16: unknown decode failure kind %d", int(k))
	}
}

// DecodeError reports why Decode failed. When Decode returns a DecodeError
// the data buffer it was given is guaranteed untouched.
type DecodeError struct {
	Kind Kind
}

func (e *DecodeError) Error() string { return e.Kind.String() }

// Code returns the legacy negative-int failure code, for callers bridging
// against the original C API's "negative return value = diagnostic kind"
// contract.
func (e *DecodeError) Code() int { return int(e.Kind) }

// Construction and argument-validation errors.
var (
	ErrInvalidParams = errors.New("rs16: symsize/fcr/prim/nroots out of range")
	ErrNotPrimitive  = errors.New("rs16: gfpoly is not a primitive polynomial")
	ErrShortBuffer   = errors.New("rs16: data shorter than (len-1)*stride+1")
	ErrInvalidLength = errors.New("rs16: len must be >= nroots")
	ErrInvalidStride = errors.New("rs16: stride must be >= 1")
)
