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

// updateSi folds one more received symbol into the partial syndrome s[i]:
// one Horner step of evaluating data(x) at the i-th root of g(x).
func (c *Code) updateSi(s []uint16, data uint16, i int) {
	alphaTo := c.table.alphaTo
	indexOf := c.table.indexOf
	nn, mm := c.table.nn, c.table.mm

	if s[i] == 0 {
		s[i] = data
	} else {
		tmp := int(indexOf[s[i]]) + (c.fcr+i)*c.prim
		s[i] = data ^ alphaTo[modnn(nn, mm, tmp)]
	}
}

// computeSyndrome evaluates data(x), stride apart over len symbols starting
// at data[0], at each of the nroots roots of g(x).
func (c *Code) computeSyndrome(s, data []uint16, length, stride int) {
	for i := 0; i < c.nroots; i++ {
		s[i] = data[0]
	}

	cutoff := length * stride
	for j := stride; j < cutoff; j += stride {
		for i := 0; i < c.nroots; i++ {
			c.updateSi(s, data[j], i)
		}
	}
}

// IsCodeword reports whether the len symbols of data, stride apart, form a
// valid codeword of c, i.e. whether every syndrome is zero.
func (c *Code) IsCodeword(data []uint16, length, stride int) bool {
	s := make([]uint16, c.nroots)
	c.computeSyndrome(s, data, length, stride)
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// Decode corrects errors and erasures in the len symbols of data, stride
// apart. eras lists the 0-based positions (before the stride is applied)
// of symbols already known to be wrong.
//
// On success it returns the number of symbol positions actually changed
// (errors, plus erasures whose symbol was wrong; an erasure whose symbol was
// already correct is not counted) and leaves the corrected codeword in data;
// if outErrPos is non-nil, the corrected positions are appended to it in the
// order corrected. If decoding fails, data is left completely untouched and
// the error is a *DecodeError describing why. Invalid arguments are reported
// as ErrInvalidStride, ErrInvalidLength or ErrShortBuffer instead.
func (c *Code) Decode(data []uint16, length, stride int, eras []int, outErrPos *[]int) (int, error) {
	if stride < 1 {
		return 0, ErrInvalidStride
	}
	if length < c.nroots {
		return 0, ErrInvalidLength
	}
	if len(data) < (length-1)*stride+1 {
		return 0, ErrShortBuffer
	}
	noEras := len(eras)
	if noEras > c.nroots {
		return 0, &DecodeError{Kind: KindTooManyErasures}
	}

	alphaTo := c.table.alphaTo
	indexOf := c.table.indexOf
	nn, mm := c.table.nn, c.table.mm
	nroots := c.nroots
	fcr, prim, iprim := c.fcr, c.prim, c.iprim
	pad := nn - length

	s := make([]uint16, nroots)
	si := make([]uint16, nroots)
	root := make([]uint16, nroots)
	loc := make([]uint16, nroots)
	lambda := make([]uint16, nroots+1)
	omega := make([]uint16, nroots+1)
	b := make([]uint16, nroots+1)
	t := make([]uint16, nroots+1)

	c.computeSyndrome(s, data, length, stride)

	// Convert syndromes to index form, checking for the nonzero condition.
	synError := uint16(0)
	for i := 0; i < nroots; i++ {
		synError |= s[i]
		si[i] = indexOf[s[i]]
	}

	if synError == 0 {
		// data is already a codeword; nothing to correct.
		return 0, nil
	}

	lambda[0] = 1

	if noEras > 0 {
		// Init lambda to be the erasure locator polynomial.
		lambda[1] = alphaTo[modnn(nn, mm, prim*(nn-1-(eras[0]+pad)))]
		for i := 1; i < noEras; i++ {
			u := modnn(nn, mm, prim*(nn-1-(eras[i]+pad)))
			for j := i + 1; j > 0; j-- {
				tmp := int(indexOf[lambda[j-1]])
				if tmp != nn {
					lambda[j] ^= alphaTo[modnn(nn, mm, u+tmp)]
				}
			}
		}
	}

	for i := 0; i < nroots+1; i++ {
		b[i] = indexOf[lambda[i]]
	}

	// Berlekamp-Massey algorithm to determine the error+erasure locator
	// polynomial.
	r := noEras
	el := noEras
	for {
		r++
		if r > nroots {
			break
		}

		// Discrepancy at the r-th step, in poly form.
		discrR := uint16(0)
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && int(si[r-i-1]) != nn {
				discrR ^= alphaTo[modnn(nn, mm, int(indexOf[lambda[i]])+int(si[r-i-1]))]
			}
		}
		discrRi := int(indexOf[discrR])

		if discrRi == nn {
			// B(x) <- x*B(x)
			copy(b[1:nroots+1], b[0:nroots])
			b[0] = uint16(nn)
		} else {
			// T(x) <- lambda(x) - discr_r*x*b(x)
			t[0] = lambda[0]
			for i := 0; i < nroots; i++ {
				if int(b[i]) != nn {
					t[i+1] = lambda[i+1] ^ alphaTo[modnn(nn, mm, discrRi+int(b[i]))]
				} else {
					t[i+1] = lambda[i+1]
				}
			}

			if 2*el <= r+noEras-1 {
				el = r + noEras - el
				// B(x) <- inv(discr_r) * lambda(x)
				for i := 0; i <= nroots; i++ {
					if lambda[i] == 0 {
						b[i] = uint16(nn)
					} else {
						b[i] = uint16(modnn(nn, mm, int(indexOf[lambda[i]])-discrRi+nn))
					}
				}
			} else {
				// B(x) <- x*B(x)
				copy(b[1:nroots+1], b[0:nroots])
				b[0] = uint16(nn)
			}
			copy(lambda, t[:nroots+1])
		}
	}

	// Convert lambda to index form and compute deg(lambda(x)).
	degLambda := 0
	for i := 0; i < nroots+1; i++ {
		lambda[i] = indexOf[lambda[i]]
		if int(lambda[i]) != nn {
			degLambda = i
		}
	}

	if degLambda == 0 {
		// deg(lambda) is zero even though the syndrome is nonzero: an
		// uncorrectable error was detected.
		return 0, &DecodeError{Kind: KindDegLambdaZero}
	}

	// Find roots of the error+erasure locator polynomial by Chien search.
	copy(b[1:nroots+1], lambda[1:nroots+1])
	count := 0
	k := iprim - 1
	for i := 1; i <= nn; i++ {
		q := uint16(1) // the x**0 term of lambda(x) is always 1
		for j := degLambda; j > 0; j-- {
			if int(b[j]) != nn {
				b[j] = uint16(modnn(nn, mm, int(b[j])+j))
				q ^= alphaTo[b[j]]
			}
		}
		if q == 0 {
			if k < pad {
				return 0, &DecodeError{Kind: KindImpossibleErrPos}
			}

			root[count] = uint16(i)
			loc[count] = uint16(k)
			count++
			if count == degLambda {
				break
			}
		}

		k = modnn(nn, mm, k+iprim)
	}

	if degLambda != count {
		// Fewer locator roots than deg(lambda): an uncorrectable error
		// was detected.
		return 0, &DecodeError{Kind: KindDegLambdaNeqCount}
	}

	// Compute the error+erasure evaluator poly omega(x) = s(x)*lambda(x)
	// (mod x**nroots), in index form, and find deg(omega).
	degOmega := degLambda - 1
	for i := 0; i <= degOmega; i++ {
		tmp := uint16(0)
		for j := i; j >= 0; j-- {
			if int(si[i-j]) != nn && int(lambda[j]) != nn {
				tmp ^= alphaTo[modnn(nn, mm, int(si[i-j])+int(lambda[j]))]
			}
		}
		omega[i] = indexOf[tmp]
	}

	// Reuse b's storage for the correction magnitudes.
	cor := b
	numCorrected := 0

	for j := 0; j < count; j++ {
		num1 := uint16(0)
		for i := degOmega; i >= 0; i-- {
			if int(omega[i]) != nn {
				num1 ^= alphaTo[modnn(nn, mm, int(omega[i])+i*int(root[j]))]
			}
		}
		if num1 == 0 {
			continue
		}

		num1i := int(indexOf[num1])
		num2 := modnn(nn, mm, int(root[j])*(fcr-1)+nn)
		den := uint16(0)

		// lambda[i+1] for even i is the formal derivative lambda' of
		// lambda at i.
		for i := min(degLambda, nroots-1) &^ 1; i >= 0; i -= 2 {
			if int(lambda[i+1]) != nn {
				den ^= alphaTo[modnn(nn, mm, int(lambda[i+1])+i*int(root[j]))]
			}
		}

		deni := int(indexOf[den])
		cor[numCorrected] = uint16(modnn(nn, mm, num1i+num2+nn-deni))
		loc[numCorrected] = loc[j]
		numCorrected++
	}

	// Recompute the syndrome of the proposed error pattern and check it
	// against the syndrome of the received word before touching data.
	for i := 0; i < nroots; i++ {
		tmp := uint16(0)
		for j := 0; j < numCorrected; j++ {
			kk := (fcr + i) * prim * (nn - int(loc[j]) - 1)
			tmp ^= alphaTo[modnn(nn, mm, int(cor[j])+kk)]
		}
		if tmp != s[i] {
			return 0, &DecodeError{Kind: KindNotACodeword}
		}
	}

	// Only now do we mutate data.
	for i := 0; i < numCorrected; i++ {
		data[(int(loc[i])-pad)*stride] ^= alphaTo[cor[i]]
	}

	if outErrPos != nil {
		for i := 0; i < numCorrected; i++ {
			*outErrPos = append(*outErrPos, int(loc[i])-pad)
		}
	}

	return numCorrected, nil
}
