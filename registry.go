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

import "sync"

// fieldKey identifies a field table by the parameters that determine it.
type fieldKey struct {
	mm     int
	gfpoly int
}

// codeKey identifies a Code by its full parameter tuple.
type codeKey struct {
	mm     int
	gfpoly int
	fcr    int
	prim   int
	nroots int
}

var (
	registryMu  sync.Mutex
	fieldTables = make(map[fieldKey]*fieldTable)
	codes       = make(map[codeKey]*Code)
)

// acquireFieldTableLocked returns the shared table for (mm, gfpoly),
// building and caching it on first use. Callers must hold registryMu.
func acquireFieldTableLocked(mm, gfpoly int) (*fieldTable, error) {
	key := fieldKey{mm, gfpoly}
	if tab, ok := fieldTables[key]; ok {
		tab.users++
		return tab, nil
	}

	tab, err := newFieldTable(mm, gfpoly)
	if err != nil {
		return nil, err
	}
	fieldTables[key] = tab
	return tab, nil
}

// releaseFieldTableLocked drops a reference to the table for (mm, gfpoly),
// evicting it once unused. Callers must hold registryMu.
func releaseFieldTableLocked(mm, gfpoly int) {
	key := fieldKey{mm, gfpoly}
	tab, ok := fieldTables[key]
	if !ok {
		return
	}
	tab.users--
	if tab.users == 0 {
		delete(fieldTables, key)
	}
}

// Init constructs, or returns a shared reference to, the Code for the given
// parameter tuple. Two Init calls with identical parameters return the same
// *Code with its reference count bumped; each must be matched with a Free.
//
// Parameter ranges are 2 <= symsize <= 16, 0 <= fcr < 2^symsize,
// 1 <= prim < 2^symsize, 0 <= nroots < 2^symsize. Init also fails if gfpoly
// is not primitive. The x^symsize term is implied: only the low symsize bits
// of gfpoly are examined, and its degree is not checked.
func Init(symsize, gfpoly, fcr, prim, nroots int) (*Code, error) {
	if err := validateParams(symsize, fcr, prim, nroots); err != nil {
		return nil, err
	}

	key := codeKey{symsize, gfpoly, fcr, prim, nroots}

	registryMu.Lock()
	defer registryMu.Unlock()

	if c, ok := codes[key]; ok {
		c.users++
		return c, nil
	}

	tab, err := acquireFieldTableLocked(symsize, gfpoly)
	if err != nil {
		return nil, err
	}

	c, err := buildCode(tab, fcr, prim, nroots)
	if err != nil {
		releaseFieldTableLocked(symsize, gfpoly)
		return nil, err
	}

	c.users = 1
	codes[key] = c
	return c, nil
}

// Free releases a reference to c. Once the last reference is released, c
// and, if no other Code shares it, its field table are evicted. Free(nil)
// is a no-op, and Free is safe to call concurrently with Init/Free for
// other Codes.
func Free(c *Code) {
	if c == nil {
		return
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	key := codeKey{c.table.mm, c.table.gfpoly, c.fcr, c.prim, c.nroots}
	cur, ok := codes[key]
	if !ok || cur != c {
		return
	}

	cur.users--
	if cur.users == 0 {
		delete(codes, key)
		releaseFieldTableLocked(c.table.mm, c.table.gfpoly)
	}
}

func validateParams(symsize, fcr, prim, nroots int) error {
	if symsize < 2 || symsize > 16 {
		return ErrInvalidParams
	}
	limit := 1 << uint(symsize)
	if fcr < 0 || fcr >= limit {
		return ErrInvalidParams
	}
	if prim <= 0 || prim >= limit {
		return ErrInvalidParams
	}
	if nroots < 0 || nroots >= limit {
		return ErrInvalidParams
	}
	return nil
}
