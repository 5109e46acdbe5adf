package rs16

import (
	"errors"
	"testing"
)

func newTestCodeword(t *testing.T, c *Code, length int) []uint16 {
	t.Helper()
	data := make([]uint16, length)
	dlen := length - c.Nroots()
	for i := 0; i < dlen; i++ {
		data[i] = uint16((i*31 + 7) & c.NN())
	}
	if err := c.Encode(data, length, 1); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return data
}

func TestDecodeCorrectsErrorsUpToCapacity(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 255
	maxErrors := c.Nroots() / 2

	orig := newTestCodeword(t, c, length)
	corrupted := append([]uint16(nil), orig...)
	positions := []int{0, 1, 50, 100, 150, 200, 220, 254, 10, 11, 12, 13, 14, 15, 16, 17}[:maxErrors]
	for _, p := range positions {
		corrupted[p] ^= 0xff
	}

	var errPos []int
	n, err := c.Decode(corrupted, length, 1, nil, &errPos)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n != maxErrors {
		t.Fatalf("Decode() corrected %d symbols, want %d", n, maxErrors)
	}
	for i := range corrupted {
		if corrupted[i] != orig[i] {
			t.Fatalf("symbol %d not restored: got %d want %d", i, corrupted[i], orig[i])
		}
	}
}

func TestDecodeNoErrorsIsNoOp(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 255
	orig := newTestCodeword(t, c, length)
	copyOf := append([]uint16(nil), orig...)

	n, err := c.Decode(copyOf, length, 1, nil, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n != 0 {
		t.Fatalf("Decode() corrected %d symbols on a clean codeword, want 0", n)
	}
	for i := range copyOf {
		if copyOf[i] != orig[i] {
			t.Fatalf("clean codeword mutated at %d", i)
		}
	}
}

func TestDecodeWithErasures(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 255
	orig := newTestCodeword(t, c, length)
	corrupted := append([]uint16(nil), orig...)

	// Erasures cost one root each, so up to nroots known-bad positions can
	// be fully recovered.
	eras := make([]int, c.Nroots())
	for i := range eras {
		eras[i] = i * 2
		corrupted[eras[i]] ^= 0x55
	}

	n, err := c.Decode(corrupted, length, 1, eras, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if n != len(eras) {
		t.Fatalf("Decode() corrected %d symbols, want %d", n, len(eras))
	}
	for i := range corrupted {
		if corrupted[i] != orig[i] {
			t.Fatalf("symbol %d not restored: got %d want %d", i, corrupted[i], orig[i])
		}
	}
}

func TestDecodeBeyondCapacityLeavesDataUntouched(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 255
	orig := newTestCodeword(t, c, length)
	corrupted := append([]uint16(nil), orig...)

	// More errors than the code can correct or detect reliably; whatever
	// the outcome, either it's a correct decode or data is untouched.
	for i := 0; i < length; i += 2 {
		corrupted[i] ^= 0xff
	}
	before := append([]uint16(nil), corrupted...)

	n, err := c.Decode(corrupted, length, 1, nil, nil)
	if err == nil {
		// Miscorrection is possible in principle for RS codes grossly
		// overloaded with errors, but if Decode claims success it must
		// have recomputed a verifying syndrome.
		if !c.IsCodeword(corrupted, length, 1) {
			t.Fatalf("Decode() returned success (n=%d) but output is not a codeword", n)
		}
		return
	}

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("Decode() error = %v, want *DecodeError", err)
	}
	for i := range corrupted {
		if corrupted[i] != before[i] {
			t.Fatalf("Decode() failure mutated data at %d", i)
		}
	}
}

func TestDecodeTooManyErasures(t *testing.T) {
	c, err := Init(6, 0x43, 3, 1, 8)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 20
	data := newTestCodeword(t, c, length)

	eras := make([]int, c.Nroots()+1)
	for i := range eras {
		eras[i] = i
	}

	_, err = c.Decode(data, length, 1, eras, nil)
	var decErr *DecodeError
	if !errors.As(err, &decErr) || decErr.Kind != KindTooManyErasures {
		t.Fatalf("Decode() error = %v, want KindTooManyErasures", err)
	}
}

func TestDecodeRejectsBadArgs(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	data := make([]uint16, 255)
	if _, err := c.Decode(data, 255, 0, nil, nil); err != ErrInvalidStride {
		t.Errorf("Decode(stride=0) error = %v, want ErrInvalidStride", err)
	}
	if _, err := c.Decode(data, 10, 1, nil, nil); err != ErrInvalidLength {
		t.Errorf("Decode(length=10) error = %v, want ErrInvalidLength", err)
	}
	short := make([]uint16, 10)
	if _, err := c.Decode(short, 255, 1, nil, nil); err != ErrShortBuffer {
		t.Errorf("Decode(short buffer) error = %v, want ErrShortBuffer", err)
	}
}
