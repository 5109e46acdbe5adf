package rs16

import "testing"

func TestEncodeProducesCodeword(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 255
	data := make([]uint16, length)
	for i := range data[:length-c.Nroots()] {
		data[i] = uint16((i * 37) & 0xff)
	}

	if err := c.Encode(data, length, 1); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !c.IsCodeword(data, length, 1) {
		t.Fatalf("Encode() output is not a valid codeword")
	}
}

func TestEncodeStrideMatchesUnitStride(t *testing.T) {
	c, err := Init(6, 0x43, 3, 1, 8)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 20
	dlen := length - c.Nroots()

	plain := make([]uint16, length)
	for i := range plain[:dlen] {
		plain[i] = uint16((i*5 + 1) & 0x3f)
	}
	if err := c.Encode(plain, length, 1); err != nil {
		t.Fatalf("Encode(stride=1) error = %v", err)
	}

	const stride = 3
	strided := make([]uint16, (length-1)*stride+1)
	for i := 0; i < dlen; i++ {
		strided[i*stride] = plain[i]
	}
	if err := c.Encode(strided, length, stride); err != nil {
		t.Fatalf("Encode(stride=3) error = %v", err)
	}

	for i := 0; i < length; i++ {
		if strided[i*stride] != plain[i] {
			t.Fatalf("symbol %d: strided = %d, want %d", i, strided[i*stride], plain[i])
		}
	}
}

func TestEncodeRejectsBadArgs(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 32)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	data := make([]uint16, 255)
	if err := c.Encode(data, 255, 0); err != ErrInvalidStride {
		t.Errorf("Encode(stride=0) error = %v, want ErrInvalidStride", err)
	}
	if err := c.Encode(data, 10, 1); err != ErrInvalidLength {
		t.Errorf("Encode(length=10) error = %v, want ErrInvalidLength", err)
	}
	short := make([]uint16, 10)
	if err := c.Encode(short, 255, 1); err != ErrShortBuffer {
		t.Errorf("Encode(short buffer) error = %v, want ErrShortBuffer", err)
	}
}
