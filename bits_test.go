package huffnpuff

import (
	"bytes"
	"errors"
	"testing"
)

func TestBitWriter(t *testing.T) {
	type testRow struct {
		name   string
		write  func(w *BitWriter)
		expect []byte
		len    uint64
	}

	testData := [...]testRow{
		{
			name:   "empty",
			write:  func(w *BitWriter) {},
			expect: []byte{},
			len:    0,
		},
		{
			name: "partial",
			write: func(w *BitWriter) {
				w.WriteBits(0x5, 3)
				w.WriteBit(true)
			},
			expect: []byte{0xb0},
			len:    4,
		},
		{
			name: "byte-then-bit",
			write: func(w *BitWriter) {
				w.WriteBits(0xa5, 8)
				w.WriteBit(true)
			},
			expect: []byte{0xa5, 0x80},
			len:    9,
		},
		{
			name: "high-bits-ignored",
			write: func(w *BitWriter) {
				w.WriteBits(0xff, 3)
				w.WriteBits(0x1234, 0)
			},
			expect: []byte{0xe0},
			len:    3,
		},
		{
			name: "code",
			write: func(w *BitWriter) {
				w.WriteCode(MakeCode(12, 0xabc))
			},
			expect: []byte{0xab, 0xc0},
			len:    12,
		},
		{
			name: "wide",
			write: func(w *BitWriter) {
				w.WriteBit(false)
				w.WriteBits(0x0123456789abcdef, 64)
			},
			expect: []byte{0x00, 0x91, 0xa2, 0xb3, 0xc4, 0xd5, 0xe6, 0xf7, 0x80},
			len:    65,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			w := NewBitWriter(0)
			row.write(w)
			if w.Len() != row.len {
				t.Errorf("expected Len() %d, got %d", row.len, w.Len())
			}
			actual := w.Bytes()
			if !bytes.Equal(row.expect, actual) {
				t.Errorf("wrong bytes:\n\texpect: %#v\n\tactual: %#v", row.expect, actual)
			}
		})
	}
}

func TestBitReader_ReadBit(t *testing.T) {
	r := NewBitReader([]byte{0xb0}, 4)

	expectBits := []bool{true, false, true, true}
	for index, expect := range expectBits {
		actual, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit #%d failed: %v", index, err)
		}
		if expect != actual {
			t.Errorf("ReadBit #%d: expected %v, got %v", index, expect, actual)
		}
	}

	if r.Remaining() != 0 {
		t.Errorf("expected Remaining() 0, got %d", r.Remaining())
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrOutOfBits) {
		t.Errorf("expected ErrOutOfBits reading a padding bit, got %v", err)
	}
}

func TestBitReader_ReadBits(t *testing.T) {
	r := NewBitReader([]byte{0x00, 0x91, 0xa2, 0xb3, 0xc4, 0xd5, 0xe6, 0xf7, 0x80}, 65)

	if bit, err := r.ReadBit(); err != nil || bit {
		t.Fatalf("expected first bit 0, got %v, %v", bit, err)
	}
	value, err := r.ReadBits(64)
	if err != nil {
		t.Fatalf("ReadBits failed: %v", err)
	}
	if value != 0x0123456789abcdef {
		t.Errorf("expected 0x0123456789abcdef, got %#016x", value)
	}
	if r.Pos() != 65 {
		t.Errorf("expected Pos() 65, got %d", r.Pos())
	}
	if _, err := r.ReadBits(1); !errors.Is(err, ErrOutOfBits) {
		t.Errorf("expected ErrOutOfBits, got %v", err)
	}
}

func TestBitReader_Limit(t *testing.T) {
	r := NewBitReader([]byte{0xff, 0xff}, 100)
	if r.Remaining() != 16 {
		t.Errorf("expected Remaining() capped at 16, got %d", r.Remaining())
	}

	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("ReadBits failed: %v", err)
	}
	r.Limit(2)
	if r.Remaining() != 2 {
		t.Errorf("expected Remaining() 2 after Limit, got %d", r.Remaining())
	}
	if _, err := r.ReadBits(3); !errors.Is(err, ErrOutOfBits) {
		t.Errorf("expected ErrOutOfBits, got %v", err)
	}
	if r.Pos() != 3 {
		t.Errorf("failed ReadBits must not consume bits; Pos() = %d", r.Pos())
	}
}
