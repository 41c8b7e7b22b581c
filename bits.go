package huffnpuff

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// BitWriter accumulates bits, most significant bit first, into a byte
// buffer.
type BitWriter struct {
	buf   *bytes.Buffer
	w     *bitio.Writer
	total uint64
}

// NewBitWriter returns a BitWriter whose buffer has room for sizeHint bits
// before it needs to grow.
func NewBitWriter(sizeHint uint64) *BitWriter {
	buf := bytes.NewBuffer(make([]byte, 0, bytesForBits(sizeHint)))
	return &BitWriter{buf: buf, w: bitio.NewWriter(buf)}
}

// WriteBit appends a single bit.
func (w *BitWriter) WriteBit(bit bool) {
	w.check(w.w.WriteBool(bit))
	w.total++
}

// WriteBits appends the low n bits of value, most significant first.
func (w *BitWriter) WriteBits(value uint64, n byte) {
	if n == 0 {
		return
	}
	if n < 64 {
		value &= (uint64(1) << n) - 1
	}
	w.check(w.w.WriteBits(value, n))
	w.total += uint64(n)
}

// WriteCode appends the bits of a Code.
func (w *BitWriter) WriteCode(hc Code) {
	w.WriteBits(hc.Bits, hc.Size)
}

// Len returns the number of bits written so far.
func (w *BitWriter) Len() uint64 {
	return w.total
}

// Bytes returns the written bits, with the final partial byte (if any)
// padded with zero bits.  The BitWriter must not be used afterward.
func (w *BitWriter) Bytes() []byte {
	w.check(w.w.Close())
	return w.buf.Bytes()
}

// check asserts that a write succeeded.  Writes go to a bytes.Buffer, which
// never fails.
func (w *BitWriter) check(err error) {
	assert.Assertf(err == nil, "BitWriter: write to bytes.Buffer failed: %v", err)
}

// BitReader yields the bits of a byte buffer, most significant bit first,
// up to a fixed number of valid bits.
type BitReader struct {
	r     *bitio.Reader
	phys  uint64
	pos   uint64
	limit uint64
}

// NewBitReader returns a BitReader over the first numBits bits of buf.  A
// numBits larger than the buffer is allowed; reads still stop at the end of
// the buffer.
func NewBitReader(buf []byte, numBits uint64) *BitReader {
	return &BitReader{
		r:     bitio.NewReader(bytes.NewReader(buf)),
		phys:  physicalBits(buf),
		limit: numBits,
	}
}

// ReadBit consumes one bit.  It returns ErrOutOfBits once the valid bits are
// exhausted.
func (r *BitReader) ReadBit() (bool, error) {
	if r.Remaining() == 0 {
		return false, fmt.Errorf("%w: read at bit %d, limit %d", ErrOutOfBits, r.pos, r.limit)
	}
	bit, err := r.r.ReadBool()
	if err != nil {
		return false, fmt.Errorf("%w: read at bit %d: %v", ErrOutOfBits, r.pos, err)
	}
	r.pos++
	return bit, nil
}

// ReadBits consumes n bits (n <= 64) and returns them as an integer, first
// bit most significant.
func (r *BitReader) ReadBits(n byte) (uint64, error) {
	if n > 64 {
		return 0, fmt.Errorf("BUG: ReadBits(%d) is wider than 64 bits", n)
	}
	if r.Remaining() < uint64(n) {
		return 0, fmt.Errorf("%w: need %d bits at bit %d, have %d", ErrOutOfBits, n, r.pos, r.Remaining())
	}
	if n == 0 {
		return 0, nil
	}
	value, err := r.r.ReadBits(n)
	if err != nil {
		return 0, fmt.Errorf("%w: read of %d bits at bit %d: %v", ErrOutOfBits, n, r.pos, err)
	}
	r.pos += uint64(n)
	return value, nil
}

// Pos returns the number of bits consumed so far.
func (r *BitReader) Pos() uint64 {
	return r.pos
}

// Remaining returns the number of valid bits not yet consumed.
func (r *BitReader) Remaining() uint64 {
	end := r.limit
	if end > r.phys {
		end = r.phys
	}
	if r.pos >= end {
		return 0
	}
	return end - r.pos
}

// Limit restricts the reader to the next n bits.
func (r *BitReader) Limit(n uint64) {
	r.limit = r.pos + n
}

func physicalBits(buf []byte) uint64 {
	return uint64(len(buf)) * 8
}

func bytesForBits(n uint64) uint64 {
	return (n + 7) / 8
}
