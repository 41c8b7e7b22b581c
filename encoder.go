package huffnpuff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// countBits is the width of the header field holding the number of valid
// tree and payload bits.
const countBits = 64

// headerBits is the size of the header of a non-empty buffer.
const headerBits = 1 + countBits

// emptyBuffer is the complete encoding of an empty input: the empty flag,
// then padding.
var emptyBuffer = [...]byte{0x80}

// Encoder implements a Huffman encoder for one particular byte distribution.
type Encoder struct {
	freqs FrequencyTable
	tree  Tree
	codes CodeTable
}

// Init initializes this Encoder for the byte distribution of data.  data
// must not be empty.
func (e *Encoder) Init(data []byte) {
	var ft FrequencyTable
	ft.Init(data)
	e.InitFrequencies(&ft)
}

// InitFrequencies initializes this Encoder from an existing FrequencyTable,
// which must not be empty.
func (e *Encoder) InitFrequencies(ft *FrequencyTable) {
	*e = Encoder{freqs: *ft}
	e.tree.Init(&e.freqs)
	e.codes.Init(&e.tree)
}

// Encode compresses data, which must use only byte values known to this
// Encoder, into a self-describing buffer.
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return append([]byte(nil), emptyBuffer[:]...), nil
	}

	payloadBits, err := e.payloadBits(data)
	if err != nil {
		return nil, err
	}
	validBits := treeBits(&e.tree) + payloadBits

	w := NewBitWriter(headerBits + validBits)
	w.WriteBit(false)
	w.WriteBits(validBits, countBits)
	writeTree(w, &e.tree)
	for _, b := range data {
		w.WriteCode(e.codes.Encode(b))
	}
	assert.Assertf(w.Len() == headerBits+validBits, "wrote %d bits, expected %d", w.Len(), headerBits+validBits)
	return w.Bytes(), nil
}

func (e *Encoder) payloadBits(data []byte) (uint64, error) {
	var total uint64
	for _, b := range data {
		size := e.codes.Encode(b).Size
		if size == 0 {
			return 0, fmt.Errorf("huffnpuff: byte 0x%02x has no code in this Encoder", b)
		}
		total += uint64(size)
	}
	return total, nil
}

// Tree returns the Huffman tree this Encoder writes.
func (e *Encoder) Tree() *Tree {
	return &e.tree
}

// Codes returns the code table this Encoder uses.
func (e *Encoder) Codes() *CodeTable {
	return &e.codes
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() byte {
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() byte {
	return e.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tTree() = %s\n", e.tree.String())
	e.codes.dumpBody(&buf)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode compresses data into a self-describing buffer.
func Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return append([]byte(nil), emptyBuffer[:]...), nil
	}
	var e Encoder
	e.Init(data)
	return e.Encode(data)
}
