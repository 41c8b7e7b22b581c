package huffnpuff

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder implements a decoder for the Huffman tree embedded in a
// compressed buffer.
type Decoder struct {
	tree    Tree
	minSize byte
	maxSize byte
}

// Init initializes this Decoder by reading a serialized tree from r.
//
// The tree must be well-formed: every internal node has two children, no
// byte value appears twice, and the root is not a leaf.  Anything else is
// reported as ErrCorruptTree.
//
func (d *Decoder) Init(r *BitReader) error {
	t, minDepth, maxDepth, err := readTree(r)
	if err != nil {
		*d = Decoder{}
		return err
	}
	*d = Decoder{
		tree:    t,
		minSize: clampByte(minDepth),
		maxSize: clampByte(maxDepth),
	}
	return nil
}

// Decode consumes every remaining bit of r as a sequence of codes and
// returns the decoded bytes.  The returned slice is freshly allocated.
//
// If the bits run out in the middle of a code, Decode fails with
// ErrCorruptTree.
//
func (d *Decoder) Decode(r *BitReader) ([]byte, error) {
	if d.tree.Len() == 0 {
		return nil, fmt.Errorf("%w: Decoder has no tree", ErrCorruptTree)
	}

	root := d.tree.Root()
	out := make([]byte, 0, r.Remaining()/uint64(d.minSize))
	cursor := root
	for r.Remaining() != 0 {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit {
			cursor = d.tree.Right(cursor)
		} else {
			cursor = d.tree.Left(cursor)
		}
		if d.tree.IsLeaf(cursor) {
			out = append(out, d.tree.Value(cursor))
			cursor = root
		}
	}
	if cursor != root {
		return nil, fmt.Errorf("%w: payload ends in the middle of a code after %d bytes", ErrCorruptTree, len(out))
	}
	return out, nil
}

// Tree returns the Huffman tree this Decoder walks.
func (d *Decoder) Tree() *Tree {
	return &d.tree
}

// MinSize is the bit length of the shortest code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	fmt.Fprintf(&buf, "\tTree() = %s\n", d.tree.String())
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode reconstructs the bytes compressed into buf by Encode.
func Decode(buf []byte) ([]byte, error) {
	r := NewBitReader(buf, physicalBits(buf))

	isEmpty, err := r.ReadBit()
	if err != nil {
		return nil, fmt.Errorf("%w: missing empty flag: %v", ErrOutOfBits, err)
	}
	if isEmpty {
		if !bytes.Equal(buf, emptyBuffer[:]) {
			return nil, fmt.Errorf("%w: empty buffer is %#v, expected %#v", ErrBadHeader, buf, emptyBuffer[:])
		}
		return []byte{}, nil
	}

	validBits, err := r.ReadBits(countBits)
	if err != nil {
		return nil, err
	}
	available := r.Remaining()
	if validBits > available {
		return nil, fmt.Errorf("%w: header records %d bits, buffer holds %d", ErrOutOfBits, validBits, available)
	}
	if available-validBits >= 8 {
		return nil, fmt.Errorf("%w: %d bytes of trailing data", ErrBadHeader, (available-validBits)/8)
	}
	r.Limit(validBits)

	var d Decoder
	if err := d.Init(r); err != nil {
		return nil, err
	}
	if r.Remaining() == 0 {
		return nil, fmt.Errorf("%w: non-empty buffer has no payload", ErrBadHeader)
	}
	return d.Decode(r)
}

func clampByte(x uint) byte {
	if x > 255 {
		return 255
	}
	return byte(x)
}
