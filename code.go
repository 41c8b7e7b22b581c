package huffnpuff

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxBitsPerCode is the longest code a CodeTable can hold.  A Huffman tree
// only gets this deep for inputs of tens of terabytes.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the low Size bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns this Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// IsPrefixOf reports whether hc is a prefix of other.  A Code is a prefix
// of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size > other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each byte value to its Huffman code.  Values that do not
// appear in the tree have a zero-sized Code.
type CodeTable struct {
	codes   [256]Code
	minSize byte
	maxSize byte
}

// Init derives the code of every leaf in the tree: a left branch appends a 0
// bit, a right branch appends a 1 bit.
func (ct *CodeTable) Init(t *Tree) {
	*ct = CodeTable{}
	if t.Len() == 0 {
		return
	}

	// Walk the tree with an explicit stack.  stackItem.x tracks where we
	// are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		n  NodeIndex
		hc Code
		x  byte
	}

	stack := make([]stackItem, 0, 2*log2int(t.Len()))
	var hasMinMax bool

	processChild := func(child NodeIndex, hc Code) {
		if !t.IsLeaf(child) {
			assert.Assertf(hc.Size < maxBitsPerCode, "Huffman tree deeper than %d bits", maxBitsPerCode)
			stack = append(stack, stackItem{n: child, hc: hc})
			return
		}

		ct.codes[t.Value(child)] = hc
		if !hasMinMax {
			hasMinMax = true
			ct.minSize = hc.Size
			ct.maxSize = hc.Size
		} else if ct.minSize > hc.Size {
			ct.minSize = hc.Size
		} else if ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
	}

	root := t.Root()
	assert.Assertf(!t.IsLeaf(root), "Huffman tree root must not be a leaf")
	stack = append(stack, stackItem{n: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.Left(top.n), top.hc.Append(false))
		case 1:
			processChild(t.Right(top.n), top.hc.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Encode returns the Code for b.  The Code is zero-sized if b has no code.
func (ct *CodeTable) Encode(b byte) Code {
	return ct.codes[b]
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// IsPrefixFree reports whether no code in the table is a prefix of another.
func (ct *CodeTable) IsPrefixFree() bool {
	for i := range ct.codes {
		a := ct.codes[i]
		if a.Size == 0 {
			continue
		}
		for j := range ct.codes {
			b := ct.codes[j]
			if i == j || b.Size == 0 {
				continue
			}
			if a.IsPrefixOf(b) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	ct.dumpBody(&buf)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct *CodeTable) dumpBody(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(buf, "\tMaxSize() = %d\n", ct.maxSize)
	for b, hc := range ct.codes {
		if hc.Size != 0 {
			fmt.Fprintf(buf, "\tEncode(0x%02x) = %s\n", b, hc)
		}
	}
}
