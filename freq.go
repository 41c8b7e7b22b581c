package huffnpuff

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable counts the occurrences of each byte value in some input.
// It also remembers the order in which distinct values were first seen,
// which breaks ties during tree construction.
type FrequencyTable struct {
	counts [256]uint64
	order  []byte
	total  uint64
}

// Init initializes this FrequencyTable with the byte counts of data.
func (ft *FrequencyTable) Init(data []byte) {
	*ft = FrequencyTable{}
	for _, b := range data {
		if ft.counts[b] == 0 {
			ft.order = append(ft.order, b)
		}
		ft.counts[b]++
	}
	ft.total = uint64(len(data))
}

// Count returns the number of occurrences of b.
func (ft *FrequencyTable) Count(b byte) uint64 {
	return ft.counts[b]
}

// Len returns the number of distinct byte values with a non-zero count.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft *FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct byte values in first-seen order.  The caller
// must not modify the returned slice.
func (ft *FrequencyTable) Symbols() []byte {
	return ft.order
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable's
// current state to the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", len(ft.order))
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, b := range ft.order {
		fmt.Fprintf(&buf, "\tCount(0x%02x) = %d\n", b, ft.counts[b])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
