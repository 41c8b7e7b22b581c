package huffnpuff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.  Nodes live in an arena and refer to their
// children by index.  Every internal node has exactly two children; every
// leaf holds one byte value.
type Tree struct {
	nodes []node
	root  NodeIndex
}

type node struct {
	weight uint64
	left   NodeIndex
	right  NodeIndex
	value  byte
}

func (n node) isLeaf() bool {
	return n.left == InvalidNode
}

// Init builds the Huffman tree for the given frequencies.  The table must
// contain at least one byte value.
//
// The construction is deterministic: when two nodes have the same weight,
// the one created first is merged first.  Leaves are created in the order
// their byte values were first seen in the input.
//
// A table with a single byte value produces a root whose left child is that
// value and whose right child is a placeholder leaf of weight 0, so that the
// value still receives a one-bit code.
//
func (t *Tree) Init(ft *FrequencyTable) {
	symbols := ft.Symbols()
	numSymbols := len(symbols)
	assert.Assertf(numSymbols != 0, "cannot build a Huffman tree for an empty FrequencyTable")
	assert.Assertf(numSymbols <= maxLeaves, "numSymbols %d > maxLeaves %d", numSymbols, maxLeaves)

	nodes := make([]node, 0, 2*numSymbols+1)
	for _, b := range symbols {
		nodes = append(nodes, node{weight: ft.Count(b), left: InvalidNode, right: InvalidNode, value: b})
	}

	if numSymbols == 1 {
		nodes = append(nodes, node{weight: 0, left: InvalidNode, right: InvalidNode, value: symbols[0] ^ 1})
		nodes = append(nodes, node{weight: nodes[0].weight, left: 0, right: 1})
		*t = Tree{nodes: nodes, root: 2}
		return
	}

	// Step 1: build a minheap over the leaves.

	list := make([]indexAndWeight, numSymbols)
	for index := range list {
		list[index] = indexAndWeight{NodeIndex(index), nodes[index].weight}
	}
	h := weightHeap{list}
	h.Init()

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that back, until only the root remains.  New nodes
	// are appended to the arena, so a node's index doubles as its
	// creation order.

	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndWeight)
		b := heap.Pop(&h).(indexAndWeight)

		// Compute weightSum using saturating addition
		weightSum := a.weight + b.weight
		if weightSum < a.weight {
			weightSum = math.MaxUint64
		}

		index := NodeIndex(len(nodes))
		nodes = append(nodes, node{weight: weightSum, left: a.index, right: b.index})
		heap.Push(&h, indexAndWeight{index, weightSum})
	}

	root := heap.Pop(&h).(indexAndWeight)
	*t = Tree{nodes: nodes, root: root.index}
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf reports whether the given node is a leaf.
func (t *Tree) IsLeaf(i NodeIndex) bool {
	return t.nodes[i].isLeaf()
}

// Left returns the left child of an internal node, or InvalidNode for a
// leaf.
func (t *Tree) Left(i NodeIndex) NodeIndex {
	return t.nodes[i].left
}

// Right returns the right child of an internal node, or InvalidNode for a
// leaf.
func (t *Tree) Right(i NodeIndex) NodeIndex {
	return t.nodes[i].right
}

// Value returns the byte value held by a leaf.
func (t *Tree) Value(i NodeIndex) byte {
	return t.nodes[i].value
}

// Weight returns the weight of a node.  Trees read back from a compressed
// buffer carry no weights.
func (t *Tree) Weight(i NodeIndex) uint64 {
	return t.nodes[i].weight
}

// String returns the shape of this tree, with internal nodes as "(L R)" and
// leaves as their hex byte value.
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return "()"
	}
	var buf strings.Builder
	t.format(&buf, t.root)
	return buf.String()
}

func (t *Tree) format(buf *strings.Builder, i NodeIndex) {
	n := t.nodes[i]
	if n.isLeaf() {
		fmt.Fprintf(buf, "0x%02x", n.value)
		return
	}
	buf.WriteByte('(')
	t.format(buf, n.left)
	buf.WriteByte(' ')
	t.format(buf, n.right)
	buf.WriteByte(')')
}

// DebugString returns the output of Dump as a string.
func (t *Tree) DebugString() string {
	var buf strings.Builder
	_, _ = t.Dump(&buf)
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, n := range t.nodes {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\t[%d] = leaf{0x%02x, %d}\n", index, n.value, n.weight)
		} else {
			fmt.Fprintf(&buf, "\t[%d] = node{%d, %d, %d}\n", index, n.left, n.right, n.weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)

// type indexAndWeight + type weightHeap {{{

type indexAndWeight struct {
	index  NodeIndex
	weight uint64
}

type weightHeap struct {
	list []indexAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.index < b.index
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
