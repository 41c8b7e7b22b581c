package huffnpuff

import (
	"errors"
	"fmt"
)

// treeBits returns the number of bits writeTree will emit for t.
func treeBits(t *Tree) uint64 {
	var total uint64
	for _, n := range t.nodes {
		if n.isLeaf() {
			total += 9
		} else {
			total++
		}
	}
	return total
}

// writeTree serializes the shape of t in pre-order: a 0 bit for an internal
// node followed by its left and right subtrees, or a 1 bit for a leaf
// followed by its 8-bit value.
func writeTree(w *BitWriter, t *Tree) {
	var walk func(i NodeIndex)
	walk = func(i NodeIndex) {
		n := t.nodes[i]
		if n.isLeaf() {
			w.WriteBit(true)
			w.WriteBits(uint64(n.value), 8)
			return
		}
		w.WriteBit(false)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
}

// readTree is the inverse of writeTree.  Running out of bits, or reading a
// shape that writeTree could never have produced, yields ErrCorruptTree.
//
// The returned tree carries no weights.  minDepth and maxDepth are the
// lengths of its shortest and longest codes.
//
func readTree(r *BitReader) (t Tree, minDepth uint, maxDepth uint, err error) {
	var seen [256]bool
	var numLeaves int
	nodes := make([]node, 0, maxNodes)

	var read func(depth uint) (NodeIndex, error)
	read = func(depth uint) (NodeIndex, error) {
		if len(nodes) >= maxNodes {
			return InvalidNode, fmt.Errorf("%w: more than %d nodes", ErrCorruptTree, maxNodes)
		}

		isLeaf, err := r.ReadBit()
		if err != nil {
			return InvalidNode, corruptTree(err)
		}

		index := NodeIndex(len(nodes))
		if isLeaf {
			value, err := r.ReadBits(8)
			if err != nil {
				return InvalidNode, corruptTree(err)
			}
			b := byte(value)
			if seen[b] {
				return InvalidNode, fmt.Errorf("%w: duplicate leaf 0x%02x", ErrCorruptTree, b)
			}
			seen[b] = true
			numLeaves++
			if numLeaves == 1 || minDepth > depth {
				minDepth = depth
			}
			if maxDepth < depth {
				maxDepth = depth
			}
			nodes = append(nodes, node{left: InvalidNode, right: InvalidNode, value: b})
			return index, nil
		}

		nodes = append(nodes, node{})
		left, err := read(depth + 1)
		if err != nil {
			return InvalidNode, err
		}
		right, err := read(depth + 1)
		if err != nil {
			return InvalidNode, err
		}
		nodes[index].left = left
		nodes[index].right = right
		return index, nil
	}

	root, err := read(0)
	if err != nil {
		return Tree{}, 0, 0, err
	}
	if nodes[root].isLeaf() {
		return Tree{}, 0, 0, fmt.Errorf("%w: root is a leaf", ErrCorruptTree)
	}
	return Tree{nodes: nodes, root: root}, minDepth, maxDepth, nil
}

func corruptTree(err error) error {
	if errors.Is(err, ErrOutOfBits) {
		return fmt.Errorf("%w: tree ends early: %v", ErrCorruptTree, err)
	}
	return err
}
