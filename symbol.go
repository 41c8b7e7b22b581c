package huffnpuff

// NodeIndex addresses a node within a Tree's arena.  Negative indices are
// not valid.
type NodeIndex int32

// InvalidNode is used as the child index of leaves, and is returned by some
// functions to clearly indicate that no node is being returned.
const InvalidNode = NodeIndex(-1)

// maxLeaves is the size of the byte alphabet.
const maxLeaves = 256

// maxNodes is the size of a full binary tree with maxLeaves leaves.
const maxNodes = 2*maxLeaves - 1
