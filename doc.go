// Package huffnpuff compresses values with a Huffman code and restores them.
// Every compressed buffer carries its own code tree, so it can be decoded
// without any other state.
//
// A value is first turned into bytes by a Codec (msgpack by default), then
// Huffman-coded.  The buffer layout, most significant bit first:
//
//     1 bit    empty flag; if set, nothing follows
//     64 bits  number of valid bits in the tree and payload regions
//     ...      code tree, pre-order: 0 = internal node, 1 = leaf + 8-bit value
//     ...      payload: the code of every input byte, in order
//     0-7 bits zero padding up to a byte boundary
//
// Short inputs usually grow, since the tree and header are not free.
// Callers that need a size guarantee must compare lengths themselves.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffnpuff
