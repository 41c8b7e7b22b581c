package huffnpuff

import (
	"errors"
	"fmt"
)

// ErrOutOfBits is returned when a read is attempted past the recorded number
// of valid bits.
var ErrOutOfBits = errors.New("out of bits")

// ErrCorruptTree is returned when the bits of a buffer do not describe a
// well-formed code tree, or when the payload ends in the middle of a code.
var ErrCorruptTree = errors.New("corrupt Huffman tree")

// ErrBadHeader is returned when a buffer's header is inconsistent with the
// buffer's length.
var ErrBadHeader = errors.New("bad header")

// SerializationError wraps a failure of the Codec while converting a value
// to bytes.
type SerializationError struct {
	Err error
}

func (err *SerializationError) Error() string {
	return fmt.Sprintf("huffnpuff: failed to serialize value: %v", err.Err)
}

func (err *SerializationError) Unwrap() error {
	return err.Err
}

// DeserializationError wraps a failure of the Codec while reconstructing a
// value from decompressed bytes.
type DeserializationError struct {
	Err error
}

func (err *DeserializationError) Error() string {
	return fmt.Sprintf("huffnpuff: failed to deserialize value: %v", err.Err)
}

func (err *DeserializationError) Unwrap() error {
	return err.Err
}

var (
	_ error = (*SerializationError)(nil)
	_ error = (*DeserializationError)(nil)
)
