package huffnpuff

import (
	"encoding"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec converts values to and from bytes.  Huff and Puff use a Codec on
// either side of the Huffman stage.
type Codec interface {
	// Marshal returns the byte representation of v.
	Marshal(v interface{}) ([]byte, error)

	// Unmarshal reconstructs a value from data and stores it in the value
	// pointed to by v.  The value must not retain data.
	Unmarshal(data []byte, v interface{}) error
}

// DefaultCodec is the Codec used by Huff, Puff, and PuffAs.
var DefaultCodec Codec = MsgpackCodec{}

// MsgpackCodec is a Codec that uses MessagePack.  Any value msgpack can
// encode is accepted.
type MsgpackCodec struct{}

// Marshal encodes v as MessagePack.
func (MsgpackCodec) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (MsgpackCodec) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

// BinaryCodec is a Codec that passes raw bytes through unchanged.  It
// accepts []byte, string, and any type implementing
// encoding.BinaryMarshaler (for Marshal) or encoding.BinaryUnmarshaler (for
// Unmarshal).
type BinaryCodec struct{}

// Marshal returns the raw bytes of v.
func (BinaryCodec) Marshal(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case *[]byte:
		return *x, nil
	case string:
		return []byte(x), nil
	case *string:
		return []byte(*x), nil
	case encoding.BinaryMarshaler:
		return x.MarshalBinary()
	default:
		return nil, fmt.Errorf("BinaryCodec: cannot marshal %T", v)
	}
}

// Unmarshal stores a copy of data in v.
func (BinaryCodec) Unmarshal(data []byte, v interface{}) error {
	switch x := v.(type) {
	case *[]byte:
		*x = append([]byte(nil), data...)
		return nil
	case *string:
		*x = string(data)
		return nil
	case encoding.BinaryUnmarshaler:
		return x.UnmarshalBinary(data)
	default:
		return fmt.Errorf("BinaryCodec: cannot unmarshal into %T", v)
	}
}

var (
	_ Codec = MsgpackCodec{}
	_ Codec = BinaryCodec{}
)
