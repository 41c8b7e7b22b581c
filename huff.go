package huffnpuff

// Huff serializes v with DefaultCodec and compresses the result.
func Huff(v interface{}) ([]byte, error) {
	return HuffCodec(DefaultCodec, v)
}

// HuffCodec serializes v with c and compresses the result.  Failures of c
// are returned as *SerializationError.
func HuffCodec(c Codec, v interface{}) ([]byte, error) {
	raw, err := c.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return Encode(raw)
}

// Puff decompresses buf and deserializes the result into the value pointed
// to by v, using DefaultCodec.
func Puff(buf []byte, v interface{}) error {
	return PuffCodec(DefaultCodec, buf, v)
}

// PuffCodec decompresses buf and deserializes the result into the value
// pointed to by v, using c.  Failures of c are returned as
// *DeserializationError; corrupt input yields ErrCorruptTree, ErrOutOfBits,
// or ErrBadHeader.
func PuffCodec(c Codec, buf []byte, v interface{}) error {
	raw, err := Decode(buf)
	if err != nil {
		return err
	}
	if err := c.Unmarshal(raw, v); err != nil {
		return &DeserializationError{Err: err}
	}
	return nil
}

// PuffAs decompresses buf and deserializes the result as a T, using
// DefaultCodec.
func PuffAs[T any](buf []byte) (T, error) {
	var out T
	err := Puff(buf, &out)
	return out, err
}
