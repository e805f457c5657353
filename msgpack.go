package ebi

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder. The value is written as a
// msgpack bin holding the MarshalBinary form.
func (i Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	b, err := i.MarshalBinary()
	if err != nil {
		return err
	}
	return enc.EncodeBytes(b)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (i *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return ParseError.Wrap(err)
	}
	return i.UnmarshalBinary(b)
}
