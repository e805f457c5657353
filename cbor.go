package ebi

import (
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

var (
	_ cbor.Marshaler   = Int{}
	_ cbor.Unmarshaler = (*Int)(nil)
)

// MarshalCBOR implements cbor.Marshaler. Values that fit a CBOR integer are
// encoded as one; anything larger is an RFC 8949 bignum (tag 2 or 3).
func (i Int) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(i.AsBigInt())
}

// UnmarshalCBOR implements cbor.Unmarshaler. It accepts CBOR integers and
// bignums.
func (i *Int) UnmarshalCBOR(data []byte) error {
	var b big.Int
	if err := cbor.Unmarshal(data, &b); err != nil {
		return ParseError.Wrap(err)
	}
	v, err := IntFromBigInt(&b)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
