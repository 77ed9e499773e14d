package pesel

import (
	"encoding"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Every wire form is the canonical 11-digit string, and every decode routes
// through Parse, so a deserialized PESEL upholds the type invariant.
// encoding/json picks up the text form automatically, yielding a JSON
// string.
var (
	_ encoding.TextMarshaler   = PESEL{}
	_ encoding.TextUnmarshaler = (*PESEL)(nil)
	_ cbor.Marshaler           = PESEL{}
	_ cbor.Unmarshaler         = (*PESEL)(nil)
	_ msgpack.CustomEncoder    = PESEL{}
	_ msgpack.CustomDecoder    = (*PESEL)(nil)
)

// MarshalText returns the canonical 11-digit form.
func (p PESEL) MarshalText() ([]byte, error) {
	return []byte(p.digits), nil
}

// UnmarshalText parses and validates b; invalid numbers are rejected.
func (p *PESEL) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalCBOR encodes the identifier as a CBOR text string.
func (p PESEL) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.digits)
}

// UnmarshalCBOR expects a CBOR text string holding a valid number.
func (p *PESEL) UnmarshalCBOR(b []byte) error {
	var s string
	if err := cbor.Unmarshal(b, &s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// EncodeMsgpack encodes the identifier as a msgpack string.
func (p PESEL) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(p.digits)
}

// DecodeMsgpack expects a msgpack string holding a valid number.
func (p *PESEL) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
