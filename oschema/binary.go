package oschema

import "encoding/base64"

// OBinaryObject wraps a base64-encoded binary payload embedded in a
// record.  The encoded text is kept as received; decoding is lazy and
// never mutates the wrapper, so Bytes may be called repeatedly.
type OBinaryObject struct {
	B64 string
}

func NewOBinaryObject(b64 string) *OBinaryObject {
	return &OBinaryObject{B64: b64}
}

// Raw returns the encoded text wrapped in the sentinel underscores used
// when embedding binary fields in serialized records.
func (b *OBinaryObject) Raw() string {
	return "_" + b.B64 + "_"
}

// Bytes decodes the payload.
func (b *OBinaryObject) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(b.B64)
}
