package rw

import (
	"encoding/binary"
	"io"

	"github.com/orientsdk/orientgo/oerror"
)

// NewWriter wraps w for writing OrientDB wire primitives.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

type Writer struct {
	w io.Writer
}

func (w *Writer) write(v interface{}) {
	if err := binary.Write(w.w, endianness, v); err != nil {
		panic(err)
	}
}

func (w *Writer) WriteUint8(b byte) {
	w.WriteRawBytes([]byte{b})
}

func (w *Writer) WriteShort(n int16) {
	w.write(n)
}

func (w *Writer) WriteInt(n int32) {
	w.write(n)
}

func (w *Writer) WriteLong(n int64) {
	w.write(n)
}

func (w *Writer) WriteBool(b bool) {
	if b {
		w.WriteUint8(byte(1))
	} else {
		w.WriteUint8(byte(0))
	}
}

// WriteNull writes the null sentinel: an int32 length of -1 with no payload.
func (w *Writer) WriteNull() {
	w.WriteInt(-1)
}

// WriteString writes the string length as a 4-byte big-endian int
// followed by the UTF-8 bytes of the string.
func (w *Writer) WriteString(s string) {
	// len(string) returns the number of bytes, not runes, so it is correct here
	w.WriteInt(int32(len(s)))
	w.WriteRawBytes([]byte(s))
}

// WriteStrings writes each string in order, individually length-prefixed.
// No count is written; the message supplies it out of band when needed.
func (w *Writer) WriteStrings(ss ...string) {
	for _, s := range ss {
		w.WriteString(s)
	}
}

// WriteBytes is meant to be used for writing a structure that OrientDB
// will interpret as a byte array, usually a serialized datastructure.
// The size of the byte array is written first.  To write bytes without
// the size prefix, use WriteRawBytes instead.
func (w *Writer) WriteBytes(bs []byte) {
	if bs == nil {
		w.WriteNull()
		return
	}
	w.WriteInt(int32(len(bs)))
	w.WriteRawBytes(bs)
}

// WriteRawBytes just writes the bytes, not prefixed by the size of the slice.
func (w *Writer) WriteRawBytes(bs []byte) {
	n, err := w.w.Write(bs)
	if err != nil {
		panic(err)
	} else if n != len(bs) {
		panic(oerror.IncorrectNetworkWrite{Expected: len(bs), Actual: n})
	}
}
