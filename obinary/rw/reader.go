//
// rw is the read-write package for reading and writing primitive types
// from the OrientDB binary network protocol.  All multi-byte integers
// are big-endian; strings and byte blobs are prefixed with a signed
// 4-byte length where -1 denotes null.  Methods panic on I/O errors or
// truncated streams; callers at operation boundaries recover via the
// obinary catch idiom and surface the panic as an ordinary error.
//
package rw

import (
	"encoding/binary"
	"io"

	"github.com/orientsdk/orientgo/oerror"
)

var endianness = binary.BigEndian

// NewReader wraps r for reading OrientDB wire primitives.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

type Reader struct {
	r io.Reader
}

func (r *Reader) read(v interface{}) {
	if err := binary.Read(r.r, endianness, v); err != nil {
		panic(err)
	}
}

func (r *Reader) ReadUint8() byte {
	var readbuf [1]byte
	r.ReadRawBytes(readbuf[:])
	return readbuf[0]
}

func (r *Reader) ReadShort() (v int16) {
	r.read(&v)
	return
}

func (r *Reader) ReadInt() (v int32) {
	r.read(&v)
	return
}

func (r *Reader) ReadLong() (v int64) {
	r.read(&v)
	return
}

// ReadBool reads one byte from the stream. Zero is false,
// any other value is true.
func (r *Reader) ReadBool() bool {
	return r.ReadUint8() != byte(0)
}

// ReadString reads an OrientDB string: a 4-byte big-endian length
// followed by that many bytes of UTF-8 text.  An empty or null
// (-1 length) string is returned as "".
func (r *Reader) ReadString() string {
	bs := r.ReadBytes()
	if bs == nil {
		return ""
	}
	return string(bs)
}

// ReadBytes reads in an OrientDB byte array.  It reads the first 4 bytes
// from the stream as an int to determine the length of the byte array
// to read in.  If the specified size of the byte array is 0 (empty) or
// negative (null), nil is returned.
func (r *Reader) ReadBytes() []byte {
	sz := r.ReadInt()
	if sz <= 0 {
		return nil
	}
	readbuf := make([]byte, sz)
	r.ReadRawBytes(readbuf)
	return readbuf
}

// ReadRawBytes fills buf from the stream without any length prefix.
// A stream that ends before buf is full is a framing failure.
func (r *Reader) ReadRawBytes(buf []byte) {
	n, err := io.ReadFull(r.r, buf)
	if err != nil {
		panic(oerror.IncorrectNetworkRead{Expected: len(buf), Actual: n})
	}
}
