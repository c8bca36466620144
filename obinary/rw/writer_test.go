package rw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestWriteUint8(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.WriteUint8(0x1)
	w.WriteUint8(0xef)

	equals(t, 2, buf.Len())
	equals(t, []byte{0x1, 0xef}, buf.Bytes())
}

func TestWriteBytes(t *testing.T) {
	buf := new(bytes.Buffer)
	byteMsg := []byte("I like Ike")
	NewWriter(buf).WriteBytes(byteMsg)

	equals(t, 4+len(byteMsg), buf.Len())
	bs := buf.Next(4)
	equals(t, len(byteMsg), bigEndianConvertToInt(bs))

	bs = buf.Next(len(byteMsg))
	equals(t, byteMsg, bs)
}

func TestWriteBytesNilWritesNull(t *testing.T) {
	buf := new(bytes.Buffer)
	NewWriter(buf).WriteBytes(nil)

	equals(t, 4, buf.Len())
	var actInt int32
	binary.Read(buf, binary.BigEndian, &actInt)
	equals(t, int32(-1), actInt)
}

func TestWriteRawBytes(t *testing.T) {
	buf := new(bytes.Buffer)
	byteMsg := []byte("I like Ike")
	NewWriter(buf).WriteRawBytes(byteMsg)

	bs := buf.Next(len(byteMsg))
	equals(t, byteMsg, bs)

	// write empty bytes
	buf = new(bytes.Buffer)
	NewWriter(buf).WriteRawBytes([]byte{})
	equals(t, 0, buf.Len())
}

func TestWriteNull(t *testing.T) {
	buf := new(bytes.Buffer)
	NewWriter(buf).WriteNull()

	equals(t, 4, buf.Len()) // null in OrientDB is -1 (int32)

	var actInt int32
	binary.Read(buf, binary.BigEndian, &actInt)
	equals(t, int32(-1), actInt)
}

func TestWriteBool(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteBool(true)

	equals(t, 3, buf.Len())
	equals(t, []byte{1, 0, 1}, buf.Bytes())
}

func TestWriteShort(t *testing.T) {
	buf := new(bytes.Buffer)
	NewWriter(buf).WriteShort(int16(-27))

	equals(t, 2, buf.Len())
	equals(t, int16(-27), NewReader(buf).ReadShort())
}

func TestWriteInt(t *testing.T) {
	buf := new(bytes.Buffer)
	NewWriter(buf).WriteInt(int32(190012)) // a single billboard on the highway

	equals(t, 4, buf.Len())
	equals(t, int32(190012), NewReader(buf).ReadInt())
}

func TestWriteLong(t *testing.T) {
	buf := new(bytes.Buffer)
	NewWriter(buf).WriteLong(int64(2 << 40))

	equals(t, 8, buf.Len())
	equals(t, int64(2<<40), NewReader(buf).ReadLong())
}

func TestWriteString(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).WriteString("hello")
	equals(t, 9, buf.Len())

	n, s := nextBinaryString(&buf)
	equals(t, 5, n)
	equals(t, "hello", s)
}

func TestWriteStrings(t *testing.T) {
	buf := new(bytes.Buffer)
	NewWriter(buf).WriteStrings("a", "a longer string", "golang")
	equals(t, (4*3)+len("a")+len("a longer string")+len("golang"), buf.Len())

	// read back first string
	n, s := nextBinaryString(buf)
	equals(t, 1, n)
	equals(t, "a", s)

	// read back second string
	n, s = nextBinaryString(buf)
	equals(t, len("a longer string"), n)
	equals(t, "a longer string", s)

	// read back third string
	n, s = nextBinaryString(buf)
	equals(t, len("golang"), n)
	equals(t, "golang", s)
}

func TestWriteManyTypes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.WriteUint8(0x1)
	w.WriteString("vått og tørt")
	w.WriteShort(int16(29876))
	w.WriteInt(int32(-595405))
	w.WriteLong(int64(2 << 58))

	r := NewReader(&buf)
	equals(t, byte(0x1), r.ReadUint8())
	equals(t, "vått og tørt", r.ReadString())
	equals(t, int16(29876), r.ReadShort())
	equals(t, int32(-595405), r.ReadInt())
	equals(t, int64(2<<58), r.ReadLong())
}

/* ---[ helper fns ]--- */

func nextBinaryString(buf *bytes.Buffer) (int, string) {
	intBytes := buf.Next(4)
	intVal := int(intBytes[3]) | int(intBytes[2])<<8 | int(intBytes[1])<<16 | int(intBytes[0])<<24

	strBytes := buf.Next(intVal)
	return intVal, string(strBytes)
}

func bigEndianConvertToInt(bs []byte) int {
	return int(binary.BigEndian.Uint32(bs))
}

// equals fails the test if exp is not equal to act.
func equals(tb testing.TB, exp, act interface{}) {
	if !reflect.DeepEqual(exp, act) {
		_, file, line, _ := runtime.Caller(1)
		fmt.Printf("\033[31m%s:%d:\n\n\texp: %#v\n\n\tgot: %#v\033[39m\n\n",
			filepath.Base(file), line, exp, act)
		tb.FailNow()
	}
}

// ok fails the test if an err is not nil.
func ok(tb testing.TB, err error) {
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		fmt.Printf("\033[31m%s:%d: unexpected error: %s\033[39m\n\n",
			filepath.Base(file), line, err.Error())
		tb.FailNow()
	}
}

// assert fails the test if the condition is false.
func assert(tb testing.TB, condition bool, msg string) {
	if !condition {
		_, file, line, _ := runtime.Caller(1)
		fmt.Printf("\033[31m%s:%d: "+msg+"\033[39m\n\n",
			append([]interface{}{filepath.Base(file), line})...)
		tb.FailNow()
	}
}
