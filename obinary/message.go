package obinary

import (
	"bytes"
	"fmt"

	"github.com/golang/glog"
	"github.com/orientsdk/orientgo/obinary/rw"
	"github.com/orientsdk/orientgo/oerror"
)

// fieldType identifies the binary layout of one wire field.  Tags are
// never inferred from data: the message always declares them, both when
// building a request and when decoding a response.
type fieldType int

const (
	fieldByte fieldType = iota
	fieldShort
	fieldInt
	fieldLong
	fieldBool
	fieldString
	fieldStrings
	fieldBytes
)

type field struct {
	typ fieldType
	val interface{}
}

// messageFrame accumulates the ordered (type, value) fields of one
// request and decodes the declared field sequence of its response.
// Field order is an explicit contract of each operation message, since
// the wire format is not self-describing.
type messageFrame struct {
	t      *Transport
	fields []field
}

// newRequest starts a frame for the given operation.  The first field
// is always the one-byte operation code, followed by the 4-byte session
// id currently bound to the connection (-1 before authentication).
func newRequest(t *Transport, op byte) *messageFrame {
	m := &messageFrame{t: t}
	m.appendByte(op)
	m.appendInt(t.sessionID)
	return m
}

func (m *messageFrame) appendByte(b byte) *messageFrame {
	m.fields = append(m.fields, field{fieldByte, b})
	return m
}

func (m *messageFrame) appendShort(n int16) *messageFrame {
	m.fields = append(m.fields, field{fieldShort, n})
	return m
}

func (m *messageFrame) appendInt(n int32) *messageFrame {
	m.fields = append(m.fields, field{fieldInt, n})
	return m
}

func (m *messageFrame) appendLong(n int64) *messageFrame {
	m.fields = append(m.fields, field{fieldLong, n})
	return m
}

func (m *messageFrame) appendBool(b bool) *messageFrame {
	m.fields = append(m.fields, field{fieldBool, b})
	return m
}

func (m *messageFrame) appendString(s string) *messageFrame {
	m.fields = append(m.fields, field{fieldString, s})
	return m
}

func (m *messageFrame) appendStrings(ss ...string) *messageFrame {
	m.fields = append(m.fields, field{fieldStrings, ss})
	return m
}

func (m *messageFrame) appendBytes(bs []byte) *messageFrame {
	m.fields = append(m.fields, field{fieldBytes, bs})
	return m
}

// send encodes the accumulated fields in order and writes them to the
// Transport as one logical frame.
func (m *messageFrame) send() (err error) {
	defer catch(&err)
	buf := new(bytes.Buffer)
	w := rw.NewWriter(buf)
	for _, f := range m.fields {
		encodeField(w, f)
	}
	m.fields = m.fields[:0]
	if glog.V(3) {
		glog.Infof("request: % x", buf.Bytes())
	}
	m.t.write(buf.Bytes())
	return nil
}

// response reads the leading status byte and the session id echo.  On
// success it hands back the reader so the operation can decode its
// declared field sequence, including count-driven loops.  On an error
// status it decodes the error frame instead and returns the structured
// server error.
func (m *messageFrame) response() (*rw.Reader, error) {
	r := m.t.reader()
	status := r.ReadUint8()
	_ = r.ReadInt() // session id echo of the request header
	if status != responseStatusOk {
		return nil, readErrorResponse(r)
	}
	return r, nil
}

// fetchResponse decodes the declared tag sequence in order and returns
// the values as an ordered result list.  A decode failure yields the
// error alone, never a partial value list.
func (m *messageFrame) fetchResponse(types ...fieldType) (vals []interface{}, err error) {
	defer func() {
		if err != nil {
			vals = nil
		}
	}()
	defer catch(&err)
	r, err := m.response()
	if err != nil {
		return nil, err
	}
	vals = make([]interface{}, 0, len(types))
	for _, ft := range types {
		vals = append(vals, decodeField(r, ft))
	}
	return vals, nil
}

func encodeField(w *rw.Writer, f field) {
	switch f.typ {
	case fieldByte:
		w.WriteUint8(f.val.(byte))
	case fieldShort:
		w.WriteShort(f.val.(int16))
	case fieldInt:
		w.WriteInt(f.val.(int32))
	case fieldLong:
		w.WriteLong(f.val.(int64))
	case fieldBool:
		w.WriteBool(f.val.(bool))
	case fieldString:
		w.WriteString(f.val.(string))
	case fieldStrings:
		w.WriteStrings(f.val.([]string)...)
	case fieldBytes:
		w.WriteBytes(f.val.([]byte))
	default:
		panic(oerror.ErrBrokenProtocol{Reason: errUnknownFieldType(f.typ)})
	}
}

func decodeField(r *rw.Reader, ft fieldType) interface{} {
	switch ft {
	case fieldByte:
		return r.ReadUint8()
	case fieldShort:
		return r.ReadShort()
	case fieldInt:
		return r.ReadInt()
	case fieldLong:
		return r.ReadLong()
	case fieldBool:
		return r.ReadBool()
	case fieldString:
		return r.ReadString()
	case fieldBytes:
		return r.ReadBytes()
	default:
		// fieldStrings has no embedded count, so it cannot be decoded
		// as a single declared tag; the message reads each string and
		// supplies the count out of band
		panic(oerror.ErrBrokenProtocol{Reason: errUnknownFieldType(ft)})
	}
}

type errUnknownFieldType fieldType

func (e errUnknownFieldType) Error() string {
	return fmt.Sprintf("field type %d cannot be framed", int(e))
}

// readErrorResponse reads an "Exception" frame from the OrientDB
// server: a continuation marker before every (class, message) pair, a
// zero marker closing the list, then the Java-serialized form of the
// exception as a length-prefixed blob (absent on old servers).  The
// server can stack multiple exceptions for one request; all of them are
// incorporated into a single OServerException in reported order.
func readErrorResponse(r *rw.Reader) error {
	exc := make([]oerror.Exception, 0, 1) // usually only one ?
	for {
		marker := r.ReadUint8()
		if marker == byte(0) {
			break
		}
		exClass := r.ReadString()
		exMsg := r.ReadString()
		exc = append(exc, oerror.UnknownException{Class: exClass, Message: exMsg})
	}

	// only useful to Java clients, but kept so callers can inspect it
	serialized := r.ReadBytes()

	return oerror.OServerException{Exceptions: exc, Serialized: serialized}
}
