package obinary

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/orientsdk/orientgo/obinary/rw"
)

// mockConn is an in-memory stand-in for the server socket: `in` holds
// the scripted bytes the server would send, `out` collects what the
// client wrote.
type mockConn struct {
	in     *bytes.Buffer
	out    *bytes.Buffer
	reads  int
	writes int
	closed bool
}

func (c *mockConn) Read(p []byte) (int, error) {
	c.reads++
	return c.in.Read(p)
}

func (c *mockConn) Write(p []byte) (int, error) {
	c.writes++
	return c.out.Write(p)
}

func (c *mockConn) Close() error {
	c.closed = true
	return nil
}

// newTestTransport builds a Transport over a mockConn whose stream
// starts with the server protocol handshake followed by the scripted
// response bytes.
func newTestTransport(tb testing.TB, protoVers int16, response []byte) (*Transport, *mockConn) {
	tb.Helper()
	mc := &mockConn{in: new(bytes.Buffer), out: new(bytes.Buffer)}
	if err := binary.Write(mc.in, binary.BigEndian, protoVers); err != nil {
		tb.Fatal(err)
	}
	mc.in.Write(response)
	t := NewTransport(mc)
	if err := t.Handshake(); err != nil {
		tb.Fatal(err)
	}
	// handshake reads are not interesting to the tests
	mc.reads = 0
	return t, mc
}

// wire builds a scripted byte sequence with the same codec the client
// uses.
func wire(fn func(w *rw.Writer)) []byte {
	buf := new(bytes.Buffer)
	fn(rw.NewWriter(buf))
	return buf.Bytes()
}
