// Package obinary implements the client side of the OrientDB network
// binary protocol: a typed field codec, the request/response frame
// builder, the per-connection session state and one message type per
// server operation.  One Transport owns one socket and supports exactly
// one synchronous request/response exchange at a time; callers sharing
// a Transport across goroutines must serialize access themselves.
package obinary

import (
	"io"
	"net"
	"time"

	"github.com/orientsdk/orientgo"
	"github.com/orientsdk/orientgo/obinary/rw"
	"github.com/orientsdk/orientgo/oerror"
)

func init() {
	orient.RegisterProto(orient.ProtoBinary, func(addr string) (orient.DBConnection, error) {
		return Dial(addr)
	})
}

func validateAddr(addr string) (string, error) {
	var host, port string
	if addr != "" {
		var err error
		host, port, err = net.SplitHostPort(addr)
		if err != nil {
			return "", err
		}
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "2424" // binary port range is: 2424-2430
	}
	return net.JoinHostPort(host, port), nil
}

// Dial creates a new binary connection to an OrientDB server and
// performs the version handshake.  The Transport returned holds no
// session yet; call Connect or OpenDatabase next.
func Dial(addr string) (*Transport, error) {
	addr, err := validateAddr(addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.DialTimeout("tcp", addr, time.Minute)
	if err != nil {
		return nil, err
	}
	t := NewTransport(conn)
	if err := t.Handshake(); err != nil {
		conn.Close()
		return nil, err
	}
	return t, nil
}

// Transport owns the socket and the connection-wide session state.
// The session state is mutated only by the specific operations that are
// allowed to: Connect sets the session id, DbOpen/DbCreate set the open
// database and the serialization format.  Everything else reads it.
type Transport struct {
	conn io.ReadWriteCloser
	br   *rw.Reader

	srvProtoVers int16 // version the server announced
	curProtoVers int16 // negotiated version; immutable after Handshake

	sessionID     int32
	dbOpened      string
	serialization orient.SerializationType
	closed        bool
}

// NewTransport wraps an established connection.  Used by Dial and by
// tests that drive the protocol over an in-memory stream.  Handshake
// must be called before any operation.
func NewTransport(conn io.ReadWriteCloser) *Transport {
	return &Transport{
		conn:          conn,
		br:            rw.NewReader(conn),
		sessionID:     noSessionID,
		serialization: orient.SerializeDocument2CSV,
	}
}

// Handshake consumes the 2-byte protocol version the server sends
// immediately after the connection is established and negotiates the
// version this session will speak.  The negotiated version never
// changes afterwards.
func (t *Transport) Handshake() (err error) {
	defer catch(&err)

	if c, ok := t.conn.(net.Conn); ok {
		c.SetReadDeadline(time.Now().Add(time.Second * 5))
		defer c.SetReadDeadline(time.Time{})
	}

	t.srvProtoVers = t.br.ReadShort()
	if t.srvProtoVers < minProtocolVersion || t.srvProtoVers > maxProtocolVersion {
		return oerror.UnsupportedVersion{
			ServerVersion: t.srvProtoVers,
			MinSupported:  minProtocolVersion,
			MaxSupported:  maxProtocolVersion,
		}
	}
	t.curProtoVers = currentProtocolVersion
	if t.curProtoVers > t.srvProtoVers {
		t.curProtoVers = t.srvProtoVers
	}
	return nil
}

// reader fails fast once the Transport is closed; a closed connection
// is terminal.
func (t *Transport) reader() *rw.Reader {
	if t.closed {
		panic(oerror.ErrClosedConnection)
	}
	return t.br
}

func (t *Transport) write(data []byte) {
	if t.closed {
		panic(oerror.ErrClosedConnection)
	}
	n, err := t.conn.Write(data)
	if err != nil {
		panic(err)
	} else if n != len(data) {
		panic(oerror.IncorrectNetworkWrite{Expected: len(data), Actual: n})
	}
}

// Close releases the socket unconditionally and clears the open
// database.  It is idempotent; any use of the Transport afterwards
// fails with ErrClosedConnection.
func (t *Transport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.dbOpened = ""
	t.sessionID = noSessionID
	return t.conn.Close()
}

// SessionID returns the server-assigned session id, or -1 before
// authentication.
func (t *Transport) SessionID() int32 {
	return t.sessionID
}

// ProtocolVersion returns the negotiated binary protocol version.
func (t *Transport) ProtocolVersion() int16 {
	return t.curProtoVers
}

// DatabaseOpened returns the name of the open database, or "" if none.
func (t *Transport) DatabaseOpened() string {
	return t.dbOpened
}

// Serialization returns the record serialization format of this session.
func (t *Transport) Serialization() orient.SerializationType {
	return t.serialization
}

func (t *Transport) setSessionID(id int32) {
	t.sessionID = id
}

func (t *Transport) setDatabaseOpened(name string, format orient.SerializationType) {
	t.dbOpened = name
	t.serialization = format
}
