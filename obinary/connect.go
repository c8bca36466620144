package obinary

import (
	"github.com/orientsdk/orientgo"
	"github.com/orientsdk/orientgo/oerror"
)

//
// Connect
//
// Authenticates against the server itself (not a database).  The
// response carries the session id to be reused for all subsequent
// requests on this connection.
//
// Request: (driver-name:string)(driver-version:string)
//   (protocol-version:short)(client-id:string)
//   (serialization-impl:string - above version 21)
//   (user-name:string)(user-password:string)
// Response: (session-id:int)
//
type ConnectMessage struct {
	t        *Transport
	frame    *messageFrame
	user     string
	pass     string
	clientID string
	format   orient.SerializationType
	err      error
}

func NewConnectMessage(t *Transport) *ConnectMessage {
	return &ConnectMessage{t: t, format: orient.SerializeDocument2CSV}
}

func (m *ConnectMessage) SetUser(user string) *ConnectMessage {
	m.user = user
	return m
}

func (m *ConnectMessage) SetPass(pass string) *ConnectMessage {
	m.pass = pass
	return m
}

func (m *ConnectMessage) SetClientID(cid string) *ConnectMessage {
	m.clientID = cid
	return m
}

// SetSerialization selects the record serialization format for the
// session.  A value outside the server's closed set, or the binary
// format this client does not implement, is a validation failure
// surfaced by Prepare before any byte is written.
func (m *ConnectMessage) SetSerialization(format orient.SerializationType) *ConnectMessage {
	switch {
	case format == orient.SerializeBinary:
		m.err = oerror.SerializationNotSupported{TypeRequested: string(format)}
	case !format.IsValid():
		m.err = oerror.InvalidSerializationType{TypeRequested: string(format)}
	default:
		m.format = format
	}
	return m
}

// Prepare validates the accumulated parameters and builds the request
// frame in the exact field order the negotiated protocol version
// expects.
func (m *ConnectMessage) Prepare() error {
	if m.err != nil {
		return m.err
	}
	if err := m.t.alive(); err != nil {
		return err
	}
	if m.clientID == "" {
		m.clientID = newClientID()
	}

	f := newRequest(m.t, requestConnect)
	f.appendStrings(driverName, driverVersion)
	f.appendShort(m.t.curProtoVers)
	if m.t.curProtoVers > protoVersionSerializer {
		f.appendStrings(m.clientID, string(m.format), m.user, m.pass)
	} else {
		f.appendStrings(m.clientID, m.user, m.pass)
	}
	m.frame = f
	return nil
}

func (m *ConnectMessage) Send() error {
	return m.frame.send()
}

// FetchResponse decodes the new session id and binds it to the
// Transport; Connect is the only operation allowed to set it.
func (m *ConnectMessage) FetchResponse() (int32, error) {
	vals, err := m.frame.fetchResponse(fieldInt)
	if err != nil {
		return noSessionID, err
	}
	sessionID := vals[0].(int32)
	m.t.setSessionID(sessionID)
	return sessionID, nil
}

//
// Shutdown
//
// Asks the server process to shut down.  Requires server-level
// credentials with shutdown permission.
//
// Request: (user-name:string)(user-password:string)
// Response: empty
//
type ShutdownMessage struct {
	t     *Transport
	frame *messageFrame
	user  string
	pass  string
}

func NewShutdownMessage(t *Transport) *ShutdownMessage {
	return &ShutdownMessage{t: t}
}

func (m *ShutdownMessage) SetUser(user string) *ShutdownMessage {
	m.user = user
	return m
}

func (m *ShutdownMessage) SetPass(pass string) *ShutdownMessage {
	m.pass = pass
	return m
}

func (m *ShutdownMessage) Prepare() error {
	if err := m.t.needConnected(); err != nil {
		return err
	}
	m.frame = newRequest(m.t, requestShutdown).appendStrings(m.user, m.pass)
	return nil
}

func (m *ShutdownMessage) Send() error {
	return m.frame.send()
}

func (m *ShutdownMessage) FetchResponse() error {
	_, err := m.frame.fetchResponse()
	return err
}
