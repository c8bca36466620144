package obinary

import (
	"github.com/orientsdk/orientgo"
	"github.com/orientsdk/orientgo/obinary/rw"
	"github.com/orientsdk/orientgo/oerror"
)

//
// DB OPEN
//
// Opens a database on the remote server.  This is the first operation
// a database client issues; on a fresh, unauthenticated connection it
// transparently performs the Connect exchange first.
//
// Request: (driver-name:string)(driver-version:string)
//   (protocol-version:short)(client-id:string)
//   (serialization-impl:string - above version 21)
//   (database-name:string)(database-type:string)
//   (user-name:string)(user-password:string)
// Response: (session-id:int)(num-of-clusters:short)
//   [(cluster-name:string)(cluster-id:short)
//    (cluster-type:string)(cluster-segment:short) - below version 24]
//   (cluster-config:bytes)(orientdb-release:string)
//
type DbOpenMessage struct {
	t        *Transport
	frame    *messageFrame
	dbName   string
	dbType   orient.DatabaseType
	user     string
	pass     string
	clientID string
	format   orient.SerializationType
	err      error
}

func NewDbOpenMessage(t *Transport) *DbOpenMessage {
	return &DbOpenMessage{
		t:      t,
		dbType: orient.DocumentDB,
		format: orient.SerializeDocument2CSV,
	}
}

func (m *DbOpenMessage) SetDbName(name string) *DbOpenMessage {
	m.dbName = name
	return m
}

func (m *DbOpenMessage) SetDbType(dbType orient.DatabaseType) *DbOpenMessage {
	if !dbType.IsValid() {
		m.err = oerror.InvalidDatabaseType{TypeRequested: string(dbType)}
	} else {
		m.dbType = dbType
	}
	return m
}

func (m *DbOpenMessage) SetUser(user string) *DbOpenMessage {
	m.user = user
	return m
}

func (m *DbOpenMessage) SetPass(pass string) *DbOpenMessage {
	m.pass = pass
	return m
}

func (m *DbOpenMessage) SetClientID(cid string) *DbOpenMessage {
	m.clientID = cid
	return m
}

func (m *DbOpenMessage) SetSerialization(format orient.SerializationType) *DbOpenMessage {
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

// performConnect runs the internal Connect exchange that DbOpen is
// allowed to do on an unauthenticated connection, updating the session
// state before the open frame is built.
func (m *DbOpenMessage) performConnect() error {
	conn := NewConnectMessage(m.t).
		SetUser(m.user).
		SetPass(m.pass).
		SetClientID(m.clientID)
	if err := conn.Prepare(); err != nil {
		return err
	}
	if err := conn.Send(); err != nil {
		return err
	}
	_, err := conn.FetchResponse()
	return err
}

func (m *DbOpenMessage) Prepare() error {
	if m.err != nil {
		return m.err
	}
	if err := m.t.alive(); err != nil {
		return err
	}
	if m.clientID == "" {
		m.clientID = newClientID()
	}

	// lazy auto-connect; the one sanctioned exception to "guards only fail"
	if m.t.sessionID < 0 {
		if err := m.performConnect(); err != nil {
			return err
		}
	}

	f := newRequest(m.t, requestDbOpen)
	f.appendStrings(driverName, driverVersion)
	f.appendShort(m.t.curProtoVers)
	if m.t.curProtoVers > protoVersionSerializer {
		f.appendStrings(m.clientID, string(m.format), m.dbName, string(m.dbType), m.user, m.pass)
	} else {
		f.appendStrings(m.clientID, m.dbName, string(m.dbType), m.user, m.pass)
	}
	m.frame = f
	return nil
}

func (m *DbOpenMessage) Send() error {
	return m.frame.send()
}

// FetchResponse decodes the new session id and the cluster list, then
// marks the database open on the session.
func (m *DbOpenMessage) FetchResponse() (clusters []orient.OCluster, err error) {
	defer catch(&err)
	r, err := m.frame.response()
	if err != nil {
		return nil, err
	}

	sessionID := r.ReadInt()
	clusters = m.t.readClusters(r)

	_ = r.ReadBytes()  // cluster-config; null unless the server runs clustered
	_ = r.ReadString() // orientdb release

	m.t.setSessionID(sessionID)
	m.t.setDatabaseOpened(m.dbName, m.format)
	return clusters, nil
}

// readClusters decodes the count-driven cluster list shared by DbOpen
// and DbReload.  The per-entry shape depends on the negotiated version.
func (t *Transport) readClusters(r *rw.Reader) []orient.OCluster {
	numClusters := r.ReadShort()
	clusters := make([]orient.OCluster, 0, numClusters)
	for i := int16(0); i < numClusters; i++ {
		var cl orient.OCluster
		cl.Name = r.ReadString()
		cl.ID = r.ReadShort()
		if t.curProtoVers < protoVersionClusterV2 {
			cl.Type = r.ReadString()
			cl.Segment = r.ReadShort()
		}
		clusters = append(clusters, cl)
	}
	return clusters
}

//
// DB CLOSE
//
// Closes the database and the network connection.  The server closes
// the socket without sending a response, so nothing is decoded; the
// Transport is closed unconditionally instead.
//
// Request: empty
// Response: no response
//
type DbCloseMessage struct {
	t     *Transport
	frame *messageFrame
}

func NewDbCloseMessage(t *Transport) *DbCloseMessage {
	return &DbCloseMessage{t: t}
}

func (m *DbCloseMessage) Prepare() error {
	if err := m.t.needConnected(); err != nil {
		return err
	}
	m.frame = newRequest(m.t, requestDbClose)
	return nil
}

func (m *DbCloseMessage) Send() error {
	return m.frame.send()
}

// FetchResponse closes the Transport and returns the no-session
// sentinel; there is no frame to decode on the zero-response close path.
func (m *DbCloseMessage) FetchResponse() (int32, error) {
	return noSessionID, m.t.Close()
}

//
// DB EXISTS
//
// Asks if a database exists on the server.
//
// Request: (database-name:string)
//   (server-storage-type:string - since 1.5-snapshot)
// Response: (result:boolean)
//
type DbExistsMessage struct {
	t       *Transport
	frame   *messageFrame
	dbName  string
	storage orient.StorageType
	err     error
}

func NewDbExistsMessage(t *Transport) *DbExistsMessage {
	return &DbExistsMessage{t: t, storage: orient.Persistent}
}

func (m *DbExistsMessage) SetDbName(name string) *DbExistsMessage {
	m.dbName = name
	return m
}

func (m *DbExistsMessage) SetStorageType(storage orient.StorageType) *DbExistsMessage {
	if !storage.IsValid() {
		m.err = oerror.InvalidStorageType{TypeRequested: string(storage)}
	} else {
		m.storage = storage
	}
	return m
}

func (m *DbExistsMessage) Prepare() error {
	if m.err != nil {
		return m.err
	}
	if err := m.t.needConnected(); err != nil {
		return err
	}
	f := newRequest(m.t, requestDbExist)
	if m.t.curProtoVers >= protoVersionDbName {
		f.appendString(m.dbName)
	}
	if m.t.curProtoVers >= protoVersionStorageType {
		f.appendString(string(m.storage))
	}
	m.frame = f
	return nil
}

func (m *DbExistsMessage) Send() error {
	return m.frame.send()
}

func (m *DbExistsMessage) FetchResponse() (bool, error) {
	vals, err := m.frame.fetchResponse(fieldBool)
	if err != nil {
		return false, err
	}
	return vals[0].(bool), nil
}

//
// DB CREATE
//
// Creates a database on the server.
//
// Request: (database-name:string)(database-type:string)(storage-type:string)
// Response: empty
//
type DbCreateMessage struct {
	t       *Transport
	frame   *messageFrame
	dbName  string
	dbType  orient.DatabaseType
	storage orient.StorageType
	err     error
}

func NewDbCreateMessage(t *Transport) *DbCreateMessage {
	return &DbCreateMessage{t: t, dbType: orient.DocumentDB, storage: orient.Persistent}
}

func (m *DbCreateMessage) SetDbName(name string) *DbCreateMessage {
	m.dbName = name
	return m
}

func (m *DbCreateMessage) SetDbType(dbType orient.DatabaseType) *DbCreateMessage {
	if !dbType.IsValid() {
		m.err = oerror.InvalidDatabaseType{TypeRequested: string(dbType)}
	} else {
		m.dbType = dbType
	}
	return m
}

func (m *DbCreateMessage) SetStorageType(storage orient.StorageType) *DbCreateMessage {
	if !storage.IsValid() {
		m.err = oerror.InvalidStorageType{TypeRequested: string(storage)}
	} else {
		m.storage = storage
	}
	return m
}

func (m *DbCreateMessage) Prepare() error {
	if m.err != nil {
		return m.err
	}
	if err := m.t.needConnected(); err != nil {
		return err
	}
	m.frame = newRequest(m.t, requestDbCreate).
		appendStrings(m.dbName, string(m.dbType), string(m.storage))
	return nil
}

func (m *DbCreateMessage) Send() error {
	return m.frame.send()
}

func (m *DbCreateMessage) FetchResponse() error {
	_, err := m.frame.fetchResponse()
	if err != nil {
		return err
	}
	m.t.setDatabaseOpened(m.dbName, m.t.serialization)
	return nil
}

//
// DB DROP
//
// Removes a database from the server.  The server reports a storage
// exception if the database does not exist.
//
// Request: (database-name:string)
//   (server-storage-type:string - since 1.5-snapshot)
// Response: empty
//
type DbDropMessage struct {
	t       *Transport
	frame   *messageFrame
	dbName  string
	storage orient.StorageType
	err     error
}

func NewDbDropMessage(t *Transport) *DbDropMessage {
	return &DbDropMessage{t: t, storage: orient.Persistent}
}

func (m *DbDropMessage) SetDbName(name string) *DbDropMessage {
	m.dbName = name
	return m
}

func (m *DbDropMessage) SetStorageType(storage orient.StorageType) *DbDropMessage {
	if !storage.IsValid() {
		m.err = oerror.InvalidStorageType{TypeRequested: string(storage)}
	} else {
		m.storage = storage
	}
	return m
}

func (m *DbDropMessage) Prepare() error {
	if m.err != nil {
		return m.err
	}
	if err := m.t.needConnected(); err != nil {
		return err
	}
	f := newRequest(m.t, requestDbDrop).appendString(m.dbName)
	if m.t.curProtoVers >= protoVersionStorageType {
		f.appendString(string(m.storage))
	}
	m.frame = f
	return nil
}

func (m *DbDropMessage) Send() error {
	return m.frame.send()
}

func (m *DbDropMessage) FetchResponse() error {
	_, err := m.frame.fetchResponse()
	return err
}

//
// DB COUNT RECORDS
//
// Asks for the number of records in the open database.
//
// Request: empty
// Response: (count:long)
//
type DbCountRecordsMessage struct {
	t     *Transport
	frame *messageFrame
}

func NewDbCountRecordsMessage(t *Transport) *DbCountRecordsMessage {
	return &DbCountRecordsMessage{t: t}
}

func (m *DbCountRecordsMessage) Prepare() error {
	if err := m.t.needDBOpened(); err != nil {
		return err
	}
	m.frame = newRequest(m.t, requestDbCountRecords)
	return nil
}

func (m *DbCountRecordsMessage) Send() error {
	return m.frame.send()
}

func (m *DbCountRecordsMessage) FetchResponse() (int64, error) {
	vals, err := m.frame.fetchResponse(fieldLong)
	if err != nil {
		return -1, err
	}
	return vals[0].(int64), nil
}

//
// DB SIZE
//
// Asks for the size of the open database in bytes.
//
// Request: empty
// Response: (size:long)
//
type DbSizeMessage struct {
	t     *Transport
	frame *messageFrame
}

func NewDbSizeMessage(t *Transport) *DbSizeMessage {
	return &DbSizeMessage{t: t}
}

func (m *DbSizeMessage) Prepare() error {
	if err := m.t.needDBOpened(); err != nil {
		return err
	}
	m.frame = newRequest(m.t, requestDbSize)
	return nil
}

func (m *DbSizeMessage) Send() error {
	return m.frame.send()
}

func (m *DbSizeMessage) FetchResponse() (int64, error) {
	vals, err := m.frame.fetchResponse(fieldLong)
	if err != nil {
		return -1, err
	}
	return vals[0].(int64), nil
}

//
// DB RELOAD
//
// Reloads database information.
//
// Request: empty
// Response: (num-of-clusters:short)[(cluster-name:string)(cluster-id:short)]
//
type DbReloadMessage struct {
	t     *Transport
	frame *messageFrame
}

func NewDbReloadMessage(t *Transport) *DbReloadMessage {
	return &DbReloadMessage{t: t}
}

func (m *DbReloadMessage) Prepare() error {
	if err := m.t.needConnected(); err != nil {
		return err
	}
	m.frame = newRequest(m.t, requestDbReload)
	return nil
}

func (m *DbReloadMessage) Send() error {
	return m.frame.send()
}

func (m *DbReloadMessage) FetchResponse() (clusters []orient.OCluster, err error) {
	defer catch(&err)
	r, err := m.frame.response()
	if err != nil {
		return nil, err
	}
	return m.t.readClusters(r), nil
}
