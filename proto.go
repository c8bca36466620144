package orient

// Default protocols
const (
	ProtoBinary = "binary"
)

// DatabaseType defines database access type (Document or Graph)
type DatabaseType string

// List of database access types
const (
	DocumentDB DatabaseType = "document"
	GraphDB    DatabaseType = "graph"
)

// IsValid reports whether the value is in the closed set of database
// types the server recognizes.
func (t DatabaseType) IsValid() bool {
	return t == DocumentDB || t == GraphDB
}

// StorageType defines supported database storage types
type StorageType string

const (
	// Persistent type represents an on-disk database
	Persistent StorageType = "plocal"
	// Volatile type represents an in-memory database
	Volatile StorageType = "memory"
)

// IsValid reports whether the value is in the closed set of storage
// types the server recognizes.
func (t StorageType) IsValid() bool {
	return t == Persistent || t == Volatile
}

// SerializationType defines the record serialization formats the server
// can be asked to use on a session.
type SerializationType string

const (
	// SerializeDocument2CSV is the CSV record format; the only format
	// this client implements.
	SerializeDocument2CSV SerializationType = "ORecordDocument2csv"
	// SerializeBinary is the binary record format.  Recognized but not
	// implemented by this client.
	SerializeBinary SerializationType = "ORecordSerializerBinary"
)

// IsValid reports whether the value is in the closed set of
// serialization formats the server recognizes.
func (t SerializationType) IsValid() bool {
	return t == SerializeDocument2CSV || t == SerializeBinary
}

// OCluster describes one server-side storage partition, as returned in
// lists by OpenDatabase and ReloadDatabase.  Type and Segment are only
// populated on protocol versions below 24.
type OCluster struct {
	Name    string
	ID      int16
	Type    string
	Segment int16
}

var (
	protos = make(map[string]func(addr string) (DBConnection, error))
)

// RegisterProto registers a new protocol for the Dial command
func RegisterProto(name string, dial func(addr string) (DBConnection, error)) {
	protos[name] = dial
}

// DBConnection is a minimal interface for OrientDB server API implementation.
// One DBConnection owns one socket and its session state; it supports a
// single synchronous request/response exchange at a time.
type DBConnection interface {
	Connect(user, pass, clientID string, format SerializationType) (int32, error)
	OpenDatabase(name string, dbType DatabaseType, user, pass, clientID string, format SerializationType) ([]OCluster, error)
	CloseDatabase() error
	DatabaseExists(name string, storage StorageType) (bool, error)
	CreateDatabase(name string, dbType DatabaseType, storage StorageType) error
	DropDatabase(name string, storage StorageType) error
	CountRecords() (int64, error)
	ReloadDatabase() ([]OCluster, error)
	DatabaseSize() (int64, error)
	Shutdown(user, pass string) error
	Close() error

	SessionID() int32
	ProtocolVersion() int16
	DatabaseOpened() string
}
