package orient

import "fmt"

// Client is a thin facade over one DBConnection.  It exists so user
// code dials by address and protocol name without importing the
// protocol package directly (the protocol registers itself via
// RegisterProto from its init).
type Client struct {
	conn DBConnection
}

// Dial opens a new connection to an OrientDB server using the binary
// protocol.  The protocol implementation package must be imported for
// its side effects:
//
//	import _ "github.com/orientsdk/orientgo/obinary"
func Dial(addr string) (*Client, error) {
	return DialProto(ProtoBinary, addr)
}

// DialProto opens a new connection using a named registered protocol.
func DialProto(proto, addr string) (*Client, error) {
	dial, ok := protos[proto]
	if !ok {
		return nil, fmt.Errorf("orient: protocol %q is not registered (missing import?)", proto)
	}
	conn, err := dial(addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// NewClient wraps an existing DBConnection.  Useful for tests that
// drive the client over an in-memory transport.
func NewClient(conn DBConnection) *Client {
	return &Client{conn: conn}
}

// Connect authenticates against the server itself (not a database) and
// returns the server-assigned session id.
func (c *Client) Connect(user, pass, clientID string, format SerializationType) (int32, error) {
	return c.conn.Connect(user, pass, clientID, format)
}

// OpenDatabase opens a database session and returns the cluster
// descriptors the server reported.  On a fresh connection it performs
// the Connect exchange transparently first.
func (c *Client) OpenDatabase(name string, dbType DatabaseType, user, pass, clientID string, format SerializationType) ([]OCluster, error) {
	return c.conn.OpenDatabase(name, dbType, user, pass, clientID, format)
}

// CloseDatabase closes the open database session.  The server closes
// the socket without a response, so the underlying connection is closed
// as well.
func (c *Client) CloseDatabase() error {
	return c.conn.CloseDatabase()
}

// DatabaseExists reports whether the named database exists on the server.
func (c *Client) DatabaseExists(name string, storage StorageType) (bool, error) {
	return c.conn.DatabaseExists(name, storage)
}

// CreateDatabase creates a database on the server.
func (c *Client) CreateDatabase(name string, dbType DatabaseType, storage StorageType) error {
	return c.conn.CreateDatabase(name, dbType, storage)
}

// DropDatabase removes a database from the server.
func (c *Client) DropDatabase(name string, storage StorageType) error {
	return c.conn.DropDatabase(name, storage)
}

// CountRecords returns the number of records in the open database.
func (c *Client) CountRecords() (int64, error) {
	return c.conn.CountRecords()
}

// ReloadDatabase re-fetches the cluster descriptors of the open database.
func (c *Client) ReloadDatabase() ([]OCluster, error) {
	return c.conn.ReloadDatabase()
}

// DatabaseSize returns the size of the open database in bytes.
func (c *Client) DatabaseSize() (int64, error) {
	return c.conn.DatabaseSize()
}

// Shutdown asks the server process to shut down.  Requires server-level
// credentials with shutdown permission.
func (c *Client) Shutdown(user, pass string) error {
	return c.conn.Shutdown(user, pass)
}

// Close releases the connection unconditionally.
func (c *Client) Close() error {
	return c.conn.Close()
}

// SessionID returns the server-assigned session id, or -1 before
// authentication.
func (c *Client) SessionID() int32 {
	return c.conn.SessionID()
}
