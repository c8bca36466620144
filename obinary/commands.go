package obinary

import (
	"github.com/golang/glog"
	"github.com/orientsdk/orientgo"
)

var _ orient.DBConnection = (*Transport)(nil)

// The methods below are the operation boundary consumed by the root
// package: each runs one message through its prepare/send/fetch cycle.

// Connect authenticates against the server and returns the new session id.
func (t *Transport) Connect(user, pass, clientID string, format orient.SerializationType) (int32, error) {
	m := NewConnectMessage(t).SetUser(user).SetPass(pass).SetClientID(clientID)
	if format != "" {
		m.SetSerialization(format)
	}
	if err := m.Prepare(); err != nil {
		return noSessionID, err
	}
	if err := m.Send(); err != nil {
		return noSessionID, err
	}
	return m.FetchResponse()
}

// OpenDatabase opens a database session, transparently connecting first
// on a fresh connection, and returns the server's cluster descriptors.
func (t *Transport) OpenDatabase(name string, dbType orient.DatabaseType, user, pass, clientID string, format orient.SerializationType) ([]orient.OCluster, error) {
	m := NewDbOpenMessage(t).
		SetDbName(name).
		SetDbType(dbType).
		SetUser(user).
		SetPass(pass).
		SetClientID(clientID)
	if format != "" {
		m.SetSerialization(format)
	}
	if err := m.Prepare(); err != nil {
		return nil, err
	}
	if err := m.Send(); err != nil {
		return nil, err
	}
	return m.FetchResponse()
}

// CloseDatabase ends the database session.  The Transport is closed in
// every outcome, including a failed send, since the server gives no
// response to decode and the socket is gone either way.
func (t *Transport) CloseDatabase() error {
	m := NewDbCloseMessage(t)
	if err := m.Prepare(); err != nil {
		return err
	}
	if err := m.Send(); err != nil {
		if cerr := t.Close(); cerr != nil {
			glog.Warningf("closing transport after failed db-close send: %v", cerr)
		}
		return err
	}
	_, err := m.FetchResponse()
	return err
}

// DatabaseExists reports whether the named database exists.
func (t *Transport) DatabaseExists(name string, storage orient.StorageType) (bool, error) {
	m := NewDbExistsMessage(t).SetDbName(name)
	if storage != "" {
		m.SetStorageType(storage)
	}
	if err := m.Prepare(); err != nil {
		return false, err
	}
	if err := m.Send(); err != nil {
		return false, err
	}
	return m.FetchResponse()
}

// CreateDatabase creates a database on the server.
func (t *Transport) CreateDatabase(name string, dbType orient.DatabaseType, storage orient.StorageType) error {
	m := NewDbCreateMessage(t).SetDbName(name).SetDbType(dbType)
	if storage != "" {
		m.SetStorageType(storage)
	}
	if err := m.Prepare(); err != nil {
		return err
	}
	if err := m.Send(); err != nil {
		return err
	}
	return m.FetchResponse()
}

// DropDatabase removes a database from the server.
func (t *Transport) DropDatabase(name string, storage orient.StorageType) error {
	m := NewDbDropMessage(t).SetDbName(name)
	if storage != "" {
		m.SetStorageType(storage)
	}
	if err := m.Prepare(); err != nil {
		return err
	}
	if err := m.Send(); err != nil {
		return err
	}
	return m.FetchResponse()
}

// CountRecords returns the number of records in the open database.
func (t *Transport) CountRecords() (int64, error) {
	m := NewDbCountRecordsMessage(t)
	if err := m.Prepare(); err != nil {
		return -1, err
	}
	if err := m.Send(); err != nil {
		return -1, err
	}
	return m.FetchResponse()
}

// ReloadDatabase re-fetches the cluster descriptors of the open database.
func (t *Transport) ReloadDatabase() ([]orient.OCluster, error) {
	m := NewDbReloadMessage(t)
	if err := m.Prepare(); err != nil {
		return nil, err
	}
	if err := m.Send(); err != nil {
		return nil, err
	}
	return m.FetchResponse()
}

// DatabaseSize returns the size of the open database in bytes.
func (t *Transport) DatabaseSize() (int64, error) {
	m := NewDbSizeMessage(t)
	if err := m.Prepare(); err != nil {
		return -1, err
	}
	if err := m.Send(); err != nil {
		return -1, err
	}
	return m.FetchResponse()
}

// Shutdown asks the server process to shut down.
func (t *Transport) Shutdown(user, pass string) error {
	m := NewShutdownMessage(t).SetUser(user).SetPass(pass)
	if err := m.Prepare(); err != nil {
		return err
	}
	if err := m.Send(); err != nil {
		return err
	}
	return m.FetchResponse()
}
