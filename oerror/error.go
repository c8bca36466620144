//
// Error types and error functions for the orientgo library
//
package oerror

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrClosedConnection is returned on any attempt to use a Transport
// after it has been closed.
var ErrClosedConnection = errors.New("closed connection")

// ------

//
// SessionNotInitialized is an Error that indicates that no session was
// started before trying to issue a command to the OrientDB server or
// one of its databases.
//
type SessionNotInitialized struct{}

func (e SessionNotInitialized) Error() string {
	return "Session not initialized. Call Connect or OpenDatabase first."
}

// ------

//
// DatabaseNotOpened is an Error that indicates that an operation
// requiring an open database was issued before OpenDatabase was called.
//
type DatabaseNotOpened struct{}

func (e DatabaseNotOpened) Error() string {
	return "Database not opened. Call OpenDatabase first."
}

// ------

//
// InvalidDatabaseType is an Error that indicates that the db type value
// is not one that the OrientDB server will recognize.  For OrientDB 2.x,
// the valid types are "document" or "graph".  Constants for these values
// are provided in the root orientgo package.
//
type InvalidDatabaseType struct {
	TypeRequested string
}

func (e InvalidDatabaseType) Error() string {
	return "Database Type is not valid: " + e.TypeRequested
}

// ------

//
// InvalidStorageType is an Error that indicates that the storage type
// value is not one that the OrientDB server will recognize.  The valid
// types are "plocal" or "memory".
//
type InvalidStorageType struct {
	TypeRequested string
}

func (e InvalidStorageType) Error() string {
	return "Storage Type is not valid: " + e.TypeRequested
}

// ------

//
// InvalidSerializationType is an Error that indicates that the requested
// record serialization format is not in the set the server supports.
//
type InvalidSerializationType struct {
	TypeRequested string
}

func (e InvalidSerializationType) Error() string {
	return "Serialization Type is not valid: " + e.TypeRequested
}

// ------

//
// SerializationNotSupported is an Error that indicates that the requested
// record serialization format is recognized but not implemented by this
// client (currently the binary record format).
//
type SerializationNotSupported struct {
	TypeRequested string
}

func (e SerializationNotSupported) Error() string {
	return "Serialization Type is not supported by this client: " + e.TypeRequested
}

// ------

//
// UnsupportedVersion is an Error that indicates the server's binary
// protocol version is outside the range this client can talk to.
//
type UnsupportedVersion struct {
	ServerVersion int16
	MinSupported  int16
	MaxSupported  int16
}

func (e UnsupportedVersion) Error() string {
	return fmt.Sprintf("server binary protocol version `%d` is outside client supported version range: %d-%d",
		e.ServerVersion, e.MinSupported, e.MaxSupported)
}

// ------

// Exception is an interface for Java-based Exceptions.
type Exception interface {
	error
	// Returns Java exception class
	ExcClass() string
	// Returns exception message
	ExcMessage() string
}

// UnknownException is an arbitrary exception from the Java side.
// If the exception class is not recognized by this driver, it will be
// reported as an UnknownException.
type UnknownException struct {
	Class   string
	Message string
}

// ExcClass returns the Java exception class
func (e UnknownException) ExcClass() string {
	return e.Class
}

// ExcMessage returns the exception message
func (e UnknownException) ExcMessage() string {
	return e.Message
}

func (e UnknownException) Error() string {
	return e.Class + ": " + e.Message
}

//
// OServerException encapsulates Java-based Exceptions from the OrientDB
// server. OrientDB can return multiple stacked exceptions for a single
// request, so they are all encapsulated in one OServerException object,
// in the order the server reported them.  Serialized holds the opaque
// Java-serialized form of the exception, when the server sent one.
//
type OServerException struct {
	Exceptions []Exception
	Serialized []byte
}

func (e OServerException) Error() string {
	var buf bytes.Buffer
	buf.WriteString("OrientDB Server Exception: ")
	for _, ex := range e.Exceptions {
		buf.WriteString("\n  ")
		buf.WriteString(ex.ExcClass())
		buf.WriteString(": ")
		buf.WriteString(ex.ExcMessage())
	}
	return buf.String()
}

// ExcClass returns the Java exception class of the first stacked exception.
func (e OServerException) ExcClass() string {
	if len(e.Exceptions) == 0 {
		return ""
	}
	return e.Exceptions[0].ExcClass()
}

// ExcMessage returns the message of the first stacked exception.
func (e OServerException) ExcMessage() string {
	if len(e.Exceptions) == 0 {
		return ""
	}
	return e.Exceptions[0].ExcMessage()
}

// ------

//
// ErrBrokenProtocol indicates that the byte stream got out of sync with
// the declared response shape and the connection can no longer be used.
//
type ErrBrokenProtocol struct {
	Reason error
}

func (e ErrBrokenProtocol) Error() string {
	return "protocol is broken: " + e.Reason.Error()
}

// ------

type IncorrectNetworkRead struct {
	Expected int
	Actual   int
}

func (e IncorrectNetworkRead) Error() string {
	return fmt.Sprintf("Incorrect number of bytes read from connection. Expected: %d; Actual: %d",
		e.Expected, e.Actual)
}

// ------

type IncorrectNetworkWrite struct {
	Expected int
	Actual   int
}

func (e IncorrectNetworkWrite) Error() string {
	return fmt.Sprintf("Incorrect number of bytes written to connection. Expected: %d; Actual: %d",
		e.Expected, e.Actual)
}
