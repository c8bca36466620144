package oschema

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ClusterIDInvalid is the default ClusterID that maps to the "invalid" value on the OrientDB server
	ClusterIDInvalid = -1
	// ClusterPosInvalid is the default ClusterPos that maps to the "invalid" value on the OrientDB server
	ClusterPosInvalid = -1
)

// RID encapsulates the two aspects of an OrientDB RecordID -
// ClusterID:ClusterPos.  It is a pure identifier: it never owns the
// record it points to.
type RID struct {
	ClusterID  int16
	ClusterPos int64
}

// NewRID returns a RID for the given cluster id and position.
func NewRID(id int16, pos int64) RID {
	return RID{ClusterID: id, ClusterPos: pos}
}

//
// NewInvalidRID returns a RID with the default "invalid" settings.
// Invalid settings indicate that the record has not yet been saved
// to the DB (which assigns it a valid RID) or that it is not a true
// record with a Class (e.g., it is the result of a Property query).
//
func NewInvalidRID() RID {
	return RID{ClusterID: ClusterIDInvalid, ClusterPos: ClusterPosInvalid}
}

// String renders the canonical hash form "#<clusterId>:<clusterPos>".
func (r RID) String() string {
	return fmt.Sprintf("#%d:%d", r.ClusterID, r.ClusterPos)
}

// ErrInvalidRID is returned when a string does not match the
// two-integer colon form of a RecordID.
type ErrInvalidRID struct {
	Value string
}

func (e ErrInvalidRID) Error() string {
	return "invalid RID: " + e.Value
}

//
// ParseRID converts a string of form #N:M or N:M to a RID struct.
// Leading and trailing whitespace is tolerated; anything else that is
// not exactly two colon-separated integers fails with ErrInvalidRID.
//
func ParseRID(s string) (RID, error) {
	in := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	toks := strings.Split(s, ":")
	if len(toks) != 2 {
		return NewInvalidRID(), ErrInvalidRID{Value: in}
	}
	id, err := strconv.ParseInt(toks[0], 10, 16)
	if err != nil {
		return NewInvalidRID(), ErrInvalidRID{Value: in}
	}
	pos, err := strconv.ParseInt(toks[1], 10, 64)
	if err != nil {
		return NewInvalidRID(), ErrInvalidRID{Value: in}
	}
	return RID{ClusterID: int16(id), ClusterPos: pos}, nil
}

// MustParseRID is like ParseRID but panics on malformed input.
// Meant for RID literals in code, not for data from the wire.
func MustParseRID(s string) RID {
	rid, err := ParseRID(s)
	if err != nil {
		panic(err)
	}
	return rid
}
