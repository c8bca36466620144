// Dynamic record model for schemaless OrientDB records.  The attribute
// set of a server record is unknown until decode time, so records are
// reconstructed from a decoded key -> value mapping rather than from a
// fixed struct shape.
package oschema

import (
	"fmt"
	"sort"

	"github.com/golang/glog"
)

// ClassMarker is the sentinel prefixed to a key whose value holds the
// class-qualified portion of a decoded record.
const ClassMarker = '@'

// OrientRecord is an attribute map reconstructed from a decoded server
// record, plus the three reserved fields every record carries: the
// record identifier, the server-assigned version counter and an
// optional class name.
type OrientRecord struct {
	RID        RID
	Version    int32
	Classname  string
	entryOrder []string // field names in the order they were assigned
	fields     map[string]interface{}
}

// NewEmptyRecord should be called to create new OrientRecord objects,
// since some internal data structures need to be initialized before
// the record is ready to use.
func NewEmptyRecord() *OrientRecord {
	return &OrientRecord{
		RID:     NewInvalidRID(),
		Version: -1,
		fields:  make(map[string]interface{}),
	}
}

//
// NewRecordFromMap builds an OrientRecord by scanning a decoded
// key -> value mapping.  Keys literally named "rid" and "version"
// populate the reserved fields; a key whose first character is the
// class marker '@' sets the class name, and its value is expected to
// be a nested mapping that is scanned in turn.  All other keys become
// ordinary attributes.  Map iteration order is not stable in Go, so
// keys are scanned in sorted order to keep the entry order deterministic.
//
func NewRecordFromMap(content map[string]interface{}) *OrientRecord {
	rec := NewEmptyRecord()
	rec.scanKeys(content)
	return rec
}

func (rec *OrientRecord) scanKeys(content map[string]interface{}) {
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		val := content[key]
		switch {
		case key == "rid": // Ex: select @rid, field from v_class
			switch v := val.(type) {
			case RID:
				rec.RID = v
			case string:
				rid, err := ParseRID(v)
				if err != nil {
					glog.Warningf("record rid field does not parse: %v", err)
					continue
				}
				rec.RID = rid
			default:
				glog.Warningf("record rid field has unexpected type %T", val)
			}
		case key == "version": // Ex: select @rid, @version from v_class
			switch v := val.(type) {
			case int:
				rec.Version = int32(v)
			case int32:
				rec.Version = v
			case int64:
				rec.Version = int32(v)
			default:
				glog.Warningf("record version field has unexpected type %T", val)
			}
		case len(key) > 0 && key[0] == ClassMarker:
			rec.Classname = key[1:]
			// one level of class qualification is the norm, but nested
			// class markers must not blow the scan up
			if nested, ok := val.(map[string]interface{}); ok {
				rec.scanKeys(nested)
			} else {
				glog.Warningf("class-marker key %q does not hold a nested mapping (%T)", key, val)
			}
		default:
			rec.SetField(key, val)
		}
	}
}

// SetField assigns an ordinary attribute, preserving first-assignment order.
func (rec *OrientRecord) SetField(name string, val interface{}) *OrientRecord {
	if _, present := rec.fields[name]; !present {
		rec.entryOrder = append(rec.entryOrder, name)
	}
	rec.fields[name] = val
	return rec
}

// GetField looks up an ordinary attribute by name.
func (rec *OrientRecord) GetField(name string) (interface{}, bool) {
	v, ok := rec.fields[name]
	return v, ok
}

// FieldNames returns the attribute names in assignment order.
func (rec *OrientRecord) FieldNames() []string {
	names := make([]string, len(rec.entryOrder))
	copy(names, rec.entryOrder)
	return names
}

// ToMap converts the record attributes into a map.  The reserved rid,
// version and class fields are not included.
func (rec *OrientRecord) ToMap() map[string]interface{} {
	m := make(map[string]interface{}, len(rec.fields))
	for k, v := range rec.fields {
		m[k] = v
	}
	return m
}

func (rec *OrientRecord) String() string {
	return fmt.Sprintf("OrientRecord[Classname: %s; RID: %s; Version: %d; fields: %v]",
		rec.Classname, rec.RID, rec.Version, rec.entryOrder)
}
