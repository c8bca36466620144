package oschema_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/orientsdk/orientgo/oschema"
)

func TestRecordFromMapScansReservedKeys(t *testing.T) {
	rec := oschema.NewRecordFromMap(map[string]interface{}{
		"@my_v_class": map[string]interface{}{
			"holiday": "sea",
		},
		"rid":     "11:0",
		"version": 2,
	})

	if rec.Classname != "my_v_class" {
		t.Fatal("wrong class name: ", rec.Classname)
	}
	if rec.RID.String() != "#11:0" {
		t.Fatal("wrong RID: ", rec.RID)
	}
	if rec.Version != 2 {
		t.Fatal("wrong version: ", rec.Version)
	}
	if v, ok := rec.GetField("holiday"); !ok || v != "sea" {
		t.Fatal("holiday attribute missing or wrong: ", v)
	}
	if names := rec.FieldNames(); len(names) != 1 || names[0] != "holiday" {
		t.Fatal("wrong attribute names: ", names)
	}
}

func TestRecordFromMapWithoutClass(t *testing.T) {
	rec := oschema.NewRecordFromMap(map[string]interface{}{
		"name": "Audi",
		"year": 2019,
	})

	if rec.Classname != "" {
		t.Fatal("class name should be empty: ", rec.Classname)
	}
	if rec.RID != oschema.NewInvalidRID() {
		t.Fatal("RID should be invalid for an unsaved record: ", rec.RID)
	}
	if rec.Version != -1 {
		t.Fatal("version should be -1 for an unsaved record: ", rec.Version)
	}
	if v, _ := rec.GetField("year"); v != 2019 {
		t.Fatal("year attribute wrong: ", v)
	}
}

func TestRecordFromMapTypedRID(t *testing.T) {
	rec := oschema.NewRecordFromMap(map[string]interface{}{
		"rid": oschema.NewRID(3, 7),
	})
	if rec.RID.String() != "#3:7" {
		t.Fatal("wrong RID: ", rec.RID)
	}
}

func TestRecordFromMapBadRIDKeepsInvalid(t *testing.T) {
	rec := oschema.NewRecordFromMap(map[string]interface{}{
		"rid": "not-a-rid",
	})
	if rec.RID != oschema.NewInvalidRID() {
		t.Fatal("unparsable rid must leave the record unidentified: ", rec.RID)
	}
}

func TestRecordSetFieldPreservesOrder(t *testing.T) {
	rec := oschema.NewEmptyRecord().
		SetField("b", 1).
		SetField("a", 2).
		SetField("b", 3) // reassignment must not re-rank the field

	names := rec.FieldNames()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatal("wrong field order: ", names)
	}
	if v, _ := rec.GetField("b"); v != 3 {
		t.Fatal("reassigned field has wrong value: ", v)
	}
}

func TestRecordToMapExcludesReserved(t *testing.T) {
	rec := oschema.NewRecordFromMap(map[string]interface{}{
		"@v":      map[string]interface{}{"name": "x"},
		"rid":     "1:2",
		"version": 5,
	})
	m := rec.ToMap()
	if len(m) != 1 || m["name"] != "x" {
		t.Fatal("wrong map conversion: ", m)
	}
}

func TestBinaryObject(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xfe}
	b := oschema.NewOBinaryObject(base64.StdEncoding.EncodeToString(payload))

	if b.Raw() != "_AQL+_" {
		t.Fatal("wrong raw form: ", b.Raw())
	}
	for i := 0; i < 2; i++ { // decoding must be repeatable
		got, err := b.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatal("wrong decoded payload: ", got)
		}
	}
}

func TestBinaryObjectBadEncoding(t *testing.T) {
	b := oschema.NewOBinaryObject("%%%")
	if _, err := b.Bytes(); err == nil {
		t.Fatal("expected decode error")
	}
}
