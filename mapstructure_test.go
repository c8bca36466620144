package orient

import (
	"encoding/base64"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orientsdk/orientgo/oschema"
)

func TestUnmarshalRecord(t *testing.T) {
	type Car struct {
		Name      string
		Year      int
		CreatedAt time.Time `mapstructure:"created_at"`
		Plate     []byte
		Photo     []byte
	}

	photo := []byte{0xde, 0xad, 0xbe, 0xef}
	rec := oschema.NewRecordFromMap(map[string]interface{}{
		"@car":       map[string]interface{}{},
		"rid":        "11:0",
		"version":    2,
		"name":       "Audi",
		"year":       2019,
		"created_at": "2019-06-01T12:30:00.5Z",
		"plate":      "B-1234",
		"photo":      oschema.NewOBinaryObject(base64.StdEncoding.EncodeToString(photo)),
	})

	var car Car
	assert.NoError(t, UnmarshalRecord(rec, &car))
	assert.Equal(t, "Audi", car.Name)
	assert.Equal(t, 2019, car.Year)
	assert.Equal(t, time.Date(2019, 6, 1, 12, 30, 0, 500000000, time.UTC), car.CreatedAt)
	assert.Equal(t, []byte("B-1234"), car.Plate)
	assert.Equal(t, photo, car.Photo)
}

func TestUnmarshalRecordNestedRecord(t *testing.T) {
	type Owner struct {
		Owner map[string]interface{}
	}

	nested := oschema.NewEmptyRecord().SetField("name", "Alice")
	rec := oschema.NewEmptyRecord().SetField("owner", nested)

	var out Owner
	assert.NoError(t, UnmarshalRecord(rec, &out))
	assert.Equal(t, map[string]interface{}{"name": "Alice"}, out.Owner)
}

func TestRegisterMapDecoderHook(t *testing.T) {
	type Doc struct {
		ID oschema.RID
	}

	prev := mapDecoderHooks
	defer func() { mapDecoderHooks = prev }()

	ridType := reflect.TypeOf(oschema.RID{})
	RegisterMapDecoderHook(func(f, to reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || to != ridType {
			return data, nil
		}
		return oschema.ParseRID(data.(string))
	})

	var doc Doc
	rec := oschema.NewEmptyRecord().SetField("id", "#7:3")
	assert.NoError(t, UnmarshalRecord(rec, &doc))
	assert.Equal(t, oschema.NewRID(7, 3), doc.ID)
}
