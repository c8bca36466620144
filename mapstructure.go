package orient

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/orientsdk/orientgo/oschema"
)

// TagName is a name for a struct tag used for types conversion using reflect
var TagName = "mapstructure"

var mapDecoderHooks = []mapstructure.DecodeHookFunc{
	stringToTimeHookFunc,
	stringToByteSliceHookFunc,
	binaryObjectToByteSliceHookFunc,
	recordToMapHookFunc,
}

// RegisterMapDecoderHook allows to register an additional hook for the map decoder
func RegisterMapDecoderHook(hook mapstructure.DecodeHookFunc) {
	mapDecoderHooks = append(mapDecoderHooks, hook)
}

// NewMapDecoder returns a decoder configured for decoding data into result with all registered hooks.
func NewMapDecoder(result interface{}) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(mapDecoderHooks...),
		Metadata:   nil,
		Result:     result,
		TagName:    TagName,
	})
}

// UnmarshalRecord decodes the attributes of a reconstructed record into
// a user struct (or map) using the registered decoder hooks.
func UnmarshalRecord(rec *oschema.OrientRecord, result interface{}) error {
	dec, err := NewMapDecoder(result)
	if err != nil {
		return err
	}
	return dec.Decode(rec.ToMap())
}

var reflTimeType = reflect.TypeOf((*time.Time)(nil)).Elem()

// stringToTimeHookFunc converts strings to time.Time using RFC3339Nano format.
func stringToTimeHookFunc(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflTimeType {
		return data, nil
	}
	return time.Parse(time.RFC3339Nano, data.(string))
}

var reflByteSliceType = reflect.TypeOf(([]byte)(nil))

// stringToByteSliceHookFunc converts strings to []byte.
func stringToByteSliceHookFunc(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != reflByteSliceType {
		return data, nil
	}
	return []byte(data.(string)), nil
}

var reflBinaryObjectType = reflect.TypeOf((*oschema.OBinaryObject)(nil))

// binaryObjectToByteSliceHookFunc decodes embedded binary fields into []byte.
func binaryObjectToByteSliceHookFunc(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f != reflBinaryObjectType || t != reflByteSliceType {
		return data, nil
	}
	return data.(*oschema.OBinaryObject).Bytes()
}

var reflRecordType = reflect.TypeOf((*oschema.OrientRecord)(nil))

func recordToMapHookFunc(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f != reflRecordType {
		return data, nil
	}
	return data.(*oschema.OrientRecord).ToMap(), nil
}
