package requisition

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

func EncodeDataTypes(items []DataType) (*datatypes.JSON, error) { return encodeCollection(items) }

func EncodeSlNoData(items []SlNoData) (*datatypes.JSON, error) { return encodeCollection(items) }

// DecodeDataTypes never returns nil; a missing column decodes to an empty slice.
func DecodeDataTypes(raw *datatypes.JSON) ([]DataType, error) { return decodeCollection[DataType](raw) }

// DecodeSlNoData never returns nil; a missing column decodes to an empty slice.
func DecodeSlNoData(raw *datatypes.JSON) ([]SlNoData, error) { return decodeCollection[SlNoData](raw) }

func encodeCollection[T any](items []T) (*datatypes.JSON, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	out := datatypes.JSON(b)
	return &out, nil
}

func decodeCollection[T any](raw *datatypes.JSON) ([]T, error) {
	out := []T{}
	if raw == nil {
		return out, nil
	}
	b := bytes.TrimSpace(*raw)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
