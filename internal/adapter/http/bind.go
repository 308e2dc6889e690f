package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/labstack/echo/v4"
)

// bodyTypeError is a JSON value of the wrong type for a known field.
type bodyTypeError struct{ FieldError }

func (e *bodyTypeError) Error() string { return e.Field + " " + e.Message }

// bindJSON binds the request into dst. A value of the wrong JSON type comes
// back as *bodyTypeError naming the offending field; a body that does not
// parse comes back unchanged.
func bindJSON(c echo.Context, dst any) error {
	req := c.Request()
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	err = c.Bind(dst)
	if err == nil {
		return nil
	}
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		err = he.Internal
	}
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) {
		return err
	}
	field := "body"
	if te.Field != "" {
		field = typeErrorField(dst, body, te.Field)
	}
	return &bodyTypeError{FieldError{
		Field:   field,
		Message: "must be " + jsonKind(te.Type) + ", got " + te.Value,
	}}
}

func writeBindError(c echo.Context, err error) error {
	var te *bodyTypeError
	if errors.As(err, &te) {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{te.FieldError},
		})
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

// typeErrorField turns the decoder's dotted path ("dataTypes.slNo") into an
// indexed one ("dataTypes[0].slNo") by re-decoding the collection element by
// element. When the element cannot be found it falls back to the top-level key.
func typeErrorField(dst any, body []byte, path string) string {
	segs := strings.Split(path, ".")
	if len(segs) < 2 {
		return path
	}
	elem, ok := sliceElem(reflect.TypeOf(dst), segs[0])
	if !ok {
		return segs[0]
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return segs[0]
	}
	var items []json.RawMessage
	if err := json.Unmarshal(top[segs[0]], &items); err != nil {
		return segs[0]
	}
	for i, raw := range items {
		var te *json.UnmarshalTypeError
		if errors.As(json.Unmarshal(raw, reflect.New(elem).Interface()), &te) {
			return fmt.Sprintf("%s[%d].%s", segs[0], i, strings.Join(segs[1:], "."))
		}
	}
	return segs[0]
}

// sliceElem finds the element type of the slice field tagged name.
func sliceElem(t reflect.Type, name string) (reflect.Type, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == name && f.Type.Kind() == reflect.Slice {
			return f.Type.Elem(), true
		}
	}
	return nil, false
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "a list"
	case reflect.Struct, reflect.Map:
		return "an object"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	}
	return "a " + t.String()
}
