package http

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Params holds the flat parameter set of one upstream call.
//
// Nil values, including typed nil pointers, slices and maps, are omitted.
// Pointers are dereferenced. Scalars are stringified, so explicit zero values
// (0, "", false) are still sent. Slices, arrays, maps and structs are sent as
// JSON text. json.RawMessage is sent verbatim.
type Params map[string]any

// Set stores value under key and returns p for chaining.
func (p Params) Set(key string, value any) Params {
	p[key] = value

	return p
}

// SetString stores value only when it is non-empty.
func (p Params) SetString(key, value string) Params {
	if value != "" {
		p[key] = value
	}

	return p
}

// Encode serializes p into url.Values.
func (p Params) Encode() (url.Values, error) {
	values := url.Values{}

	for key, value := range p {
		encoded, ok, err := encodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("encoding parameter %q: %w", key, err)
		}

		if ok {
			values.Set(key, encoded)
		}
	}

	return values, nil
}

// encodeValue returns the wire form of value and whether it should be sent.
func encodeValue(value any) (string, bool, error) {
	if value == nil {
		return "", false, nil
	}

	switch typed := value.(type) {
	case string:
		return typed, true, nil
	case bool:
		return strconv.FormatBool(typed), true, nil
	case int:
		return strconv.Itoa(typed), true, nil
	case int64:
		return strconv.FormatInt(typed, 10), true, nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true, nil
	case json.RawMessage:
		if typed == nil {
			return "", false, nil
		}

		return string(typed), true, nil
	case fmt.Stringer:
		if isNil(reflect.ValueOf(value)) {
			return "", false, nil
		}

		return typed.String(), true, nil
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "", false, nil
		}

		return encodeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "", false, nil
		}

		return encodeJSON(value)
	case reflect.Array, reflect.Struct:
		return encodeJSON(value)
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	default:
		return fmt.Sprint(value), true, nil
	}
}

func encodeJSON(value any) (string, bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", false, fmt.Errorf("marshaling JSON value: %w", err)
	}

	return string(data), true, nil
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
