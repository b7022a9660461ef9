// Package form encodes request parameter structs into the
// application/x-www-form-urlencoded representation the payment API
// expects: nested fields use bracket paths and repeated fields are
// indexed, e.g. line_items[0][price_data][unit_amount]=2000.
package form

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// Tag is the struct tag consulted for wire field names.
const Tag = "form"

// Values encodes v, which must be a struct or a pointer to one, into
// url.Values. Fields tagged `form:"-"` or left untagged are skipped.
// Nil pointers, nil slices and nil maps are omitted entirely rather
// than encoded as empty markers.
func Values(v any) (url.Values, error) {
	if v == nil {
		return url.Values{}, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return url.Values{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("form: cannot encode %T, expected a struct", v)
	}

	values := url.Values{}
	if err := encodeStruct(values, "", rv); err != nil {
		return nil, err
	}
	return values, nil
}

func encodeStruct(values url.Values, scope string, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name, ok := field.Tag.Lookup(Tag)
		if !ok || name == "-" {
			continue
		}
		if err := encodeValue(values, keyFor(scope, name), rv.Field(i)); err != nil {
			return fmt.Errorf("form: field %s: %w", field.Name, err)
		}
	}
	return nil
}

func encodeValue(values url.Values, key string, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return encodeValue(values, key, rv.Elem())
	case reflect.String:
		values.Set(key, rv.String())
	case reflect.Bool:
		values.Set(key, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		values.Set(key, strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		values.Set(key, strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		values.Set(key, strconv.FormatFloat(rv.Float(), 'f', -1, 64))
	case reflect.Struct:
		return encodeStruct(values, key, rv)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			indexed := fmt.Sprintf("%s[%d]", key, i)
			if err := encodeValue(values, indexed, rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("unsupported map key type %s", rv.Type().Key())
		}
		for _, mk := range rv.MapKeys() {
			if err := encodeValue(values, keyFor(key, mk.String()), rv.MapIndex(mk)); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported kind %s", rv.Kind())
	}
	return nil
}

func keyFor(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "[" + name + "]"
}
