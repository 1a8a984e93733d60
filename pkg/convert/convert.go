package convert

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/aws-config-snapshot/pkg/reflectutil"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotMap = fmt.Errorf("input data is not a map")

// ToDocument turns an arbitrary value (typically an SDK output struct) into
// the generic map form it would have after a JSON round trip. Numbers come
// back as float64. Members the value does not carry are left out: nil
// pointers, slices and maps, and unset enum strings.
func ToDocument(v any) (map[string]any, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: input is nil", errNotMap)
	}
	raw, err := jsonAPI.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", v, err)
	}
	var out map[string]any
	if err := jsonAPI.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %T decodes to %s", errNotMap, v, truncate(string(raw), 40))
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %T encodes to null", errNotMap, v)
	}
	dropUnsetEnums(reflect.ValueOf(v), out)
	pruneNulls(out)
	return out, nil
}

// dropUnsetEnums walks val alongside its decoded form and deletes struct
// members holding the zero value of an enum type. SDK enums are string types
// with a Values method.
func dropUnsetEnums(val reflect.Value, decoded any) {
	val = reflectutil.DerefValue(val)
	switch val.Kind() {
	case reflect.Struct:
		m, ok := decoded.(map[string]any)
		if !ok {
			return
		}
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fv := val.Field(i)
			if _, tagged := field.Tag.Lookup("json"); field.Anonymous && !tagged {
				dropUnsetEnums(fv, m)
				continue
			}
			key := jsonName(field)
			if key == "" {
				continue
			}
			if isUnsetEnum(fv) {
				delete(m, key)
				continue
			}
			dropUnsetEnums(fv, m[key])
		}
	case reflect.Slice, reflect.Array:
		items, ok := decoded.([]any)
		if !ok {
			return
		}
		for i := 0; i < val.Len() && i < len(items); i++ {
			dropUnsetEnums(val.Index(i), items[i])
		}
	case reflect.Map:
		m, ok := decoded.(map[string]any)
		if !ok || val.Type().Key().Kind() != reflect.String {
			return
		}
		iter := val.MapRange()
		for iter.Next() {
			dropUnsetEnums(iter.Value(), m[iter.Key().String()])
		}
	}
}

func isUnsetEnum(v reflect.Value) bool {
	if v.Kind() != reflect.String || v.String() != "" {
		return false
	}
	_, ok := v.Type().MethodByName("Values")
	return ok
}

func jsonName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// pruneNulls removes null members from every object in v. Null list
// elements keep their position.
func pruneNulls(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if child == nil {
				delete(t, k)
				continue
			}
			pruneNulls(child)
		}
	case []any:
		for _, child := range t {
			pruneNulls(child)
		}
	}
}

// Normalize rewrites v into values a JSON encoder always accepts: string-keyed
// maps, slices, booleans, strings and finite numbers. Anything else falls back
// to its fmt string form.
func Normalize(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool:
		return t
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Sprint(t)
		}
		return t
	}

	val := reflectutil.DerefValue(reflect.ValueOf(v))
	switch val.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Ptr, reflect.Interface:
		return nil
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Sprint(v)
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			return nil
		}
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprint(v)
		}
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = Normalize(val.Index(i).Interface())
		}
		return out
	case reflect.String:
		return val.String()
	case reflect.Bool:
		return val.Bool()
	}

	if reflectutil.IsNumber(val) {
		f, _ := reflectutil.ToFloat64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprint(f)
		}
		return val.Interface()
	}
	return fmt.Sprint(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
