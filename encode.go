package gencode

import (
	"encoding/base64"
	"reflect"
	"strconv"
	"time"
)

var (
	timeType  = reflect.TypeFor[time.Time]()
	bytesType = reflect.TypeFor[[]byte]()
)

// Encode converts v into a document tree using the registry's labels.
//
// Documents are built from map[string]any, []any, string, bool, int64,
// uint64, float64 and nil. The type of v, after pointer dereference, must be
// registered; otherwise Encode fails with ErrNoMapping, including for an
// untyped nil. A nil pointer to a registered type encodes as a nil document.
func (r *Registry) Encode(v any) (any, error) {
	rt := reflect.TypeOf(v)
	if rt == nil {
		return nil, newEncodeError(ErrNoMapping, "$", newMappingError(ErrNoMapping, typeString(rt), ""))
	}
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if !r.Has(rt) {
		return nil, newEncodeError(ErrNoMapping, "$", newMappingError(ErrNoMapping, rt.String(), ""))
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	return r.encodeValue(rv, "$")
}

// encodeValue converts a single value at path.
func (r *Registry) encodeValue(rv reflect.Value, path string) (any, error) {
	if e, ok := r.lookup(rv.Type()); ok {
		switch e.kind {
		case KindRecord:
			return r.encodeRecord(e, rv, path)
		case KindChoice:
			return r.encodeChoice(e, rv, path)
		case KindEnum:
			return encodeEnum(e, rv, path)
		}
	}

	switch rv.Type() {
	case timeType:
		return rv.Interface().(time.Time).Format(time.RFC3339Nano), nil
	case bytesType:
		if rv.IsNil() {
			return nil, nil
		}
		return base64.StdEncoding.EncodeToString(rv.Bytes()), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return r.encodeValue(rv.Elem(), path)
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		return r.encodeSequence(rv, path)
	case reflect.Array:
		return r.encodeSequence(rv, path)
	case reflect.Map:
		return r.encodeMap(rv, path)
	case reflect.Struct:
		return nil, newEncodeError(ErrNoMapping, path, newMappingError(ErrNoMapping, rv.Type().String(), ""))
	default:
		return nil, newEncodeError(ErrUnsupportedType, path, newMappingError(ErrUnsupportedType, rv.Type().String(), ""))
	}
}

// encodeRecord builds a map keyed by external labels. Nil pointer fields
// are left out.
func (r *Registry) encodeRecord(e *Entry, rv reflect.Value, path string) (any, error) {
	doc := make(map[string]any, len(e.fields))
	for _, f := range e.fields {
		fv := rv.FieldByIndex(f.index)
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			continue
		}
		val, err := r.encodeValue(fv, path+"."+f.external)
		if err != nil {
			return nil, err
		}
		doc[f.external] = val
	}
	return doc, nil
}

// encodeChoice builds a single-key map holding the selected field.
func (r *Registry) encodeChoice(e *Entry, rv reflect.Value, path string) (any, error) {
	var selected *fieldPlan
	for i := range e.fields {
		if rv.FieldByIndex(e.fields[i].index).IsNil() {
			continue
		}
		if selected != nil {
			return nil, newEncodeError(ErrChoiceSelection, path, nil)
		}
		selected = &e.fields[i]
	}
	if selected == nil {
		return nil, newEncodeError(ErrChoiceSelection, path, nil)
	}

	val, err := r.encodeValue(rv.FieldByIndex(selected.index).Elem(), path+"."+selected.external)
	if err != nil {
		return nil, err
	}
	return map[string]any{selected.external: val}, nil
}

// encodeEnum returns the external label of a declared member.
func encodeEnum(e *Entry, rv reflect.Value, path string) (any, error) {
	for _, m := range e.members {
		if m.value.Equal(rv) {
			return m.external, nil
		}
	}
	return nil, newEncodeError(ErrUnknownMember, path, newMappingError(ErrUnknownMember, e.typ.String(), formatValue(rv)))
}

func (r *Registry) encodeSequence(rv reflect.Value, path string) (any, error) {
	out := make([]any, rv.Len())
	for i := range out {
		val, err := r.encodeValue(rv.Index(i), path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (r *Registry) encodeMap(rv reflect.Value, path string) (any, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, newEncodeError(ErrUnsupportedType, path, newMappingError(ErrUnsupportedType, rv.Type().String(), ""))
	}
	if rv.IsNil() {
		return nil, nil
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		val, err := r.encodeValue(iter.Value(), path+"."+key)
		if err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}

// formatValue renders an enum value for diagnostics.
func formatValue(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		return rv.String()
	default:
		return rv.Type().String()
	}
}
