package gencode

import (
	"encoding/base64"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// Defaulter is implemented by record types that carry schema defaults.
// SetDefaults runs before a record is decoded, so optional fields absent
// from the document keep their default values.
type Defaulter interface {
	SetDefaults()
}

// DecodeOption configures a single Decode call.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	skipUnknown bool
}

// SkipUnknownFields ignores document keys that map to no field instead of
// failing with ErrUnknownField.
func SkipUnknownFields() DecodeOption {
	return func(o *decodeOptions) {
		o.skipUnknown = true
	}
}

// Decode rebuilds a value from doc into target, which must be a non-nil
// pointer to a registered type.
//
// Failures are *DecodeError values wrapping ErrMissingField, ErrUnknownField,
// ErrTypeMismatch, ErrUnknownLabel, ErrChoiceSelection or ErrNoMapping.
func (r *Registry) Decode(doc any, target any, opts ...DecodeOption) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return newDecodeError(ErrTypeMismatch, "$", fmt.Errorf("target must be a non-nil pointer, got %T", target))
	}

	elem := rv.Elem()
	if !r.Has(elem.Type()) {
		return newDecodeError(ErrNoMapping, "$", newMappingError(ErrNoMapping, elem.Type().String(), ""))
	}

	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return r.decodeValue(doc, elem, "$", o)
}

// Decode rebuilds a value of type T from doc.
func Decode[T any](r *Registry, doc any, opts ...DecodeOption) (T, error) {
	var out T
	if err := r.Decode(doc, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// decodeValue sets rv from the document node at path.
func (r *Registry) decodeValue(doc any, rv reflect.Value, path string, o *decodeOptions) error {
	if e, ok := r.lookup(rv.Type()); ok {
		switch e.kind {
		case KindRecord:
			return r.decodeRecord(e, doc, rv, path, o)
		case KindChoice:
			return r.decodeChoice(e, doc, rv, path, o)
		case KindEnum:
			return decodeEnum(e, doc, rv, path)
		}
	}

	switch rv.Type() {
	case timeType:
		return decodeTime(doc, rv, path)
	case bytesType:
		return decodeBytes(doc, rv, path)
	}

	switch rv.Kind() {
	case reflect.Ptr:
		if doc == nil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		elem := reflect.New(rv.Type().Elem())
		if err := r.decodeValue(doc, elem.Elem(), path, o); err != nil {
			return err
		}
		rv.Set(elem)
		return nil

	case reflect.Interface:
		if doc == nil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.NumMethod() != 0 {
			return newDecodeError(ErrUnsupportedType, path, newMappingError(ErrUnsupportedType, rv.Type().String(), ""))
		}
		rv.Set(reflect.ValueOf(doc))
		return nil

	case reflect.Bool:
		b, ok := doc.(bool)
		if !ok {
			return mismatch(path, "bool", doc)
		}
		rv.SetBool(b)
		return nil

	case reflect.String:
		s, ok := doc.(string)
		if !ok {
			return mismatch(path, "string", doc)
		}
		rv.SetString(s)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt64(doc)
		if !ok || rv.OverflowInt(n) {
			return mismatch(path, rv.Type().String(), doc)
		}
		rv.SetInt(n)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := toUint64(doc)
		if !ok || rv.OverflowUint(n) {
			return mismatch(path, rv.Type().String(), doc)
		}
		rv.SetUint(n)
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat64(doc)
		if !ok || rv.OverflowFloat(f) {
			return mismatch(path, rv.Type().String(), doc)
		}
		rv.SetFloat(f)
		return nil

	case reflect.Slice:
		if doc == nil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		seq, ok := doc.([]any)
		if !ok {
			return mismatch(path, "sequence", doc)
		}
		out := reflect.MakeSlice(rv.Type(), len(seq), len(seq))
		for i, item := range seq {
			if err := r.decodeValue(item, out.Index(i), path+"["+strconv.Itoa(i)+"]", o); err != nil {
				return err
			}
		}
		rv.Set(out)
		return nil

	case reflect.Array:
		seq, ok := doc.([]any)
		if !ok || len(seq) != rv.Len() {
			return mismatch(path, rv.Type().String(), doc)
		}
		for i, item := range seq {
			if err := r.decodeValue(item, rv.Index(i), path+"["+strconv.Itoa(i)+"]", o); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return newDecodeError(ErrUnsupportedType, path, newMappingError(ErrUnsupportedType, rv.Type().String(), ""))
		}
		if doc == nil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		m, ok := asMap(doc)
		if !ok {
			return mismatch(path, "mapping", doc)
		}
		out := reflect.MakeMapWithSize(rv.Type(), len(m))
		for _, k := range sortedKeys(m) {
			val := reflect.New(rv.Type().Elem()).Elem()
			if err := r.decodeValue(m[k], val, path+"."+k, o); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), val)
		}
		rv.Set(out)
		return nil

	case reflect.Struct:
		return newDecodeError(ErrNoMapping, path, newMappingError(ErrNoMapping, rv.Type().String(), ""))

	default:
		return newDecodeError(ErrUnsupportedType, path, newMappingError(ErrUnsupportedType, rv.Type().String(), ""))
	}
}

// decodeRecord fills a struct from a mapping keyed by external labels.
func (r *Registry) decodeRecord(e *Entry, doc any, rv reflect.Value, path string, o *decodeOptions) error {
	m, ok := asMap(doc)
	if !ok {
		return mismatch(path, e.typ.String(), doc)
	}

	if rv.CanAddr() {
		if d, ok := rv.Addr().Interface().(Defaulter); ok {
			d.SetDefaults()
		}
	}

	seen := make(map[string]bool, len(m))
	for _, label := range sortedKeys(m) {
		f, ok := e.fieldForLabel(label)
		if !ok {
			if o.skipUnknown {
				continue
			}
			return newDecodeError(ErrUnknownField, path+"."+label, newMappingError(ErrUnknownLabel, e.typ.String(), label))
		}
		seen[f.internal] = true
		if err := r.decodeValue(m[label], rv.FieldByIndex(f.index), path+"."+label, o); err != nil {
			return err
		}
	}

	for _, f := range e.fields {
		if !f.optional && !seen[f.internal] {
			return newDecodeError(ErrMissingField, path+"."+f.external, nil)
		}
	}

	return nil
}

// decodeChoice sets the single selected field of a choice.
func (r *Registry) decodeChoice(e *Entry, doc any, rv reflect.Value, path string, o *decodeOptions) error {
	m, ok := asMap(doc)
	if !ok {
		return mismatch(path, e.typ.String(), doc)
	}
	if len(m) != 1 {
		return newDecodeError(ErrChoiceSelection, path, fmt.Errorf("got %d selections", len(m)))
	}

	var label string
	for k := range m {
		label = k
	}

	f, ok := e.fieldForLabel(label)
	if !ok {
		return newDecodeError(ErrUnknownField, path+"."+label, newMappingError(ErrUnknownLabel, e.typ.String(), label))
	}

	for _, other := range e.fields {
		fv := rv.FieldByIndex(other.index)
		fv.Set(reflect.Zero(fv.Type()))
	}

	fv := rv.FieldByIndex(f.index)
	elem := reflect.New(fv.Type().Elem())
	if err := r.decodeValue(m[label], elem.Elem(), path+"."+label, o); err != nil {
		return err
	}
	fv.Set(elem)
	return nil
}

// decodeEnum resolves an external label to its member.
func decodeEnum(e *Entry, doc any, rv reflect.Value, path string) error {
	label, ok := doc.(string)
	if !ok {
		return mismatch(path, e.typ.String(), doc)
	}

	internal, err := e.mapping.Internal(label)
	if err != nil {
		return newDecodeError(ErrUnknownLabel, path, newMappingError(ErrUnknownLabel, e.typ.String(), label))
	}

	for _, m := range e.members {
		if m.internal == internal {
			rv.Set(m.value)
			return nil
		}
	}
	return newDecodeError(ErrUnknownLabel, path, newMappingError(ErrUnknownMember, e.typ.String(), internal))
}

// fieldForLabel resolves a document key through the mapping's reverse lookup.
func (e *Entry) fieldForLabel(label string) (fieldPlan, bool) {
	internal, err := e.mapping.Internal(label)
	if err != nil {
		return fieldPlan{}, false
	}
	for _, f := range e.fields {
		if f.internal == internal {
			return f, true
		}
	}
	return fieldPlan{}, false
}

func decodeTime(doc any, rv reflect.Value, path string) error {
	switch v := doc.(type) {
	case time.Time:
		rv.Set(reflect.ValueOf(v))
		return nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return newDecodeError(ErrTypeMismatch, path, err)
		}
		rv.Set(reflect.ValueOf(t))
		return nil
	default:
		return mismatch(path, "timestamp", doc)
	}
}

func decodeBytes(doc any, rv reflect.Value, path string) error {
	switch v := doc.(type) {
	case nil:
		rv.SetBytes(nil)
		return nil
	case []byte:
		rv.SetBytes(append([]byte(nil), v...))
		return nil
	case string:
		b, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return newDecodeError(ErrTypeMismatch, path, err)
		}
		rv.SetBytes(b)
		return nil
	default:
		return mismatch(path, "base64 string", doc)
	}
}

// numberLike matches json.Number and equivalents that keep the literal text.
type numberLike interface {
	String() string
	Float64() (float64, error)
	Int64() (int64, error)
}

func toInt64(doc any) (int64, bool) {
	switch v := doc.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint, uint8, uint16, uint32, uint64:
		u, _ := toUint64(v)
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case float32:
		return floatToInt64(float64(v))
	case float64:
		return floatToInt64(v)
	case numberLike:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	default:
		return 0, false
	}
}

func toUint64(doc any) (uint64, bool) {
	switch v := doc.(type) {
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case int, int8, int16, int32, int64:
		n, _ := toInt64(v)
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case float32:
		return floatToUint64(float64(v))
	case float64:
		return floatToUint64(v)
	case numberLike:
		if n, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return n, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToUint64(f)
	default:
		return 0, false
	}
}

func toFloat64(doc any) (float64, bool) {
	switch v := doc.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int, int8, int16, int32, int64:
		n, _ := toInt64(v)
		return float64(n), true
	case uint, uint8, uint16, uint32, uint64:
		n, _ := toUint64(v)
		return float64(n), true
	case numberLike:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// floatToInt64 accepts only integral values inside the int64 range.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func floatToUint64(f float64) (uint64, bool) {
	if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

// asMap accepts the mapping node shapes produced by the wire codecs.
func asMap(doc any) (map[string]any, bool) {
	switch v := doc.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mismatch(path, want string, doc any) error {
	return newDecodeError(ErrTypeMismatch, path, fmt.Errorf("want %s, got %T", want, doc))
}
