package gencode

import (
	"go/token"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag declaring a field's internal name:
//
//	TraceLevel int `gencode:"trace_level"`
//	Precision  int `gencode:"datetime_fractional_second_precision,optional"`
//	Scratch    int `gencode:"-"`
//
// Untagged exported fields use their Go name as the internal name.
const TagName = "gencode"

func init() {
	sentinel.Tag(TagName)
}

// Kind identifies how a registered type is laid out in documents.
type Kind uint8

const (
	// KindRecord is a struct encoded as a map keyed by external labels.
	KindRecord Kind = iota + 1

	// KindChoice is a struct of pointers, exactly one set, encoded as a
	// single-key map.
	KindChoice

	// KindEnum is a set of named constants encoded as external label strings.
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindChoice:
		return "choice"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Enum is the constraint for enumerated types. String must return the
// member's internal name.
type Enum interface {
	comparable
	String() string
}

// Entry is one row of a Registry. Build entries with Record, Choice or
// Enumeration so that each registration is checked against a concrete type.
type Entry struct {
	typ     reflect.Type
	kind    Kind
	mapping NameMapping
	fields  []fieldPlan
	members []member

	// err defers construction failures to NewRegistry.
	err error
}

// fieldPlan describes how a single struct field maps to a document key.
type fieldPlan struct {
	index    []int        // reflect.Value.FieldByIndex access path
	goName   string       // Go field name for diagnostics
	internal string       // internal name from the gencode tag
	external string       // external label, resolved by NewRegistry
	typ      reflect.Type // field type
	optional bool         // may be absent from documents
}

// member describes one enumeration constant.
type member struct {
	value    reflect.Value
	internal string
	external string
}

// Type returns the registered Go type.
func (e Entry) Type() reflect.Type {
	return e.typ
}

// Kind returns the document layout of the registered type.
func (e Entry) Kind() Kind {
	return e.kind
}

// Mapping returns the entry's name mapping.
func (e Entry) Mapping() NameMapping {
	return e.mapping
}

// Record registers struct type T with the given mapping.
// Every mapped field must appear in the mapping and vice versa.
func Record[T any](mapping NameMapping) Entry {
	rt := reflect.TypeFor[T]()
	e := Entry{typ: rt, kind: KindRecord, mapping: mapping}

	if rt.Kind() != reflect.Struct {
		e.err = newMappingError(ErrInvalidEntry, rt.String(), "record requires a struct")
		return e
	}

	e.fields, e.err = buildFieldPlans(sentinel.Scan[T](), rt)
	return e
}

// Choice registers struct type T as a choice: every mapped field must be a
// pointer, and a valid value has exactly one non-nil field.
func Choice[T any](mapping NameMapping) Entry {
	rt := reflect.TypeFor[T]()
	e := Entry{typ: rt, kind: KindChoice, mapping: mapping}

	if rt.Kind() != reflect.Struct {
		e.err = newMappingError(ErrInvalidEntry, rt.String(), "choice requires a struct")
		return e
	}

	e.fields, e.err = buildFieldPlans(sentinel.Scan[T](), rt)
	if e.err != nil {
		return e
	}

	for i := range e.fields {
		if e.fields[i].typ.Kind() != reflect.Ptr {
			e.err = newMappingError(ErrInvalidEntry, rt.String(), "choice field "+e.fields[i].goName+" must be a pointer")
			return e
		}
		e.fields[i].optional = true
	}

	return e
}

// Enumeration registers enumerated type T with its declared members.
// Each member's String value is its internal name.
func Enumeration[T Enum](mapping NameMapping, members ...T) Entry {
	rt := reflect.TypeFor[T]()
	e := Entry{typ: rt, kind: KindEnum, mapping: mapping}

	if len(members) == 0 {
		e.err = newMappingError(ErrInvalidEntry, rt.String(), "enumeration declares no members")
		return e
	}

	seen := make(map[T]bool, len(members))
	names := make(map[string]bool, len(members))
	for _, m := range members {
		name := m.String()
		if seen[m] || names[name] {
			e.err = newMappingError(ErrDuplicateName, rt.String(), name)
			return e
		}
		seen[m] = true
		names[name] = true
		e.members = append(e.members, member{
			value:    reflect.ValueOf(m),
			internal: name,
		})
	}

	return e
}

// buildFieldPlans creates field plans from scanned struct metadata.
func buildFieldPlans(meta sentinel.Metadata, rt reflect.Type) ([]fieldPlan, error) {
	plans := make([]fieldPlan, 0, len(meta.Fields))
	seen := make(map[string]bool, len(meta.Fields))

	for _, field := range meta.Fields {
		if !token.IsExported(field.Name) {
			continue
		}

		name, optional := parseTag(field.Tags[TagName])
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		if seen[name] {
			return nil, newMappingError(ErrDuplicateName, rt.String(), name)
		}
		seen[name] = true

		plans = append(plans, fieldPlan{
			index:    append([]int{}, field.Index...),
			goName:   field.Name,
			internal: name,
			typ:      field.ReflectType,
			optional: optional || field.ReflectType.Kind() == reflect.Ptr,
		})
	}

	return plans, nil
}

// parseTag splits a gencode tag into its name and optional flag.
func parseTag(tag string) (string, bool) {
	name, rest, _ := strings.Cut(tag, ",")
	optional := false
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if strings.TrimSpace(opt) == "optional" {
			optional = true
		}
	}
	return strings.TrimSpace(name), optional
}
