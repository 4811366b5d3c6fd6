package gencode

import (
	"context"
	"encoding/hex"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Registry maps Go types to their name mappings and document layout.
//
// A Registry is built once, validated in full, and never modified. It may
// be shared by any number of goroutines without locking.
type Registry struct {
	entries     map[reflect.Type]*Entry
	order       []reflect.Type
	fingerprint string
}

// NewRegistry builds a Registry from entries and validates every one of them,
// whether or not the type is ever encoded.
//
// Validation fails on duplicate types, mapping keys that name no declared
// field or member, declared fields or members missing from the mapping, and
// record or choice fields sharing an external label.
//
// A successful build emits SignalRegistryBuilt once, with a background
// context. Generated tables are built at package initialization, before any
// listener can be attached; call Announce to emit the signal again later.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make(map[reflect.Type]*Entry, len(entries)),
	}

	for i := range entries {
		e := entries[i]
		e.fields = append([]fieldPlan(nil), e.fields...)
		e.members = append([]member(nil), e.members...)
		if e.typ == nil {
			return nil, newMappingError(ErrInvalidEntry, "", "entry has no type")
		}
		if e.err != nil {
			return nil, e.err
		}
		if _, dup := r.entries[e.typ]; dup {
			return nil, newMappingError(ErrDuplicateType, e.typ.String(), "")
		}

		if err := resolveEntry(&e); err != nil {
			return nil, err
		}

		r.entries[e.typ] = &e
		r.order = append(r.order, e.typ)
	}

	sort.Slice(r.order, func(i, j int) bool {
		return r.order[i].String() < r.order[j].String()
	})
	r.fingerprint = r.computeFingerprint()

	emitRegistryBuilt(context.Background(), len(r.order), r.fingerprint)
	return r, nil
}

// Announce emits SignalRegistryBuilt for r on ctx. Listeners attached after
// the registry was built use it to learn the table's size and fingerprint.
func (r *Registry) Announce(ctx context.Context) {
	emitRegistryBuilt(ctx, len(r.order), r.fingerprint)
}

// MustRegistry is like NewRegistry but panics on error. Generated tables use
// it at package initialization so a bad table fails before any call.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// resolveEntry checks the mapping against the declared names and records
// each field's or member's external label.
func resolveEntry(e *Entry) error {
	typeName := e.typ.String()
	declared := make(map[string]bool)

	switch e.kind {
	case KindRecord, KindChoice:
		labels := make(map[string]string, len(e.fields))
		for i := range e.fields {
			f := &e.fields[i]
			ext, err := e.mapping.External(f.internal)
			if err != nil {
				return newMappingError(ErrIncompleteMapping, typeName, f.internal)
			}
			if other, taken := labels[ext]; taken {
				return newMappingError(ErrAmbiguousLabel, typeName, ext+" ("+other+", "+f.internal+")")
			}
			labels[ext] = f.internal
			f.external = ext
			declared[f.internal] = true
		}
	case KindEnum:
		for i := range e.members {
			m := &e.members[i]
			ext, err := e.mapping.External(m.internal)
			if err != nil {
				return newMappingError(ErrIncompleteMapping, typeName, m.internal)
			}
			m.external = ext
			declared[m.internal] = true
		}
	default:
		return newMappingError(ErrInvalidEntry, typeName, "unknown kind")
	}

	for _, p := range e.mapping.pairs {
		if !declared[p.Internal] {
			return newMappingError(ErrUnknownName, typeName, p.Internal)
		}
	}

	return nil
}

// lookup returns the entry for rt, if any.
func (r *Registry) lookup(rt reflect.Type) (*Entry, bool) {
	e, ok := r.entries[rt]
	return e, ok
}

// Entry returns the registry row for rt.
// Unregistered types fail with ErrNoMapping.
func (r *Registry) Entry(rt reflect.Type) (Entry, error) {
	e, ok := r.lookup(rt)
	if !ok {
		return Entry{}, newMappingError(ErrNoMapping, typeString(rt), "")
	}
	return *e, nil
}

// Lookup returns the name mapping registered for rt.
// Unregistered types fail with ErrNoMapping.
func (r *Registry) Lookup(rt reflect.Type) (NameMapping, error) {
	e, err := r.Entry(rt)
	if err != nil {
		return NameMapping{}, err
	}
	return e.mapping, nil
}

// MappingFor returns the name mapping registered for T.
func MappingFor[T any](r *Registry) (NameMapping, error) {
	return r.Lookup(reflect.TypeFor[T]())
}

// ExternalName returns the external label of a field or member of rt.
func (r *Registry) ExternalName(rt reflect.Type, internal string) (string, error) {
	m, err := r.Lookup(rt)
	if err != nil {
		return "", err
	}
	ext, err := m.External(internal)
	if err != nil {
		return "", newMappingError(ErrUnknownName, rt.String(), internal)
	}
	return ext, nil
}

// InternalName returns the internal name for an external label of rt.
// A label shared by several names resolves to the first one declared.
func (r *Registry) InternalName(rt reflect.Type, external string) (string, error) {
	m, err := r.Lookup(rt)
	if err != nil {
		return "", err
	}
	in, err := m.Internal(external)
	if err != nil {
		return "", newMappingError(ErrUnknownLabel, rt.String(), external)
	}
	return in, nil
}

// Has reports whether rt is registered.
func (r *Registry) Has(rt reflect.Type) bool {
	_, ok := r.entries[rt]
	return ok
}

// Types returns the registered types sorted by name.
func (r *Registry) Types() []reflect.Type {
	out := make([]reflect.Type, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// Fingerprint returns a hex BLAKE2b-256 digest of the table: type names in
// sorted order, each followed by its pairs in declaration order. Registries
// that put the same labels on the wire share a fingerprint.
func (r *Registry) Fingerprint() string {
	return r.fingerprint
}

func (r *Registry) computeFingerprint() string {
	var b strings.Builder
	for _, rt := range r.order {
		e := r.entries[rt]
		b.WriteString(rt.String())
		b.WriteByte(':')
		b.WriteString(e.kind.String())
		b.WriteByte('\n')
		for _, p := range e.mapping.pairs {
			b.WriteByte('\t')
			b.WriteString(p.Internal)
			b.WriteByte('=')
			b.WriteString(p.External)
			b.WriteByte('\n')
		}
	}
	sum := blake2b.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// typeString names rt for error messages, tolerating nil.
func typeString(rt reflect.Type) string {
	if rt == nil {
		return "<nil>"
	}
	return rt.String()
}
