package gencode

// Pair associates an internal name with its external label.
type Pair struct {
	Internal string
	External string
}

// Name returns a Pair mapping internal to external.
// It keeps literal mapping tables short:
//
//	gencode.MustNameMapping(
//	    gencode.Name("trace_level", "TraceLevel"),
//	    gencode.Name("max_depth", "MaxDepth"),
//	)
func Name(internal, external string) Pair {
	return Pair{Internal: internal, External: external}
}

// NameMapping is the immutable correspondence between the internal names of
// one type's fields or members and the labels used for them in documents.
//
// Pairs keep their declaration order. When several internal names share an
// external label, Internal resolves the label to the first one declared.
//
// The zero NameMapping is empty. A NameMapping is safe for concurrent use.
type NameMapping struct {
	pairs      []Pair
	byInternal map[string]string
	byExternal map[string]string
}

// NewNameMapping builds a NameMapping from pairs in declaration order.
// It fails if an internal name repeats or if any name or label is empty.
func NewNameMapping(pairs ...Pair) (NameMapping, error) {
	m := NameMapping{
		pairs:      make([]Pair, 0, len(pairs)),
		byInternal: make(map[string]string, len(pairs)),
		byExternal: make(map[string]string, len(pairs)),
	}

	for _, p := range pairs {
		if p.Internal == "" || p.External == "" {
			return NameMapping{}, newMappingError(ErrEmptyLabel, "", p.Internal+"="+p.External)
		}
		if _, dup := m.byInternal[p.Internal]; dup {
			return NameMapping{}, newMappingError(ErrDuplicateName, "", p.Internal)
		}
		m.pairs = append(m.pairs, p)
		m.byInternal[p.Internal] = p.External
		// First declared wins on reverse lookup.
		if _, taken := m.byExternal[p.External]; !taken {
			m.byExternal[p.External] = p.Internal
		}
	}

	return m, nil
}

// MustNameMapping is like NewNameMapping but panics on error.
// It is intended for package-level literal tables.
func MustNameMapping(pairs ...Pair) NameMapping {
	m, err := NewNameMapping(pairs...)
	if err != nil {
		panic(err)
	}
	return m
}

// External returns the external label for an internal name.
// Unknown names fail with ErrUnknownName rather than echoing the input.
func (m NameMapping) External(internal string) (string, error) {
	ext, ok := m.byInternal[internal]
	if !ok {
		return "", newMappingError(ErrUnknownName, "", internal)
	}
	return ext, nil
}

// Internal returns the internal name for an external label.
// Unknown labels fail with ErrUnknownLabel.
func (m NameMapping) Internal(external string) (string, error) {
	in, ok := m.byExternal[external]
	if !ok {
		return "", newMappingError(ErrUnknownLabel, "", external)
	}
	return in, nil
}

// Len returns the number of pairs.
func (m NameMapping) Len() int {
	return len(m.pairs)
}

// Pairs returns a copy of the pairs in declaration order.
func (m NameMapping) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// Ambiguous returns the external labels shared by more than one internal
// name, in order of first declaration.
func (m NameMapping) Ambiguous() []string {
	counts := make(map[string]int, len(m.pairs))
	var order []string
	for _, p := range m.pairs {
		if counts[p.External] == 0 {
			order = append(order, p.External)
		}
		counts[p.External]++
	}

	var out []string
	for _, ext := range order {
		if counts[ext] > 1 {
			out = append(out, ext)
		}
	}
	return out
}
