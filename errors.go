package gencode

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNoMapping indicates a type has no entry in the registry.
	ErrNoMapping = errors.New("no mapping registered for type")

	// ErrDuplicateType indicates a type was registered more than once.
	ErrDuplicateType = errors.New("duplicate type registration")

	// ErrInvalidEntry indicates a registry entry does not fit its type's shape.
	ErrInvalidEntry = errors.New("invalid registry entry")

	// ErrDuplicateName indicates an internal name was declared twice in one mapping.
	ErrDuplicateName = errors.New("duplicate internal name")

	// ErrEmptyLabel indicates a mapping declares an empty name or external label.
	ErrEmptyLabel = errors.New("empty label")

	// ErrIncompleteMapping indicates a declared field or member has no mapping.
	ErrIncompleteMapping = errors.New("incomplete mapping")

	// ErrAmbiguousLabel indicates two fields of one type share an external label.
	ErrAmbiguousLabel = errors.New("ambiguous external label")

	// ErrUnknownName indicates an internal name that the mapping does not declare.
	ErrUnknownName = errors.New("unknown internal name")

	// ErrUnknownLabel indicates an external label that the mapping does not declare.
	ErrUnknownLabel = errors.New("unknown external label")

	// ErrUnknownMember indicates an enumeration value that is not a declared member.
	ErrUnknownMember = errors.New("unknown enumeration member")

	// ErrUnknownField indicates a document key that maps to no field.
	ErrUnknownField = errors.New("unknown field")

	// ErrMissingField indicates a required field is absent from a document.
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch indicates a document node has the wrong shape for its target.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrChoiceSelection indicates a choice with zero or several selections.
	ErrChoiceSelection = errors.New("choice must have exactly one selection")

	// ErrUnsupportedType indicates a Go type the document codec cannot represent.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNilCodec indicates a processor was requested without a wire codec.
	ErrNilCodec = errors.New("nil codec")

	// ErrUnmarshal indicates the wire codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the wire codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// MappingError represents a registry construction or lookup error.
// It wraps a sentinel error with the type and name involved.
type MappingError struct {
	Err  error  // Underlying sentinel error (ErrNoMapping, ErrUnknownName, etc.)
	Type string // Type the mapping belongs to
	Name string // Internal name or external label involved, if any
}

func (e *MappingError) Error() string {
	if e.Type != "" && e.Name != "" {
		return fmt.Sprintf("%s %q (type %s)", e.Err.Error(), e.Name, e.Type)
	}
	if e.Type != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Type)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Name)
	}
	return e.Err.Error()
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// DecodeError represents a failure to rebuild a value from a document.
// Path locates the failing node using external labels, e.g. $.thing.foo.
type DecodeError struct {
	Err   error  // Underlying sentinel error (ErrMissingField, ErrTypeMismatch, etc.)
	Path  string // Document path of the failing node
	Cause error  // Original error, if any
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode %s: %s: %v", e.Path, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("decode %s: %s", e.Path, e.Err.Error())
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError represents a failure to build a document from a value.
type EncodeError struct {
	Err   error  // Underlying sentinel error (ErrNoMapping, ErrChoiceSelection, etc.)
	Path  string // Document path of the failing node
	Cause error  // Original error, if any
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encode %s: %s: %v", e.Path, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("encode %s: %s", e.Path, e.Err.Error())
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newMappingError creates a MappingError for registry and lookup failures.
func newMappingError(sentinel error, typeName, name string) error {
	return &MappingError{
		Err:  sentinel,
		Type: typeName,
		Name: name,
	}
}

// newDecodeError creates a DecodeError at the given document path.
func newDecodeError(sentinel error, path string, cause error) error {
	return &DecodeError{
		Err:   sentinel,
		Path:  path,
		Cause: cause,
	}
}

// newEncodeError creates an EncodeError at the given document path.
func newEncodeError(sentinel error, path string, cause error) error {
	return &EncodeError{
		Err:   sentinel,
		Path:  path,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
