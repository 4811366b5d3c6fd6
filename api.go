// Package gencode translates between Go values and JSON-compatible
// documents using per-type name mappings.
//
// Internal names are the identifiers a schema gives fields and enumeration
// members (trace_level, CRAZY_WACKY_COLOR). External labels are what appears
// on the wire (TraceLevel, crazy-WACKYColor). A NameMapping holds that
// correspondence for one type, and a Registry holds one NameMapping per type.
//
// # Registration
//
// Every mapped type gets exactly one entry, declared against the concrete
// type so that a typo fails at package initialization:
//
//	var registry = gencode.MustRegistry(
//	    gencode.Record[Options](gencode.MustNameMapping(
//	        gencode.Name("trace_level", "TraceLevel"),
//	        gencode.Name("max_depth", "MaxDepth"),
//	    )),
//	    gencode.Enumeration[Color](gencode.MustNameMapping(
//	        gencode.Name("RED", "RED"),
//	        gencode.Name("CRAZY_WACKY_COLOR", "crazy-WACKYColor"),
//	    ), ColorRed, ColorCrazyWacky),
//	    gencode.Choice[Selection](gencode.MustNameMapping(
//	        gencode.Name("foo", "foo"),
//	        gencode.Name("bar", "bar"),
//	    )),
//	)
//
// Record and choice fields declare internal names with the gencode tag:
//
//	type Options struct {
//	    TraceLevel int `gencode:"trace_level"`
//	    MaxDepth   int `gencode:"max_depth,optional"`
//	}
//
// Enumeration members report their internal name through String.
//
// # Documents
//
// Registry.Encode produces a tree of map[string]any, []any and scalars, and
// Registry.Decode rebuilds a value from such a tree. Records become maps
// keyed by external labels, choices become single-key maps, enumerations
// become label strings.
//
// # Wire Codecs
//
// A Processor pairs a registered type with a Codec that turns documents into
// bytes. The following codecs are provided as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Errors
//
// Registry construction and lookups fail with *MappingError, document walks
// with *EncodeError or *DecodeError, wire failures with *CodecError. All of
// them wrap a sentinel such as ErrNoMapping for use with errors.Is.
package gencode

// Codec provides content-type aware marshaling of documents.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
