// Package balbermsgutil provides codecs for the types declared in balbermsg.
package balbermsgutil

import (
	"context"

	"github.com/zoobzio/gencode"
	"github.com/zoobzio/gencode/balbermsg"
)

// ToJSON converts obj into a document using the balbermsg wire labels.
func ToJSON(obj any) (any, error) {
	return nameMappings.Encode(obj)
}

// FromJSON rebuilds a value of type T from a document.
func FromJSON[T any](doc any, opts ...gencode.DecodeOption) (T, error) {
	return gencode.Decode[T](nameMappings, doc, opts...)
}

// FromJSONInto rebuilds a value from a document into target, a pointer to a
// balbermsg type chosen at run time.
func FromJSONInto(doc any, target any, opts ...gencode.DecodeOption) error {
	return nameMappings.Decode(doc, target, opts...)
}

// Marshal encodes obj to bytes with the given wire codec.
func Marshal[T any](ctx context.Context, codec gencode.Codec, obj *T) ([]byte, error) {
	p, err := gencode.Use[T](nameMappings, codec)
	if err != nil {
		return nil, err
	}
	return p.Encode(ctx, obj)
}

// Unmarshal decodes bytes produced by the given wire codec into a T.
func Unmarshal[T any](ctx context.Context, codec gencode.Codec, data []byte, opts ...gencode.DecodeOption) (*T, error) {
	p, err := gencode.Use[T](nameMappings, codec)
	if err != nil {
		return nil, err
	}
	return p.Decode(ctx, data, opts...)
}

// NameMappings returns the shared, read-only registry for balbermsg types.
func NameMappings() *gencode.Registry {
	return nameMappings
}

var nameMappings = gencode.MustRegistry(
	gencode.Record[balbermsg.BerEncoderOptions](gencode.MustNameMapping(
		gencode.Name("trace_level", "TraceLevel"),
		gencode.Name("bde_version_conformance", "BdeVersionConformance"),
		gencode.Name("datetime_fractional_second_precision", "DatetimeFractionalSecondPrecision"),
		gencode.Name("encode_empty_arrays", "EncodeEmptyArrays"),
		gencode.Name("thing", "thing"),
		gencode.Name("color", "color"),
		gencode.Name("encode_date_and_time_types_as_binary", "EncodeDateAndTimeTypesAsBinary"),
	)),
	gencode.Enumeration(gencode.MustNameMapping(
		gencode.Name("BLUE", "BLUE"),
		gencode.Name("GREEN", "GREEN"),
		gencode.Name("RED", "RED"),
		gencode.Name("CRAZY_WACKY_COLOR", "crazy-WACKYColor"),
	), balbermsg.Colors()...),
	gencode.Record[balbermsg.BerDecoderOptions](gencode.MustNameMapping(
		gencode.Name("max_depth", "MaxDepth"),
		gencode.Name("trace_level", "TraceLevel"),
		gencode.Name("skip_unknown_elements", "SkipUnknownElements"),
		gencode.Name("max_sequence_size", "MaxSequenceSize"),
	)),
	gencode.Choice[balbermsg.SomeChoice](gencode.MustNameMapping(
		gencode.Name("bar", "bar"),
		gencode.Name("foo", "foo"),
	)),
)

// CodeGeneratorVersion identifies the generator version that produced this
// table. Search the generator's history for this string to find the commit
// that wrote it. Nothing reads it at run time.
const CodeGeneratorVersion = "The tiny sunken funny constable overrides the tiny agnostic discounted lanyard while the gravel smothers the rotund fantastic white rum."
