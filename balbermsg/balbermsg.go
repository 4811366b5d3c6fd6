// Package balbermsg declares the option messages of the BER codec: encoder
// and decoder options plus the enumeration and choice types they use.
//
// Field tags carry the schema's internal names; the wire labels live in
// package balbermsgutil.
package balbermsg

import "strconv"

// Color is an enumeration exercising labels that differ from member names.
type Color int

// Color members, in schema declaration order.
const (
	ColorBlue Color = iota
	ColorGreen
	ColorRed
	ColorCrazyWackyColor
)

// Colors returns every declared Color member in declaration order.
func Colors() []Color {
	return []Color{ColorBlue, ColorGreen, ColorRed, ColorCrazyWackyColor}
}

// String returns the member's schema name.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "BLUE"
	case ColorGreen:
		return "GREEN"
	case ColorRed:
		return "RED"
	case ColorCrazyWackyColor:
		return "CRAZY_WACKY_COLOR"
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

// SomeChoice holds exactly one of Foo or Bar.
type SomeChoice struct {
	Foo *int64  `gencode:"foo"`
	Bar *string `gencode:"bar"`
}

// NewSomeChoiceFoo returns a SomeChoice selecting foo.
func NewSomeChoiceFoo(v int64) *SomeChoice {
	return &SomeChoice{Foo: &v}
}

// NewSomeChoiceBar returns a SomeChoice selecting bar.
func NewSomeChoiceBar(v string) *SomeChoice {
	return &SomeChoice{Bar: &v}
}

// Selection returns the schema name of the selected alternative, or "" when
// nothing is selected.
func (c SomeChoice) Selection() string {
	switch {
	case c.Foo != nil:
		return "foo"
	case c.Bar != nil:
		return "bar"
	default:
		return ""
	}
}

// BerEncoderOptions configures a BER encoder.
type BerEncoderOptions struct {
	TraceLevel                        int         `gencode:"trace_level,optional"`
	BdeVersionConformance             int         `gencode:"bde_version_conformance"`
	DatetimeFractionalSecondPrecision int         `gencode:"datetime_fractional_second_precision,optional"`
	EncodeEmptyArrays                 bool        `gencode:"encode_empty_arrays,optional"`
	Thing                             *SomeChoice `gencode:"thing"`
	Color                             Color       `gencode:"color,optional"`
	EncodeDateAndTimeTypesAsBinary    bool        `gencode:"encode_date_and_time_types_as_binary,optional"`
}

// NewBerEncoderOptions returns encoder options with schema defaults applied.
func NewBerEncoderOptions() BerEncoderOptions {
	var o BerEncoderOptions
	o.SetDefaults()
	return o
}

// SetDefaults resets every defaulted field to its schema default.
func (o *BerEncoderOptions) SetDefaults() {
	o.TraceLevel = 0
	o.DatetimeFractionalSecondPrecision = 3
	o.EncodeEmptyArrays = true
	o.Color = ColorBlue
	o.EncodeDateAndTimeTypesAsBinary = false
}

// BerDecoderOptions configures a BER decoder.
type BerDecoderOptions struct {
	MaxDepth            int  `gencode:"max_depth,optional"`
	TraceLevel          int  `gencode:"trace_level,optional"`
	SkipUnknownElements bool `gencode:"skip_unknown_elements,optional"`
	MaxSequenceSize     int  `gencode:"max_sequence_size,optional"`
}

// NewBerDecoderOptions returns decoder options with schema defaults applied.
func NewBerDecoderOptions() BerDecoderOptions {
	var o BerDecoderOptions
	o.SetDefaults()
	return o
}

// SetDefaults resets every field to its schema default.
func (o *BerDecoderOptions) SetDefaults() {
	o.MaxDepth = 32
	o.TraceLevel = 0
	o.SkipUnknownElements = true
	o.MaxSequenceSize = 8 * 1024 * 1024
}
