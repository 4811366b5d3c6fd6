// Package json provides a JSON codec implementation.
package json

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/zoobzio/gencode"
)

// compact sorts object keys so equal documents marshal to equal bytes, and
// decodes numbers as json.Number so 64-bit integers survive the trip.
var compact = jsoniter.Config{
	EscapeHTML:  true,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

var indented = jsoniter.Config{
	EscapeHTML:    true,
	SortMapKeys:   true,
	UseNumber:     true,
	IndentionStep: 2,
}.Froze()

// jsonCodec implements gencode.Codec for JSON.
type jsonCodec struct {
	api jsoniter.API
}

var (
	compactCodec  = &jsonCodec{api: compact}
	indentedCodec = &jsonCodec{api: indented}
)

// New returns the compact JSON codec. Every call returns the same value.
func New() gencode.Codec {
	return compactCodec
}

// Pretty returns the JSON codec that indents its output by two spaces.
// Every call returns the same value, distinct from New.
func Pretty() gencode.Codec {
	return indentedCodec
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}
