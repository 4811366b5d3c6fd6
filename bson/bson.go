// Package bson provides a BSON codec implementation.
//
// BSON only represents documents at the top level, so only records and
// choices can be marshaled with it.
package bson

import (
	"github.com/zoobzio/gencode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bsonCodec implements gencode.Codec for BSON.
type bsonCodec struct{}

// codec is the single instance returned by New.
var codec = &bsonCodec{}

// New returns the BSON codec. Every call returns the same value.
func New() gencode.Codec {
	return codec
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v. When v is a *any the result is a
// plain document tree: map[string]any, []any, time.Time and []byte in
// place of the driver's primitive types.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	target, ok := v.(*any)
	if !ok {
		return bson.Unmarshal(data, v)
	}

	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	*target = normalize(doc)
	return nil
}

// normalize replaces driver container and scalar types with plain ones.
func normalize(v any) any {
	switch t := v.(type) {
	case primitive.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = normalize(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case primitive.DateTime:
		return t.Time()
	case primitive.Binary:
		return t.Data
	default:
		return v
	}
}
