// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	"bytes"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/gencode"
)

// msgpackCodec implements gencode.Codec for MessagePack.
type msgpackCodec struct{}

// codec is the single instance returned by New.
var codec = &msgpackCodec{}

// New returns the MessagePack codec. Every call returns the same value.
func New() gencode.Codec {
	return codec
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack with sorted map keys and compact integers.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into v. When v is a *any, integers come
// back as int64 (uint64 only above math.MaxInt64) and floats as float64, the
// same shapes the other codecs produce.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)

	target, ok := v.(*any)
	if !ok {
		return dec.Decode(v)
	}

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	*target = normalize(doc)
	return nil
}

// normalize narrows unsigned integers that fit into int64. Compact encoding
// writes non-negative values as unsigned, so loose decoding returns them as
// uint64.
func normalize(v any) any {
	switch t := v.(type) {
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t)
		}
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
