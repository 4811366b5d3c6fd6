// Package yaml provides a YAML codec implementation.
package yaml

import (
	"github.com/zoobzio/gencode"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements gencode.Codec for YAML.
type yamlCodec struct{}

// codec is the single instance returned by New.
var codec = &yamlCodec{}

// New returns the YAML codec. Every call returns the same value.
func New() gencode.Codec {
	return codec
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML. Mapping keys are emitted in sorted order.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v. Only the first document of a stream
// is read.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
