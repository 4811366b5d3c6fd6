// Package testing provides test utilities for gencode.
package testing

import (
	"context"

	"github.com/zoobzio/gencode"
	"github.com/zoobzio/gencode/balbermsg"
	"github.com/zoobzio/gencode/bson"
	"github.com/zoobzio/gencode/json"
	"github.com/zoobzio/gencode/msgpack"
	"github.com/zoobzio/gencode/yaml"
)

// Codecs returns one instance of every wire codec.
func Codecs() []gencode.Codec {
	return []gencode.Codec{json.New(), yaml.New(), msgpack.New(), bson.New()}
}

// RoundTrip encodes v with codec and decodes the bytes back.
func RoundTrip[T any](ctx context.Context, registry *gencode.Registry, codec gencode.Codec, v *T) (*T, error) {
	proc, err := gencode.NewProcessor[T](registry, codec)
	if err != nil {
		return nil, err
	}
	data, err := proc.Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	return proc.Decode(ctx, data)
}

// Transcode decodes data as T with one codec and re-encodes it with another.
func Transcode[T any](ctx context.Context, registry *gencode.Registry, from, to gencode.Codec, data []byte) ([]byte, error) {
	src, err := gencode.NewProcessor[T](registry, from)
	if err != nil {
		return nil, err
	}
	dst, err := gencode.NewProcessor[T](registry, to)
	if err != nil {
		return nil, err
	}
	v, err := src.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return dst.Encode(ctx, v)
}

// EncoderOptions returns encoder options with every field set away from
// its default.
func EncoderOptions() balbermsg.BerEncoderOptions {
	return balbermsg.BerEncoderOptions{
		TraceLevel:                        3,
		BdeVersionConformance:             10500,
		DatetimeFractionalSecondPrecision: 6,
		EncodeEmptyArrays:                 false,
		Thing:                             balbermsg.NewSomeChoiceBar("payload"),
		Color:                             balbermsg.ColorCrazyWackyColor,
		EncodeDateAndTimeTypesAsBinary:    true,
	}
}

// DecoderOptions returns decoder options with every field set away from
// its default.
func DecoderOptions() balbermsg.BerDecoderOptions {
	return balbermsg.BerDecoderOptions{
		MaxDepth:            64,
		TraceLevel:          1,
		SkipUnknownElements: false,
		MaxSequenceSize:     1024,
	}
}
