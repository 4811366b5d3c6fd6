package main

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/zoobzio/gencode"
	"github.com/zoobzio/gencode/balbermsg"
	"github.com/zoobzio/gencode/balbermsg/balbermsgutil"
	"github.com/zoobzio/gencode/bson"
	"github.com/zoobzio/gencode/json"
	"github.com/zoobzio/gencode/msgpack"
	"github.com/zoobzio/gencode/yaml"
)

// formats lists the wire formats accepted by --from and --to.
var formats = map[string]func() gencode.Codec{
	"json":    json.New,
	"pretty":  json.Pretty,
	"yaml":    yaml.New,
	"msgpack": msgpack.New,
	"bson":    bson.New,
}

func codecFor(format string) (gencode.Codec, error) {
	newCodec, ok := formats[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (known: %s)", format, strings.Join(sortedKeys(formats), ", "))
	}
	return newCodec(), nil
}

// textual reports whether output in format should end with a newline.
func textual(format string) bool {
	switch strings.ToLower(format) {
	case "json", "pretty":
		return true
	default:
		return false
	}
}

// converter decodes data as one balbermsg type and re-encodes it.
type converter func(ctx context.Context, from, to gencode.Codec, data []byte, opts ...gencode.DecodeOption) ([]byte, error)

// converters is keyed by the unqualified Go type name.
var converters = map[string]converter{
	typeName[balbermsg.BerEncoderOptions](): convert[balbermsg.BerEncoderOptions],
	typeName[balbermsg.BerDecoderOptions](): convert[balbermsg.BerDecoderOptions],
	typeName[balbermsg.SomeChoice]():        convert[balbermsg.SomeChoice],
	typeName[balbermsg.Color]():             convert[balbermsg.Color],
}

func convert[T any](ctx context.Context, from, to gencode.Codec, data []byte, opts ...gencode.DecodeOption) ([]byte, error) {
	registry := balbermsgutil.NameMappings()

	src, err := gencode.NewProcessor[T](registry, from)
	if err != nil {
		return nil, err
	}
	dst, err := gencode.NewProcessor[T](registry, to)
	if err != nil {
		return nil, err
	}

	v, err := src.Decode(ctx, data, opts...)
	if err != nil {
		return nil, err
	}
	return dst.Encode(ctx, v)
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().Name()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
