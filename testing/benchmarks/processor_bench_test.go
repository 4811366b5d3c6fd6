package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/gencode"
	"github.com/zoobzio/gencode/balbermsg"
	"github.com/zoobzio/gencode/balbermsg/balbermsgutil"
	"github.com/zoobzio/gencode/json"
	gencodetest "github.com/zoobzio/gencode/testing"
)

func BenchmarkRegistry_Encode(b *testing.B) {
	registry := balbermsgutil.NameMappings()
	opts := gencodetest.EncoderOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = registry.Encode(&opts)
	}
}

func BenchmarkRegistry_Decode(b *testing.B) {
	registry := balbermsgutil.NameMappings()
	opts := gencodetest.EncoderOptions()
	doc, _ := registry.Encode(&opts)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gencode.Decode[balbermsg.BerEncoderOptions](registry, doc)
	}
}

func BenchmarkProcessor_Encode(b *testing.B) {
	for _, c := range gencodetest.Codecs() {
		b.Run(c.ContentType(), func(b *testing.B) {
			proc, _ := gencode.NewProcessor[balbermsg.BerEncoderOptions](balbermsgutil.NameMappings(), c)
			opts := gencodetest.EncoderOptions()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = proc.Encode(context.Background(), &opts)
			}
		})
	}
}

func BenchmarkProcessor_Decode(b *testing.B) {
	for _, c := range gencodetest.Codecs() {
		b.Run(c.ContentType(), func(b *testing.B) {
			proc, _ := gencode.NewProcessor[balbermsg.BerEncoderOptions](balbermsgutil.NameMappings(), c)
			opts := gencodetest.EncoderOptions()
			data, _ := proc.Encode(context.Background(), &opts)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = proc.Decode(context.Background(), data)
			}
		})
	}
}

func BenchmarkUse_Cached(b *testing.B) {
	registry := balbermsgutil.NameMappings()
	codec := json.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gencode.Use[balbermsg.BerDecoderOptions](registry, codec)
	}
}
