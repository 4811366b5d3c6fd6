package gencode

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"
)

// Processor binds one registered type to a wire Codec.
// Encode walks the value into a document and marshals it; Decode does the
// reverse. Processors hold no mutable state and are safe for concurrent use.
type Processor[T any] struct {
	registry *Registry
	codec    Codec
	typeName string
}

// NewProcessor creates a Processor for type T.
// T must be registered in registry, otherwise NewProcessor fails with ErrNoMapping.
func NewProcessor[T any](registry *Registry, codec Codec) (*Processor[T], error) {
	if registry == nil {
		return nil, fmt.Errorf("new processor: %w", ErrNoMapping)
	}
	if codec == nil {
		return nil, fmt.Errorf("new processor: %w", ErrNilCodec)
	}

	rt := reflect.TypeFor[T]()
	if !registry.Has(rt) {
		return nil, newMappingError(ErrNoMapping, rt.String(), "")
	}

	p := &Processor[T]{
		registry: registry,
		codec:    codec,
		typeName: rt.String(),
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), p.typeName)
	return p, nil
}

// ContentType returns the MIME type of the processor's wire codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Encode converts obj to a document and marshals it with the wire codec.
// A nil obj marshals as the codec's null value, which Decode turns back into
// a nil *T. Codecs without a top-level null, such as BSON, fail with ErrMarshal.
func (p *Processor[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), retErr)
	}()

	var doc any
	if obj != nil {
		doc, retErr = p.registry.Encode(obj)
		if retErr != nil {
			return nil, retErr
		}
	}

	data, err := p.codec.Marshal(doc)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// Decode unmarshals data with the wire codec and rebuilds a value of type T.
// A null document decodes to a nil *T and no error.
func (p *Processor[T]) Decode(ctx context.Context, data []byte, opts ...DecodeOption) (*T, error) {
	start := time.Now()
	emitDecodeStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, p.codec.ContentType(), p.typeName,
			len(data), time.Since(start), retErr)
	}()

	var doc any
	if err := p.codec.Unmarshal(data, &doc); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}
	if doc == nil {
		return nil, nil
	}

	var obj T
	if err := p.registry.Decode(doc, &obj, opts...); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

// processorKey combines registry, type and codec for cache lookup.
type processorKey struct {
	registry *Registry
	typ      reflect.Type
	codec    Codec
}

var (
	processors   = make(map[processorKey]any)
	processorsMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by registry, type and codec value, so two codecs
// sharing a content type (json.New and json.Pretty) get separate processors.
// Codecs whose dynamic type is not comparable are never cached.
func Use[T any](registry *Registry, codec Codec) (*Processor[T], error) {
	if codec == nil || !reflect.TypeOf(codec).Comparable() {
		return NewProcessor[T](registry, codec)
	}

	key := processorKey{
		registry: registry,
		typ:      reflect.TypeFor[T](),
		codec:    codec,
	}

	// Fast path: read-lock cache check
	processorsMu.RLock()
	if cached, ok := processors[key]; ok {
		processorsMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	processorsMu.RUnlock()

	// Slow path: build and cache with write-lock
	processorsMu.Lock()
	defer processorsMu.Unlock()

	// Double-check pattern
	if cached, ok := processors[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](registry, codec)
	if err != nil {
		return nil, err
	}

	processors[key] = processor
	return processor, nil
}

// Reset clears the processor cache.
// This is primarily useful for test isolation.
func Reset() {
	processorsMu.Lock()
	defer processorsMu.Unlock()
	processors = make(map[processorKey]any)
}
