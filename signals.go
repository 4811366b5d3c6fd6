package gencode

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for gencode events.
var (
	SignalRegistryBuilt    = capitan.NewSignal("gencode.registry.built", "Mapping registry constructed and validated")
	SignalProcessorCreated = capitan.NewSignal("gencode.processor.created", "Processor instantiated")
	SignalEncodeStart      = capitan.NewSignal("gencode.encode.start", "Encode operation beginning")
	SignalEncodeComplete   = capitan.NewSignal("gencode.encode.complete", "Encode operation finished")
	SignalDecodeStart      = capitan.NewSignal("gencode.decode.start", "Decode operation beginning")
	SignalDecodeComplete   = capitan.NewSignal("gencode.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyTypeCount   = capitan.NewIntKey("type_count")
	KeyFingerprint = capitan.NewStringKey("fingerprint")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitRegistryBuilt emits an event when a registry passes validation.
func emitRegistryBuilt(ctx context.Context, typeCount int, fingerprint string) {
	capitan.Emit(ctx, SignalRegistryBuilt,
		KeyTypeCount.Field(typeCount),
		KeyFingerprint.Field(fingerprint),
	)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
