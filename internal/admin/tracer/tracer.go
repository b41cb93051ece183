// Package tracer provides a lightweight tracing abstraction for the admin
// auth module.
//
// The internal interface doesn't depend directly on OpenTelemetry APIs, so
// the service can emit traces while remaining decoupled from a specific
// implementation.
//
// Implementations:
//   - NoopTracer: For tests (zero overhead)
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)
}

// Tracer creates spans for distributed tracing.
// Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	// The returned context contains the new span and should be passed to
	// child operations. The span must be ended by calling Span.End().
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the admin module.
const (
	SpanRegister = "admin.register"
	SpanLogin    = "admin.login"
	SpanDetails  = "admin.details"
)

// Attribute keys used by the admin module.
const (
	AttrOutcome = "outcome"
	AttrDevice  = "device"
)
