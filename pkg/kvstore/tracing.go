package kvstore

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("kvstore")

// TracingStore wraps a Store with a span per operation
type TracingStore struct {
	next Store
}

// WithTracing decorates a store with tracing
func WithTracing(next Store) *TracingStore {
	return &TracingStore{next: next}
}

func (s *TracingStore) Read(ctx context.Context, key string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "store.Read",
		trace.WithAttributes(attribute.String("store.key", key)),
	)
	defer span.End()

	value, err := s.next.Read(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("store.bytes", len(value)))
	return value, nil
}

func (s *TracingStore) Write(ctx context.Context, key string, value []byte) error {
	ctx, span := tracer.Start(ctx, "store.Write",
		trace.WithAttributes(
			attribute.String("store.key", key),
			attribute.Int("store.bytes", len(value)),
		),
	)
	defer span.End()

	err := s.next.Write(ctx, key, value)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (s *TracingStore) Remove(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "store.Remove",
		trace.WithAttributes(attribute.String("store.key", key)),
	)
	defer span.End()

	err := s.next.Remove(ctx, key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
