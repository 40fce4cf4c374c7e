package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/interbanking/backend/internal/infrastructure/telemetry"
)

// setupTestTracer installs a tracer provider backed by an in-memory recorder.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})

	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]attribute.Value {
	m := make(map[string]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[string(a.Key)] = a.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)

	ctx, span := telemetry.StartServiceSpan(context.Background(), "company", "create",
		telemetry.WithAttribute(telemetry.SpanAttrCompanyCUIT, "30-12345678-1"),
		telemetry.WithAttribute(telemetry.SpanAttrCompanyType, "PYME"),
	)
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())
	telemetry.End(span, nil)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "company.create", spans[0].Name())
	assert.Equal(t, trace.SpanKindInternal, spans[0].SpanKind())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "30-12345678-1", attrs[telemetry.SpanAttrCompanyCUIT].AsString())
	assert.Equal(t, "PYME", attrs[telemetry.SpanAttrCompanyType].AsString())
}

func TestEnd_RecordsError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "company", "delete")
	telemetry.End(span, errors.New("company has transfers"))

	s := sr.Ended()[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "company has transfers", s.Status().Description)
	require.Len(t, s.Events(), 1)
	assert.Equal(t, "exception", s.Events()[0].Name)
}

func TestSetAttributes(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "transfer", "create")
	telemetry.SetAttributes(span,
		telemetry.SpanAttrTransferID, "t-1",
		telemetry.SpanAttrAmount, decimal.RequireFromString("1500.50"),
		telemetry.SpanAttrResultCount, 3,
		42, "ignored",
		"dangling",
	)
	telemetry.SetAttribute(span, "retried", true)
	span.End()

	attrs := attrMap(sr.Ended()[0].Attributes())
	assert.Equal(t, "t-1", attrs[telemetry.SpanAttrTransferID].AsString())
	assert.Equal(t, "1500.5", attrs[telemetry.SpanAttrAmount].AsString())
	assert.Equal(t, int64(3), attrs[telemetry.SpanAttrResultCount].AsInt64())
	assert.True(t, attrs["retried"].AsBool())
	assert.Len(t, attrs, 4)
}

func TestNilSpanHelpers(t *testing.T) {
	assert.NotPanics(t, func() {
		telemetry.SetAttributes(nil, "k", "v")
		telemetry.SetAttribute(nil, "k", "v")
		telemetry.RecordError(nil, errors.New("x"))
	})
}
