package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func useRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.Emit()
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	sr := useRecorder(t)
	id := uuid.New()

	ctx, span := StartServiceSpan(context.Background(), "balance", "customer",
		SpanAttrCustomerID, id,
		SpanAttrTransactionCount, int64(3),
		SpanAttrGoldBalance, decimal.RequireFromString("12.345"),
		42, "ignored",
	)
	assert.NotEmpty(t, GetTraceID(ctx))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "balance.customer", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, id.String(), attrs[SpanAttrCustomerID])
	assert.Equal(t, "3", attrs[SpanAttrTransactionCount])
	assert.Equal(t, "12.345", attrs[SpanAttrGoldBalance])
	assert.Len(t, attrs, 3)
}

func TestRecordError(t *testing.T) {
	sr := useRecorder(t)

	_, span := StartServiceSpan(context.Background(), "dashboard", "get")
	RecordError(span, errors.New("db down"))
	RecordError(span, nil)
	span.End()

	s := sr.Ended()[0]
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "db down", s.Status().Description)
	require.Len(t, s.Events(), 1)
}

func TestSetAttributes(t *testing.T) {
	sr := useRecorder(t)

	_, span := StartServiceSpan(context.Background(), "dashboard", "get")
	SetAttributes(span, "total_customers", 7, "flag", true, "ratio", 0.5)
	span.End()

	attrs := attrMap(sr.Ended()[0].Attributes())
	assert.Equal(t, "7", attrs["total_customers"])
	assert.Equal(t, "true", attrs["flag"])
	assert.Equal(t, "0.5", attrs["ratio"])
}

func TestGetTraceID_NoSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
}
