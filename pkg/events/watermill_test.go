package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/storefront/pkg/logger"
)

func setupTracer() *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

func nopLogger() logger.Logger {
	return logger.Discard()
}

func newTestBus(t *testing.T) *EventBus {
	t.Helper()
	bus := NewEventBus(nopLogger())
	bus.retryDelay = time.Millisecond
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

// TestRetryWithBackoff_SuccessOnFirstAttempt verifies no retry occurs on success.
func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

// TestRetryWithBackoff_SuccessAfterRetries verifies retry continues until success.
func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		if calls < 3 {
			return errors.New("transient error")
		}
		return nil
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err != nil {
		t.Fatalf("expected nil after eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestRetryWithBackoff_ExhaustsRetries verifies an error is returned after all retries fail.
func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("permanent error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(context.Background(), msg, handler, maxRetries, time.Millisecond, nopLogger())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if calls != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, calls)
	}
}

// TestRetryWithBackoff_ContextCancelled verifies retry stops when context is canceled.
func TestRetryWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	calls := 0
	handler := func(_ context.Context, _ *message.Message) error {
		calls++
		return errors.New("error")
	}
	msg := message.NewMessage("id", nil)
	err := retryWithBackoff(ctx, msg, handler, maxRetries, time.Second, nopLogger())
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
	// Should have called handler once then exited on ctx.Done
	if calls != 1 {
		t.Errorf("expected 1 call before context cancel, got %d", calls)
	}
}

// TestOTelPropagation_InjectExtract verifies that trace context injected via
// the same propagation path used by Publish/Subscribe round-trips correctly.
func TestOTelPropagation_InjectExtract(t *testing.T) {
	tp := setupTracer()
	defer tp.Shutdown(context.Background()) //nolint:errcheck

	ctx, span := otel.Tracer("test").Start(context.Background(), "publish-span")
	defer span.End()
	wantTraceID := span.SpanContext().TraceID()

	// Simulate Publish: inject trace context into message metadata.
	msg := message.NewMessage("id", nil)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	// Simulate Subscribe: extract trace context from message metadata.
	extractCarrier := propagation.MapCarrier{}
	for k, v := range msg.Metadata {
		extractCarrier[k] = v
	}
	msgCtx := otel.GetTextMapPropagator().Extract(context.Background(), extractCarrier)

	gotSpan := trace.SpanFromContext(msgCtx)
	if !gotSpan.SpanContext().IsValid() {
		t.Fatal("extracted span context is not valid")
	}
	if gotSpan.SpanContext().TraceID() != wantTraceID {
		t.Errorf("trace ID mismatch: want %s, got %s", wantTraceID, gotSpan.SpanContext().TraceID())
	}
}

// TestPublishJSON_DeliversToSubscriber verifies a published payload reaches the handler intact.
func TestPublishJSON_DeliversToSubscriber(t *testing.T) {
	bus := newTestBus(t)
	got := make(chan map[string]string, 1)

	_, err := bus.Subscribe(context.Background(), "record.created", func(_ context.Context, msg *message.Message) error {
		var payload map[string]string
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		got <- payload
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	if err := bus.PublishJSON(context.Background(), "record.created", map[string]string{"id": "1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case payload := <-got:
		if payload["id"] != "1" {
			t.Errorf("unexpected payload: %v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

// TestSubscribe_ExhaustedRetriesReportedOnce verifies a permanently failing
// handler is retried maxRetries times, reported once and not redelivered.
func TestSubscribe_ExhaustedRetriesReportedOnce(t *testing.T) {
	bus := newTestBus(t)
	var calls atomic.Int32

	errCh, err := bus.Subscribe(context.Background(), "record.deleted", func(context.Context, *message.Message) error {
		calls.Add(1)
		return errors.New("permanent")
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := bus.PublishJSON(context.Background(), "record.deleted", struct{}{}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case err := <-errCh:
		if err == nil {
			t.Fatal("expected handler error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for handler error")
	}

	time.Sleep(50 * time.Millisecond)
	if n := calls.Load(); n != maxRetries {
		t.Errorf("expected %d calls, got %d", maxRetries, n)
	}
}

// TestClose_StopsBus verifies Ping, Publish and Subscribe fail after Close and
// that Close is idempotent.
func TestClose_StopsBus(t *testing.T) {
	bus := NewEventBus(nopLogger())
	errCh, err := bus.Subscribe(context.Background(), "t", func(context.Context, *message.Message) error { return nil })
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err := bus.Ping(context.Background()); err != nil {
		t.Fatalf("ping before close: %v", err)
	}

	if err := bus.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	if _, open := <-errCh; open {
		t.Error("expected error channel to be closed")
	}
	if err := bus.Ping(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("ping after close: got %v, want ErrClosed", err)
	}
	if err := bus.PublishJSON(context.Background(), "t", struct{}{}); !errors.Is(err, ErrClosed) {
		t.Errorf("publish after close: got %v, want ErrClosed", err)
	}
	if _, err := bus.Subscribe(context.Background(), "t", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("subscribe after close: got %v, want ErrClosed", err)
	}
}
