package authcore

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// gatedSink blocks inside Emit until released, so tests can pin the
// dispatcher goroutine at a known point.
type gatedSink struct {
	entered chan struct{}
	release chan struct{}
	seen    chan AuditEvent
}

func newGatedSink() *gatedSink {
	return &gatedSink{
		entered: make(chan struct{}, 16),
		release: make(chan struct{}),
		seen:    make(chan AuditEvent, 16),
	}
}

func (s *gatedSink) Emit(ctx context.Context, event AuditEvent) {
	s.entered <- struct{}{}
	<-s.release
	s.seen <- event
}

func TestAuditDispatcherDelivers(t *testing.T) {
	sink := NewChannelSink(16)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 16, DropIfFull: true}, sink)

	want := AuditEvent{
		Timestamp: time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC),
		EventType: auditEventStatusChange,
		UserID:    "u1",
		Success:   true,
	}
	d.Emit(context.Background(), want)
	d.Close()

	select {
	case got := <-sink.Events():
		if got.EventType != want.EventType || got.UserID != want.UserID || !got.Success {
			t.Fatalf("delivered event %+v, want %+v", got, want)
		}
	default:
		t.Fatal("event was not delivered before Close returned")
	}
}

func TestAuditDispatcherDropsWhenFull(t *testing.T) {
	sink := newGatedSink()
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	ctx := context.Background()

	// First event: consumed by the dispatcher goroutine, which now blocks
	// inside the sink.
	d.Emit(ctx, AuditEvent{EventType: "e1"})
	<-sink.entered

	// Second event fills the buffer; third has nowhere to go.
	d.Emit(ctx, AuditEvent{EventType: "e2"})
	d.Emit(ctx, AuditEvent{EventType: "e3"})

	if got := d.Dropped(); got != 1 {
		t.Fatalf("Dropped() = %d, want 1", got)
	}

	close(sink.release)
	d.Close()
}

func TestAuditDispatcherEmitAfterCloseIsNoOp(t *testing.T) {
	sink := NewChannelSink(4)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 4, DropIfFull: true}, sink)
	d.Close()

	d.Emit(context.Background(), AuditEvent{EventType: "late"})

	select {
	case got := <-sink.Events():
		t.Fatalf("unexpected event after Close: %+v", got)
	default:
	}
}

func TestAuditDisabledDispatcherIsNil(t *testing.T) {
	if d := newAuditDispatcher(AuditConfig{Enabled: false}, NoOpSink{}); d != nil {
		t.Fatal("disabled audit must not start a dispatcher")
	}

	// Nil receivers are inert.
	var d *auditDispatcher
	d.Emit(context.Background(), AuditEvent{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher must report zero drops")
	}
}

func TestJSONWriterSinkWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{EventType: "e1", UserID: "u1", Success: true})
	sink.Emit(context.Background(), AuditEvent{EventType: "e2", Success: false, Error: "backend offline"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2", len(lines))
	}

	var first AuditEvent
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first.EventType != "e1" || first.UserID != "u1" || !first.Success {
		t.Fatalf("first event = %+v", first)
	}
}

func TestEngineEmitsAuditEvents(t *testing.T) {
	cfg := engineTestConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 16

	sink := NewChannelSink(16)
	f := newTestEngineWithSink(t, cfg, sink)

	if err := f.engine.SetAccountStatus(context.Background(), "u1", StatusSuspended); err != nil {
		t.Fatalf("SetAccountStatus failed: %v", err)
	}
	f.engine.Close()

	var got *AuditEvent
	for {
		select {
		case event := <-sink.Events():
			if event.EventType == auditEventStatusChange {
				e := event
				got = &e
			}
			continue
		default:
		}
		break
	}
	if got == nil {
		t.Fatal("no account_status_change event observed")
	}
	if got.UserID != "u1" || !got.Success {
		t.Fatalf("event = %+v", *got)
	}
	if got.Metadata["status"] != StatusSuspended.String() {
		t.Fatalf("metadata status = %q, want %q", got.Metadata["status"], StatusSuspended.String())
	}
}
