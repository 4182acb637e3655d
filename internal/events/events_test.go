package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestPublish_SendsWireEvent(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewSyncProducer(t, cfg)
	t.Cleanup(func() { _ = mock.Close() })

	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(body []byte) error {
		var ev WireEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return err
		}
		if ev.Op != OpCreate || ev.ID != "doc-1" || ev.DocType != "Point" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if ev.TS.IsZero() {
			t.Error("timestamp not stamped")
		}
		return nil
	})

	p := newWithProducer(mock, "geojson-documents")
	err := p.Publish(context.Background(), WireEvent{Op: OpCreate, ID: "doc-1", DocType: "Point"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestPublish_CanceledContext(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewSyncProducer(t, cfg)
	t.Cleanup(func() { _ = mock.Close() })

	p := newWithProducer(mock, "geojson-documents")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Publish(ctx, WireEvent{Op: OpDelete, ID: "x"}); err == nil {
		t.Fatal("expected error on canceled context")
	}
}

func TestPublish_ExplicitTimestampPreserved(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewSyncProducer(t, cfg)
	t.Cleanup(func() { _ = mock.Close() })

	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(body []byte) error {
		var ev WireEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return err
		}
		if !ev.TS.Equal(want) {
			t.Errorf("ts=%v want %v", ev.TS, want)
		}
		return nil
	})

	p := newWithProducer(mock, "geojson-documents")
	if err := p.Publish(context.Background(), WireEvent{Op: OpDelete, ID: "x", TS: want}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}

func TestNop_IsSilent(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), WireEvent{Op: OpCreate, ID: "a"}); err != nil {
		t.Fatalf("Nop.Publish: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Nop.Close: %v", err)
	}
}
