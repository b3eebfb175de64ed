package htmlsaver

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestHandle_ChannelFull(t *testing.T) {
	storage := newTestStorage()
	storage.gate = make(chan struct{})

	handle, err := NewBuilder[page](storage).
		BatchSize(1).
		FlushInterval(time.Minute).
		ChannelBuffer(1).
		WithClock(clockz.NewFakeClock()).
		WithLogger(quietLogger()).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	// r1 is consumed immediately and holds the worker inside a flush.
	if err := handle.Save(page{name: "r1", body: "b"}); err != nil {
		t.Fatalf("save r1: %v", err)
	}
	<-storage.entered

	// r2 occupies the single buffer slot; r3 must be rejected.
	if err := handle.Save(page{name: "r2", body: "b"}); err != nil {
		t.Fatalf("save r2: %v", err)
	}
	if err := handle.Save(page{name: "r3", body: "b"}); !errors.Is(err, ErrChannelFull) {
		t.Fatalf("expected ErrChannelFull, got %v", err)
	}

	close(storage.gate)
	handle.Shutdown()

	if _, ok := storage.get("r2"); !ok {
		t.Error("expected r2 to be flushed after the channel freed up")
	}
	if _, ok := storage.get("r3"); ok {
		t.Error("r3 was rejected and must not be written")
	}
}

func TestHandle_SaveAfterShutdown(t *testing.T) {
	handle, err := NewBuilder[page](newTestStorage()).
		WithClock(clockz.NewFakeClock()).
		WithLogger(quietLogger()).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	sender := handle.Sender()
	handle.Shutdown()

	if err := handle.Save(page{name: "late", body: "b"}); !errors.Is(err, ErrChannelClosed) {
		t.Errorf("expected ErrChannelClosed from handle, got %v", err)
	}
	if err := sender.Save(page{name: "late", body: "b"}); !errors.Is(err, ErrChannelClosed) {
		t.Errorf("expected ErrChannelClosed from sender, got %v", err)
	}
}

func TestHandle_SenderSharesChannel(t *testing.T) {
	storage := newTestStorage()

	handle, err := NewBuilder[page](storage).
		BatchSize(100).
		FlushInterval(time.Minute).
		WithClock(clockz.NewFakeClock()).
		WithLogger(quietLogger()).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	sender := handle.Sender()
	other := sender // senders copy freely

	if err := sender.Save(page{name: "from-sender", body: "1"}); err != nil {
		t.Fatalf("sender save: %v", err)
	}
	if err := other.Save(page{name: "from-copy", body: "2"}); err != nil {
		t.Fatalf("copied sender save: %v", err)
	}
	if err := handle.Save(page{name: "from-handle", body: "3"}); err != nil {
		t.Fatalf("handle save: %v", err)
	}

	handle.Shutdown()

	for _, key := range []string{"from-sender", "from-copy", "from-handle"} {
		if _, ok := storage.get(key); !ok {
			t.Errorf("expected key %q to be written", key)
		}
	}
}

func TestHandle_ShutdownNeverLosesAdmittedSaves(t *testing.T) {
	storage := newTestStorage()

	handle, err := NewBuilder[page](storage).
		BatchSize(4).
		FlushInterval(time.Minute).
		ChannelBuffer(64).
		WithClock(clockz.NewFakeClock()).
		WithLogger(quietLogger()).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	// Producers race Shutdown. Every Save that returns nil must result in
	// a write before Shutdown returns; saves that lose the race must fail
	// with ErrChannelClosed, never report success and go unwritten.
	var admitted atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			<-start
			for i := 0; i < 50; i++ {
				if err := handle.Save(page{name: fmt.Sprintf("g%d-%d", g, i), body: "b"}); err == nil {
					admitted.Add(1)
				}
			}
		}(g)
	}
	close(start)
	handle.Shutdown()
	wg.Wait()

	if got := int64(storage.count()); got != admitted.Load() {
		t.Fatalf("%d saves reported admitted but %d items written", admitted.Load(), got)
	}
}

func TestHandle_ShutdownIdempotent(t *testing.T) {
	handle, err := NewBuilder[page](newTestStorage()).
		WithClock(clockz.NewFakeClock()).
		WithLogger(quietLogger()).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	handle.Shutdown()
	handle.Shutdown() // second call returns immediately
}

func TestHandle_SaveOrLogLogsRejection(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handle, err := NewBuilder[page](newTestStorage()).
		WithClock(clockz.NewFakeClock()).
		WithLogger(logger).
		Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	handle.Shutdown()
	handle.SaveOrLog(page{name: "late", body: "b"})

	if !strings.Contains(buf.String(), "failed to queue save request") {
		t.Errorf("expected rejection to be logged, got %q", buf.String())
	}
}
