package htmlsaver

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// DefaultContentType is the advisory MIME type passed to Storage.Put.
const DefaultContentType = "text/html"

// worker owns the batch buffer and runs the flush loop. It is the sole
// consumer of the admission channel; nothing else touches the buffer, so no
// locking is needed around it.
type worker[R Saveable] struct {
	in       <-chan R
	shutdown <-chan struct{}
	storage  Storage
	pipeline *Pipeline
	prefix   string
	cfg      Config
	clock    Clock
	logger   *slog.Logger
	metrics  *Metrics
}

// run loops until the shutdown signal fires, racing three events per
// iteration with a fixed priority: shutdown, then a pending record, then an
// elapsed tick. The preliminary non-blocking checks enforce the order
// against Go's random select tie-break, so the worker lifetime stays
// bounded under continuous load and a batch that reaches BatchSize flushes
// on the admission that filled it rather than on a concurrently elapsed
// tick.
func (w *worker[R]) run() {
	batch := make([]R, 0, w.cfg.BatchSize)
	ticker := w.clock.NewTicker(w.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdown:
			w.drain(batch)
			return
		default:
		}

		select {
		case item := <-w.in:
			batch = w.admit(batch, item)
			continue
		default:
		}

		select {
		case <-w.shutdown:
			w.drain(batch)
			return

		case item := <-w.in:
			batch = w.admit(batch, item)

		case <-ticker.C():
			if len(batch) > 0 {
				w.flush(batch, triggerInterval)
				batch = make([]R, 0, w.cfg.BatchSize)
			}
		}
	}
}

// admit appends item to the batch, flushing when it reaches BatchSize.
func (w *worker[R]) admit(batch []R, item R) []R {
	batch = append(batch, item)
	if len(batch) >= w.cfg.BatchSize {
		w.flush(batch, triggerSize)
		batch = make([]R, 0, w.cfg.BatchSize)
	}
	return batch
}

// drain empties the admission channel and performs the final flush. The
// BatchSize cap is not enforced here, so the final batch can exceed it by
// up to the channel capacity.
func (w *worker[R]) drain(batch []R) {
	w.logger.Info("shutdown signal received, draining channel")

	for {
		select {
		case item := <-w.in:
			batch = append(batch, item)
			continue
		default:
		}
		break
	}

	if len(batch) > 0 {
		w.flush(batch, triggerShutdown)
	}
	w.logger.Info("worker shut down")
}

// flush sanitizes every item and writes all of them to storage
// concurrently, returning once every write has resolved. A failed write is
// logged and counted but does not affect the other writes; the batch is
// never retried. Keys are resolved here, not at admission time.
func (w *worker[R]) flush(batch []R, trigger string) {
	start := w.clock.Now()
	w.logger.Debug("flushing batch", "count", len(batch))

	var wg sync.WaitGroup
	var failed atomic.Int64
	ctx := context.Background()

	for _, item := range batch {
		key := item.Name()
		if w.prefix != "" {
			key = w.prefix + "/" + key
		}

		content := item.Content()
		if w.pipeline.Len() > 0 {
			content = w.pipeline.Sanitize(content)
		}

		wg.Add(1)
		go func(key string, content []byte) {
			defer wg.Done()
			if err := w.storage.Put(ctx, key, content, DefaultContentType); err != nil {
				failed.Add(1)
				w.logger.Error("failed to upload", "key", key, "error", err)
			}
		}(key, []byte(content))
	}
	wg.Wait()

	w.metrics.recordFlush(trigger, len(batch), w.clock.Now().Sub(start), int(failed.Load()))
	w.logger.Debug("flushed batch", "count", len(batch), "failed", failed.Load())
}
