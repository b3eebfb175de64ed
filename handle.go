package htmlsaver

import (
	"log/slog"
	"sync"
)

// core is the sending side shared between a Handle and its Senders. The
// closed flag and the channel send are covered by one read lock so that a
// save either completes before shutdown marks the core closed (and is then
// drained by the worker) or observes the flag and fails with
// ErrChannelClosed. A send that merely raced the flag could land in the
// channel after the worker has already drained and exited, silently losing
// an item that Save reported as admitted.
type core[R Saveable] struct {
	ch      chan R
	mu      sync.RWMutex
	closed  bool
	logger  *slog.Logger
	metrics *Metrics
}

func (c *core[R]) save(item R) error {
	var err error
	c.mu.RLock()
	if c.closed {
		err = ErrChannelClosed
	} else {
		select {
		case c.ch <- item:
		default:
			err = ErrChannelFull
		}
	}
	c.mu.RUnlock()
	c.metrics.recordSave(err)
	return err
}

// close marks the core closed, waiting out any save in flight.
func (c *core[R]) close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *core[R]) saveOrLog(item R) {
	if err := c.save(item); err != nil {
		c.logger.Error("failed to queue save request", "error", err)
	}
}

// Handle is the owning handle returned by Builder.Build. It uniquely owns
// the shutdown signal and the background worker goroutine: use Save to
// queue items and Shutdown to stop the worker and flush everything still
// queued. For submitting items from many goroutines, derive cheap Sender
// proxies via Sender.
type Handle[R Saveable] struct {
	core     *core[R]
	shutdown chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Save queues an item for persistence. It never blocks: the item is either
// enqueued immediately or rejected immediately with ErrChannelFull (channel
// at capacity) or ErrChannelClosed (worker shut down). Rejected items are
// never retried by this package.
func (h *Handle[R]) Save(item R) error {
	return h.core.save(item)
}

// SaveOrLog queues an item for persistence, logging a failed admission
// instead of returning it.
func (h *Handle[R]) SaveOrLog(item R) {
	h.core.saveOrLog(item)
}

// Sender returns a lightweight, freely copyable sender sharing this
// handle's channel. Senders can queue items from any number of goroutines
// but cannot shut the worker down and do not keep it alive.
func (h *Handle[R]) Sender() Sender[R] {
	return Sender[R]{core: h.core}
}

// Shutdown stops the background worker gracefully: it fires the shutdown
// signal, then blocks until the worker has drained the channel and flushed
// the final batch. Every item admitted before the call (and any admitted
// concurrently, up to the channel's capacity) is attempted for write
// before Shutdown returns.
//
// There is no timeout: a storage backend that hangs on Put stalls the
// in-flight flush, and therefore Shutdown, indefinitely.
func (h *Handle[R]) Shutdown() {
	h.once.Do(func() {
		h.core.close()
		close(h.shutdown)
	})
	<-h.done
}

// Sender submits save requests from multiple goroutines. Obtained via
// Handle.Sender; the zero value is not usable.
type Sender[R Saveable] struct {
	core *core[R]
}

// Save queues an item for persistence. See Handle.Save.
func (s Sender[R]) Save(item R) error {
	return s.core.save(item)
}

// SaveOrLog queues an item for persistence, logging a failed admission
// instead of returning it.
func (s Sender[R]) SaveOrLog(item R) {
	s.core.saveOrLog(item)
}
