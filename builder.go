package htmlsaver

import (
	"log/slog"
	"time"
)

// Builder configures and starts a Handle. It provides a fluent API for the
// batch size, flush interval, channel buffer capacity, storage key prefix,
// and the sanitizer pipeline.
//
// Example:
//
//	handle, err := htmlsaver.NewBuilder[MyRequest](htmlsaver.NewFSStorage("/tmp/html")).
//		BatchSize(100).
//		FlushInterval(10 * time.Second).
//		ChannelBuffer(5000).
//		Prefix("snapshots/v1").
//		AddSanitizer(htmlsaver.NewSubstringSanitizer([]htmlsaver.Replacement{
//			{Old: "secret", New: "***"},
//		})).
//		Build()
type Builder[R Saveable] struct {
	storage  Storage
	cfg      Config
	pipeline *Pipeline
	clock    Clock
	logger   *slog.Logger
	metrics  *Metrics
}

// NewBuilder returns a builder for the given storage backend with the
// defaults of DefaultConfig, an empty pipeline, the real clock, and the
// default slog logger.
func NewBuilder[R Saveable](storage Storage) *Builder[R] {
	return &Builder[R]{
		storage:  storage,
		cfg:      DefaultConfig(),
		pipeline: NewPipeline(),
		clock:    RealClock,
	}
}

// BatchSize sets the number of items that triggers an immediate flush.
func (b *Builder[R]) BatchSize(size int) *Builder[R] {
	b.cfg.BatchSize = size
	return b
}

// FlushInterval sets how often a non-empty batch is flushed regardless of
// size.
func (b *Builder[R]) FlushInterval(interval time.Duration) *Builder[R] {
	b.cfg.FlushInterval = interval
	return b
}

// ChannelBuffer sets the capacity of the channel between producers and the
// worker.
func (b *Builder[R]) ChannelBuffer(size int) *Builder[R] {
	b.cfg.ChannelBuffer = size
	return b
}

// Prefix sets a prefix that is prepended to every storage key, separated
// by "/".
func (b *Builder[R]) Prefix(prefix string) *Builder[R] {
	b.cfg.Prefix = prefix
	return b
}

// WithConfig replaces all settings at once, e.g. with a Config loaded via
// LoadConfig.
func (b *Builder[R]) WithConfig(cfg Config) *Builder[R] {
	b.cfg = cfg
	return b
}

// AddSanitizer appends a sanitizer to the pipeline. Sanitizers run in the
// order they are added, each receiving the output of the previous one.
func (b *Builder[R]) AddSanitizer(s Sanitizer) *Builder[R] {
	b.pipeline.Add(s)
	return b
}

// WithClock sets the clock used for flush scheduling. Use a fake clock for
// deterministic tests; defaults to RealClock.
func (b *Builder[R]) WithClock(clock Clock) *Builder[R] {
	b.clock = clock
	return b
}

// WithLogger sets the logger for worker diagnostics; defaults to
// slog.Default().
func (b *Builder[R]) WithLogger(logger *slog.Logger) *Builder[R] {
	b.logger = logger
	return b
}

// WithMetrics enables Prometheus instrumentation for this worker.
func (b *Builder[R]) WithMetrics(m *Metrics) *Builder[R] {
	b.metrics = m
	return b
}

// Build validates the configuration, starts the background worker, and
// returns the Handle used to submit items and control the worker
// lifecycle.
func (b *Builder[R]) Build() (*Handle[R], error) {
	if b.storage == nil {
		return nil, &ConfigError{Field: "storage", Reason: "must not be nil"}
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &core[R]{
		ch:      make(chan R, b.cfg.ChannelBuffer),
		logger:  logger,
		metrics: b.metrics,
	}
	shutdown := make(chan struct{})
	done := make(chan struct{})

	w := &worker[R]{
		in:       c.ch,
		shutdown: shutdown,
		storage:  b.storage,
		pipeline: b.pipeline,
		prefix:   b.cfg.Prefix,
		cfg:      b.cfg,
		clock:    b.clock,
		logger:   logger,
		metrics:  b.metrics,
	}
	go func() {
		defer close(done)
		w.run()
	}()

	return &Handle[R]{core: c, shutdown: shutdown, done: done}, nil
}
