package htmlsaver

import (
	"errors"
	"fmt"
)

// Admission errors returned by Handle.Save and Sender.Save.
var (
	// ErrChannelFull is returned when the internal channel is at capacity.
	// The item was not queued; the caller decides whether to drop, retry,
	// or escalate.
	ErrChannelFull = errors.New("htmlsaver: channel full")

	// ErrChannelClosed is returned when the worker has been shut down and
	// no longer accepts items.
	ErrChannelClosed = errors.New("htmlsaver: channel closed")
)

// ConfigError reports an invalid configuration detected at build time.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("htmlsaver: invalid config: %s %s", e.Field, e.Reason)
}

// StorageError wraps a failure from a storage backend, recording the key
// that was being written.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("htmlsaver: storage put %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying backend error, enabling errors.Is/As chains.
func (e *StorageError) Unwrap() error {
	return e.Err
}
