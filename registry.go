package htmlsaver

import (
	"fmt"
	"sync"
)

// A process-wide registry of senders keyed by explicit tags. This replaces
// the usual type-erased global singleton: lookups name the tag they want
// and get a typed miss instead of a silent mismatch.
var (
	registryMu sync.RWMutex
	registry   = make(map[string]any)
)

// Register publishes a sender under the given tag so distant parts of the
// program can queue items without threading the handle through every call
// site. Prefer passing Senders explicitly; reach for the registry only when
// that is impractical.
//
// Returns an error if the tag is already registered.
func Register[R Saveable](tag string, sender Sender[R]) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[tag]; exists {
		return fmt.Errorf("htmlsaver: tag %q already registered", tag)
	}
	registry[tag] = sender
	return nil
}

// Lookup returns the sender registered under tag. The second return is
// false if the tag is unknown or was registered with a different record
// type.
func Lookup[R Saveable](tag string) (Sender[R], bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	sender, ok := registry[tag].(Sender[R])
	return sender, ok
}

// Unregister removes the sender registered under tag, if any. Typically
// called before shutting down the owning Handle.
func Unregister(tag string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, tag)
}
