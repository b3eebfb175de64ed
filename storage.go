package htmlsaver

import "context"

// Storage is the backend port: anything that can durably persist named
// content. Implementations must be safe for concurrent use: the worker
// issues all writes in a batch concurrently, with no ordering guarantee
// between them.
//
// The worker never retries: a failed Put is logged, counted, and dropped.
//
// Implementing a custom backend:
//
//	type nullStorage struct{}
//
//	func (nullStorage) Put(ctx context.Context, key string, content []byte, contentType string) error {
//		return nil
//	}
type Storage interface {
	// Put persists content under the given key with the advisory MIME
	// contentType (typically "text/html"). Implementations may reinterpret
	// or ignore contentType.
	Put(ctx context.Context, key string, content []byte, contentType string) error
}
