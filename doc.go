// Package htmlsaver provides batched, asynchronous persistence of HTML
// content with pluggable storage backends and a sanitizer pipeline for
// redacting sensitive content before it is written.
//
// A background worker collects Saveable items from a bounded channel,
// optionally sanitizes their content through a Pipeline, and writes the
// results to a Storage backend (local filesystem, S3-compatible object
// storage, or your own implementation). Items are batched by count and by
// time interval to reduce I/O overhead.
//
// Basic usage:
//
//	type Page struct {
//		URL  string
//		Body string
//	}
//
//	func (p Page) Content() string { return p.Body }
//	func (p Page) Name() string    { return p.URL + ".html" }
//
//	handle, err := htmlsaver.NewBuilder[Page](htmlsaver.NewFSStorage("/tmp/pages")).
//		BatchSize(20).
//		FlushInterval(5 * time.Second).
//		AddSanitizer(htmlsaver.NewSubstringSanitizer([]htmlsaver.Replacement{
//			{Old: "secret", New: "***"},
//		})).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := handle.Save(Page{URL: "index", Body: "<h1>Hi</h1>"}); err != nil {
//		// channel full or worker stopped; caller decides what to do
//	}
//
//	// Before exit, flush everything still queued:
//	handle.Shutdown()
//
// Save never blocks: it either enqueues immediately or fails immediately
// with ErrChannelFull or ErrChannelClosed. Delivery is best effort: each
// admitted item gets exactly one write attempt, failures are logged and
// counted but never retried by this package.
package htmlsaver
