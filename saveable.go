package htmlsaver

// Saveable is implemented by user-defined types that carry HTML content to
// be persisted. The implementing type holds whatever metadata is needed to
// produce the storage key (Name) and the HTML body (Content).
//
// Example:
//
//	type PageSnapshot struct {
//		URL  string
//		HTML string
//	}
//
//	func (p PageSnapshot) Content() string { return p.HTML }
//	func (p PageSnapshot) Name() string {
//		return strings.ReplaceAll(p.URL, "/", "_") + ".html"
//	}
type Saveable interface {
	// Content returns the raw HTML to save. It is passed through the
	// sanitizer pipeline (if any) before being written to storage.
	Content() string

	// Name returns the storage key (file path / object key) for this item.
	// It is called once per item, by the background worker at flush time,
	// never at admission time, so implementations may defer expensive key
	// computation. If a prefix is configured it is prepended automatically.
	Name() string
}
