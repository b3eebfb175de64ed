package htmlsaver

// Sanitizer transforms HTML content before it is written to storage.
// Sanitize must be total: it always returns a result and never fails.
// Sanitizers that depend on fallible configuration (regex patterns, CSS
// selectors) must validate it at construction time, not at sanitize time.
// Implementations must be safe for concurrent use by the background worker.
type Sanitizer interface {
	// Sanitize returns the transformed content. It must have no side
	// effects beyond the return value.
	Sanitize(html string) string
}

// Pipeline is an ordered chain of Sanitizers applied sequentially: each
// sanitizer receives the output of the previous one. An empty pipeline is
// a no-op.
type Pipeline struct {
	sanitizers []Sanitizer
}

// NewPipeline creates a pipeline running the given sanitizers in order.
func NewPipeline(sanitizers ...Sanitizer) *Pipeline {
	return &Pipeline{sanitizers: sanitizers}
}

// Add appends a sanitizer to the end of the pipeline.
func (p *Pipeline) Add(s Sanitizer) {
	p.sanitizers = append(p.sanitizers, s)
}

// Sanitize runs the full pipeline on html and returns the final result.
// An empty pipeline returns html unchanged.
func (p *Pipeline) Sanitize(html string) string {
	out := html
	for _, s := range p.sanitizers {
		out = s.Sanitize(out)
	}
	return out
}

// Len reports the number of sanitizers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.sanitizers)
}
