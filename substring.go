package htmlsaver

import "strings"

// Replacement is a single literal find-and-replace rule.
type Replacement struct {
	Old string
	New string
}

// SubstringSanitizer performs exact substring replacements. Rules are
// applied in order; each rule operates on the output of the previous one.
//
// Example:
//
//	s := htmlsaver.NewSubstringSanitizer([]htmlsaver.Replacement{
//		{Old: "password123", New: "***"},
//	})
//	s.Sanitize("pw=password123") // "pw=***"
type SubstringSanitizer struct {
	rules []Replacement
}

// NewSubstringSanitizer creates a SubstringSanitizer from the given rules.
func NewSubstringSanitizer(rules []Replacement) *SubstringSanitizer {
	return &SubstringSanitizer{rules: rules}
}

func (s *SubstringSanitizer) Sanitize(html string) string {
	out := html
	for _, r := range s.rules {
		out = strings.ReplaceAll(out, r.Old, r.New)
	}
	return out
}
