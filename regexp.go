package htmlsaver

import "regexp"

// RegexRule is a single regexp find-and-replace rule. Replacement text
// supports $1-style group expansion as in regexp.ReplaceAllString.
type RegexRule struct {
	Pattern     string
	Replacement string
}

// RegexSanitizer applies a series of regexp find-and-replace rules. Rules
// are applied in order; each rule operates on the output of the previous
// one. Patterns are compiled once, at construction time.
//
// Example:
//
//	s := htmlsaver.MustRegexSanitizer([]htmlsaver.RegexRule{
//		{Pattern: `\d{4}-\d{4}-\d{4}-\d{4}`, Replacement: "[CARD REDACTED]"},
//	})
//	s.Sanitize("Card: 4111-1111-1111-1111") // "Card: [CARD REDACTED]"
type RegexSanitizer struct {
	rules []compiledRegexRule
}

type compiledRegexRule struct {
	re          *regexp.Regexp
	replacement string
}

// NewRegexSanitizer creates a RegexSanitizer, returning an error if any
// pattern fails to compile.
func NewRegexSanitizer(rules []RegexRule) (*RegexSanitizer, error) {
	compiled := make([]compiledRegexRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRegexRule{re: re, replacement: r.Replacement})
	}
	return &RegexSanitizer{rules: compiled}, nil
}

// MustRegexSanitizer is like NewRegexSanitizer but panics on an invalid
// pattern. Intended for rules known at compile time.
func MustRegexSanitizer(rules []RegexRule) *RegexSanitizer {
	s, err := NewRegexSanitizer(rules)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *RegexSanitizer) Sanitize(html string) string {
	out := html
	for _, r := range s.rules {
		out = r.re.ReplaceAllString(out, r.replacement)
	}
	return out
}
