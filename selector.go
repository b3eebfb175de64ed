package htmlsaver

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// SelectorAction describes what to do with elements matching a CSS selector.
// Construct values with RemoveElement, RemoveAttr, or ReplaceText.
type SelectorAction struct {
	op  selectorOp
	arg string
}

type selectorOp int

const (
	opRemoveElement selectorOp = iota
	opRemoveAttr
	opReplaceText
)

// RemoveElement removes each matching element (and its children).
func RemoveElement() SelectorAction {
	return SelectorAction{op: opRemoveElement}
}

// RemoveAttr removes the named attribute from each matching element.
func RemoveAttr(name string) SelectorAction {
	return SelectorAction{op: opRemoveAttr, arg: name}
}

// ReplaceText replaces the text content of each matching element.
func ReplaceText(text string) SelectorAction {
	return SelectorAction{op: opReplaceText, arg: text}
}

// SelectorRule pairs a CSS selector with the action to apply to its matches.
type SelectorRule struct {
	Selector string
	Action   SelectorAction
}

// SelectorSanitizer locates HTML elements by CSS selector and removes them,
// strips attributes from them, or replaces their text content. Rules are
// applied in order against one parsed document, then the document is
// re-serialized.
//
// The content is run through an HTML5 parse, so output is normalized:
// missing html/head/body wrapper elements are added. Unparsable input
// passes through unchanged.
//
// Example:
//
//	s := htmlsaver.MustSelectorSanitizer([]htmlsaver.SelectorRule{
//		{Selector: "script", Action: htmlsaver.RemoveElement()},
//		{Selector: ".secret", Action: htmlsaver.ReplaceText("[REDACTED]")},
//	})
type SelectorSanitizer struct {
	rules []compiledSelectorRule
}

type compiledSelectorRule struct {
	matcher cascadia.Selector
	action  SelectorAction
}

// NewSelectorSanitizer creates a SelectorSanitizer, returning an error if
// any CSS selector fails to compile.
func NewSelectorSanitizer(rules []SelectorRule) (*SelectorSanitizer, error) {
	compiled := make([]compiledSelectorRule, 0, len(rules))
	for _, r := range rules {
		m, err := cascadia.Compile(r.Selector)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledSelectorRule{matcher: m, action: r.Action})
	}
	return &SelectorSanitizer{rules: compiled}, nil
}

// MustSelectorSanitizer is like NewSelectorSanitizer but panics on an
// invalid selector. Intended for rules known at compile time.
func MustSelectorSanitizer(rules []SelectorRule) *SelectorSanitizer {
	s, err := NewSelectorSanitizer(rules)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *SelectorSanitizer) Sanitize(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	for _, r := range s.rules {
		sel := doc.FindMatcher(r.matcher)
		switch r.action.op {
		case opRemoveElement:
			sel.Remove()
		case opRemoveAttr:
			sel.RemoveAttr(r.action.arg)
		case opReplaceText:
			sel.SetText(r.action.arg)
		}
	}

	out, err := doc.Html()
	if err != nil {
		return html
	}
	return out
}
