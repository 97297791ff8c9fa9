// Package css provides constructible stylesheets and a small CSSOM.
//
// A CSSStyleSheet made with NewStyleSheet starts empty and is filled with
// ReplaceSync or InsertRule; it can be adopted directly by shadow roots.
// Parse builds a stylesheet from existing CSS text, as if it came from a
// <style> element.
package css

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CSSStyleSheet represents a CSS stylesheet.
// Reference: https://drafts.csswg.org/cssom/#cssstylesheet
type CSSStyleSheet struct {
	log *zap.Logger

	// constructed reports whether the sheet was created through
	// NewStyleSheet. Only constructed sheets may be adopted by a
	// shadow root's adopted-stylesheet list.
	constructed bool

	disabled bool
	rules    []*Rule
}

// Option configures a stylesheet at construction time.
type Option func(s *CSSStyleSheet)

// WithLogger attaches a logger used for parse diagnostics. Without it the
// sheet logs nowhere.
func WithLogger(log *zap.Logger) Option {
	return func(s *CSSStyleSheet) {
		if log != nil {
			s.log = log.Named("css")
		}
	}
}

// NewStyleSheet creates a new, empty constructed stylesheet.
func NewStyleSheet(opts ...Option) *CSSStyleSheet {
	s := &CSSStyleSheet{
		log:         zap.NewNop(),
		constructed: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse creates a stylesheet from CSS text. The result is not constructed:
// it models a sheet that belongs to a <style> or <link> element and cannot
// be adopted directly.
func Parse(text string, opts ...Option) *CSSStyleSheet {
	s := NewStyleSheet(opts...)
	s.constructed = false
	s.replace(text)
	return s
}

// Constructed reports whether this sheet was created with NewStyleSheet.
func (s *CSSStyleSheet) Constructed() bool {
	return s.constructed
}

// Disabled returns whether the stylesheet is disabled.
func (s *CSSStyleSheet) Disabled() bool {
	return s.disabled
}

// SetDisabled sets whether the stylesheet is disabled.
func (s *CSSStyleSheet) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// ReplaceSync replaces the entire contents of the sheet with the rules parsed
// from the given CSS text. @import rules are not allowed in constructed
// stylesheets and are dropped with an error.
func (s *CSSStyleSheet) ReplaceSync(text string) error {
	if !s.constructed {
		return fmt.Errorf("NotAllowedError: failed to execute 'replaceSync': can only be called on a constructed stylesheet")
	}
	return s.replace(text)
}

// Replace has the same behavior as ReplaceSync. In this implementation no
// rule loading is asynchronous, so Replace completes before returning.
func (s *CSSStyleSheet) Replace(text string) error {
	return s.ReplaceSync(text)
}

func (s *CSSStyleSheet) replace(text string) error {
	rules := parseRules(text, s.log)

	var err error
	if s.constructed {
		kept := rules[:0]
		for _, r := range rules {
			if r.ruleType == ImportRule {
				err = fmt.Errorf("NotAllowedError: @import rules are not allowed in constructed stylesheets")
				continue
			}
			kept = append(kept, r)
		}
		rules = kept
	}

	for _, r := range rules {
		r.setParents(s, nil)
	}
	s.rules = rules
	s.log.Debug("replaced stylesheet contents",
		zap.Int("bytes", len(text)), zap.Int("rules", len(rules)))
	return err
}

// Rules returns the top-level rules of the sheet in order.
func (s *CSSStyleSheet) Rules() []*Rule {
	return s.rules
}

// InsertRule parses one rule and inserts it at the given index, returning the
// index.
func (s *CSSStyleSheet) InsertRule(ruleText string, index int) (int, error) {
	if index < 0 || index > len(s.rules) {
		return 0, fmt.Errorf("IndexSizeError: index %d out of bounds", index)
	}

	parsed := parseRules(ruleText, s.log)
	if len(parsed) != 1 {
		return 0, fmt.Errorf("SyntaxError: failed to parse %q as a single rule", ruleText)
	}
	rule := parsed[0]
	if s.constructed && rule.ruleType == ImportRule {
		return 0, fmt.Errorf("NotAllowedError: @import rules are not allowed in constructed stylesheets")
	}
	rule.setParents(s, nil)

	s.rules = append(s.rules, nil)
	copy(s.rules[index+1:], s.rules[index:])
	s.rules[index] = rule
	return index, nil
}

// DeleteRule removes the rule at the given index.
func (s *CSSStyleSheet) DeleteRule(index int) error {
	if index < 0 || index >= len(s.rules) {
		return fmt.Errorf("IndexSizeError: index %d out of bounds", index)
	}
	s.rules = append(s.rules[:index], s.rules[index+1:]...)
	return nil
}

// CSSText returns the serialized stylesheet, one rule per line.
func (s *CSSStyleSheet) CSSText() string {
	var sb strings.Builder
	for i, rule := range s.rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(rule.CSSText())
	}
	return sb.String()
}
