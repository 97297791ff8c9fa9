package css

import "strings"

// RuleType identifies the kind of a CSS rule.
type RuleType int

const (
	// StyleRule is a regular selector { declarations } rule.
	StyleRule RuleType = 1
	// ImportRule is an @import rule.
	ImportRule RuleType = 3
	// MediaRule is an @media rule with nested rules.
	MediaRule RuleType = 4
	// SupportsRule is an @supports rule with nested rules.
	SupportsRule RuleType = 12
	// UnknownRule is any at-rule this package does not model specially.
	UnknownRule RuleType = 0
)

// Declaration is a single property declaration inside a style rule.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Text returns the serialized declaration, e.g. "color:red" or
// "color:red !important".
func (d Declaration) Text() string {
	if d.Important {
		return d.Property + ":" + d.Value + " !important"
	}
	return d.Property + ":" + d.Value
}

// Rule represents one rule of a stylesheet. Style rules carry a selector and
// declarations; at-rules carry the at-keyword, its prelude and, for block
// at-rules such as @media, a list of nested rules.
type Rule struct {
	ruleType     RuleType
	selectorText string
	declarations []Declaration

	atKeyword string // includes the leading "@"
	prelude   string
	nested    []*Rule

	parentStyleSheet *CSSStyleSheet
	parentRule       *Rule
}

// Type returns the rule type.
func (r *Rule) Type() RuleType {
	return r.ruleType
}

// SelectorText returns the selector of a style rule, or "" for at-rules.
func (r *Rule) SelectorText() string {
	return r.selectorText
}

// Declarations returns the declarations of a style rule in source order.
func (r *Rule) Declarations() []Declaration {
	return r.declarations
}

// AtKeyword returns the at-keyword of an at-rule (e.g. "@media"), or "" for
// style rules.
func (r *Rule) AtKeyword() string {
	return r.atKeyword
}

// Prelude returns the prelude of an at-rule (e.g. the media query text).
func (r *Rule) Prelude() string {
	return r.prelude
}

// Rules returns the nested rules of a block at-rule.
func (r *Rule) Rules() []*Rule {
	return r.nested
}

// ParentStyleSheet returns the stylesheet this rule belongs to.
func (r *Rule) ParentStyleSheet() *CSSStyleSheet {
	return r.parentStyleSheet
}

// ParentRule returns the enclosing at-rule, or nil for top-level rules.
func (r *Rule) ParentRule() *Rule {
	return r.parentRule
}

// GetPropertyValue returns the value of the last declaration for the given
// property, or "" if the rule has no such declaration.
func (r *Rule) GetPropertyValue(property string) string {
	property = strings.ToLower(strings.TrimSpace(property))
	for i := len(r.declarations) - 1; i >= 0; i-- {
		if r.declarations[i].Property == property {
			return r.declarations[i].Value
		}
	}
	return ""
}

// CSSText returns the serialized rule. Style rules serialize compactly, e.g.
// ".a{color:red}"; block at-rules serialize their nested rules in order.
func (r *Rule) CSSText() string {
	var sb strings.Builder
	r.writeCSSText(&sb)
	return sb.String()
}

func (r *Rule) writeCSSText(sb *strings.Builder) {
	switch r.ruleType {
	case StyleRule:
		sb.WriteString(r.selectorText)
		sb.WriteString("{")
		for i, d := range r.declarations {
			if i > 0 {
				sb.WriteString(";")
			}
			sb.WriteString(d.Text())
		}
		sb.WriteString("}")
	case ImportRule:
		sb.WriteString(r.atKeyword)
		if r.prelude != "" {
			sb.WriteString(" ")
			sb.WriteString(r.prelude)
		}
		sb.WriteString(";")
	default:
		sb.WriteString(r.atKeyword)
		if r.prelude != "" {
			sb.WriteString(" ")
			sb.WriteString(r.prelude)
		}
		if r.nested == nil {
			sb.WriteString(";")
			return
		}
		sb.WriteString("{")
		for i, d := range r.declarations {
			if i > 0 {
				sb.WriteString(";")
			}
			sb.WriteString(d.Text())
		}
		for _, nested := range r.nested {
			nested.writeCSSText(sb)
		}
		sb.WriteString("}")
	}
}

// setParents wires parent pointers on the rule and its nested rules.
func (r *Rule) setParents(sheet *CSSStyleSheet, parent *Rule) {
	r.parentStyleSheet = sheet
	r.parentRule = parent
	for _, nested := range r.nested {
		nested.setParents(sheet, r)
	}
}
