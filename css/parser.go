package css

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// parseRules parses CSS text into a list of top-level rules. The parser is
// forgiving: input it cannot make sense of is dropped and logged at debug
// level, mirroring how browsers recover from broken stylesheets.
func parseRules(text string, log *zap.Logger) []*Rule {
	input := parse.NewInputString(text)
	p := cssparse.NewParser(input, false)

	var top []*Rule
	var stack []*Rule // open block at-rules, innermost last

	appendRule := func(r *Rule) {
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			parent.nested = append(parent.nested, r)
		} else {
			top = append(top, r)
		}
	}

	for {
		gt, _, data := p.Next()
		switch gt {
		case cssparse.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				log.Debug("css parse stopped", zap.Error(err))
			}
			return top

		case cssparse.BeginAtRuleGrammar:
			r := &Rule{
				ruleType:  atRuleType(string(data)),
				atKeyword: string(data),
				prelude:   tokensText(p.Values()),
				nested:    []*Rule{},
			}
			appendRule(r)
			stack = append(stack, r)

		case cssparse.EndAtRuleGrammar:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case cssparse.AtRuleGrammar:
			appendRule(&Rule{
				ruleType:  atRuleType(string(data)),
				atKeyword: string(data),
				prelude:   tokensText(p.Values()),
			})

		case cssparse.BeginRulesetGrammar:
			r := &Rule{
				ruleType:     StyleRule,
				selectorText: selectorText(data, p.Values()),
			}
			r.declarations = consumeDeclarations(p)
			appendRule(r)

		case cssparse.DeclarationGrammar, cssparse.CustomPropertyGrammar:
			// Declarations directly inside an at-rule block, e.g. @font-face.
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.declarations = append(parent.declarations, makeDeclaration(string(data), p.Values()))
			}
		}
	}
}

// consumeDeclarations reads property declarations until the enclosing ruleset
// ends.
func consumeDeclarations(p *cssparse.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := p.Next()
		switch gt {
		case cssparse.ErrorGrammar, cssparse.EndRulesetGrammar:
			return decls
		case cssparse.DeclarationGrammar, cssparse.CustomPropertyGrammar:
			decls = append(decls, makeDeclaration(string(data), p.Values()))
		}
	}
}

// makeDeclaration builds a Declaration from a property name and its value
// tokens, splitting off a trailing "!important".
func makeDeclaration(property string, values []cssparse.Token) Declaration {
	d := Declaration{Property: strings.ToLower(strings.TrimSpace(property))}

	// A trailing "!" delim followed by an "important" ident marks priority.
	trimmed := values
	if n := len(trimmed); n >= 2 {
		last, beforeLast := trimmed[n-1], trimmed[n-2]
		if last.TokenType == cssparse.IdentToken &&
			strings.EqualFold(string(last.Data), "important") &&
			beforeLast.TokenType == cssparse.DelimToken && string(beforeLast.Data) == "!" {
			d.Important = true
			trimmed = trimmed[:n-2]
		}
	}

	d.Value = tokensText(trimmed)
	return d
}

// selectorText reassembles the selector of a ruleset from the grammar data
// and the prelude tokens.
func selectorText(data []byte, values []cssparse.Token) string {
	var sb strings.Builder
	sb.Write(data)
	writeTokens(&sb, values)
	return strings.TrimSpace(sb.String())
}

// tokensText joins token data into one string, collapsing whitespace runs to
// a single space.
func tokensText(values []cssparse.Token) string {
	var sb strings.Builder
	writeTokens(&sb, values)
	return strings.TrimSpace(sb.String())
}

func writeTokens(sb *strings.Builder, values []cssparse.Token) {
	lastWasSpace := false
	for _, t := range values {
		if t.TokenType == cssparse.WhitespaceToken {
			if !lastWasSpace && sb.Len() > 0 {
				sb.WriteString(" ")
				lastWasSpace = true
			}
			continue
		}
		sb.Write(t.Data)
		lastWasSpace = false
	}
}

func atRuleType(atKeyword string) RuleType {
	switch strings.ToLower(atKeyword) {
	case "@media":
		return MediaRule
	case "@supports":
		return SupportsRule
	case "@import":
		return ImportRule
	default:
		return UnknownRule
	}
}
