// Package styles provides safe construction of CSS text and applies styles
// to shadow roots.
//
// A CSSResult can only be made through CSS or UnsafeCSS. CSS assembles text
// from literal fragments and already-vetted interpolations, so a stylesheet
// can never be built from an untrusted string by accident; UnsafeCSS is the
// explicit opt-out for callers that trust their input. AdoptStyles applies
// a list of style sources to a shadow root, using the root's
// adopted-stylesheet list when the environment supports it and falling back
// to injected <style> elements bounded by marker comments when it does not.
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openshade/shadowstyle/css"
)

// constructionGate is the unforgeable token shared by the two factory
// functions. A CSSResult carrying any other gate value was not made by this
// package.
type constructionGate struct{}

var cssResultGate = &constructionGate{}

// ConstructionError reports creation or use of a CSSResult outside the two
// sanctioned factories. It indicates a programming error and is raised as a
// panic.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	if e.Reason != "" {
		return "styles: " + e.Reason
	}
	return "styles: CSSResult is not constructable; use the CSS template function or UnsafeCSS"
}

// InterpolationError reports a value that is not safe to place into a
// stylesheet. Only CSSResult values and plain numbers are accepted; wrap
// trusted strings with UnsafeCSS. It is raised as a panic.
type InterpolationError struct {
	Value interface{}
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("styles: value %v is not a supported CSS value; interpolate a CSSResult or a number, or wrap a trusted string with UnsafeCSS", e.Value)
}

// CSSResult is an immutable wrapper around CSS text, plus a lazily created
// constructed stylesheet holding that text. The zero value is unusable:
// every accessor panics with a ConstructionError unless the value came from
// CSS or UnsafeCSS.
type CSSResult struct {
	cssText string
	gate    *constructionGate
	sheet   *css.CSSStyleSheet
}

func newCSSResult(cssText string, gate *constructionGate) *CSSResult {
	if gate != cssResultGate {
		panic(&ConstructionError{})
	}
	return &CSSResult{cssText: cssText, gate: gate}
}

func (r *CSSResult) mustBeConstructed() {
	if r.gate != cssResultGate {
		panic(&ConstructionError{})
	}
}

// CSSText returns the wrapped CSS text verbatim.
func (r *CSSResult) CSSText() string {
	r.mustBeConstructed()
	return r.cssText
}

// String returns the wrapped CSS text, so a CSSResult can be used anywhere a
// string-coercible style value is expected.
func (r *CSSResult) String() string {
	return r.CSSText()
}

// StyleSheet returns the constructed stylesheet for this result, creating and
// caching it on first call. When the environment does not support adopting
// stylesheets it returns nil, signaling callers to fall back to <style>
// element injection.
func (r *CSSResult) StyleSheet() *css.CSSStyleSheet {
	r.mustBeConstructed()
	if r.sheet == nil && SupportsAdoptingStyleSheets() {
		sheet := css.NewStyleSheet()
		// The text was vetted at construction. @import rules are dropped by
		// ReplaceSync, matching constructed-stylesheet parsing rules.
		_ = sheet.ReplaceSync(r.cssText)
		r.sheet = sheet
	}
	return r.sheet
}

// CSS builds a CSSResult from literal template fragments and interpolated
// values, joined left to right: fragments[0], value 0, fragments[1], and so
// on. There must be exactly one more fragment than values. Each value must
// be a *CSSResult or a number; any other value panics with an
// InterpolationError rather than being silently coerced, since silent string
// coercion of untrusted values is exactly the injection this function
// prevents.
func CSS(fragments []string, values ...interface{}) *CSSResult {
	if len(fragments) != len(values)+1 {
		panic(&ConstructionError{
			Reason: fmt.Sprintf("css template needs one more fragment than values, got %d fragments for %d values", len(fragments), len(values)),
		})
	}
	if len(values) == 0 {
		return newCSSResult(fragments[0], cssResultGate)
	}

	var sb strings.Builder
	sb.WriteString(fragments[0])
	for i, v := range values {
		sb.WriteString(textFromCSSValue(v))
		sb.WriteString(fragments[i+1])
	}
	return newCSSResult(sb.String(), cssResultGate)
}

// UnsafeCSS wraps any value as a CSSResult without the interpolation safety
// check. The caller is responsible for trusting the input.
func UnsafeCSS(value interface{}) *CSSResult {
	return newCSSResult(fmt.Sprint(value), cssResultGate)
}

// textFromCSSValue converts one interpolated value to its text form,
// rejecting anything that is not a CSSResult or a number.
func textFromCSSValue(value interface{}) string {
	switch v := value.(type) {
	case *CSSResult:
		return v.CSSText()
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		panic(&InterpolationError{Value: value})
	}
}
