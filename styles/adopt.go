package styles

import (
	"runtime"
	"sync"
	"weak"

	"github.com/openshade/shadowstyle/css"
	"github.com/openshade/shadowstyle/dom"
)

// StyleSource is a value that can be applied to a shadow root: a *CSSResult
// produced by CSS or UnsafeCSS, or a *css.CSSStyleSheet. Callers supply
// already-flattened ordered lists; nested grouping is resolved upstream.
type StyleSource interface{}

// styleNonce is the ambient content-security nonce stamped onto injected
// <style> elements. Empty means the attribute is omitted.
var styleNonce string

// SetNonce configures the content-security nonce applied to every <style>
// element this package injects from now on.
func SetNonce(nonce string) {
	styleNonce = nonce
}

// Nonce returns the configured content-security nonce, or "".
func Nonce() string {
	return styleNonce
}

// AdoptStyles applies the given style sources to a shadow root. Sources that
// resolve to constructed stylesheets are assigned to the root's
// adopted-stylesheet list; the rest are injected as <style> elements between
// the root's marker comments, in order. When preserveExisting is false, all
// previously applied styling is cleared first.
//
// The adopted-stylesheet assignment is a full replace even when
// preserveExisting is true: the last writer wins. Callers that want to
// accumulate native sheets must pre-merge them into one call.
func AdoptStyles(root *dom.ShadowRoot, sources []StyleSource, preserveExisting bool) {
	var sheets []*css.CSSStyleSheet
	var elements []*dom.Element
	for _, source := range sources {
		switch applied := sheetOrElementToApply(root.OwnerDocument(), source).(type) {
		case *css.CSSStyleSheet:
			sheets = append(sheets, applied)
		case *dom.Element:
			elements = append(elements, applied)
		}
	}

	if !preserveExisting {
		if SupportsAdoptingStyleSheets() {
			root.SetAdoptedStyleSheets(nil)
		}
		clearInjectedStyles(root)
	}

	if len(sheets) > 0 && SupportsAdoptingStyleSheets() {
		root.SetAdoptedStyleSheets(sheets)
	}

	if len(elements) > 0 {
		_, end := stylingMarkers(root)
		parent := root.AsNode()
		for _, el := range elements {
			parent.InsertBefore(el.AsNode(), end)
		}
	}
}

// sheetOrElementToApply resolves one style source to exactly one of: a
// constructed stylesheet (native path) or a <style> element ready for
// injection (fallback path). A source that is neither a stylesheet nor a
// CSSResult panics with an InterpolationError.
func sheetOrElementToApply(doc *dom.Document, source StyleSource) interface{} {
	if sheet, ok := source.(*css.CSSStyleSheet); ok {
		if SupportsAdoptingStyleSheets() {
			return sheet
		}
		// Normalize to text form so both paths share one decision point.
		source = CSSResultFromStyleSheet(sheet)
	}

	result, ok := source.(*CSSResult)
	if !ok {
		panic(&InterpolationError{Value: source})
	}
	if sheet := result.StyleSheet(); sheet != nil {
		return sheet
	}

	style := doc.CreateElement("style")
	if nonce := Nonce(); nonce != "" {
		style.SetAttribute("nonce", nonce)
	}
	style.AppendChild(doc.CreateTextNode(result.CSSText()))
	return style
}

// clearInjectedStyles removes every node strictly between the shadow root's
// marker pair, creating the pair if it does not exist yet. Content outside
// the marker span is never touched.
func clearInjectedStyles(root *dom.ShadowRoot) {
	start, end := stylingMarkers(root)
	parent := root.AsNode()
	for n := start.NextSibling(); n != nil && n != end; {
		next := n.NextSibling()
		parent.RemoveChild(n)
		n = next
	}
}

// markerPair holds the comment nodes delimiting the injected-style region of
// one shadow root. The nodes are referenced weakly here; they stay alive
// through the shadow tree itself.
type markerPair struct {
	start weak.Pointer[dom.Node]
	end   weak.Pointer[dom.Node]
}

var (
	markerMu    sync.Mutex
	markerPairs = make(map[weak.Pointer[dom.ShadowRoot]]markerPair)
)

// stylingMarkers returns the marker pair for the shadow root, creating and
// appending both comments on first use. The side table is keyed by weak
// pointer so it never extends the shadow root's lifetime; the mutex exists
// only because cleanup callbacks run off the caller's goroutine.
func stylingMarkers(root *dom.ShadowRoot) (start, end *dom.Node) {
	key := weak.Make(root)

	markerMu.Lock()
	pair, ok := markerPairs[key]
	markerMu.Unlock()
	if ok {
		if s, e := pair.start.Value(), pair.end.Value(); s != nil && e != nil {
			return s, e
		}
	}

	doc := root.OwnerDocument()
	start = doc.CreateComment("")
	end = doc.CreateComment("")
	node := root.AsNode()
	node.AppendChild(start)
	node.AppendChild(end)

	markerMu.Lock()
	markerPairs[key] = markerPair{start: weak.Make(start), end: weak.Make(end)}
	markerMu.Unlock()

	runtime.AddCleanup(root, func(k weak.Pointer[dom.ShadowRoot]) {
		markerMu.Lock()
		delete(markerPairs, k)
		markerMu.Unlock()
	}, key)

	return start, end
}
