package styles

import (
	"strings"
	"sync"

	"github.com/openshade/shadowstyle/css"
	"github.com/openshade/shadowstyle/dom"
)

var (
	adoptingOnce    sync.Once
	adoptingSupport bool
)

// SupportsAdoptingStyleSheets reports whether shadow roots in this
// environment expose an adopted-stylesheet list. The probe runs once; the
// result is fixed for the lifetime of the process.
func SupportsAdoptingStyleSheets() bool {
	adoptingOnce.Do(func() {
		adoptingSupport = detectAdoptingSupport()
	})
	return adoptingSupport
}

// detectAdoptingSupport probes the dom implementation: it attaches a shadow
// root to a scratch element and checks for the adopted-stylesheet surface.
func detectAdoptingSupport() bool {
	doc := dom.NewDocument()
	host := doc.CreateElement("div")
	sr, err := host.AttachShadow(dom.ShadowRootModeOpen)
	if err != nil || sr == nil {
		return false
	}
	_, ok := interface{}(sr).(interface {
		AdoptedStyleSheets() []*css.CSSStyleSheet
		SetAdoptedStyleSheets([]*css.CSSStyleSheet)
	})
	return ok
}

// GetCompatibleStyle normalizes a style value to whatever this environment
// accepts. With native adopted-stylesheet support it is the identity
// function; without it, stylesheet handles are read back into CSSResults so
// they can be injected as <style> elements.
func GetCompatibleStyle(value StyleSource) StyleSource {
	if SupportsAdoptingStyleSheets() {
		return value
	}
	if sheet, ok := value.(*css.CSSStyleSheet); ok {
		return CSSResultFromStyleSheet(sheet)
	}
	return value
}

// CSSResultFromStyleSheet concatenates the serialized text of every rule in
// the sheet, in rule order, and wraps the result via UnsafeCSS. The rule
// text may differ cosmetically from the sheet's original source but is
// semantically equivalent.
func CSSResultFromStyleSheet(sheet *css.CSSStyleSheet) *CSSResult {
	var sb strings.Builder
	for _, rule := range sheet.Rules() {
		sb.WriteString(rule.CSSText())
	}
	return UnsafeCSS(sb.String())
}
