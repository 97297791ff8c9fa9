package js

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
)

func newTestVM(t *testing.T) *goja.Runtime {
	t.Helper()
	vm := goja.New()
	if err := NewBindings(vm).Install(); err != nil {
		t.Fatalf("install failed: %v", err)
	}
	return vm
}

func TestCSSTag(t *testing.T) {
	vm := newTestVM(t)

	v, err := vm.RunString("css`div { color: red; }`.cssText")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "div { color: red; }" {
		t.Errorf("unexpected cssText %q", v.String())
	}
}

func TestCSSTagInterpolation(t *testing.T) {
	vm := newTestVM(t)

	v, err := vm.RunString("css`div { color: ${unsafeCSS('red')}; width: ${100}px; }`.cssText")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "div { color: red; width: 100px; }"
	if v.String() != want {
		t.Errorf("expected %q, got %q", want, v.String())
	}
}

func TestCSSTagNestedResults(t *testing.T) {
	vm := newTestVM(t)

	v, err := vm.RunString(`
		const base = css` + "`.base { margin: 0; }`" + `;
		css` + "`${base} .extra { padding: 0; }`" + `.cssText
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != ".base { margin: 0; } .extra { padding: 0; }" {
		t.Errorf("unexpected cssText %q", v.String())
	}
}

func TestCSSTagRejectsStrings(t *testing.T) {
	vm := newTestVM(t)

	_, err := vm.RunString("css`a${'injected'}b`")
	if err == nil {
		t.Fatal("expected a TypeError for string interpolation")
	}
	if !strings.Contains(err.Error(), "UnsafeCSS") {
		t.Errorf("expected the error to point at the escape hatch, got %v", err)
	}

	// The error is catchable from script.
	v, err := vm.RunString(`
		(() => {
			try { css` + "`a${'x'}b`" + `; return 'no error'; }
			catch (e) { return e instanceof TypeError ? 'type error' : 'other'; }
		})()
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "type error" {
		t.Errorf("expected 'type error', got %q", v.String())
	}
}

func TestUnsafeCSSToString(t *testing.T) {
	vm := newTestVM(t)

	v, err := vm.RunString("'' + unsafeCSS(4)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != "4" {
		t.Errorf("expected '4', got %q", v.String())
	}
}

func TestCSSStyleSheetConstructor(t *testing.T) {
	vm := newTestVM(t)

	v, err := vm.RunString(`
		const sheet = new CSSStyleSheet();
		sheet.replaceSync('.a { color: red; }');
		sheet.cssText
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != ".a{color:red}" {
		t.Errorf("unexpected cssText %q", v.String())
	}
}

func TestCSSStyleSheetInsertDelete(t *testing.T) {
	vm := newTestVM(t)

	v, err := vm.RunString(`
		const sheet = new CSSStyleSheet();
		sheet.insertRule('.a { color: red; }', 0);
		sheet.insertRule('.b { color: blue; }', 0);
		sheet.deleteRule(1);
		sheet.cssText
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.String() != ".b{color:blue}" {
		t.Errorf("unexpected cssText %q", v.String())
	}

	if _, err := vm.RunString("new CSSStyleSheet().deleteRule(3)"); err == nil {
		t.Error("expected TypeError for out-of-bounds deleteRule")
	}
}
