// Package js exposes the style-construction API to embedded scripts using
// the goja JavaScript engine (pure Go ES5.1+ implementation).
//
// Scripts get the css template tag, the unsafeCSS escape hatch and the
// CSSStyleSheet constructor, with the same safety semantics as the Go API:
// untrusted interpolations throw a TypeError instead of being coerced.
package js

import (
	"strconv"

	"github.com/dop251/goja"

	"github.com/openshade/shadowstyle/css"
	"github.com/openshade/shadowstyle/styles"
)

// goValueKey is the property under which wrapped objects keep their backing
// Go value.
const goValueKey = "__goValue"

// Bindings installs the styles API into a goja runtime.
type Bindings struct {
	vm *goja.Runtime
}

// NewBindings creates bindings for the given runtime.
func NewBindings(vm *goja.Runtime) *Bindings {
	return &Bindings{vm: vm}
}

// Install registers css, unsafeCSS and CSSStyleSheet as globals.
func (b *Bindings) Install() error {
	if err := b.vm.Set("css", b.cssTag); err != nil {
		return err
	}
	if err := b.vm.Set("unsafeCSS", b.unsafeCSS); err != nil {
		return err
	}
	return b.vm.Set("CSSStyleSheet", b.newStyleSheet)
}

// cssTag implements the css template tag: css(strings, ...values). The
// strings argument is the array of literal fragments the engine passes to a
// tag function.
func (b *Bindings) cssTag(call goja.FunctionCall) goja.Value {
	defer b.rethrowStyleErrors()

	strsObj := call.Argument(0).ToObject(b.vm)
	length := int(strsObj.Get("length").ToInteger())
	fragments := make([]string, 0, length)
	for i := 0; i < length; i++ {
		fragments = append(fragments, strsObj.Get(strconv.Itoa(i)).String())
	}

	values := make([]interface{}, 0, len(call.Arguments))
	for _, arg := range call.Arguments[1:] {
		values = append(values, b.unwrapValue(arg))
	}

	return b.wrapResult(styles.CSS(fragments, values...))
}

// unsafeCSS implements the unchecked wrapper.
func (b *Bindings) unsafeCSS(call goja.FunctionCall) goja.Value {
	return b.wrapResult(styles.UnsafeCSS(call.Argument(0).Export()))
}

// newStyleSheet implements `new CSSStyleSheet()`.
func (b *Bindings) newStyleSheet(call goja.ConstructorCall) *goja.Object {
	sheet := css.NewStyleSheet()
	obj := call.This
	_ = obj.Set(goValueKey, sheet)
	_ = obj.Set("replaceSync", func(fc goja.FunctionCall) goja.Value {
		if err := sheet.ReplaceSync(fc.Argument(0).String()); err != nil {
			panic(b.vm.NewTypeError(err.Error()))
		}
		return goja.Undefined()
	})
	_ = obj.Set("insertRule", func(fc goja.FunctionCall) goja.Value {
		index := int(fc.Argument(1).ToInteger())
		idx, err := sheet.InsertRule(fc.Argument(0).String(), index)
		if err != nil {
			panic(b.vm.NewTypeError(err.Error()))
		}
		return b.vm.ToValue(idx)
	})
	_ = obj.Set("deleteRule", func(fc goja.FunctionCall) goja.Value {
		if err := sheet.DeleteRule(int(fc.Argument(0).ToInteger())); err != nil {
			panic(b.vm.NewTypeError(err.Error()))
		}
		return goja.Undefined()
	})
	obj.DefineAccessorProperty("cssText",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value {
			return b.vm.ToValue(sheet.CSSText())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	return nil // keep This as the constructed object
}

// wrapResult wraps a CSSResult as a script object with cssText and toString.
func (b *Bindings) wrapResult(result *styles.CSSResult) goja.Value {
	obj := b.vm.NewObject()
	_ = obj.Set(goValueKey, result)
	obj.DefineAccessorProperty("cssText",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value {
			return b.vm.ToValue(result.CSSText())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = obj.Set("toString", func(goja.FunctionCall) goja.Value {
		return b.vm.ToValue(result.CSSText())
	})
	return obj
}

// unwrapValue recovers the backing Go value of a wrapped object, so wrapped
// CSSResults interpolate as CSSResults rather than as plain objects.
func (b *Bindings) unwrapValue(v goja.Value) interface{} {
	if obj, ok := v.(*goja.Object); ok {
		if gv := obj.Get(goValueKey); gv != nil {
			switch backing := gv.Export().(type) {
			case *styles.CSSResult:
				return backing
			case *css.CSSStyleSheet:
				return backing
			}
		}
	}
	return v.Export()
}

// rethrowStyleErrors converts the styles package's panics into script
// TypeErrors so scripts can catch them.
func (b *Bindings) rethrowStyleErrors() {
	if r := recover(); r != nil {
		switch err := r.(type) {
		case *styles.InterpolationError:
			panic(b.vm.NewTypeError(err.Error()))
		case *styles.ConstructionError:
			panic(b.vm.NewTypeError(err.Error()))
		default:
			panic(r)
		}
	}
}
