package template

import (
	"reflect"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultHelpers returns a fresh helper registry. Each engine owns its own
// copy so that RegisterHelper never leaks across engines.
//
// The and, or and not builtins are left in place so that guards such as
// {{if and .plugins (index .plugins 0)}} still stop at the first false
// argument. ifAny and ifAll replace block helpers: use them as
//
//	{{if ifAny .docker .git}}...{{else}}...{{end}}
func defaultHelpers() template.FuncMap {
	return template.FuncMap{
		"eq":         helperEq,
		"includes":   helperIncludes,
		"capitalize": helperCapitalize,
		"kebabCase":  strcase.ToKebab,
		"camelCase":  strcase.ToLowerCamel,
		"ifAny":      helperOr,
		"ifAll":      helperAnd,
	}
}

// helperEq reports whether a equals any of bs.
func helperEq(a any, bs ...any) bool {
	for _, b := range bs {
		if reflect.DeepEqual(a, b) {
			return true
		}
	}
	return false
}

func helperAnd(args ...any) bool {
	for _, a := range args {
		if !truthy(a) {
			return false
		}
	}
	return len(args) > 0
}

func helperOr(args ...any) bool {
	for _, a := range args {
		if truthy(a) {
			return true
		}
	}
	return false
}

// helperIncludes reports membership for slices and arrays, and substring
// containment for strings.
func helperIncludes(collection any, item any) bool {
	if s, ok := collection.(string); ok {
		sub, ok := item.(string)
		return ok && strings.Contains(s, sub)
	}
	v := reflect.ValueOf(collection)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false
	}
	for i := range v.Len() {
		if reflect.DeepEqual(v.Index(i).Interface(), item) {
			return true
		}
	}
	return false
}

// helperCapitalize upper-cases the first rune and leaves the rest intact.
func helperCapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

func truthy(v any) bool {
	ok, _ := template.IsTrue(v)
	return ok
}

// validHelper mirrors the function shapes text/template accepts: one
// result, or a result followed by an error.
func validHelper(fn any) bool {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return false
	}
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == reflect.TypeFor[error]()
	}
	return false
}
