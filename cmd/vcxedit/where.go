package main

import (
	"github.com/expr-lang/expr"

	"github.com/oatssss/vcxproj-stream-editor/vcxml"
)

// compileWhere compiles an attribute predicate expression into a scan match
// function. The expression sees the candidate element's attributes as a
// string-keyed map named attrs, e.g.:
//
//	attrs.Label == "Globals"
//	attrs["Condition"] contains "Debug"
//
// An empty expression compiles to nil, matching any attributes.
func compileWhere(src string) (func(vcxml.Attrs) bool, error) {
	if src == "" {
		return nil, nil
	}
	prog, err := expr.Compile(src,
		expr.Env(map[string]any{"attrs": map[string]string{}}),
		expr.AsBool())
	if err != nil {
		return nil, err
	}
	return func(attrs vcxml.Attrs) bool {
		m := make(map[string]string, len(attrs))
		for _, a := range attrs {
			m[a.Name] = a.Value
		}
		out, err := expr.Run(prog, map[string]any{"attrs": m})
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}, nil
}
