package flatten

import (
	"github.com/WangTingMan/system-tools-xsdc/internal/dependency"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// Order returns the names of every complex type in s, leaves first:
// a type that another complex type contains as an element or extends
// is ordered before its container. This is the order the emitter
// forward-declares and then defines complex-type classes in, so that
// a schema graph containing cycles (spec §9) still compiles: every
// class has already been forward-declared by the time a cyclic
// reference to it is emitted.
func Order(s *schema.Schema) []string {
	var g dependency.Graph
	names := make([]string, 0, len(s.Types))

	for name, t := range s.Types {
		ct, ok := t.(*schema.ComplexType)
		if !ok {
			continue
		}
		names = append(names, name)
		g.Add(name, name)
		for _, dep := range complexDependencies(ct, s) {
			g.Add(name, dep)
		}
	}

	order := make([]string, 0, len(names))
	g.Flatten(func(name string) {
		if _, ok := s.Types[name]; !ok {
			return
		}
		if _, ok := s.Types[name].(*schema.ComplexType); !ok {
			return
		}
		order = append(order, name)
	})
	return order
}

// complexDependencies returns the names of every complex type that ct
// directly depends on: its base type and the type of every element it
// declares (own elements only; group-contributed elements are scalar
// name references resolved by the flattener, not a structural
// dependency edge new to this graph).
func complexDependencies(ct *schema.ComplexType, s *schema.Schema) []string {
	var deps []string
	if ct.Base.Local != "" && !ct.Base.IsXMLSchemaNS() {
		if _, ok := s.Types[ct.Base.Local]; ok {
			deps = append(deps, ct.Base.Local)
		}
	}
	for _, e := range ct.Elements {
		switch {
		case e.Type != nil:
			if name := schema.TypeName(e.Type); name != "" {
				if _, ok := e.Type.(*schema.ComplexType); ok {
					deps = append(deps, name)
				}
			}
		case e.TypeRef != nil && !e.TypeRef.IsXMLSchemaNS():
			if t, ok := s.Types[e.TypeRef.Local]; ok {
				if _, ok := t.(*schema.ComplexType); ok {
					deps = append(deps, e.TypeRef.Local)
				}
			}
		}
	}
	return deps
}
