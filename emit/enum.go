package emit

import (
	"github.com/WangTingMan/system-tools-xsdc/internal/ordered"
	"github.com/WangTingMan/system-tools-xsdc/names"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// emitEnum implements spec §4.4.2 for one enumerated simple type: a
// strongly typed enumeration, a string->enum lookup covering only
// real members, a toString covering all members (decimal fallback),
// and a values array under a details namespace for reflective
// iteration.
func (g *generator) emitEnum(st *schema.SimpleType) error {
	className := names.Class(st.Name)
	if err := g.registry.Declare(className); err != nil {
		return err
	}

	members := make([]string, len(st.Restriction.Enum))
	for i, v := range st.Restriction.Enum {
		m := names.Enum(v)
		if m == "UNKNOWN" {
			return &names.CollisionError{Name: className + "::UNKNOWN"}
		}
		members[i] = m
	}

	g.enumDecl.line("enum class %s {", className)
	g.enumDecl.in(func() {
		for _, m := range members {
			g.enumDecl.line("%s,", m)
		}
		g.enumDecl.line("UNKNOWN = -1")
	})
	g.enumDecl.line("};")
	g.enumDecl.blank()
	g.enumDecl.line("%s stringTo%s(const std::string& s);", className, className)
	g.enumDecl.line("std::string toString(%s v);", className)
	g.enumDecl.blank()

	g.enumImpl.line("%s stringTo%s(const std::string& s) {", className, className)
	g.enumImpl.in(func() {
		for i, v := range st.Restriction.Enum {
			g.enumImpl.line(`if (s == %q) return %s::%s;`, v, className, members[i])
		}
		g.enumImpl.line("return %s::UNKNOWN;", className)
	})
	g.enumImpl.line("}")
	g.enumImpl.blank()

	g.enumImpl.line("std::string toString(%s v) {", className)
	g.enumImpl.in(func() {
		g.enumImpl.line("switch (v) {")
		for i, v := range st.Restriction.Enum {
			g.enumImpl.line(`case %s::%s: return %q;`, className, members[i], v)
		}
		g.enumImpl.line("default: return std::to_string(static_cast<int>(v));")
		g.enumImpl.line("}")
	})
	g.enumImpl.line("}")
	g.enumImpl.blank()

	g.enumImpl.line("namespace details {")
	g.enumImpl.in(func() {
		g.enumImpl.line("static const %s %sValues[] = {", className, className)
		g.enumImpl.in(func() {
			for _, m := range members {
				g.enumImpl.line("%s::%s,", className, m)
			}
		})
		g.enumImpl.line("};")
	})
	g.enumImpl.line("} // namespace details")
	g.enumImpl.blank()

	return nil
}

// enumTypes returns the user simple types of s that are enumerations,
// in a deterministic (sorted by local name) order.
func enumTypes(s *schema.Schema) []*schema.SimpleType {
	var out []*schema.SimpleType
	ordered.RangeStrings(s.Types, func(name string) {
		st, ok := s.Types[name].(*schema.SimpleType)
		if !ok || st.Restriction == nil || len(st.Restriction.Enum) == 0 {
			return
		}
		out = append(out, st)
	})
	return out
}
