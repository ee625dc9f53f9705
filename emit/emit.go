package emit

import (
	"bytes"
	"fmt"

	"github.com/WangTingMan/system-tools-xsdc/flatten"
	"github.com/WangTingMan/system-tools-xsdc/names"
	"github.com/WangTingMan/system-tools-xsdc/resolve"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// generator holds the state threaded through every emitX method: the
// resolved schema, the configuration, the name registry, a dedup set
// of already-emitted complex-type names, and the declaration/
// implementation accumulators.
type generator struct {
	cfg      *Config
	schema   *schema.Schema
	resolver *resolve.Resolver
	registry *names.Registry
	seen     map[string]bool

	enumDecl *buffer
	enumImpl *buffer
	decl     *buffer
	impl     *buffer
}

// Output is the generated source text, split the way spec §6.3
// describes: an enum pair and a parser pair, either of which may be
// produced alone under -e/-x.
type Output struct {
	EnumHeader []byte
	EnumImpl   []byte
	Header     []byte
	Impl       []byte
}

// Generate runs the emitter over s per cfg and returns the rendered
// output buffers. It implements spec §4.4's fixed iteration order:
// enums first, then complex types in dependency (leaves-first) order,
// then root-element entrypoints.
func Generate(cfg *Config, s *schema.Schema) (*Output, error) {
	g := &generator{
		cfg:      cfg,
		schema:   s,
		resolver: resolve.New(s),
		registry: names.NewRegistry(),
		seen:     make(map[string]bool),
		enumDecl: &buffer{},
		enumImpl: &buffer{},
		decl:     &buffer{},
		impl:     &buffer{},
	}

	cfg.debugf("emitting %d enum type(s)", len(enumTypes(s)))
	for _, st := range enumTypes(s) {
		if err := g.emitEnum(st); err != nil {
			return nil, err
		}
	}

	if cfg.GenEnumsOnly {
		return &Output{
			EnumHeader: g.renderEnumHeader(),
			EnumImpl:   g.renderEnumImpl(),
		}, nil
	}

	order := flatten.Order(s)
	cfg.debugf("emitting %d complex type(s) in leaves-first order", len(order))

	g.emitForwardDecls(order)

	for _, name := range order {
		ct, ok := s.Types[name].(*schema.ComplexType)
		if !ok {
			continue
		}
		if err := g.emitComplexType(ct); err != nil {
			return nil, err
		}
	}

	// A top-level element with an inline complex type has no entry in
	// s.Types; its class is named after the element, which is the
	// class its entrypoint delegates to.
	for _, name := range s.Roots {
		e := s.Elements[name]
		if inner, ok := e.Type.(*schema.ComplexType); ok && inner.Anonymous {
			named := *inner
			named.Name = e.Name
			if err := g.emitComplexType(&named); err != nil {
				return nil, err
			}
		}
	}

	roots := rootElements(s, cfg)
	if len(roots) == 0 {
		return nil, fmt.Errorf("no root element to emit entrypoints for")
	}
	if err := g.emitEntrypoints(roots); err != nil {
		return nil, err
	}

	out := &Output{
		Header: g.renderHeader(),
		Impl:   g.renderImpl(),
	}
	if cfg.GenParserOnly {
		out.EnumHeader = nil
		out.EnumImpl = nil
	} else {
		out.EnumHeader = g.renderEnumHeader()
		out.EnumImpl = g.renderEnumImpl()
	}
	return out, nil
}

// emitForwardDecls writes one forward declaration per named complex
// type in order, so that cyclic references between them compile.
// Classes for inline (anonymous) complex types are not forward-declared
// here; each is defined before the class or entrypoint that uses it.
func (g *generator) emitForwardDecls(order []string) {
	for _, name := range order {
		g.decl.line("class %s;", names.Class(name))
	}
	g.decl.blank()
}

func (g *generator) includeGuard() string {
	return "XSDC_" + nameToGuard(g.cfg.outputStem()) + "_H_"
}

func nameToGuard(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			out[i] = c
		default:
			out[i] = '_'
		}
	}
	return string(out)
}

func (g *generator) renderHeader() []byte {
	var b bytes.Buffer
	guard := g.includeGuard()
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <cstdint>\n#include <optional>\n#include <string>\n#include <vector>\n\n")
	for _, ns := range g.cfg.namespaces() {
		fmt.Fprintf(&b, "namespace %s {\n", ns)
	}
	b.WriteString("\n")
	b.Write(g.decl.Bytes())
	for range g.cfg.namespaces() {
		b.WriteString("} // namespace\n")
	}
	fmt.Fprintf(&b, "\n#endif // %s\n", guard)
	return b.Bytes()
}

func (g *generator) renderImpl() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "#include \"%s.h\"\n\n", g.cfg.outputStem())
	for _, ns := range g.cfg.namespaces() {
		fmt.Fprintf(&b, "namespace %s {\n", ns)
	}
	b.WriteString("\n")
	b.Write(g.impl.Bytes())
	for range g.cfg.namespaces() {
		b.WriteString("} // namespace\n")
	}
	return b.Bytes()
}

func (g *generator) renderEnumHeader() []byte {
	var b bytes.Buffer
	guard := "XSDC_" + nameToGuard(g.cfg.outputStem()) + "_ENUMS_H_"
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <string>\n\n")
	for _, ns := range g.cfg.namespaces() {
		fmt.Fprintf(&b, "namespace %s {\n", ns)
	}
	b.WriteString("\n")
	b.Write(g.enumDecl.Bytes())
	for range g.cfg.namespaces() {
		b.WriteString("} // namespace\n")
	}
	fmt.Fprintf(&b, "\n#endif // %s\n", guard)
	return b.Bytes()
}

func (g *generator) renderEnumImpl() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "#include \"%s_enums.h\"\n\n", g.cfg.outputStem())
	for _, ns := range g.cfg.namespaces() {
		fmt.Fprintf(&b, "namespace %s {\n", ns)
	}
	b.WriteString("\n")
	b.Write(g.enumImpl.Bytes())
	for range g.cfg.namespaces() {
		b.WriteString("} // namespace\n")
	}
	return b.Bytes()
}
