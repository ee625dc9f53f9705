package emit

import (
	"github.com/WangTingMan/system-tools-xsdc/flatten"
	"github.com/WangTingMan/system-tools-xsdc/names"
	"github.com/WangTingMan/system-tools-xsdc/resolve"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// rootElements returns the schema's root elements in declaration
// order, restricted to cfg.Roots when it is non-empty (spec §6.1's
// -r/--root flag).
func rootElements(s *schema.Schema, cfg *Config) []*schema.Element {
	rootNames := s.Roots
	if len(cfg.Roots) > 0 {
		rootNames = cfg.Roots
	}
	var out []*schema.Element
	for _, n := range rootNames {
		if e, ok := s.Elements[n]; ok {
			out = append(out, e)
		}
	}
	return out
}

// emitEntrypoints implements spec §4.4.4: one read<Elt>/parse<Elt>
// pair per root element (plain name if the schema has a single root,
// suffixed by the element's class-cased name otherwise), delegating to
// the root's resolved type rather than a class named after the
// element itself — a root element's name and its type's name need not
// match (<element name="config" type="ConfigType"/>), and a
// simple/builtin-typed root has no generated class to delegate to at
// all. A matching write<Elt> is emitted when writer emission is on.
func (g *generator) emitEntrypoints(roots []*schema.Element) error {
	suffix := len(g.schema.Roots) > 1

	for _, root := range roots {
		resolved, err := g.resolver.ResolveElement(*root)
		if err != nil {
			return err
		}
		t, err := flatten.ElementType(resolved, g.resolver)
		if err != nil {
			return err
		}
		core, err := g.resolver.ParseType(t, resolved.Name)
		if err != nil {
			return err
		}

		fnSuffix := ""
		if suffix {
			fnSuffix = names.Class(root.Name)
		}

		if core.Kind == resolve.Complex {
			g.emitComplexRootEntrypoint(root, fnSuffix, names.Class(core.Name))
		} else {
			g.emitScalarRootEntrypoint(root, fnSuffix, core)
		}
	}
	return nil
}

// emitComplexRootEntrypoint emits read/parse/write for a root element
// whose type is a generated class: the body delegates to that class's
// own read/write.
func (g *generator) emitComplexRootEntrypoint(root *schema.Element, fnSuffix, className string) {
	g.decl.line("std::optional<%s> read%s(const std::string& path);", className, fnSuffix)
	g.decl.line("std::optional<%s> parse%s(const std::string& textBuffer);", className, fnSuffix)
	if g.cfg.Writer {
		g.decl.line("void write%s(XmlWriter& out, const %s& value);", fnSuffix, className)
	}
	g.decl.blank()

	g.impl.line("std::optional<%s> read%s(const std::string& path) {", className, fnSuffix)
	g.impl.in(func() {
		g.impl.line("auto doc = XmlDocument::loadFile(path);")
		g.impl.line("if (!doc) return std::nullopt;")
		g.impl.line("const XmlNode* node = doc->root();")
		g.impl.line(`if (!node || node->name() != %q) return std::nullopt;`, root.Name)
		g.impl.line("return %s::read(node);", className)
	})
	g.impl.line("}")
	g.impl.blank()

	g.impl.line("std::optional<%s> parse%s(const std::string& textBuffer) {", className, fnSuffix)
	g.impl.in(func() {
		g.impl.line("auto doc = XmlDocument::loadBuffer(textBuffer);")
		g.impl.line("if (!doc) return std::nullopt;")
		g.impl.line("const XmlNode* node = doc->root();")
		g.impl.line(`if (!node || node->name() != %q) return std::nullopt;`, root.Name)
		g.impl.line("return %s::read(node);", className)
	})
	g.impl.line("}")
	g.impl.blank()

	if g.cfg.Writer {
		g.impl.line("void write%s(XmlWriter& out, const %s& value) {", fnSuffix, className)
		g.impl.in(func() {
			g.impl.line(`out.writeDeclaration();`)
			g.impl.line(`value.write(out, %q);`, root.Name)
		})
		g.impl.line("}")
		g.impl.blank()
	}
}

// emitScalarRootEntrypoint emits read/parse/write for a root element
// whose type is a builtin or a non-enumerated/enumerated simple type:
// there is no generated class to delegate to, so the body parses the
// document's root node text directly into the resolved target type.
func (g *generator) emitScalarRootEntrypoint(root *schema.Element, fnSuffix string, core resolve.CoreType) {
	targetType := g.targetTypeName(core)
	scalar := field{member: flatten.Member{Core: core}, targetType: targetType}

	g.decl.line("std::optional<%s> read%s(const std::string& path);", targetType, fnSuffix)
	g.decl.line("std::optional<%s> parse%s(const std::string& textBuffer);", targetType, fnSuffix)
	if g.cfg.Writer {
		g.decl.line("void write%s(XmlWriter& out, const %s& value);", fnSuffix, targetType)
	}
	g.decl.blank()

	g.impl.line("std::optional<%s> read%s(const std::string& path) {", targetType, fnSuffix)
	g.impl.in(func() {
		g.impl.line("auto doc = XmlDocument::loadFile(path);")
		g.impl.line("if (!doc) return std::nullopt;")
		g.impl.line("const XmlNode* node = doc->root();")
		g.impl.line(`if (!node || node->name() != %q) return std::nullopt;`, root.Name)
		g.impl.line("return %s;", parseExpr(scalar, "node->text()"))
	})
	g.impl.line("}")
	g.impl.blank()

	g.impl.line("std::optional<%s> parse%s(const std::string& textBuffer) {", targetType, fnSuffix)
	g.impl.in(func() {
		g.impl.line("auto doc = XmlDocument::loadBuffer(textBuffer);")
		g.impl.line("if (!doc) return std::nullopt;")
		g.impl.line("const XmlNode* node = doc->root();")
		g.impl.line(`if (!node || node->name() != %q) return std::nullopt;`, root.Name)
		g.impl.line("return %s;", parseExpr(scalar, "node->text()"))
	})
	g.impl.line("}")
	g.impl.blank()

	if g.cfg.Writer {
		g.impl.line("void write%s(XmlWriter& out, const %s& value) {", fnSuffix, targetType)
		g.impl.in(func() {
			g.impl.line(`out.writeDeclaration();`)
			g.impl.line(`out.openTag(%q);`, root.Name)
			g.impl.line(`out.text(%s);`, formatExpr(scalar, "value"))
			g.impl.line(`out.closeTag(%q);`, root.Name)
		})
		g.impl.line("}")
		g.impl.blank()
	}
}
