package emit

import (
	"github.com/WangTingMan/system-tools-xsdc/flatten"
	"github.com/WangTingMan/system-tools-xsdc/names"
	"github.com/WangTingMan/system-tools-xsdc/resolve"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// field is one emitted class member: an element, attribute, or the
// simple-content text value.
type field struct {
	member     flatten.Member
	fieldName  string // target identifier, e.g. "item"
	accessor   string // "Item"
	targetType string // target-language element type, e.g. "int32_t" or a class name
	collection bool
	optional   bool
	isValue    bool // the simple-content text value field
	isElement  bool // came from a child element rather than an attribute
}

// isElementField reports whether f was flattened from one of ct's
// (or an ancestor's) elements rather than its attributes.
func isElementField(ct *schema.ComplexType, f field) bool {
	return f.isElement
}

// zeroValue is the default-initializer expression for a required
// scalar field, used before the matching attribute or child element is
// looked up. Enum-typed fields default to the class's UNKNOWN member
// (spec §4.4.3): a C++ enum class cannot be initialized from a bare
// integer literal without a cast, so the numeric fallback below never
// applies to an enum-kinded field.
func zeroValue(f field) string {
	if f.member.Core.Kind == resolve.Enum {
		return f.targetType + "::UNKNOWN"
	}
	switch f.targetType {
	case "bool":
		return "false"
	case "std::string":
		return `""`
	case "float", "double":
		return "0"
	default:
		return "0"
	}
}

// parseExpr returns the expression that converts the raw string bound
// to exprVar into f's target type.
func parseExpr(f field, exprVar string) string {
	return parseExprCore(f.member.Core, f.targetType, exprVar)
}

// parseExprCore returns the expression that converts the raw string
// bound to exprVar into core's target type: the resolved CoreType's
// Parse template for primitives, stringTo<Name> for enums, or a bare
// pass-through for already-string-typed fields.
func parseExprCore(core resolve.CoreType, targetType, exprVar string) string {
	switch core.Kind {
	case resolve.Enum:
		return "stringTo" + targetType + "(" + exprVar + ")"
	default:
		if core.Parse == "" {
			return exprVar
		}
		return fmtParse(core.Parse, exprVar)
	}
}

func fmtParse(tmpl, arg string) string {
	out := make([]byte, 0, len(tmpl)+len(arg))
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '%' && i+1 < len(tmpl) && tmpl[i+1] == 's' {
			out = append(out, arg...)
			i++
			continue
		}
		out = append(out, tmpl[i])
	}
	return string(out)
}

// emitComplexType implements spec §4.4.3: forward declaration already
// written by emitForwardDecls, this writes the full class
// declaration and its method definitions. It recurses first into any
// inline complex-typed own element, emitting that type as a separate
// class named after the element, ahead of the enclosing class; it is
// not nested inside the enclosing class's declaration.
func (g *generator) emitComplexType(ct *schema.ComplexType) error {
	if g.seen[ct.Name] {
		return nil
	}
	g.seen[ct.Name] = true

	className := names.Class(ct.Name)
	if err := g.registry.Declare(className); err != nil {
		return err
	}

	elements, attributes, err := flatten.Stack(ct, g.resolver)
	if err != nil {
		return err
	}

	// Anonymous inner classes: any own element whose type is an
	// inline ComplexType is emitted, as a class named after the
	// element, before this class's own declaration.
	for _, e := range ct.Elements {
		if inner, ok := e.Type.(*schema.ComplexType); ok && inner.Anonymous {
			named := *inner
			named.Name = e.Name
			if err := g.emitComplexType(&named); err != nil {
				return err
			}
		}
	}

	var valueField *field
	if ct.SimpleContent != nil {
		core, err := g.resolver.GetValueType(ct)
		if err != nil {
			return err
		}
		valueField = &field{
			fieldName:  "value",
			accessor:   "Value",
			targetType: g.targetTypeName(core),
			optional:   true,
			isValue:    true,
		}
	}

	ownFields := g.buildFields(elements, attributes, false)
	allFields := g.buildFields(elements, attributes, true)

	baseClass := ""
	if ct.Base.Local != "" && !ct.Base.IsXMLSchemaNS() {
		if _, ok := g.schema.Types[ct.Base.Local].(*schema.ComplexType); ok {
			baseClass = names.Class(ct.Base.Local)
		}
	}

	g.emitClassDecl(className, baseClass, ownFields, valueField)
	g.emitClassImpl(className, baseClass, allFields, ownFields, valueField, ct)

	return nil
}

// buildFields converts flattened members into field descriptors.
// includeInherited selects whether inherited members are included
// (needed for the full constructor signature) or excluded (needed for
// the class's own field declarations, which live in the base class).
func (g *generator) buildFields(elements, attributes []flatten.Member, includeInherited bool) []field {
	var out []field
	for _, m := range elements {
		if m.Inherited && !includeInherited {
			continue
		}
		out = append(out, g.fieldFor(m, true))
	}
	for _, m := range attributes {
		if m.Inherited && !includeInherited {
			continue
		}
		out = append(out, g.fieldFor(m, false))
	}
	return out
}

func (g *generator) fieldFor(m flatten.Member, isElement bool) field {
	target := g.targetTypeName(m.Core)
	collection := isElement && (m.Plural || m.Core.Kind == resolve.Complex)
	optional := !collection && m.Optional
	return field{
		member:     m,
		fieldName:  names.Variable(m.Name),
		accessor:   names.Class(m.Name),
		targetType: target,
		collection: collection,
		optional:   optional,
		isElement:  isElement,
	}
}

// targetTypeName returns the target-language type name for a
// CoreType: the primitive target, or the sanitized class name for a
// Complex or Enum type.
func (g *generator) targetTypeName(core resolve.CoreType) string {
	switch core.Kind {
	case resolve.Complex, resolve.Enum:
		return names.Class(core.Name)
	default:
		return core.Target
	}
}

func (g *generator) emitClassDecl(className, baseClass string, ownFields []field, value *field) {
	d := g.decl
	if baseClass != "" {
		d.line("class %s : public %s {", className, baseClass)
	} else {
		d.line("class %s {", className)
	}
	d.line("public:")
	d.in(func() {
		d.line("static %s read(const XmlNode* node);", className)
		if g.cfg.Writer {
			d.line("void write(XmlWriter& out, const std::string& name) const;")
		}
		d.blank()
		for _, f := range allWithValue(ownFields, value) {
			prefix := accessorPrefix(g.cfg, f.targetType)
			d.line("const %s& %s%s() const;", accessorReturnType(f), prefix, f.accessor)
			d.line("bool has%s() const;", f.accessor)
			if f.collection {
				d.line("const %s* getFirst%s() const;", f.targetType, f.accessor)
			}
		}
	})
	d.blank()
	d.line("private:")
	d.in(func() {
		for _, f := range ownFields {
			d.line("%s %s;", cppFieldType(f), f.fieldName)
		}
		if value != nil {
			d.line("std::optional<%s> %s;", value.targetType, value.fieldName)
		}
	})
	d.line("};")
	d.blank()
}

func allWithValue(fields []field, value *field) []field {
	if value == nil {
		return fields
	}
	return append(append([]field{}, fields...), *value)
}

func cppFieldType(f field) string {
	switch {
	case f.collection:
		return "std::vector<" + f.targetType + ">"
	case f.optional:
		return "std::optional<" + f.targetType + ">"
	default:
		return f.targetType
	}
}

// accessorReturnType is the type get<Name>() returns: the collection
// itself for collection-backed members, or the bare target type
// (never the optional<T> wrapper) for scalar members — get<Name>()
// unwraps an absent optional by aborting instead.
func accessorReturnType(f field) string {
	if f.collection {
		return "std::vector<" + f.targetType + ">"
	}
	return f.targetType
}

func (g *generator) emitClassImpl(className, baseClass string, allFields, ownFields []field, value *field, ct *schema.ComplexType) {
	i := g.impl

	// Constructor. Arguments are the flattened (inherited + own)
	// element and attribute values in the same order (spec §4.4.3);
	// inherited arguments are forwarded to the base-class
	// constructor, own fields are initialized directly. Collection
	// arguments (plural or complex-typed elements) are moved into
	// their std::vector field; a list-typed simple value is not a
	// collection and is passed as a single scalar.
	allArgs := allWithValue(allFields, value)
	ctorArgs := make([]string, 0, len(allArgs))
	for _, f := range allArgs {
		ctorArgs = append(ctorArgs, cppFieldType(f)+" "+f.fieldName)
	}
	explicit := ""
	if len(ctorArgs) == 1 {
		explicit = "explicit "
	}

	var inits []string
	if baseClass != "" {
		var baseArgs []string
		for _, f := range allFields {
			if f.member.Inherited {
				baseArgs = append(baseArgs, f.fieldName)
			}
		}
		inits = append(inits, baseClass+"("+joinArgs(baseArgs)+")")
	}
	for _, f := range allWithValue(ownFields, value) {
		if f.collection {
			inits = append(inits, f.fieldName+"(std::move("+f.fieldName+"))")
		} else {
			inits = append(inits, f.fieldName+"("+f.fieldName+")")
		}
	}
	initList := ""
	if len(inits) > 0 {
		initList = " : " + joinArgs(inits)
	}

	i.line("%s%s::%s(%s)%s {}", explicit, className, className, joinArgs(ctorArgs), initList)
	i.blank()

	for _, f := range allWithValue(ownFields, value) {
		g.emitAccessors(className, f)
	}

	g.emitRead(className, ct, allFields, value)
	if g.cfg.Writer {
		g.emitWrite(className, ownFields, value)
	}
}

func joinArgs(args []string) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += a
	}
	return out
}

func (g *generator) emitAccessors(className string, f field) {
	i := g.impl
	prefix := accessorPrefix(g.cfg, f.targetType)

	i.line("const %s& %s::%s%s() const {", accessorReturnType(f), className, prefix, f.accessor)
	i.in(func() {
		switch {
		case f.optional:
			i.line(`if (!%s.has_value()) xsdcAbort("absent optional field %s");`, f.fieldName, f.fieldName)
			i.line("return *%s;", f.fieldName)
		default:
			i.line("return %s;", f.fieldName)
		}
	})
	i.line("}")
	i.blank()

	i.line("bool %s::has%s() const {", className, f.accessor)
	i.in(func() {
		switch {
		case f.collection:
			i.line("return !%s.empty();", f.fieldName)
		case f.optional:
			i.line("return %s.has_value();", f.fieldName)
		default:
			i.line("return true;")
		}
	})
	i.line("}")
	i.blank()

	if f.collection {
		i.line("const %s* %s::getFirst%s() const {", f.targetType, className, f.accessor)
		i.in(func() {
			i.line("if (%s.empty()) return nullptr;", f.fieldName)
			i.line("return &%s[0];", f.fieldName)
		})
		i.line("}")
		i.blank()
	}
}

// emitRead implements spec §4.4.3's `read` factory: fetch each
// flattened attribute (default-initializing required locals, leaving
// optional locals empty), read simple content if present, then
// cascade-match each child element by tag name, parsing or
// recursing into the matched type's own read, before constructing the
// instance from the collected locals in flattened order.
func (g *generator) emitRead(className string, ct *schema.ComplexType, allFields []field, value *field) {
	i := g.impl
	i.line("%s %s::read(const XmlNode* node) {", className, className)
	i.in(func() {
		for _, f := range allFields {
			if f.member.Name == "" || f.collection || isElementField(ct, f) {
				continue
			}
			if f.optional {
				i.line("%s %s;", cppFieldType(f), f.fieldName)
			} else {
				i.line("%s %s = %s;", cppFieldType(f), f.fieldName, zeroValue(f))
			}
			i.line(`{ auto raw = node->attr(%q); if (!raw.empty()) %s = %s; }`,
				f.member.Name, f.fieldName, parseExpr(f, "raw"))
		}
		for _, f := range allFields {
			if !isElementField(ct, f) {
				continue
			}
			if !f.collection && !f.optional {
				i.line("%s %s = %s;", cppFieldType(f), f.fieldName, zeroValue(f))
			} else {
				i.line("%s %s;", cppFieldType(f), f.fieldName)
			}
		}
		if value != nil {
			i.line("auto %sText = node->text();", value.fieldName)
			i.line("%s %s = %s;", cppFieldType(*value), value.fieldName, parseExpr(*value, value.fieldName+"Text"))
		}
		i.line("for (const auto* child : node->children()) {")
		i.in(func() {
			first := true
			for _, f := range allFields {
				if !isElementField(ct, f) {
					continue
				}
				cond := "if"
				if !first {
					cond = "else if"
				}
				first = false
				i.line("%s (child->name() == %q) {", cond, f.member.Name)
				i.in(func() {
					if f.member.Core.Kind == resolve.Complex {
						i.line("auto v = %s::read(child);", f.targetType)
					} else {
						i.line("auto v = %s;", parseExpr(f, "child->text()"))
					}
					if f.collection {
						i.line("%s.push_back(v);", f.fieldName)
					} else {
						i.line("%s = v;", f.fieldName)
					}
				})
				i.line("}")
			}
		})
		i.line("}")
		args := make([]string, 0, len(allFields))
		for _, f := range allFields {
			args = append(args, f.fieldName)
		}
		if value != nil {
			args = append(args, value.fieldName)
		}
		i.line("return %s(%s);", className, joinArgs(args))
	})
	i.line("}")
	i.blank()
}

// formatExpr returns the expression that renders a value of f's target
// type as the std::string out.attr/out.text expect: toString for
// enums, a direct pass-through for std::string fields, and
// std::to_string for every other primitive.
func formatExpr(f field, exprVar string) string {
	if f.member.Core.Kind == resolve.Enum {
		return "toString(" + exprVar + ")"
	}
	switch f.targetType {
	case "std::string":
		return exprVar
	case "bool":
		return "(" + exprVar + ` ? "true" : "false")`
	default:
		return "std::to_string(" + exprVar + ")"
	}
}

// emitWrite implements spec §4.4.3's write method: attribute-backed
// fields are rendered into the open tag (out.attr, before any text or
// child is written so the writer can still close the tag's bracket),
// element-backed fields and the simple-content value are rendered
// after, matching the <name attr="val">text<child/></name> shape
// read() expects back.
func (g *generator) emitWrite(className string, ownFields []field, value *field) {
	i := g.impl
	i.line("void %s::write(XmlWriter& out, const std::string& name) const {", className)
	i.in(func() {
		i.line(`out.openTag(name);`)
		for _, f := range ownFields {
			if f.isElement {
				continue
			}
			if f.optional {
				i.line("if (has%s()) out.attr(%q, %s);", f.accessor, f.member.Name, formatExpr(f, "*"+f.fieldName))
			} else {
				i.line("out.attr(%q, %s);", f.member.Name, formatExpr(f, f.fieldName))
			}
		}
		if value != nil {
			i.line("out.text(%s.value_or(%q));", value.fieldName, "")
		}
		for _, f := range ownFields {
			if !f.isElement {
				continue
			}
			if f.collection {
				i.line("for (const auto& item : %s) { out.writeChild(item, %q); }", f.fieldName, f.member.Name)
			} else if f.optional {
				i.line("if (has%s()) out.writeChild(%s, %q);", f.accessor, f.fieldName, f.member.Name)
			} else {
				i.line("out.writeChild(%s, %q);", f.fieldName, f.member.Name)
			}
		}
		i.line(`out.closeTag(name);`)
	})
	i.line("}")
	i.blank()
}
