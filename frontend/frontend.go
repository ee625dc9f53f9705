// Package frontend is the compiler's "external collaborator" of
// spec.md §1: it reads an on-disk XSD document and produces the
// *schema.Schema the resolver, flattener and emitter consume. It is
// intentionally small: a recursive-descent walk over a trimmed DOM
// (frontend/doctree), following xs:include transitively and ignoring
// xs:import (no network schema fetch is attempted).
package frontend

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/WangTingMan/system-tools-xsdc/frontend/doctree"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

const schemaNS = "http://www.w3.org/2001/XMLSchema"

// Error reports a failure reading or parsing an input schema file
// (spec §7's SchemaIOError).
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	return "schema I/O error: " + e.Path + ": " + e.Message
}

// Working with a document tree this deep naturally means deep call
// chains; panic/recover bubbles a parse failure up to Parse's own
// frame without threading an error return through every helper,
// mirroring the teacher's xsd/walk.go parseError convention.
type parseError struct {
	message string
	trail   []string
}

func (e parseError) Error() string {
	if len(e.trail) == 0 {
		return e.message
	}
	return e.message + " (in " + strings.Join(e.trail, ">") + ")"
}

func stop(msg string, args ...interface{}) {
	panic(parseError{message: fmt.Sprintf(msg, args...)})
}

func breadcrumb(el *doctree.Element) string {
	if name := el.Attr("name"); name != "" {
		return el.Name + "(" + name + ")"
	}
	return el.Name
}

// walk invokes fn for every direct child of root in the XML Schema
// namespace or in no namespace, appending root's breadcrumb to any parseError that
// escapes fn.
func walk(root *doctree.Element, fn func(*doctree.Element)) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(parseError); ok {
				err.trail = append(err.trail, breadcrumb(root))
				panic(err)
			}
			panic(r)
		}
	}()
	for _, c := range root.Children {
		if c.Space != "" && c.Space != schemaNS {
			continue
		}
		fn(c)
	}
}

// Parse reads the XSD document at path and every schema it
// transitively xs:includes, returning the merged *schema.Schema and
// the list of included file paths (for the depfile writer).
func Parse(path string) (s *schema.Schema, includes []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = &Error{Path: path, Message: pe.Error()}
				return
			}
			panic(r)
		}
	}()

	s = schema.NewSchema()
	p := &parser{schema: s, seen: map[string]bool{}}
	p.parseFile(path)
	return s, p.includes, nil
}

type parser struct {
	schema   *schema.Schema
	seen     map[string]bool
	includes []string
}

func (p *parser) parseFile(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		stop("%s", err)
	}
	if p.seen[abs] {
		return
	}
	p.seen[abs] = true

	f, err := os.Open(path)
	if err != nil {
		stop("%s", err)
	}
	defer f.Close()

	root, err := doctree.Parse(f)
	if err != nil {
		stop("%s", err)
	}
	if root == nil || root.Name != "schema" {
		stop("%s: expected a schema document element", path)
	}

	tns := root.Attr("targetNamespace")
	if p.schema.TargetNS == "" {
		p.schema.TargetNS = tns
	}

	walk(root, func(el *doctree.Element) {
		switch el.Name {
		case "include":
			loc := el.Attr("schemaLocation")
			if loc == "" {
				return
			}
			incPath := filepath.Join(filepath.Dir(path), loc)
			p.includes = append(p.includes, incPath)
			p.schema.Includes = append(p.schema.Includes, incPath)
			p.parseFile(incPath)
		case "import":
			// no schemaLocation to fetch, or a network fetch we
			// deliberately do not attempt; accepted and ignored.
		case "element":
			e := p.parseElement(el)
			p.schema.Elements[e.Name] = &e
			p.schema.Roots = append(p.schema.Roots, e.Name)
		case "complexType":
			ct := p.parseComplexType(el)
			p.schema.Types[ct.Name] = ct
		case "simpleType":
			st := p.parseSimpleType(el)
			p.schema.Types[st.Name] = st
		case "attribute":
			a := p.parseAttribute(el)
			p.schema.Attributes[a.Name] = &a
		case "group":
			g := p.parseGroup(el)
			p.schema.Groups[g.Name] = g
		case "attributeGroup":
			ag := p.parseAttributeGroup(el)
			p.schema.AttributeGroups[ag.Name] = ag
		}
	})
}

// localRef splits a possibly-prefixed QName attribute value into a
// schema.Ref. Namespace prefixes are not resolved against the
// in-scope binding (the resolver works on local names only); a value
// in the "xs"/"xsd" conventional prefix range is treated as the XML
// Schema namespace so built-ins resolve correctly even without full
// prefix tracking.
func localRef(qname string) schema.Ref {
	if qname == "" {
		return schema.Ref{}
	}
	parts := strings.SplitN(qname, ":", 2)
	if len(parts) == 1 {
		return schema.Ref{Local: parts[0]}
	}
	prefix, local := parts[0], parts[1]
	if prefix == "xs" || prefix == "xsd" {
		return schema.Ref{Space: schema.XMLSchemaNS, Local: local}
	}
	return schema.Ref{Local: local}
}

func (p *parser) parseElement(el *doctree.Element) schema.Element {
	var e schema.Element
	e.Name = el.Attr("name")
	if ref := el.Attr("ref"); ref != "" {
		r := localRef(ref)
		e.Ref = &r
	}
	if t := el.Attr("type"); t != "" {
		r := localRef(t)
		e.TypeRef = &r
	}
	e.Plural = isPlural(el)
	e.Optional = el.Attr("minOccurs") == "0"

	for _, c := range el.Children {
		if c.Space != "" && c.Space != schemaNS {
			continue
		}
		switch c.Name {
		case "complexType":
			e.Type = p.parseComplexType(c)
		case "simpleType":
			e.Type = p.parseSimpleType(c)
		}
	}
	return e
}

func isPlural(el *doctree.Element) bool {
	max := el.Attr("maxOccurs")
	if max == "" || max == "1" {
		return false
	}
	if max == "unbounded" {
		return true
	}
	n, err := strconv.Atoi(max)
	return err == nil && n > 1
}

func (p *parser) parseAttribute(el *doctree.Element) schema.Attribute {
	var a schema.Attribute
	a.Name = el.Attr("name")
	if ref := el.Attr("ref"); ref != "" {
		r := localRef(ref)
		a.Ref = &r
	}
	if t := el.Attr("type"); t != "" {
		r := localRef(t)
		a.TypeRef = &r
	}
	a.Required = el.Attr("use") == "required"
	a.Default = el.Attr("default")

	for _, c := range el.Children {
		if c.Name == "simpleType" {
			a.Type = p.parseSimpleType(c)
		}
	}
	return a
}

func (p *parser) parseComplexType(el *doctree.Element) *schema.ComplexType {
	ct := &schema.ComplexType{
		Name:      el.Attr("name"),
		Anonymous: el.Attr("name") == "",
		Abstract:  el.Attr("abstract") == "true",
		Mixed:     el.Attr("mixed") == "true",
	}

	for _, c := range el.Children {
		if c.Space != "" && c.Space != schemaNS {
			continue
		}
		switch c.Name {
		case "simpleContent":
			p.parseSimpleContent(c, ct)
		case "complexContent":
			ct.Mixed = ct.Mixed || c.Attr("mixed") == "true"
			p.parseComplexContent(c, ct)
		case "sequence", "choice", "all":
			p.parseContentModel(c, ct, wrappingFor(c.Name))
		case "attribute":
			ct.Attributes = append(ct.Attributes, p.parseAttribute(c))
		case "attributeGroup":
			if ref := c.Attr("ref"); ref != "" {
				r := localRef(ref)
				ct.AttributeGroups = append(ct.AttributeGroups, r)
			}
		case "group":
			if ref := c.Attr("ref"); ref != "" {
				r := localRef(ref)
				ct.Group = &r
			}
		}
	}
	return ct
}

func wrappingFor(name string) schema.Wrapping {
	switch name {
	case "choice":
		return schema.Choice
	case "all":
		return schema.All
	default:
		return schema.Plain
	}
}

// parseContentModel appends the elements (and nested group references)
// of a sequence/choice/all to ct, tagging each with wrapping.
func (p *parser) parseContentModel(el *doctree.Element, ct *schema.ComplexType, wrapping schema.Wrapping) {
	for _, c := range el.Children {
		if c.Space != "" && c.Space != schemaNS {
			continue
		}
		switch c.Name {
		case "element":
			e := p.parseElement(c)
			e.Wrapping = wrapping
			if wrapping == schema.Choice {
				e.Optional = true
			}
			ct.Elements = append(ct.Elements, e)
		case "sequence", "choice", "all":
			// Nested groups inherit the enclosing wrapping unless
			// it is Plain, in which case they take their own, so a
			// choice nested in a sequence is still tagged Choice.
			inner := wrapping
			if inner == schema.Plain {
				inner = wrappingFor(c.Name)
			}
			p.parseContentModel(c, ct, inner)
		case "group":
			if ref := c.Attr("ref"); ref != "" {
				r := localRef(ref)
				ct.Group = &r
			}
		}
	}
}

func (p *parser) parseSimpleContent(el *doctree.Element, ct *schema.ComplexType) {
	for _, c := range el.Children {
		if c.Name != "extension" && c.Name != "restriction" {
			continue
		}
		base := localRef(c.Attr("base"))
		ct.SimpleContent = &base
		for _, gc := range c.Children {
			switch gc.Name {
			case "attribute":
				ct.Attributes = append(ct.Attributes, p.parseAttribute(gc))
			case "attributeGroup":
				if ref := gc.Attr("ref"); ref != "" {
					r := localRef(ref)
					ct.AttributeGroups = append(ct.AttributeGroups, r)
				}
			}
		}
	}
}

func (p *parser) parseComplexContent(el *doctree.Element, ct *schema.ComplexType) {
	for _, c := range el.Children {
		if c.Name != "extension" && c.Name != "restriction" {
			continue
		}
		ct.Base = localRef(c.Attr("base"))
		ct.Extends = c.Name == "extension"
		for _, gc := range c.Children {
			switch gc.Name {
			case "sequence", "choice", "all":
				p.parseContentModel(gc, ct, wrappingFor(gc.Name))
			case "attribute":
				ct.Attributes = append(ct.Attributes, p.parseAttribute(gc))
			case "attributeGroup":
				if ref := gc.Attr("ref"); ref != "" {
					r := localRef(ref)
					ct.AttributeGroups = append(ct.AttributeGroups, r)
				}
			case "group":
				if ref := gc.Attr("ref"); ref != "" {
					r := localRef(ref)
					ct.Group = &r
				}
			}
		}
	}
}

func (p *parser) parseSimpleType(el *doctree.Element) *schema.SimpleType {
	st := &schema.SimpleType{
		Name:      el.Attr("name"),
		Anonymous: el.Attr("name") == "",
	}
	for _, c := range el.Children {
		if c.Space != "" && c.Space != schemaNS {
			continue
		}
		switch c.Name {
		case "restriction":
			st.Restriction = p.parseRestriction(c)
		case "list":
			if it := c.Attr("itemType"); it != "" {
				r := localRef(it)
				st.List = &r
			}
		case "union":
			for _, m := range strings.Fields(c.Attr("memberTypes")) {
				st.Union = append(st.Union, localRef(m))
			}
		}
	}
	return st
}

func (p *parser) parseRestriction(el *doctree.Element) *schema.Restriction {
	r := &schema.Restriction{Base: localRef(el.Attr("base"))}
	for _, c := range el.Children {
		if c.Space != "" && c.Space != schemaNS {
			continue
		}
		switch c.Name {
		case "enumeration":
			r.Enum = append(r.Enum, c.Attr("value"))
		case "pattern":
			r.Pattern = c.Attr("value")
		case "minInclusive":
			r.Min = c.Attr("value")
		case "maxInclusive":
			r.Max = c.Attr("value")
		case "minLength":
			r.MinLength, _ = strconv.Atoi(c.Attr("value"))
		case "maxLength":
			r.MaxLength, _ = strconv.Atoi(c.Attr("value"))
		}
	}
	return r
}

func (p *parser) parseGroup(el *doctree.Element) *schema.Group {
	g := &schema.Group{Name: el.Attr("name")}
	for _, c := range el.Children {
		switch c.Name {
		case "sequence", "choice", "all":
			for _, gc := range c.Children {
				switch gc.Name {
				case "element":
					g.Elements = append(g.Elements, p.parseElement(gc))
				case "group":
					if ref := gc.Attr("ref"); ref != "" {
						g.Groups = append(g.Groups, localRef(ref))
					}
				}
			}
		}
	}
	return g
}

func (p *parser) parseAttributeGroup(el *doctree.Element) *schema.AttributeGroup {
	ag := &schema.AttributeGroup{Name: el.Attr("name")}
	for _, c := range el.Children {
		switch c.Name {
		case "attribute":
			ag.Attributes = append(ag.Attributes, p.parseAttribute(c))
		case "attributeGroup":
			if ref := c.Attr("ref"); ref != "" {
				ag.AttributeGroups = append(ag.AttributeGroups, localRef(ref))
			}
		}
	}
	return ag
}
