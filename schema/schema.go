// Package schema is the in-memory representation of an XML Schema (XSD)
// document. It is built once by the frontend package and is read-only
// from that point on: the resolve, flatten and emit packages all treat
// a *Schema as an immutable value.
//
// The schema package does not parse XSD documents itself, and it does
// not validate instance documents against the schema it describes. It
// only models the subset of XSD structure needed to generate reader,
// writer and accessor code for a target language.
package schema

import "fmt"

// Type is the tagged union of everything that can appear wherever XSD
// allows a type reference: a built-in, a user-declared simple type, or
// a user-declared complex type. The unexported isType method closes
// the set to these three implementations.
type Type interface {
	isType()
}

func (*SimpleType) isType() {}
func (*ComplexType) isType() {}
func (Builtin) isType()      {}

// Ref is a possibly-unqualified XSD name as it appeared in a ref= or
// base= attribute, together with enough of the surrounding namespace
// scope to resolve it. Only the resolve package looks inside a Ref.
type Ref struct {
	// Space is XMLSchemaNS for a name in the XML Schema namespace;
	// the front end leaves it "" for every other name, prefixed or
	// not.
	Space string
	// Local is the local part of the name, e.g. "Color" in
	// "tns:Color".
	Local string
}

func (r Ref) String() string {
	if r.Space == "" {
		return r.Local
	}
	return r.Space + ":" + r.Local
}

// IsXMLSchemaNS reports whether r refers to a name in the
// http://www.w3.org/2001/XMLSchema namespace, i.e. a built-in type.
func (r Ref) IsXMLSchemaNS() bool {
	return r.Space == XMLSchemaNS
}

// XMLSchemaNS is the namespace URI of the XML Schema built-in types.
const XMLSchemaNS = "http://www.w3.org/2001/XMLSchema"

// Restriction narrows the value space of a SimpleType. Only the facets
// relevant to code generation are recorded; pattern, range and length
// facets are parsed (when present) and stored, but the emitter does not
// read them and they carry no runtime effect.
type Restriction struct {
	// Base is the type this restriction narrows.
	Base Ref
	// Enum holds the ordered list of enumeration values. A
	// non-empty Enum makes this an enum type.
	Enum []string
	// Pattern, Min, Max, MinLength, MaxLength are recorded only;
	// they are never enforced and appear nowhere in the output.
	Pattern              string
	Min, Max             string
	MinLength, MaxLength int
	Doc                  string
}

// SimpleType is an XSD type whose content is text only: atomic,
// restricted, a list, or a union of other simple types.
type SimpleType struct {
	Name string
	Doc  string

	// Exactly one of Restriction, List or Union describes this
	// type's shape; a bare alias (no restriction/list/union, just
	// a base=) is represented as a Restriction with an empty Enum
	// and no other facets set.
	Restriction *Restriction
	List        *Ref
	Union       []Ref

	// Anonymous is true for a simpleType with no name attribute,
	// declared inline inside an element or attribute.
	Anonymous bool
}

// ComplexType is an XSD type that may contain attributes and/or child
// elements. ComplexContent types derive from another complex type;
// SimpleContent types derive from a simple type and additionally carry
// attributes.
type ComplexType struct {
	Name string
	Doc  string

	// Base is the type this type extends or restricts, or the
	// zero Ref if this type has no explicit base.
	Base    Ref
	Extends bool

	// SimpleContent is set when this type's textual content (not
	// its attributes) has a simple type, i.e. <xs:simpleContent>.
	SimpleContent *Ref

	Elements        []Element
	Attributes      []Attribute
	AttributeGroups []Ref
	// Group is the element-group this type's content refers to via
	// <xs:group ref="..."/>, if any.
	Group *Ref

	Anonymous bool
	Abstract  bool
	Mixed     bool
}

// Element describes a single child-element declaration, either inline
// inside a complex type or a standalone top-level element.
type Element struct {
	Name string
	Doc  string

	// Ref is set instead of Type when this element is declared as
	// <xs:element ref="other"/>.
	Ref *Ref
	// Type is the type of this element when it is declared inline
	// (or set directly by a caller). Nil for a type="..." reference,
	// which is held in TypeRef, and when Ref is set.
	Type Type
	// TypeRef is set when the type was declared with type="...",
	// as opposed to an inline declaration.
	TypeRef *Ref

	// Plural is true when maxOccurs > 1 or maxOccurs="unbounded".
	Plural bool
	// Optional is true when minOccurs="0".
	Optional bool

	// Wrapping records whether this element came from a <xs:choice>
	// or <xs:all> group. It is carried through flattening; generated
	// field names do not depend on it, and no _optional/_all suffix
	// is applied.
	Wrapping Wrapping
}

// Wrapping tags the syntactic context an Element was declared in.
type Wrapping int

const (
	// Plain elements are declared directly in a sequence.
	Plain Wrapping = iota
	// Choice elements came from an <xs:choice> group and are
	// always optional.
	Choice
	// All elements came from an <xs:all> group.
	All
)

// Attribute describes an <xs:attribute> declaration.
type Attribute struct {
	Name string
	Doc  string

	Ref     *Ref
	Type    Type
	TypeRef *Ref

	Required bool
	Default  string
}

// Group is a named <xs:group>, a reusable sequence of element
// declarations (and possibly nested group references).
type Group struct {
	Name     string
	Doc      string
	Elements []Element
	Groups   []Ref
}

// AttributeGroup is a named <xs:attributeGroup>, a reusable set of
// attribute declarations (and possibly nested attribute-group
// references).
type AttributeGroup struct {
	Name            string
	Doc             string
	Attributes      []Attribute
	AttributeGroups []Ref
}

// Schema is the decoded form of one <xs:schema> document (and,
// transitively, everything it <xs:include>s). All maps are keyed by
// local name and are unique within their kind, per spec §3.
type Schema struct {
	TargetNS string

	Types           map[string]Type
	Elements        map[string]*Element
	Attributes      map[string]*Attribute
	Groups          map[string]*Group
	AttributeGroups map[string]*AttributeGroup

	// Includes records the schemaLocation of every <xs:include>
	// encountered, in the order they were followed, for the
	// depfile writer.
	Includes []string

	// Roots is the declaration-order list of top-level element
	// names; these are the only elements that can be an entrypoint
	// root (spec §4.4.4) unless -r restricts them further.
	Roots []string

	Doc string
}

// NewSchema returns an empty, ready-to-populate Schema.
func NewSchema() *Schema {
	return &Schema{
		Types:           make(map[string]Type),
		Elements:        make(map[string]*Element),
		Attributes:      make(map[string]*Attribute),
		Groups:          make(map[string]*Group),
		AttributeGroups: make(map[string]*AttributeGroup),
	}
}

// TypeName returns the local name of t, or "" for an anonymous or
// built-in type.
func TypeName(t Type) string {
	switch t := t.(type) {
	case *SimpleType:
		return t.Name
	case *ComplexType:
		return t.Name
	case Builtin:
		return t.Name()
	}
	panic(fmt.Sprintf("schema: unexpected Type %T", t))
}
