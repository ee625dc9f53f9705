// Package resolve dereferences the ref=/base= chains inside a
// *schema.Schema and classifies every type node as either a built-in,
// a user simple type (scalar, list, union, or enum), or a complex
// type. It is the "type resolver" and "primitive-type map" components
// of the compiler.
package resolve

import (
	"fmt"

	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// Kind enumerates the four resolver/flattener error categories of
// spec §7 that this package can raise. (UsageError and SchemaIOError
// are raised by cmd/xsdc and frontend respectively.)
type Kind int

const (
	UnresolvedReference Kind = iota
	UnknownBuiltin
	NameCollision
	StructuralError
)

func (k Kind) phrase() string {
	switch k {
	case UnresolvedReference:
		return "unresolved reference"
	case UnknownBuiltin:
		return "unknown built-in type"
	case NameCollision:
		return "name collision"
	case StructuralError:
		return "structural error"
	}
	return "error"
}

// Error is the error type every exported Resolver method returns on
// failure. It names the offending local identifier, matching spec
// §7's "stderr line beginning with a one-phrase error category and
// the offending name".
type Error struct {
	Kind Kind
	Name string
}

func (e *Error) Error() string {
	return e.Kind.phrase() + ": " + e.Name
}

func errf(kind Kind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

// CoreKind tags the lowered shape a CoreType ended up with.
type CoreKind int

const (
	// Simple is any scalar or list built-in or user simple type
	// that is not an enumeration.
	Simple CoreKind = iota
	// Enum is a user simple type whose restriction carries one or
	// more enumeration values.
	Enum
	// Complex is a user complex type.
	Complex
)

// CoreType is the lowered description of a Type produced by ParseType
// and ParseSimpleTypeValue: the §4.1 "lowered CoreType (one of
// {simple, complex})", extended with the Enum tag the emitter needs
// to decide between a scalar field and an enum field.
type CoreType struct {
	Kind CoreKind
	// Name is the sanitized type name; populated for Complex and
	// Enum, empty for a bare Simple (which is named only by its
	// Target).
	Name string
	// Target is the target-language type name for Simple and Enum
	// kinds (ignored for Complex, whose target type is the
	// generated class itself).
	Target string
	// Parse is the parse-expression template (a single %s verb)
	// for Simple and Enum kinds.
	Parse string
	// List marks whitespace-separated-list cardinality.
	List bool
}

// Resolver dereferences ref=/base= chains against one *schema.Schema.
// A Resolver is read-only with respect to the Schema it wraps; its own
// mutable state is the simple-type memoization cache described in
// spec §3's Lifecycle section.
type Resolver struct {
	schema *schema.Schema
	cache  map[string]CoreType
}

// New returns a Resolver over s. s is never modified.
func New(s *schema.Schema) *Resolver {
	return &Resolver{schema: s, cache: make(map[string]CoreType)}
}

// ResolveElement returns e with Ref dereferenced against the schema's
// element map. If e.Ref is nil, e is returned unchanged.
func (r *Resolver) ResolveElement(e schema.Element) (schema.Element, error) {
	if e.Ref == nil {
		return e, nil
	}
	el, ok := r.schema.Elements[e.Ref.Local]
	if !ok {
		return e, errf(UnresolvedReference, e.Ref.Local)
	}
	resolved := *el
	resolved.Plural = e.Plural
	resolved.Optional = e.Optional || el.Optional
	resolved.Wrapping = e.Wrapping
	return resolved, nil
}

// ResolveAttribute returns a with Ref dereferenced against the
// schema's attribute map.
func (r *Resolver) ResolveAttribute(a schema.Attribute) (schema.Attribute, error) {
	if a.Ref == nil {
		return a, nil
	}
	at, ok := r.schema.Attributes[a.Ref.Local]
	if !ok {
		return a, errf(UnresolvedReference, a.Ref.Local)
	}
	resolved := *at
	resolved.Required = a.Required || at.Required
	return resolved, nil
}

// ResolveGroup looks up a named element group by ref.
func (r *Resolver) ResolveGroup(ref schema.Ref) (*schema.Group, error) {
	g, ok := r.schema.Groups[ref.Local]
	if !ok {
		return nil, errf(UnresolvedReference, ref.Local)
	}
	return g, nil
}

// ResolveAttributeGroup looks up a named attribute group by ref.
func (r *Resolver) ResolveAttributeGroup(ref schema.Ref) (*schema.AttributeGroup, error) {
	ag, ok := r.schema.AttributeGroups[ref.Local]
	if !ok {
		return nil, errf(UnresolvedReference, ref.Local)
	}
	return ag, nil
}

// GetType looks up a named type: a ref in the XML Schema namespace is
// looked up only as a built-in, any other ref only in the schema's own
// type map.
func (r *Resolver) GetType(ref schema.Ref) (schema.Type, error) {
	if ref.IsXMLSchemaNS() {
		b, err := schema.ParseBuiltin(ref.Local)
		if err != nil {
			return nil, errf(UnknownBuiltin, ref.Local)
		}
		return b, nil
	}
	t, ok := r.schema.Types[ref.Local]
	if !ok {
		return nil, errf(UnresolvedReference, ref.Local)
	}
	return t, nil
}

// ParseType lowers t to a CoreType, per spec §4.1's parseType
// operation. defaultName is used to name an inline complex type that
// has no name of its own (an anonymous type belonging to an element
// or attribute).
func (r *Resolver) ParseType(t schema.Type, defaultName string) (CoreType, error) {
	switch t := t.(type) {
	case schema.Builtin:
		p, ok := builtinFor(t)
		if !ok {
			return CoreType{}, errf(UnknownBuiltin, t.Name())
		}
		return CoreType{Kind: Simple, Target: p.Target, Parse: p.Parse, List: p.List}, nil
	case *schema.ComplexType:
		name := t.Name
		if name == "" {
			name = defaultName
		}
		return CoreType{Kind: Complex, Name: name}, nil
	case *schema.SimpleType:
		return r.ParseSimpleTypeValue(t)
	}
	return CoreType{}, errf(StructuralError, defaultName)
}

// ParseSimpleTypeValue lowers a SimpleType to a CoreType, per spec
// §4.1. Results are memoized by type name; anonymous simple types
// (empty Name) are never cached since they have no stable key.
func (r *Resolver) ParseSimpleTypeValue(st *schema.SimpleType) (CoreType, error) {
	if st.Name != "" {
		if ct, ok := r.cache[st.Name]; ok {
			return ct, nil
		}
	}
	ct, err := r.parseSimpleTypeValue(st)
	if err != nil {
		return CoreType{}, err
	}
	if st.Name != "" {
		r.cache[st.Name] = ct
	}
	return ct, nil
}

func (r *Resolver) parseSimpleTypeValue(st *schema.SimpleType) (CoreType, error) {
	switch {
	case st.List != nil:
		itemType, err := r.GetType(*st.List)
		if err != nil {
			return CoreType{}, err
		}
		lowered, err := r.ParseType(itemType, "")
		if err != nil {
			return CoreType{}, err
		}
		lowered.List = true
		return lowered, nil

	case len(st.Union) > 0:
		for _, member := range st.Union {
			memberType, err := r.GetType(member)
			if err != nil {
				continue
			}
			lowered, err := r.ParseType(memberType, "")
			if err == nil && lowered.List {
				return CoreType{Kind: Simple, Target: "std::string", List: true}, nil
			}
		}
		return CoreType{Kind: Simple, Target: "std::string"}, nil

	case st.Restriction != nil && len(st.Restriction.Enum) > 0:
		return CoreType{
			Kind:   Enum,
			Name:   st.Name,
			Target: st.Name,
			Parse:  fmt.Sprintf("stringTo%s(%%s)", st.Name),
		}, nil

	case st.Restriction != nil:
		base, err := r.GetType(st.Restriction.Base)
		if err != nil {
			return CoreType{}, err
		}
		return r.ParseType(base, st.Name)
	}
	return CoreType{}, errf(StructuralError, st.Name)
}

// GetValueType walks a SimpleContent complex type's base chain until
// reaching a simple type (built-in or user), returning its lowered
// CoreType. It is used to derive the text-content type of
// simple-content complex types (spec §4.1).
func (r *Resolver) GetValueType(ct *schema.ComplexType) (CoreType, error) {
	if ct.SimpleContent == nil {
		return CoreType{}, errf(StructuralError, ct.Name)
	}
	ref := *ct.SimpleContent
	seen := make(map[string]bool)
	for {
		base, err := r.GetType(ref)
		if err != nil {
			return CoreType{}, err
		}
		switch b := base.(type) {
		case schema.Builtin, *schema.SimpleType:
			return r.ParseType(base, ct.Name)
		case *schema.ComplexType:
			if b.SimpleContent == nil || seen[ref.Local] {
				return CoreType{}, errf(StructuralError, ct.Name)
			}
			seen[ref.Local] = true
			ref = *b.SimpleContent
		default:
			return CoreType{}, errf(StructuralError, ct.Name)
		}
	}
}
