// Package flatten walks a complex type's inheritance chain, group
// references and attribute-group references to produce the full
// stacked element and attribute list spec §4.3 describes: inherited
// members first, own members last, preserving declaration order.
package flatten

import (
	"github.com/WangTingMan/system-tools-xsdc/resolve"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

// Member is one flattened element or attribute, resolved down to its
// lowered CoreType. The same struct shape serves both elements and
// attributes: Wrapping is always schema.Plain for attribute members.
type Member struct {
	Name     string
	Core     resolve.CoreType
	Plural   bool
	Optional bool
	Wrapping schema.Wrapping
	// Inherited is true for a member contributed by a base
	// complex type (flatten step 1), as opposed to one contributed
	// by this type's own group/attribute-group references or
	// declarations. The emitter uses this to decide which
	// constructor arguments are passed up to a base-class
	// constructor versus initialized directly (spec §4.4.3).
	Inherited bool
}

// Stack implements spec §4.3's stackComponents operation: it returns
// the flattened, ordered element and attribute lists for c.
//
//  1. If c has a base in the schema namespace that resolves to a
//     complex type, its stack is computed first.
//  2. Elements contributed by c's own group reference are appended.
//  3. c's own elements are appended.
//  4. Each of c's attribute groups contributes its flattened
//     attributes (step repeated for nested attribute groups).
//  5. c's own attributes are appended.
func Stack(c *schema.ComplexType, r *resolve.Resolver) (elements, attributes []Member, err error) {
	if c.Base.Local != "" && !c.Base.IsXMLSchemaNS() {
		baseType, err := r.GetType(c.Base)
		if err != nil {
			return nil, nil, err
		}
		if baseComplex, ok := baseType.(*schema.ComplexType); ok {
			elements, attributes, err = Stack(baseComplex, r)
			if err != nil {
				return nil, nil, err
			}
			for i := range elements {
				elements[i].Inherited = true
			}
			for i := range attributes {
				attributes[i].Inherited = true
			}
		}
	}

	if c.Group != nil {
		groupElements, err := flattenGroup(*c.Group, r, make(map[string]bool))
		if err != nil {
			return nil, nil, err
		}
		elements = append(elements, groupElements...)
	}

	for _, e := range c.Elements {
		m, err := memberFromElement(e, r)
		if err != nil {
			return nil, nil, err
		}
		elements = append(elements, m)
	}

	for _, ref := range c.AttributeGroups {
		groupAttrs, err := flattenAttributeGroup(ref, r, make(map[string]bool))
		if err != nil {
			return nil, nil, err
		}
		attributes = append(attributes, groupAttrs...)
	}

	for _, a := range c.Attributes {
		m, err := memberFromAttribute(a, r)
		if err != nil {
			return nil, nil, err
		}
		attributes = append(attributes, m)
	}

	return elements, attributes, nil
}

// flattenGroup resolves ref transitively (following nested group
// references inside the group) and returns its element members. seen
// guards against a self-referential group definition looping forever.
func flattenGroup(ref schema.Ref, r *resolve.Resolver, seen map[string]bool) ([]Member, error) {
	if seen[ref.Local] {
		return nil, nil
	}
	seen[ref.Local] = true

	g, err := r.ResolveGroup(ref)
	if err != nil {
		return nil, err
	}
	var out []Member
	for _, nested := range g.Groups {
		nestedMembers, err := flattenGroup(nested, r, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, nestedMembers...)
	}
	for _, e := range g.Elements {
		m, err := memberFromElement(e, r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// flattenAttributeGroup is flattenGroup's counterpart for attribute
// groups.
func flattenAttributeGroup(ref schema.Ref, r *resolve.Resolver, seen map[string]bool) ([]Member, error) {
	if seen[ref.Local] {
		return nil, nil
	}
	seen[ref.Local] = true

	ag, err := r.ResolveAttributeGroup(ref)
	if err != nil {
		return nil, err
	}
	var out []Member
	for _, nested := range ag.AttributeGroups {
		nestedMembers, err := flattenAttributeGroup(nested, r, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, nestedMembers...)
	}
	for _, a := range ag.Attributes {
		m, err := memberFromAttribute(a, r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func memberFromElement(e schema.Element, r *resolve.Resolver) (Member, error) {
	resolved, err := r.ResolveElement(e)
	if err != nil {
		return Member{}, err
	}
	t, err := ElementType(resolved, r)
	if err != nil {
		return Member{}, err
	}
	core, err := r.ParseType(t, resolved.Name)
	if err != nil {
		return Member{}, err
	}
	return Member{
		Name:     resolved.Name,
		Core:     core,
		Plural:   resolved.Plural,
		Optional: resolved.Optional,
		Wrapping: resolved.Wrapping,
	}, nil
}

// ElementType returns the schema.Type a (ref-resolved) element refers
// to: its inline type, the type named by its type= attribute, or the
// xs:string default for an element with neither (spec §4.1).
// Exported so emit's entrypoint generator can resolve a root element's
// type the same way a member's is resolved during flattening.
func ElementType(e schema.Element, r *resolve.Resolver) (schema.Type, error) {
	if e.Type != nil {
		return e.Type, nil
	}
	if e.TypeRef != nil {
		return r.GetType(*e.TypeRef)
	}
	return schema.String, nil
}

func memberFromAttribute(a schema.Attribute, r *resolve.Resolver) (Member, error) {
	resolved, err := r.ResolveAttribute(a)
	if err != nil {
		return Member{}, err
	}
	var t schema.Type
	switch {
	case resolved.Type != nil:
		t = resolved.Type
	case resolved.TypeRef != nil:
		t, err = r.GetType(*resolved.TypeRef)
		if err != nil {
			return Member{}, err
		}
	default:
		t = schema.String
	}
	core, err := r.ParseType(t, resolved.Name)
	if err != nil {
		return Member{}, err
	}
	return Member{
		Name:     resolved.Name,
		Core:     core,
		Optional: !resolved.Required,
	}, nil
}
