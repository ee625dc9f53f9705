package flatten

import (
	"testing"

	"github.com/WangTingMan/system-tools-xsdc/resolve"
	"github.com/WangTingMan/system-tools-xsdc/schema"
)

func TestStackInheritanceOrder(t *testing.T) {
	s := schema.NewSchema()

	a := &schema.ComplexType{
		Name:     "A",
		Elements: []schema.Element{{Name: "x", Type: schema.String}},
	}
	b := &schema.ComplexType{
		Name:     "B",
		Base:     schema.Ref{Local: "A"},
		Elements: []schema.Element{{Name: "y", Type: schema.String}},
	}
	s.Types["A"] = a
	s.Types["B"] = b

	r := resolve.New(s)
	elements, _, err := Stack(b, r)
	if err != nil {
		t.Fatal(err)
	}
	if len(elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(elements))
	}
	if elements[0].Name != "x" || elements[1].Name != "y" {
		t.Errorf("got order %v, want [x y]", names(elements))
	}
}

func TestStackGroupBeforeOwnElements(t *testing.T) {
	s := schema.NewSchema()
	s.Groups["G"] = &schema.Group{
		Name:     "G",
		Elements: []schema.Element{{Name: "fromGroup", Type: schema.String}},
	}
	groupRef := schema.Ref{Local: "G"}
	c := &schema.ComplexType{
		Name:     "C",
		Group:    &groupRef,
		Elements: []schema.Element{{Name: "own", Type: schema.String}},
	}
	r := resolve.New(s)

	elements, _, err := Stack(c, r)
	if err != nil {
		t.Fatal(err)
	}
	if names(elements)[0] != "fromGroup" || names(elements)[1] != "own" {
		t.Errorf("got %v, want [fromGroup own]", names(elements))
	}
}

func TestStackAttributeGroupBeforeOwnAttributes(t *testing.T) {
	s := schema.NewSchema()
	s.AttributeGroups["AG"] = &schema.AttributeGroup{
		Name:       "AG",
		Attributes: []schema.Attribute{{Name: "fromGroup", Type: schema.String, Required: true}},
	}
	c := &schema.ComplexType{
		Name:            "C",
		AttributeGroups: []schema.Ref{{Local: "AG"}},
		Attributes:      []schema.Attribute{{Name: "own", Type: schema.String, Required: true}},
	}
	r := resolve.New(s)

	_, attributes, err := Stack(c, r)
	if err != nil {
		t.Fatal(err)
	}
	if names(attributes)[0] != "fromGroup" || names(attributes)[1] != "own" {
		t.Errorf("got %v, want [fromGroup own]", names(attributes))
	}
}

func TestOrderLeavesFirst(t *testing.T) {
	s := schema.NewSchema()
	inner := &schema.ComplexType{Name: "Inner"}
	outer := &schema.ComplexType{
		Name:     "Outer",
		Elements: []schema.Element{{Name: "inner", Type: inner}},
	}
	s.Types["Inner"] = inner
	s.Types["Outer"] = outer

	order := Order(s)
	innerIdx, outerIdx := indexOf(order, "Inner"), indexOf(order, "Outer")
	if innerIdx == -1 || outerIdx == -1 || innerIdx > outerIdx {
		t.Errorf("got order %v, want Inner before Outer", order)
	}
}

func names(members []Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}
