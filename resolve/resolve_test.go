package resolve

import (
	"testing"

	"github.com/WangTingMan/system-tools-xsdc/schema"
)

func TestParseTypeBuiltin(t *testing.T) {
	s := schema.NewSchema()
	r := New(s)

	ct, err := r.ParseType(schema.Int, "")
	if err != nil {
		t.Fatalf("ParseType(Int): %v", err)
	}
	if ct.Kind != Simple || ct.Target != "int32_t" {
		t.Errorf("ParseType(Int) = %+v, want Simple/int32_t", ct)
	}
}

func TestParseTypeUnknownBuiltin(t *testing.T) {
	s := schema.NewSchema()
	r := New(s)

	_, err := r.ParseType(schema.Builtin(999), "")
	if err == nil {
		t.Fatal("expected error for unknown builtin")
	}
	if rerr, ok := err.(*Error); !ok || rerr.Kind != UnknownBuiltin {
		t.Errorf("got %v, want UnknownBuiltin", err)
	}
}

func TestParseSimpleTypeValueEnum(t *testing.T) {
	s := schema.NewSchema()
	st := &schema.SimpleType{
		Name: "Color",
		Restriction: &schema.Restriction{
			Base: schema.Ref{Space: schema.XMLSchemaNS, Local: "string"},
			Enum: []string{"red", "green", "blue"},
		},
	}
	s.Types["Color"] = st
	r := New(s)

	ct, err := r.ParseSimpleTypeValue(st)
	if err != nil {
		t.Fatalf("ParseSimpleTypeValue: %v", err)
	}
	if ct.Kind != Enum {
		t.Errorf("kind = %v, want Enum", ct.Kind)
	}
	if ct.Parse != "stringToColor(%s)" {
		t.Errorf("parse expr = %q", ct.Parse)
	}
}

func TestParseSimpleTypeValueMemoized(t *testing.T) {
	s := schema.NewSchema()
	st := &schema.SimpleType{
		Name: "Percent",
		Restriction: &schema.Restriction{
			Base: schema.Ref{Space: schema.XMLSchemaNS, Local: "int"},
		},
	}
	s.Types["Percent"] = st
	r := New(s)

	first, err := r.ParseSimpleTypeValue(st)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.cache["Percent"]; !ok {
		t.Fatal("expected Percent to be memoized")
	}
	second, _ := r.ParseSimpleTypeValue(st)
	if first != second {
		t.Errorf("memoized result differs: %+v != %+v", first, second)
	}
}

func TestParseSimpleTypeValueList(t *testing.T) {
	s := schema.NewSchema()
	item := schema.Ref{Space: schema.XMLSchemaNS, Local: "int"}
	st := &schema.SimpleType{Name: "IntList", List: &item}
	r := New(s)

	ct, err := r.ParseSimpleTypeValue(st)
	if err != nil {
		t.Fatal(err)
	}
	if !ct.List || ct.Target != "int32_t" {
		t.Errorf("got %+v, want list of int32_t", ct)
	}
}

func TestResolveElementRef(t *testing.T) {
	s := schema.NewSchema()
	s.Elements["item"] = &schema.Element{Name: "item", Type: schema.String}
	r := New(s)

	e, err := r.ResolveElement(schema.Element{
		Ref:    &schema.Ref{Local: "item"},
		Plural: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "item" || !e.Plural {
		t.Errorf("got %+v", e)
	}
}

func TestResolveElementUnresolved(t *testing.T) {
	s := schema.NewSchema()
	r := New(s)
	_, err := r.ResolveElement(schema.Element{Ref: &schema.Ref{Local: "missing"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if rerr, ok := err.(*Error); !ok || rerr.Kind != UnresolvedReference {
		t.Errorf("got %v", err)
	}
}

func TestGetValueType(t *testing.T) {
	s := schema.NewSchema()
	base := schema.Ref{Space: schema.XMLSchemaNS, Local: "string"}
	ct := &schema.ComplexType{Name: "Money", SimpleContent: &base}
	r := New(s)

	core, err := r.GetValueType(ct)
	if err != nil {
		t.Fatal(err)
	}
	if core.Kind != Simple || core.Target != "std::string" {
		t.Errorf("got %+v", core)
	}
}

func TestGetValueTypeStructuralError(t *testing.T) {
	s := schema.NewSchema()
	ct := &schema.ComplexType{Name: "Bogus"}
	r := New(s)
	_, err := r.GetValueType(ct)
	if rerr, ok := err.(*Error); !ok || rerr.Kind != StructuralError {
		t.Errorf("got %v, want StructuralError", err)
	}
}
