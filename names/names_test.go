package names

import "testing"

func TestClassIdempotent(t *testing.T) {
	inputs := []string{"shipping-address", "XMLHttpRequest", "item_1", "Color", ""}
	for _, in := range inputs {
		once := Class(in)
		twice := Class(once)
		if once != twice {
			t.Errorf("Class(%q) = %q, Class(that) = %q, want idempotent", in, once, twice)
		}
	}
}

func TestClassPascalCase(t *testing.T) {
	cases := map[string]string{
		"shipping-address": "ShippingAddress",
		"item":             "Item",
		"XMLHttpRequest":   "XmlHttpRequest",
	}
	for in, want := range cases {
		if got := Class(in); got != want {
			t.Errorf("Class(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassLeadingDigit(t *testing.T) {
	got := Class("3dModel")
	if got[0] != '_' {
		t.Errorf("Class(%q) = %q, want leading underscore", "3dModel", got)
	}
}

func TestEnumScreamingSnake(t *testing.T) {
	cases := map[string]string{
		"red":       "RED",
		"dark-blue": "DARK_BLUE",
	}
	for in, want := range cases {
		if got := Enum(in); got != want {
			t.Errorf("Enum(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestVariableCamelCase(t *testing.T) {
	cases := map[string]string{
		"ShippingAddress": "shippingAddress",
		"item":            "item",
	}
	for in, want := range cases {
		if got := Variable(in); got != want {
			t.Errorf("Variable(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClassKeywordEscape(t *testing.T) {
	if got := Class("class"); got != "Class" {
		// "class" sanitizes to "Class" which is not itself a C++
		// keyword, so no escaping is expected here; this asserts
		// the case transform, not the escape hatch.
		t.Errorf("Class(%q) = %q", "class", got)
	}
	if got := Variable("for"); got != "for_" {
		t.Errorf("Variable(%q) = %q, want keyword-escaped %q", "for", got, "for_")
	}
}

func TestRegistryCollisionFreedom(t *testing.T) {
	r := NewRegistry()
	if err := r.Declare("XmlParser"); err == nil {
		t.Fatal("expected collision with seeded XmlParser")
	}
	if err := r.Declare("Color"); err != nil {
		t.Fatalf("unexpected error declaring Color: %v", err)
	}
	if err := r.Declare("Color"); err == nil {
		t.Fatal("expected collision on second declaration of Color")
	}
}

func TestStringListAccumulates(t *testing.T) {
	var l StringList
	if err := l.Set("a"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("b"); err != nil {
		t.Fatal(err)
	}
	if len(l) != 2 || l[0] != "a" || l[1] != "b" {
		t.Errorf("got %v, want [a b]", l)
	}
}
