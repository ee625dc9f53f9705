package frontend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WangTingMan/system-tools-xsdc/schema"
)

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSimpleElement(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "widget.xsd", `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:widget">
  <xs:element name="widget" type="xs:string"/>
</xs:schema>`)

	s, includes, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(includes) != 0 {
		t.Errorf("got %d includes, want 0", len(includes))
	}
	if s.TargetNS != "urn:widget" {
		t.Errorf("TargetNS = %q, want %q", s.TargetNS, "urn:widget")
	}
	e, ok := s.Elements["widget"]
	if !ok {
		t.Fatal("element widget not found")
	}
	if e.TypeRef == nil || e.TypeRef.Local != "string" {
		t.Errorf("widget.TypeRef = %v, want xs:string", e.TypeRef)
	}
	if len(s.Roots) != 1 || s.Roots[0] != "widget" {
		t.Errorf("Roots = %v, want [widget]", s.Roots)
	}
}

func TestParseComplexTypeWithAttributesAndElements(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "person.xsd", `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="person" type="Person"/>
  <xs:complexType name="Person">
    <xs:sequence>
      <xs:element name="name" type="xs:string"/>
      <xs:element name="tag" type="xs:string" minOccurs="0" maxOccurs="unbounded"/>
    </xs:sequence>
    <xs:attribute name="id" type="xs:int" use="required"/>
  </xs:complexType>
</xs:schema>`)

	s, _, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	ct, ok := s.Types["Person"].(*schema.ComplexType)
	if !ok {
		t.Fatal("Person complex type not found")
	}
	if len(ct.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(ct.Elements))
	}
	if ct.Elements[0].Name != "name" || ct.Elements[0].Plural {
		t.Errorf("name element = %+v", ct.Elements[0])
	}
	if ct.Elements[1].Name != "tag" || !ct.Elements[1].Plural || !ct.Elements[1].Optional {
		t.Errorf("tag element = %+v", ct.Elements[1])
	}
	if len(ct.Attributes) != 1 || ct.Attributes[0].Name != "id" || !ct.Attributes[0].Required {
		t.Errorf("attributes = %+v", ct.Attributes)
	}
}

func TestParseEnumeration(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "color.xsd", `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="swatch" type="Color"/>
  <xs:simpleType name="Color">
    <xs:restriction base="xs:string">
      <xs:enumeration value="RED"/>
      <xs:enumeration value="GREEN"/>
      <xs:enumeration value="BLUE"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`)

	s, _, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	st, ok := s.Types["Color"].(*schema.SimpleType)
	if !ok {
		t.Fatal("Color simple type not found")
	}
	if st.Restriction == nil || len(st.Restriction.Enum) != 3 {
		t.Fatalf("Color.Restriction = %+v", st.Restriction)
	}
	if st.Restriction.Enum[0] != "RED" {
		t.Errorf("Enum[0] = %q, want RED", st.Restriction.Enum[0])
	}
}

func TestParseInheritance(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "shape.xsd", `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="shape" type="Shape"/>
  <xs:complexType name="Shape">
    <xs:sequence>
      <xs:element name="color" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="Circle">
    <xs:complexContent>
      <xs:extension base="Shape">
        <xs:sequence>
          <xs:element name="radius" type="xs:double"/>
        </xs:sequence>
      </xs:extension>
    </xs:complexContent>
  </xs:complexType>
</xs:schema>`)

	s, _, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	circle, ok := s.Types["Circle"].(*schema.ComplexType)
	if !ok {
		t.Fatal("Circle complex type not found")
	}
	if circle.Base.Local != "Shape" || !circle.Extends {
		t.Errorf("Circle.Base = %+v, Extends = %v", circle.Base, circle.Extends)
	}
	if len(circle.Elements) != 1 || circle.Elements[0].Name != "radius" {
		t.Errorf("Circle.Elements = %+v", circle.Elements)
	}
}

func TestParseIncludeTransitive(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "common.xsd", `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:complexType name="Common">
    <xs:sequence>
      <xs:element name="id" type="xs:int"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)
	path := writeSchema(t, dir, "main.xsd", `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:include schemaLocation="common.xsd"/>
  <xs:element name="doc" type="Common"/>
</xs:schema>`)

	s, includes, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(includes) != 1 {
		t.Fatalf("got %d includes, want 1", len(includes))
	}
	if _, ok := s.Types["Common"]; !ok {
		t.Error("Common type from included schema not merged")
	}
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := Parse(filepath.Join(t.TempDir(), "does-not-exist.xsd"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("got %T, want *frontend.Error", err)
	}
}
