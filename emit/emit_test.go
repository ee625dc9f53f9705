package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/WangTingMan/system-tools-xsdc/frontend"
)

func parseFixture(t *testing.T, content string) *output {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.xsd")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _, err := frontend.Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	var cfg Config
	cfg.Option(PackageName("fixture"), EnableWriter(true))
	out, err := Generate(&cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	return &output{out}
}

type output struct{ *Output }

func (o *output) all() string {
	return string(o.Header) + string(o.Impl) + string(o.EnumHeader) + string(o.EnumImpl)
}

func contains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("output missing %q\n---\n%s", substr, s)
	}
}

func TestEmitMinimalScalar(t *testing.T) {
	out := parseFixture(t, `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="greeting" type="xs:string"/>
</xs:schema>`)
	text := out.all()
	contains(t, text, "std::optional<std::string> read(const std::string& path)")
	contains(t, text, "std::optional<std::string> parse(const std::string& textBuffer)")
	contains(t, text, "void write(XmlWriter& out, const std::string& value)")
}

func TestEmitEnumRoundTrip(t *testing.T) {
	out := parseFixture(t, `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="swatch" type="Color"/>
  <xs:simpleType name="Color">
    <xs:restriction base="xs:string">
      <xs:enumeration value="red"/>
      <xs:enumeration value="green"/>
      <xs:enumeration value="blue"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`)
	text := out.all()
	contains(t, text, "enum class Color")
	contains(t, text, "RED,")
	contains(t, text, "GREEN,")
	contains(t, text, "UNKNOWN = -1")
	contains(t, text, `if (s == "green") return Color::GREEN;`)
	contains(t, text, `case Color::GREEN: return "green";`)
}

func TestEmitMultiValuedElement(t *testing.T) {
	out := parseFixture(t, `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="bag" type="Bag"/>
  <xs:complexType name="Bag">
    <xs:sequence>
      <xs:element name="item" type="xs:int" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`)
	text := out.all()
	contains(t, text, "std::vector<int32_t> item;")
	contains(t, text, "getFirstItem")
	contains(t, text, "hasItem")
}

func TestEmitOptionalAttribute(t *testing.T) {
	out := parseFixture(t, `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="node" type="Node"/>
  <xs:complexType name="Node">
    <xs:attribute name="label" type="xs:string"/>
  </xs:complexType>
</xs:schema>`)
	text := out.all()
	contains(t, text, "std::optional<std::string> label;")
	contains(t, text, "hasLabel")
	contains(t, text, `xsdcAbort("absent optional field label")`)
}

func TestEmitInheritance(t *testing.T) {
	out := parseFixture(t, `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="b" type="B"/>
  <xs:complexType name="A">
    <xs:sequence>
      <xs:element name="x" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="B">
    <xs:complexContent>
      <xs:extension base="A">
        <xs:sequence>
          <xs:element name="y" type="xs:string"/>
        </xs:sequence>
      </xs:extension>
    </xs:complexContent>
  </xs:complexType>
</xs:schema>`)
	text := out.all()
	contains(t, text, "class B : public A {")
	contains(t, text, "B::B(std::string x, std::string y) : A(x), y(y) {}")
}

func TestEmitMultiRootSuffixesEntrypoints(t *testing.T) {
	out := parseFixture(t, `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="a" type="xs:string"/>
  <xs:element name="b" type="xs:string"/>
</xs:schema>`)
	text := out.all()
	contains(t, text, "readA")
	contains(t, text, "readB")
}

func TestEmitEnumsOnlyOmitsParserOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.xsd")
	content := `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="swatch" type="Color"/>
  <xs:simpleType name="Color">
    <xs:restriction base="xs:string">
      <xs:enumeration value="red"/>
    </xs:restriction>
  </xs:simpleType>
</xs:schema>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, _, err := frontend.Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	var cfg Config
	cfg.Option(PackageName("fixture"), GenEnumsOnly(true))
	out, err := Generate(&cfg, s)
	if err != nil {
		t.Fatal(err)
	}
	if out.Header != nil || out.Impl != nil {
		t.Errorf("GenEnumsOnly produced parser output: header=%q impl=%q", out.Header, out.Impl)
	}
	if len(out.EnumHeader) == 0 {
		t.Error("GenEnumsOnly produced no enum header")
	}
}
