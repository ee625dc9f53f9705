package resolve

import "github.com/WangTingMan/system-tools-xsdc/schema"

// Primitive is one row of the primitive-type map: the target-language
// type a built-in XSD type lowers to, the expression template used to
// parse a string into a value of that type, and whether values of this
// built-in are whitespace-separated lists.
type Primitive struct {
	// Target is the emitted target-language type name, e.g.
	// "std::string" or "int64_t".
	Target string
	// Parse is a template with a single %s verb for the string
	// expression being parsed, e.g. "parseI64(%s)". An empty Parse
	// means the string value is used as-is.
	Parse string
	// List is true when the textual representation is a
	// whitespace-separated list of atomic values (ENTITIES,
	// IDREFS, NMTOKENS).
	List bool
}

func ident(s string) Primitive { return Primitive{Target: "std::string"} }
func identList() Primitive { return Primitive{Target: "std::string", List: true} }
func numeric(t, parse string) Primitive { return Primitive{Target: t, Parse: parse} }

// Builtins is the closed table of spec §4.2: every XSD built-in local
// name this compiler knows how to lower, mapped to its target type and
// parse expression. ParseType consults it when lowering a
// schema.Builtin.
var Builtins = map[string]Primitive{
	"string":           ident(""),
	"token":            ident(""),
	"normalizedString": ident(""),
	"language":         ident(""),
	"ENTITY":           ident(""),
	"ID":               ident(""),
	"IDREF":            ident(""),
	"Name":             ident(""),
	"NCName":           ident(""),
	"NMTOKEN":          ident(""),
	"anyURI":           ident(""),
	"anyType":          ident(""),
	"QName":            ident(""),
	"NOTATION":         ident(""),

	"ENTITIES": identList(),
	"IDREFS":   identList(),
	"NMTOKENS": identList(),

	"date":         ident(""),
	"dateTime":     ident(""),
	"time":         ident(""),
	"duration":     ident(""),
	"gDay":         ident(""),
	"gMonth":       ident(""),
	"gYear":        ident(""),
	"gMonthDay":    ident(""),
	"gYearMonth":   ident(""),
	"base64Binary": ident(""),
	"hexBinary":    ident(""),

	"decimal": numeric("double", "parseDouble(%s)"),
	"double":  numeric("double", "parseDouble(%s)"),
	"float":   numeric("float", "parseFloat(%s)"),

	"integer":            numeric("int64_t", "parseI64(%s)"),
	"negativeInteger":    numeric("int64_t", "parseI64(%s)"),
	"nonNegativeInteger": numeric("int64_t", "parseI64(%s)"),
	"positiveInteger":    numeric("int64_t", "parseI64(%s)"),
	"nonPositiveInteger": numeric("int64_t", "parseI64(%s)"),
	"long":               numeric("int64_t", "parseI64(%s)"),

	"unsignedLong": numeric("uint64_t", "parseU64(%s)"),

	"int": numeric("int32_t", "parseI32(%s)"),

	"unsignedInt": numeric("uint32_t", "parseU32(%s)"),

	"short":         numeric("int16_t", "(int16_t)parseI32(%s)"),
	"unsignedShort": numeric("uint16_t", "(uint16_t)parseU32(%s)"),

	"byte":         numeric("int8_t", "(int8_t)parseI32(%s)"),
	"unsignedByte": numeric("uint8_t", "(uint8_t)parseU32(%s)"),

	"boolean": {Target: "bool", Parse: "(%s == \"true\")"},
}

// builtinFor adapts schema.Builtin (used by types that reference a
// built-in through the full schema.Type interface, e.g. as a
// SimpleType's Base) to the Primitive table above.
func builtinFor(b schema.Builtin) (Primitive, bool) {
	p, ok := Builtins[b.Name()]
	return p, ok
}
