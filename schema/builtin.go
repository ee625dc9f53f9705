package schema

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

//go:generate stringer -type=Builtin

// Builtin represents one of the built-in XML Schema types, as defined
// in the W3C specification, "XML Schema Part 2: Datatypes".
//
// http://www.w3.org/TR/xmlschema-2/#built-in-datatypes
type Builtin int

const (
	AnyType Builtin = iota
	ENTITIES
	ENTITY
	ID
	IDREF
	IDREFS
	NCName
	NMTOKEN
	NMTOKENS
	NOTATION
	Name
	QName
	AnyURI
	Base64Binary
	Boolean
	Byte
	Date
	DateTime
	Decimal
	Double
	Duration
	Float
	GDay
	GMonth
	GMonthDay
	GYear
	GYearMonth
	HexBinary
	Int
	Integer
	Language
	Long
	NegativeInteger
	NonNegativeInteger
	NonPositiveInteger
	NormalizedString
	PositiveInteger
	Short
	String
	Time
	Token
	UnsignedByte
	UnsignedInt
	UnsignedLong
	UnsignedShort
)

// Name returns the canonical local name of the built-in type, e.g.
// "string" for String, as it would appear after "xs:" in a schema
// document.
func (b Builtin) Name() string {
	name := b.String()
	switch b {
	case ENTITIES, ENTITY, ID, IDREF, IDREFS, NCName, NMTOKEN, NMTOKENS, NOTATION, Name, QName:
		return name
	}
	r, sz := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[sz:]
}

// ParseBuiltin looks up a Builtin by its XSD local name. If local does
// not name a built-in type, ParseBuiltin returns a non-nil error.
func ParseBuiltin(local string) (Builtin, error) {
	for i := AnyType; i <= UnsignedShort; i++ {
		if i.Name() == local {
			return i, nil
		}
	}
	return -1, fmt.Errorf("schema: %q is not a built-in type", local)
}
