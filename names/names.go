// Package names implements the identifier sanitization and collision
// rules of spec §4.5: turning XSD local names into target-language
// class, enum-member and variable identifiers, and tracking the
// generated namespace for duplicates.
package names

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// matchFirstCap and matchAllCap split camelCase/PascalCase
	// names at case boundaries, the same pair of regexps
	// utils.go's ToSnakeCase uses, generalized here to feed both
	// the PascalCase (Class) and SCREAMING_SNAKE (Enum) forms
	// instead of only snake_case.
	matchFirstCap = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
	matchAllCap   = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	// nonWord matches any run of characters that cannot appear in
	// a target identifier.
	nonWord = regexp.MustCompile(`[^0-9A-Za-z]+`)

	leadingDigit = regexp.MustCompile(`^[0-9]`)
)

// cppKeywords are reserved words in the target language; an
// identifier that collides with one is escaped with a trailing
// underscore, the same convention internal/gen.Sanitize used for Go
// keywords, retargeted to C++.
var cppKeywords = map[string]bool{
	"alignas": true, "alignof": true, "and": true, "and_eq": true,
	"asm": true, "auto": true, "bitand": true, "bitor": true,
	"bool": true, "break": true, "case": true, "catch": true,
	"char": true, "class": true, "compl": true, "const": true,
	"constexpr": true, "const_cast": true, "continue": true,
	"decltype": true, "default": true, "delete": true, "do": true,
	"double": true, "dynamic_cast": true, "else": true, "enum": true,
	"explicit": true, "export": true, "extern": true, "false": true,
	"float": true, "for": true, "friend": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true,
	"mutable": true, "namespace": true, "new": true, "noexcept": true,
	"not": true, "not_eq": true, "nullptr": true, "operator": true,
	"or": true, "or_eq": true, "private": true, "protected": true,
	"public": true, "register": true, "reinterpret_cast": true,
	"return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "static_assert": true, "static_cast": true,
	"struct": true, "switch": true, "template": true, "this": true,
	"thread_local": true, "throw": true, "true": true, "try": true,
	"typedef": true, "typeid": true, "typename": true, "union": true,
	"unsigned": true, "using": true, "virtual": true, "void": true,
	"volatile": true, "wchar_t": true, "while": true, "xor": true,
	"xor_eq": true,
}

// words splits s into case-delimited/punctuation-delimited words, the
// first step shared by Class, Enum and Variable.
func words(s string) []string {
	s = matchFirstCap.ReplaceAllString(s, "${1} ${2}")
	s = matchAllCap.ReplaceAllString(s, "${1} ${2}")
	s = nonWord.ReplaceAllString(s, " ")
	fields := strings.Fields(s)
	return fields
}

func sanitizeLeadingDigit(s string) string {
	if leadingDigit.MatchString(s) {
		return "_" + s
	}
	if s == "" {
		return "_"
	}
	return s
}

// Class turns an XSD local name into a target class identifier:
// PascalCase, leading-digit names prefixed with an underscore.
// Class(Class(s)) == Class(s) for all s (idempotent, spec §8).
func Class(s string) string {
	ws := words(s)
	var b strings.Builder
	for _, w := range ws {
		b.WriteString(strings.Title(strings.ToLower(w)))
	}
	return escapeKeyword(sanitizeLeadingDigit(b.String()))
}

// Enum turns an XSD enumeration member literal into a target
// enum-member identifier: SCREAMING_SNAKE_CASE. Enum itself does not
// special-case a literal that sanitizes to the reserved name UNKNOWN;
// emit's enum emitter checks for that collision and reports it as a
// NameCollision rather than silently renaming (spec §9's "Open
// Questions", see DESIGN.md).
func Enum(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToUpper(w)
	}
	joined := strings.Join(ws, "_")
	return sanitizeLeadingDigit(joined)
}

// Variable turns an XSD local name into a target variable/field
// identifier: camelCase, leading-digit names prefixed with an
// underscore.
func Variable(s string) string {
	ws := words(s)
	var b strings.Builder
	for i, w := range ws {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(strings.Title(strings.ToLower(w)))
	}
	out := b.String()
	if out == "" {
		out = "_"
	}
	r, sz := utf8DecodeFirst(out)
	if unicode.IsDigit(r) {
		out = "_" + out
	}
	_ = sz
	return escapeKeyword(out)
}

func utf8DecodeFirst(s string) (rune, int) {
	for _, r := range s {
		return r, len(string(r))
	}
	return 0, 0
}

func escapeKeyword(s string) string {
	if cppKeywords[s] {
		return s + "_"
	}
	return s
}
