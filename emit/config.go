// Package emit is the backend of the compiler: given a resolved
// *schema.Schema, it produces the C++-flavored declaration and
// implementation text described in spec §4.4 — forward declarations,
// enum classes with string lookup tables, complex-type classes with
// constructors/accessors/read/write, and free-function entrypoints.
package emit

import (
	"strings"
)

// Logger receives debug and milestone traces during emission. It is
// implemented by *log.Logger; the generator never imports a
// third-party logging library, matching the teacher's hand-rolled
// seam (xsdgen/config.go).
type Logger interface {
	Printf(format string, v ...interface{})
}

// Config carries the flags of spec §6.1 that affect code generation,
// configured through the reversible functional-options pattern the
// teacher's xsdgen.Config uses.
type Config struct {
	Package       string
	Writer        bool
	BooleanGetter bool
	TinyXML       bool
	Roots         []string
	GenEnumsOnly  bool
	GenParserOnly bool

	logger   Logger
	loglevel int
}

// Option configures a Config. Calling the returned Option restores
// the previous value.
type Option func(*Config) Option

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 0 {
		cfg.logger.Printf(format, v...)
	}
}

func (cfg *Config) debugf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 3 {
		cfg.logger.Printf(format, v...)
	}
}

// Option applies opts to cfg in order and returns an Option that
// undoes the last one applied.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// PackageName sets the output namespace. Dot-separated segments become
// nested namespaces (spec §6.1).
func PackageName(name string) Option {
	return func(cfg *Config) Option {
		prev := cfg.Package
		cfg.Package = name
		return PackageName(prev)
	}
}

// Roots restricts root-element entrypoints to the named elements.
func Roots(names ...string) Option {
	return func(cfg *Config) Option {
		prev := cfg.Roots
		cfg.Roots = names
		return Roots(prev...)
	}
}

// EnableWriter turns on write<Elt> entrypoint and class write() method
// emission.
func EnableWriter(on bool) Option {
	return func(cfg *Config) Option {
		prev := cfg.Writer
		cfg.Writer = on
		return EnableWriter(prev)
	}
}

// BooleanGetter selects is<Name> over get<Name> for boolean-typed
// accessors.
func BooleanGetter(on bool) Option {
	return func(cfg *Config) Option {
		prev := cfg.BooleanGetter
		cfg.BooleanGetter = on
		return BooleanGetter(prev)
	}
}

// TinyXML records the choice of the lightweight DOM library over the
// XInclude-capable one. The emitter does not read this setting: the
// generated code is the same whether or not it is set.
func TinyXML(on bool) Option {
	return func(cfg *Config) Option {
		prev := cfg.TinyXML
		cfg.TinyXML = on
		return TinyXML(prev)
	}
}

// GenEnumsOnly restricts output to the enum header/implementation
// pair. Mutually exclusive with GenParserOnly (enforced by cmd/xsdc).
func GenEnumsOnly(on bool) Option {
	return func(cfg *Config) Option {
		prev := cfg.GenEnumsOnly
		cfg.GenEnumsOnly = on
		return GenEnumsOnly(prev)
	}
}

// GenParserOnly restricts output to the parser header/implementation
// pair.
func GenParserOnly(on bool) Option {
	return func(cfg *Config) Option {
		prev := cfg.GenParserOnly
		cfg.GenParserOnly = on
		return GenParserOnly(prev)
	}
}

// LogOutput configures a Logger to receive emission traces.
func LogOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = l
		return LogOutput(prev)
	}
}

// LogLevel sets trace verbosity, 1-5.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

// namespaces splits the dot-separated package name into nested
// namespace segments, prefixing any segment that starts with a digit
// with an underscore (spec §4.4.1).
func (cfg *Config) namespaces() []string {
	if cfg.Package == "" {
		return nil
	}
	parts := strings.Split(cfg.Package, ".")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if p[0] >= '0' && p[0] <= '9' {
			parts[i] = "_" + p
		}
	}
	return parts
}

// outputStem returns the package name with dots replaced by
// underscores, used to name the four output files (spec §6.3).
func (cfg *Config) outputStem() string {
	return strings.ReplaceAll(cfg.Package, ".", "_")
}

// accessorPrefix returns the get/is prefix for a scalar accessor
// of the given target type.
func accessorPrefix(cfg *Config, targetType string) string {
	if cfg.BooleanGetter && targetType == "bool" {
		return "is"
	}
	return "get"
}
