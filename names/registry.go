package names

import "fmt"

// CollisionError reports that name was declared twice in a Registry.
// cmd/xsdc reports it as spec §7's NameCollision error kind.
type CollisionError struct {
	Name string
}

func (e *CollisionError) Error() string {
	return "name collision: " + e.Name
}

// Registry is the single set of generated class/enum names a
// compiler run produces, seeded with the reserved identifier
// "XmlParser" per invariant §3.3. Declare must be called for every
// class or enum name the emitter is about to define; a second
// declaration of the same name is a fatal error.
type Registry struct {
	seen map[string]bool
}

// NewRegistry returns a Registry pre-seeded with the reserved name
// "XmlParser".
func NewRegistry() *Registry {
	r := &Registry{seen: make(map[string]bool)}
	r.seen["XmlParser"] = true
	return r
}

// Declare records name as used. It returns a *CollisionError if name
// was already declared (including the seeded "XmlParser").
func (r *Registry) Declare(name string) error {
	if r.seen[name] {
		return &CollisionError{Name: name}
	}
	r.seen[name] = true
	return nil
}

// StringList is a flag.Value that collects repeated occurrences of a
// flag into an ordered slice, the pattern the CLI uses for repeatable
// -r/--root flags (ported from the teacher's
// internal/commandline.Strings).
type StringList []string

func (s *StringList) String() string {
	return fmt.Sprint([]string(*s))
}

// Set appends val to the list; flag calls Set once per occurrence of
// the flag on the command line.
func (s *StringList) Set(val string) error {
	*s = append(*s, val)
	return nil
}
