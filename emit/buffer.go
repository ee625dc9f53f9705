package emit

import (
	"bytes"
	"fmt"
	"strings"
)

// buffer accumulates emitted source text with an explicit indent-depth
// counter, generalized from the teacher's flat gen.Field string
// accumulation (genC.go/genJava.go). The counter only indents the
// emitted source lines; it is not part of the generated code.
type buffer struct {
	bytes.Buffer
	indent int
}

// line writes one indented, newline-terminated line.
func (b *buffer) line(format string, args ...interface{}) {
	b.WriteString(strings.Repeat("    ", b.indent))
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

// blank writes an empty line.
func (b *buffer) blank() {
	b.WriteByte('\n')
}

// in increases the indent depth for the duration of fn.
func (b *buffer) in(fn func()) {
	b.indent++
	fn()
	b.indent--
}
