// Command xsdc is the compiler's command-line front end: it parses
// one XSD file into a *schema.Schema (frontend.Parse), runs the
// emitter (emit.Generate), and writes the resulting header/
// implementation pairs and an optional ninja-style depfile.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/WangTingMan/system-tools-xsdc/emit"
	"github.com/WangTingMan/system-tools-xsdc/frontend"
	"github.com/WangTingMan/system-tools-xsdc/names"
)

// usageError reports a malformed command line (spec §7's UsageError).
type usageError struct{ message string }

func (e *usageError) Error() string { return "usage error: " + e.message }

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, categorize(err))
		os.Exit(1)
	}
}

// categorize renders err as spec §7's "one-phrase error category and
// the offending name" stderr line; it is the single place every error
// kind in the system funnels through.
func categorize(err error) string {
	return err.Error()
}

func run(args []string) error {
	var roots names.StringList

	fs := flag.NewFlagSet("xsdc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		pkg           = fs.String("package", "", "package/namespace of generated output")
		outDir        = fs.String("outDir", ".", "output directory")
		cpp           = fs.Bool("cpp", false, "select the C++ emitter backend")
		java          = fs.Bool("java", false, "select the Java emitter backend (unsupported)")
		writer        = fs.Bool("writer", false, "also emit writing code")
		booleanGetter = fs.Bool("booleanGetter", false, "use isX instead of getX for boolean members")
		tinyxml       = fs.Bool("tinyxml", false, "target the lightweight DOM library")
		enumsOnly     = fs.Bool("genEnumsOnly", false, "emit only enum files")
		parserOnly    = fs.Bool("genParserOnly", false, "emit only parser files")
		depfile       = fs.String("depfile", "", "write a dependency file to this path")
		verbose       = fs.Bool("v", false, "print progress traces")
	)
	for _, pair := range [][2]string{
		{"p", "package"}, {"o", "outDir"}, {"c", "cpp"}, {"j", "java"},
		{"w", "writer"}, {"b", "booleanGetter"}, {"t", "tinyxml"},
		{"e", "genEnumsOnly"}, {"x", "genParserOnly"}, {"d", "depfile"},
	} {
		fs.Var(fs.Lookup(pair[1]).Value, pair[0], "shorthand for -"+pair[1])
	}
	fs.Var(&roots, "root", "restrict root-element entrypoints to this element (repeatable)")
	fs.Var(&roots, "r", "shorthand for -root")

	if err := fs.Parse(args); err != nil {
		return &usageError{err.Error()}
	}
	if fs.NArg() != 1 {
		return &usageError{"expected exactly one input XSD path"}
	}
	if *pkg == "" {
		return &usageError{"missing required -package"}
	}
	if *enumsOnly && *parserOnly {
		return &usageError{"-genEnumsOnly and -genParserOnly are mutually exclusive"}
	}
	if *java {
		return &usageError{"the Java backend is an external collaborator, not built into this binary"}
	}
	if !*cpp {
		*cpp = true // the only backend this binary implements
	}

	input := fs.Arg(0)
	s, includes, err := frontend.Parse(input)
	if err != nil {
		return err
	}
	if len(roots) == 0 && len(s.Roots) > 1 {
		return &usageError{"multiple root elements (" + strings.Join(s.Roots, ", ") + "); restrict with -root"}
	}

	var cfg emit.Config
	cfg.Option(
		emit.PackageName(*pkg),
		emit.EnableWriter(*writer),
		emit.BooleanGetter(*booleanGetter),
		emit.TinyXML(*tinyxml),
		emit.GenEnumsOnly(*enumsOnly),
		emit.GenParserOnly(*parserOnly),
		emit.Roots([]string(roots)...),
	)
	if *verbose {
		cfg.Option(emit.LogOutput(log.New(os.Stderr, "", 0)), emit.LogLevel(4))
	}

	out, err := emit.Generate(&cfg, s)
	if err != nil {
		return err
	}

	if err := writeOutputs(*outDir, *pkg, out); err != nil {
		return err
	}
	if *depfile != "" {
		if err := writeDepfile(*depfile, includes); err != nil {
			return err
		}
	}
	return nil
}

func writeOutputs(outDir, pkg string, out *emit.Output) error {
	stem := strings.ReplaceAll(pkg, ".", "_")
	includeDir := filepath.Join(outDir, "include")
	if err := os.MkdirAll(includeDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	writes := []struct {
		path string
		data []byte
	}{
		{filepath.Join(includeDir, stem+"_enums.h"), out.EnumHeader},
		{filepath.Join(outDir, stem+"_enums.cpp"), out.EnumImpl},
		{filepath.Join(includeDir, stem+".h"), out.Header},
		{filepath.Join(outDir, stem+".cpp"), out.Impl},
	}
	for _, w := range writes {
		if w.data == nil {
			continue
		}
		if err := os.WriteFile(w.path, w.data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// writeDepfile writes a single ninja-style whitespace-continued line
// listing every included schema path (spec §6.3).
func writeDepfile(path string, includes []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, inc := range includes {
		if i > 0 {
			w.WriteString(" \\\n  ")
		}
		w.WriteString(inc)
	}
	if len(includes) > 0 {
		w.WriteByte('\n')
	}
	return w.Flush()
}
