// Package directive writes a resolved layout in a form the surrounding build
// can consume.
//
// The cargo format is the stable three-line protocol:
//
//	cargo:rustc-link-lib=<name>
//	cargo:rustc-link-search=native=<lib dir>
//	cargo:include=<include dir>
//
// The flags and env formats carry the same three facts as C toolchain flags,
// the latter as shell exports of CGO_CFLAGS and CGO_LDFLAGS. The json and
// yaml formats dump the whole layout.
package directive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/vcpkg-locate/pkg/layout"
)

// Format selects how a layout is written
type Format string

const (
	FormatCargo Format = "cargo"
	FormatFlags Format = "flags"
	FormatEnv   Format = "env"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// DefaultFormat is used when no format is configured
const DefaultFormat = FormatCargo

// ErrUnknownFormat indicates an unsupported output format
var ErrUnknownFormat = errors.New("unknown output format")

type emitFunc func(w io.Writer, l *layout.Layout) error

var emitters = map[Format]emitFunc{
	FormatCargo: emitCargo,
	FormatFlags: emitFlags,
	FormatEnv:   emitEnv,
	FormatJSON:  emitJSON,
	FormatYAML:  emitYAML,
}

// Formats returns the supported format names, sorted
func Formats() []string {
	names := make([]string, 0, len(emitters))
	for f := range emitters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat validates a format name. The empty string selects DefaultFormat.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return DefaultFormat, nil
	}
	f := Format(strings.ToLower(s))
	if _, ok := emitters[f]; !ok {
		return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Emit writes l to w in the given format
func Emit(w io.Writer, format Format, l *layout.Layout) error {
	if format == "" {
		format = DefaultFormat
	}
	emit, ok := emitters[format]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err := emit(w, l); err != nil {
		return fmt.Errorf("writing %s directives: %w", format, err)
	}
	return nil
}

func emitCargo(w io.Writer, l *layout.Layout) error {
	_, err := fmt.Fprintf(w,
		"cargo:rustc-link-lib=%s\ncargo:rustc-link-search=native=%s\ncargo:include=%s\n",
		l.Name, l.Lib, l.Include)
	return err
}

func emitFlags(w io.Writer, l *layout.Layout) error {
	f := l.Flags()
	lines := make([]string, 0, 3)
	lines = append(lines, f.LinkFlags...)
	lines = append(lines, f.LibraryFlags...)
	lines = append(lines, f.IncludeFlags...)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func emitEnv(w io.Writer, l *layout.Layout) error {
	f := l.Flags()
	_, err := fmt.Fprintf(w, "export CGO_CFLAGS=%s\nexport CGO_LDFLAGS=%s\n",
		shellQuote(strings.Join(f.CFlags(), " ")),
		shellQuote(strings.Join(f.LDFlags(), " ")))
	return err
}

func emitJSON(w io.Writer, l *layout.Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

func emitYAML(w io.Writer, l *layout.Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return err
	}
	return enc.Close()
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
