package formatters

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/lehins/hspec/pkg/hspec"
)

// Default is the name of the formatter used when none is selected.
const Default = "specdoc"

// ErrUnknownFormat is returned by Lookup for unregistered names.
var ErrUnknownFormat = errors.New("unknown format")

var registry = map[string]hspec.FormatterFactory{
	"specdoc":         func(w io.Writer, c bool) hspec.Formatter { return NewSpecdoc(w, c) },
	"progress":        func(w io.Writer, c bool) hspec.Formatter { return NewProgress(w, c) },
	"failed-examples": func(w io.Writer, c bool) hspec.Formatter { return NewFailedOnly(w, c) },
	"silent":          func(w io.Writer, c bool) hspec.Formatter { return NewSilent(w, c) },
	"junit":           func(w io.Writer, c bool) hspec.Formatter { return NewJUnit(w, c) },
	"table":           func(w io.Writer, c bool) hspec.Formatter { return NewTable(w, c) },
	"html":            func(w io.Writer, c bool) hspec.Formatter { return NewHTML(w, c) },
}

// Lookup returns the factory registered under name.
func Lookup(name string) (hspec.FormatterFactory, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownFormat, name, Names())
	}
	return factory, nil
}

// Names lists the registered formatter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
