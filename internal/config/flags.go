package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lehins/hspec/pkg/formatters"
	"github.com/lehins/hspec/pkg/hspec"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type flags struct {
	config  string
	color   hspec.ColorMode
	noColor bool
	verbose bool
	format  string
	out     string
	match   stringList
	skip    stringList
	tags    string

	set map[string]bool
}

func newFlagSet(fl *flags, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("hspec", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&fl.config, "config", "", "configuration file (default "+DefaultFile+" when present)")
	fs.TextVar(&fl.color, "color", hspec.ColorAuto, "colorize output: auto, never or always")
	fs.BoolVar(&fl.noColor, "no-color", false, "same as --color never")
	fs.BoolVar(&fl.verbose, "verbose", false, "do not suppress output of examples")
	fs.StringVar(&fl.format, "format", "", "formatter: "+strings.Join(formatters.Names(), ", "))
	fs.StringVar(&fl.out, "out", "", "write results to a file instead of stdout")
	fs.Var(&fl.match, "match", "only run examples whose path contains the pattern (repeatable)")
	fs.Var(&fl.skip, "skip", "skip examples whose path contains the pattern (repeatable)")
	fs.StringVar(&fl.tags, "tags", "", "cucumber tag expression, e.g. '@smoke and not @slow'")
	return fs
}

// Usage writes the command line options to w.
func Usage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Usage of hspec:\n")
	newFlagSet(&flags{}, w).PrintDefaults()
	_, _ = fmt.Fprintf(w, "\nOptions are also read from %s and the %s environment variable.\n", DefaultFile, EnvOptions)
}

func parseFlags(args []string) (*flags, error) {
	fl := &flags{set: make(map[string]bool)}

	fs := newFlagSet(fl, io.Discard)
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("invalid arguments: unexpected %q", fs.Arg(0))
	}

	fs.Visit(func(f *flag.Flag) {
		fl.set[f.Name] = true
	})
	return fl, nil
}

// apply copies the flags given on the command line over s.
func (fl *flags) apply(s *Settings) {
	if fl.set["color"] {
		s.Color = fl.color
	}
	if fl.set["no-color"] && fl.noColor {
		s.Color = hspec.ColorNever
	}
	if fl.set["verbose"] {
		s.Verbose = fl.verbose
	}
	if fl.set["format"] {
		s.Format = fl.format
	}
	if fl.set["out"] {
		s.Out = fl.out
	}
	if fl.set["tags"] {
		s.Tags = fl.tags
	}
	s.Match = append(s.Match, fl.match...)
	s.Skip = append(s.Skip, fl.skip...)
}
