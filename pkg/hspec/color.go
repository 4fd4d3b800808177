package hspec

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects whether formatter output is colored.
type ColorMode int

const (
	// ColorAuto colors output only when the sink is a terminal.
	ColorAuto ColorMode = iota
	// ColorNever disables colors.
	ColorNever
	// ColorAlways forces colors.
	ColorAlways
)

// String returns the flag spelling of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorNever:
		return "never"
	case ColorAlways:
		return "always"
	default:
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
}

// ParseColorMode parses "auto", "never" or "always" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "never", "no", "off":
		return ColorNever, nil
	case "always", "yes", "on":
		return ColorAlways, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, never or always)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	mode, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// fder is implemented by *os.File and anything else backed by a descriptor.
type fder interface {
	Fd() uintptr
}

// ResolveColor decides whether output to w should be colored.
func ResolveColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return IsTerminal(w)
	}
}

// IsTerminal reports whether w is attached to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
