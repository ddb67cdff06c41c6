package diagfmt

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when Pretty output is coloured.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

func (m ColorMode) String() string {
	switch m {
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	}
	return "auto"
}

// ParseColorMode accepts auto|on|off.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
}

// ResolveColor decides whether output to f should be coloured.
// Auto colours only terminals.
func ResolveColor(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	return f != nil && isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color bool
	// ShowCode adds the " = <title>" footer line.
	ShowCode bool
}
