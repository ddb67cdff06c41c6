package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"shunt/internal/diag"
	"shunt/internal/source"
)

const gutter = "  | "

// Pretty writes err in a human-readable form:
//
//	error[LEX1001]: illegal character '$'
//	  | 2 + $
//	  |     ^
//
// Only the input line holding the span start is shown. Errors that are not
// *diag.Error get the header only.
func Pretty(w io.Writer, input string, err error, opts PrettyOpts) error {
	if err == nil {
		return nil
	}
	header := paint(opts.Color, color.FgRed, color.Bold)
	accent := paint(opts.Color, color.FgCyan)
	caretC := paint(opts.Color, color.FgRed, color.Bold)

	var de *diag.Error
	if !errors.As(err, &de) {
		_, werr := fmt.Fprintf(w, "%s %s\n", header.Sprint("error:"), err.Error())
		return werr
	}

	var b strings.Builder
	label := diag.SevError.Label()
	fmt.Fprintf(&b, "%s %s\n", header.Sprintf("%s[%s]:", label, de.Code.ID()), message(de))

	if input != "" {
		line, col, width := locate(input, de.Span)
		b.WriteString(accent.Sprint(gutter))
		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(accent.Sprint(gutter))
		b.WriteString(col)
		b.WriteString(caretC.Sprint(strings.Repeat("^", width)))
		b.WriteByte('\n')
	}
	if opts.ShowCode {
		fmt.Fprintf(&b, "  = %s\n", de.Code.Title())
	}

	_, werr := io.WriteString(w, b.String())
	return werr
}

func message(de *diag.Error) string {
	if de.Msg != "" {
		return de.Msg
	}
	return strings.ToLower(de.Code.Title())
}

// locate returns the line around sp.Start, the padding that lines a caret up
// under sp.Start, and the caret width in cells (at least 1).
// Tabs in the padding are kept so the caret stays aligned in any tab width.
func locate(input string, sp source.Span) (string, string, int) {
	n := source.Len(input)
	sp = sp.Clamp(n)

	start := int(sp.Start)
	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := len(input)
	if i := strings.IndexByte(input[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	line := strings.TrimRight(input[lineStart:lineEnd], "\r")

	var pad strings.Builder
	for _, r := range input[lineStart:start] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	end := int(sp.End)
	if end > lineEnd {
		end = lineEnd
	}
	width := 1
	if end > start {
		width = max(runewidth.StringWidth(input[start:end]), 1)
	}
	return line, pad.String(), width
}

func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
