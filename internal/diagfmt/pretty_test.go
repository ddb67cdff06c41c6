package diagfmt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shunt/internal/diag"
	"shunt/internal/lexer"
	"shunt/internal/source"
)

func TestPrettyPlain(t *testing.T) {
	input := "2 + $"
	_, err := lexer.Tokenize(input, lexer.Options{})
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, input, err, PrettyOpts{}))
	want := "error[LEX1001]: illegal character '$'\n" +
		"  | 2 + $\n" +
		"  |     ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrettyShowCode(t *testing.T) {
	err := diag.Errorf(diag.SynMismatchedParentheses, source.At(0), "unclosed '('")
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "(2+3", err, PrettyOpts{ShowCode: true}))
	assert.True(t, strings.HasSuffix(buf.String(), "  = Mismatched parentheses\n"))
}

func TestPrettyColor(t *testing.T) {
	err := diag.Errorf(diag.LexIllegalCharacter, source.At(0), "illegal character '$'")
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "$", err, PrettyOpts{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrettyForeignError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "1+1", errors.New("boom"), PrettyOpts{}))
	assert.Equal(t, "error: boom\n", buf.String())
}

func TestPrettyEmptyInput(t *testing.T) {
	err := &diag.Error{Code: diag.EvalEmptyExpression}
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "", err, PrettyOpts{}))
	assert.Equal(t, "error[EVL3003]: empty expression\n", buf.String())
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		span      source.Span
		wantLine  string
		wantPad   string
		wantWidth int
	}{
		{"ascii", "1 + x", source.At(4), "1 + x", "    ", 1},
		{"wide rune before", "日 + x", source.At(6), "日 + x", "     ", 1},
		{"wide rune under caret", "日+1", source.Span{Start: 0, End: 3}, "日+1", "", 2},
		{"second line", "1 +\n2 $", source.At(6), "2 $", "  ", 1},
		{"crlf", "1 +\r\n$", source.At(5), "$", "", 1},
		{"tab kept", "\t$", source.At(1), "\t$", "\t", 1},
		{"empty span", "()", source.Span{}, "()", "", 1},
		{"past end", "2+", source.At(9), "2+", "  ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, pad, width := locate(tt.input, tt.span)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantPad, pad)
			assert.Equal(t, tt.wantWidth, width)
		})
	}
}

func TestResolveColor(t *testing.T) {
	assert.True(t, ResolveColor(ColorOn, nil))
	assert.False(t, ResolveColor(ColorOff, os.Stdout))
	assert.False(t, ResolveColor(ColorAuto, nil))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ResolveColor(ColorAuto, f), "regular files are not terminals")
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"": ColorAuto, "AUTO": ColorAuto, "on": ColorOn, "never": ColorOff} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}
