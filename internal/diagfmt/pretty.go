// Package diagfmt renders diag.Diagnostic values against source text
// for a human reader: a colorized severity line followed by the
// offending source line and a caret underline beneath the failing
// span. Grounded on vovakirdan-surge's internal/diagfmt/pretty.go,
// trimmed to the single-file shape kismet's CLI needs (no FileSet,
// no fix/note machinery — the grammar never produces those).
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"kismet/internal/diag"
)

// PrettyOpts controls Pretty's rendering.
type PrettyOpts struct {
	Color   bool
	Context int // number of context lines shown above/below the failing line
}

// visualWidthUpTo computes the on-screen column width of source up to
// the given 1-based byte column, expanding tabs and accounting for
// wide runes via go-runewidth.
func visualWidthUpTo(s string, byteCol int, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= byteCol-1 {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

// Pretty writes each diagnostic in diags against source (the same text
// that produced the tokens/AST the diagnostics refer to) to w.
func Pretty(w io.Writer, source string, diags []diag.Diagnostic, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)
	codeColor := color.New(color.FgMagenta)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	lines := strings.Split(source, "\n")

	context := opts.Context
	if context <= 0 {
		context = 1
	}

	for idx, d := range diags {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		var sevColored string
		switch d.Severity {
		case diag.Error:
			sevColored = errorColor.Sprint(d.Severity.String())
		case diag.Warning:
			sevColored = warningColor.Sprint(d.Severity.String())
		default:
			sevColored = d.Severity.String()
		}

		fmt.Fprintf(w, "%d:%d: %s %s: %s\n",
			d.Span.Start.Line, d.Span.Start.Column,
			sevColored, codeColor.Sprint(d.Code), d.Message)

		lineIdx := d.Span.Start.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}

		startLine := lineIdx - context
		if startLine < 0 {
			startLine = 0
		}
		endLine := lineIdx + context
		if endLine >= len(lines) {
			endLine = len(lines) - 1
		}

		lineNumWidth := len(fmt.Sprintf("%d", endLine+1))
		if lineNumWidth < 3 {
			lineNumWidth = 3
		}

		const tabWidth = 8
		for ln := startLine; ln <= endLine; ln++ {
			gutter := fmt.Sprintf("%*d | ", lineNumWidth, ln+1)
			fmt.Fprint(w, lineNumColor.Sprint(gutter))
			fmt.Fprintln(w, lines[ln])

			if ln != lineIdx {
				continue
			}
			startCol := d.Span.Start.Column
			endCol := d.Span.End.Column
			if d.Span.End.Line > d.Span.Start.Line {
				endCol = len(lines[ln]) + 1
			}
			visualStart := visualWidthUpTo(lines[ln], startCol, tabWidth)
			visualEnd := visualWidthUpTo(lines[ln], endCol, tabWidth)

			var underline strings.Builder
			for range lineNumWidth + 3 {
				underline.WriteByte(' ')
			}
			for range visualStart {
				underline.WriteByte(' ')
			}
			spanLen := visualEnd - visualStart
			if spanLen <= 0 {
				underline.WriteByte('^')
			} else {
				for i := 0; i < spanLen; i++ {
					if i == spanLen-1 {
						underline.WriteByte('^')
					} else {
						underline.WriteByte('~')
					}
				}
			}
			fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
		}

		if d.Hint != "" {
			fmt.Fprintf(w, "  %s: %s\n", color.New(color.FgCyan).Sprint("hint"), d.Hint)
		}
	}
}
