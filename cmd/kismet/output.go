package main

import (
	"encoding/json"
	"fmt"
	"os"

	"kismet/internal/diag"
	"kismet/internal/diagfmt"
	"kismet/internal/token"
)

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDiagsPretty(source string, diags []diag.Diagnostic, color bool) {
	diagfmt.Pretty(os.Stderr, source, diags, diagfmt.PrettyOpts{Color: color, Context: 1})
}

func diagsToSlice(diags []diag.Diagnostic) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		entry := map[string]interface{}{
			"code":     d.Code,
			"severity": d.Severity.String(),
			"kind":     d.Kind.String(),
			"message":  d.Message,
			"line":     d.Span.Start.Line,
			"column":   d.Span.Start.Column,
			"offset":   d.Span.Start.Offset,
		}
		if d.Hint != "" {
			entry["hint"] = d.Hint
		}
		result[i] = entry
	}
	return result
}

func tokensToSlice(tokens []token.Token) []map[string]interface{} {
	result := make([]map[string]interface{}, len(tokens))
	for i, t := range tokens {
		result[i] = map[string]interface{}{
			"kind":   t.Kind.String(),
			"lexeme": t.Lexeme,
			"line":   t.Span.Start.Line,
			"column": t.Span.Start.Column,
			"offset": t.Span.Start.Offset,
		}
	}
	return result
}

func printTokensText(tokens []token.Token) {
	for _, t := range tokens {
		fmt.Printf("%-10s %-20q %d:%d\n", t.Kind.String(), t.Lexeme, t.Span.Start.Line, t.Span.Start.Column)
	}
}
