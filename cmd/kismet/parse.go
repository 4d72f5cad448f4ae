package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kismet/internal/ast"
	"kismet/internal/diag"
	"kismet/internal/lexer"
	"kismet/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Lex and parse a source file, printing its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "json", "output format (json|render)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	format, _ := cmd.Flags().GetString("format")

	l := lexer.New(string(source), path)
	tokens, lexDiags := l.Tokenize()
	if len(lexDiags) > 0 {
		printDiagsPretty(string(source), lexDiags, useColor(cmd, os.Stderr))
		return fmt.Errorf("%d lexer diagnostic(s)", len(lexDiags))
	}

	node, perr := parser.Parse(tokens)
	if perr != nil {
		d := failureToDiagnostic(perr)
		printDiagsPretty(string(source), []diag.Diagnostic{d}, useColor(cmd, os.Stderr))
		return perr
	}

	switch format {
	case "render":
		fmt.Println(ast.Render(node))
		return nil
	case "json":
		return printJSON(map[string]interface{}{
			"ast":         ast.ExprToMap(node),
			"diagnostics": []map[string]interface{}{},
		})
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// failureToDiagnostic adapts a *parser.Failure into a diag.Diagnostic
// so the CLI's single pretty-printer can render both lexer and parser
// errors the same way.
func failureToDiagnostic(err error) diag.Diagnostic {
	if f, ok := err.(*parser.Failure); ok {
		return diag.Errorf("P0001", f.Span, "%s", f.Message)
	}
	return diag.Diagnostic{Code: "P0000", Severity: diag.Error, Kind: diag.Grammar, Message: err.Error()}
}
