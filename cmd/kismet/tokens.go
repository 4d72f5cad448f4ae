package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kismet/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Lex a source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().Bool("json", false, "print tokens as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	l := lexer.New(string(source), path)
	tokens, diags := l.Tokenize()

	if asJSON {
		if err := printJSON(map[string]interface{}{
			"tokens":      tokensToSlice(tokens),
			"diagnostics": diagsToSlice(diags),
		}); err != nil {
			return err
		}
	} else {
		printTokensText(tokens)
		if len(diags) > 0 {
			printDiagsPretty(string(source), diags, useColor(cmd, os.Stderr))
		}
	}

	if len(diags) > 0 {
		return fmt.Errorf("%d lexer diagnostic(s)", len(diags))
	}
	return nil
}
