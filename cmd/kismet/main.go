// Command kismet is the CLI driver for the Kismet expression grammar:
// a lexer/parser front end with no evaluator attached (internal/exec
// is a reserved seam, not wired here).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kismet",
	Short: "Kismet expression language tokenizer and parser",
	Long:  `Kismet lexes and parses dice-expression source into an annotated AST. There is no evaluator: kismet only tokenizes, parses, and renders.`,
}

func main() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func useColor(cmd *cobra.Command, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(out)
	}
}
