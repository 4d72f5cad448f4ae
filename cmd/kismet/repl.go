package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"kismet/internal/ast"
	"kismet/internal/diag"
	"kismet/internal/lexer"
	"kismet/internal/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-parse-render loop",
	RunE:  runRepl,
}

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
)

func runRepl(cmd *cobra.Command, args []string) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".kismet_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorGreen + "kismet> " + colorReset,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s%skismet%s %s(parses one expression per line; type 'exit' or Ctrl+D to quit)%s\n\n",
		colorBold, colorCyan, colorReset, colorGray, colorReset)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			return nil
		}

		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		l := lexer.New(line, "<repl>")
		tokens, lexDiags := l.Tokenize()
		if len(lexDiags) > 0 {
			printDiagsPretty(line, lexDiags, useColor(cmd, os.Stderr))
			continue
		}

		node, perr := parser.Parse(tokens)
		if perr != nil {
			printDiagsPretty(line, []diag.Diagnostic{failureToDiagnostic(perr)}, useColor(cmd, os.Stderr))
			continue
		}

		fmt.Fprintf(rl.Stdout(), "%s\n", ast.Render(node))
		if data, err := json.Marshal(ast.ExprToMap(node)); err == nil {
			fmt.Fprintf(rl.Stdout(), "%s%s%s\n", colorGray, string(data), colorReset)
		}
	}
}
