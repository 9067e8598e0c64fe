package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minijs/internal/diagfmt"
	"minijs/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.mjs",
	Short: "Tokenize a MiniJS source file",
	Long:  `Tokenize breaks down a MiniJS source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("tokenization finished with errors")
	}
	return nil
}
