package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minijs/internal/diagfmt"
	"minijs/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mjs",
	Short: "Parse a MiniJS source file and output its AST",
	Long:  `Parse analyzes a MiniJS source file and outputs its expression tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("parsing finished with errors")
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.Root, result.FileSet)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.Root)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
