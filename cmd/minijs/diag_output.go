package main

import (
	"os"

	"github.com/spf13/cobra"

	"minijs/internal/diag"
	"minijs/internal/diagfmt"
	"minijs/internal/source"
)

// printDiagnostics выводит содержимое Bag в stderr в pretty-формате.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))

	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		ShowNotes: true,
	})
	return nil
}

func maxDiagnosticsFlag(cmd *cobra.Command) (int, error) {
	return cmd.Root().PersistentFlags().GetInt("max-diagnostics")
}
