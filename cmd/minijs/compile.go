package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minijs/internal/diagfmt"
	"minijs/internal/driver"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file.mjs|directory]",
	Short: "Compile MiniJS source to S-expressions",
	Long: `Compile runs the full pipeline over a MiniJS source file (or every *.mjs
file in a directory) and prints the resulting S-expression.

Without arguments the entry point is taken from minijs.toml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().String("format", "sexpr", "output format (sexpr|pretty)")
	compileCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	compileCmd.Flags().Bool("cache", false, "reuse compiled output from the disk cache")
	compileCmd.Flags().Bool("write", false, "directory mode: write a .sexpr file next to each source")
}

func runCompile(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := maxDiagnosticsFlag(cmd)
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "sexpr" && format != "pretty" {
		return fmt.Errorf("unknown format: %s", format)
	}

	target, err := resolveCompileTarget(args)
	if err != nil {
		return err
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return compileDirectory(cmd, target, maxDiagnostics, format)
	}
	return compileFile(cmd, target, maxDiagnostics, format)
}

// resolveCompileTarget выбирает цель: аргумент или [build].entry из minijs.toml.
func resolveCompileTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%s", noManifestMessage)
	}
	return manifest.EntryPath(), nil
}

func compileFile(cmd *cobra.Command, path string, maxDiagnostics int, format string) error {
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	var result *driver.CompileResult
	if useCache {
		cache, cacheErr := driver.OpenDiskCache("minijs")
		if cacheErr != nil {
			return fmt.Errorf("failed to open disk cache: %w", cacheErr)
		}
		result, _, err = driver.CompileCached(cache, path, maxDiagnostics)
	} else {
		result, err = driver.Compile(path, maxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}

	return writeOutput(cmd, result, format)
}

func writeOutput(cmd *cobra.Command, result *driver.CompileResult, format string) (err error) {
	var outPath string
	outPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	out := os.Stdout
	if outPath != "" {
		f, createErr := os.Create(outPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		out = f
	}

	if format == "pretty" {
		return diagfmt.FormatSexprPretty(out, result.Value)
	}
	_, err = fmt.Fprintln(out, result.Output)
	return err
}

func compileDirectory(cmd *cobra.Command, dir string, maxDiagnostics int, format string) error {
	writeFiles, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	entries, err := driver.CompileDir(cmd.Context(), dir, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("directory compilation failed: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no %s files in %s", driver.SourceExt, dir)
	}

	failed := 0
	for _, entry := range entries {
		if entry.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", entry.Path, entry.Err)
			failed++
			continue
		}
		if diagErr := printDiagnostics(cmd, entry.Result.Bag, entry.Result.FileSet); diagErr != nil {
			return diagErr
		}
		if entry.Result.Bag.HasErrors() {
			failed++
			continue
		}

		if writeFiles {
			outPath := entry.Path + ".sexpr"
			if writeErr := os.WriteFile(outPath, []byte(entry.Result.Output+"\n"), 0o644); writeErr != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, writeErr)
			}
			if !quiet {
				fmt.Printf("%s -> %s\n", entry.Path, outPath)
			}
			continue
		}

		fmt.Printf("%s: %s\n", entry.Path, entry.Result.Output)
	}

	if failed > 0 {
		return fmt.Errorf("compilation failed for %d of %d files", failed, len(entries))
	}
	return nil
}
