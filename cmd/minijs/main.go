package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"minijs/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "minijs",
	Short: "MiniJS to S-expression compiler",
	Long:  `minijs compiles a small JavaScript-like expression language into S-expressions`,
}

// main initializes the CLI by setting the command version, registering subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version
	rootCmd.SilenceUsage = true

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
