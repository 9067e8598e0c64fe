package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"minijs/internal/diagfmt"
	"minijs/internal/sexpr"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] [file.sexpr]",
	Short: "Decode a serialized S-expression",
	Long: `Decode reads an S-expression in wire form (from a file or stdin) and
prints it back in the requested format. Useful for inspecting compiled output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|wire)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	var data []byte
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	value, err := sexpr.Deserialize(string(data))
	if err != nil {
		var decErr *sexpr.DecodeError
		if errors.As(err, &decErr) {
			return fmt.Errorf("decode failed: %s", decErr.Error())
		}
		return fmt.Errorf("decode failed: %w", err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatSexprPretty(os.Stdout, value)
	case "wire":
		_, err = fmt.Println(sexpr.Serialize(value))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
