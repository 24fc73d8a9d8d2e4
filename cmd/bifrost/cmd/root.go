/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

// logger stays silent unless --verbose swaps in a real console writer.
var logger = zerolog.Nop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bifrost",
	Short: "Bifrost - byte array codec toolkit",
	Long: `Bifrost converts bytes between raw, hexadecimal, base64, compressed,
and digest forms. Input comes from a file argument or stdin ("-"), results
go to stdout.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = zerolog.New(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			}).With().Timestamp().Str("app", "bifrost").Logger()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// readInput returns the contents of the optional file argument, reading stdin
// when the argument is missing or "-", plus a display name for diagnostics.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "-", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "-", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, args[0], fmt.Errorf("failed to read input: %w", err)
	}
	return data, args[0], nil
}

// readInputText is readInput for text payloads. Surrounding whitespace is
// trimmed so a shell-appended trailing newline does not corrupt decoding.
func readInputText(cmd *cobra.Command, args []string) (string, string, error) {
	data, name, err := readInput(cmd, args)
	return strings.TrimSpace(string(data)), name, err
}

// writeOutput sends raw result bytes to the command's stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logSizes(op, input string, in, out int) {
	logger.Debug().
		Str("op", op).
		Str("input", input).
		Str("read", humanize.Bytes(uint64(in))).
		Str("wrote", humanize.Bytes(uint64(out))).
		Msg("processed")
}
