package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	alphabetFlag      string
	alphabetsFileFlag string
)

// base64Cmd represents the base64 command
var base64Cmd = &cobra.Command{
	Use:   "base64",
	Short: "Convert bytes to and from base64",
	Long: `Convert bytes to and from base64 in a chosen dialect.

The --alphabet flag takes a known name (std, url, imap, bcrypt, i2p, or a
name from --alphabets-file) or a literal string of 64 symbols, optionally
followed by a 65th pad symbol.`,
}

var base64EncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Base64-encode a file or stdin",
	Long: `Base64-encode a file or stdin and print the result to stdout.

Example:
  bifrost base64 encode payload.bin
  bifrost base64 encode --alphabet url payload.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alphabet, err := resolveAlphabet(alphabetFlag, alphabetsFileFlag)
		if err != nil {
			return err
		}

		data, name, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		encoded := alphabet.Encode(data)
		logSizes("base64 encode", name, len(data), len(encoded))

		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	},
}

var base64DecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode base64 text back into bytes",
	Long: `Decode base64 text from a file or stdin and write the raw bytes to
stdout. The input must match the chosen alphabet exactly.

Example:
  bifrost base64 decode encoded.txt > payload.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alphabet, err := resolveAlphabet(alphabetFlag, alphabetsFileFlag)
		if err != nil {
			return err
		}

		text, name, err := readInputText(cmd, args)
		if err != nil {
			return err
		}

		decoded, err := alphabet.Decode(text)
		if err != nil {
			return err
		}
		logSizes("base64 decode", name, len(text), len(decoded))

		return writeOutput(cmd, decoded)
	},
}

func init() {
	rootCmd.AddCommand(base64Cmd)
	base64Cmd.AddCommand(base64EncodeCmd)
	base64Cmd.AddCommand(base64DecodeCmd)

	base64Cmd.PersistentFlags().StringVarP(&alphabetFlag, "alphabet", "a", "std",
		"Alphabet name or literal 64/65 symbols")
	base64Cmd.PersistentFlags().StringVar(&alphabetsFileFlag, "alphabets-file", "",
		"YAML file with additional named alphabets")
}
