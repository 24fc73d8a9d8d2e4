package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/hex"
)

// hexCmd represents the hex command
var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Convert bytes to and from hexadecimal",
}

var hexEncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Hex-encode a file or stdin",
	Long: `Hex-encode a file or stdin and print the lowercase digits to stdout.

Example:
  bifrost hex encode payload.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, name, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		encoded := hex.Encode(data)
		logSizes("hex encode", name, len(data), len(encoded))

		fmt.Fprintln(cmd.OutOrStdout(), encoded)
		return nil
	},
}

var hexDecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode hexadecimal text back into bytes",
	Long: `Decode hexadecimal text from a file or stdin and write the raw bytes
to stdout. Both digit cases are accepted.

Example:
  bifrost hex decode digits.txt > payload.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, name, err := readInputText(cmd, args)
		if err != nil {
			return err
		}

		decoded, err := hex.Decode(text)
		if err != nil {
			return err
		}
		logSizes("hex decode", name, len(text), len(decoded))

		return writeOutput(cmd, decoded)
	},
}

func init() {
	rootCmd.AddCommand(hexCmd)
	hexCmd.AddCommand(hexEncodeCmd)
	hexCmd.AddCommand(hexDecodeCmd)
}
