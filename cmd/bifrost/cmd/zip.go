package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/compress"
)

// zipCmd represents the zip command
var zipCmd = &cobra.Command{
	Use:   "zip [file]",
	Short: "Compress a file or stdin into a zlib stream",
	Long: `Compress a file or stdin into a zlib deflate stream on stdout.

Example:
  bifrost zip big.log > big.log.z`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, name, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		zipped, err := compress.Zip(data)
		if err != nil {
			return err
		}
		logSizes("zip", name, len(data), len(zipped))

		return writeOutput(cmd, zipped)
	},
}

// unzipCmd represents the unzip command
var unzipCmd = &cobra.Command{
	Use:   "unzip [file]",
	Short: "Decompress a zlib stream back into raw bytes",
	Long: `Decompress a zlib deflate stream from a file or stdin onto stdout.

Example:
  bifrost unzip big.log.z > big.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, name, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		unzipped, err := compress.Unzip(data)
		if err != nil {
			return err
		}
		logSizes("unzip", name, len(data), len(unzipped))

		return writeOutput(cmd, unzipped)
	},
}

func init() {
	rootCmd.AddCommand(zipCmd)
	rootCmd.AddCommand(unzipCmd)
}
