package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/bifrost/pkg/digest"
	"github.com/ssargent/bifrost/pkg/hex"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [file...]",
	Short: "Print MD5 digests of files or stdin",
	Long: `Print the MD5 digest of each named file, one md5sum-style line per
file. With no arguments (or "-") the digest of stdin is printed.

Example:
  bifrost hash release.tar.gz
  bifrost hash a.bin b.bin c.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}

		for _, path := range args {
			var (
				d   [digest.Size]byte
				err error
			)
			if path == "-" {
				d, err = digest.SumReader(cmd.InOrStdin())
			} else {
				d, err = digest.SumFile(path)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", hex.Encode(d[:]), path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
