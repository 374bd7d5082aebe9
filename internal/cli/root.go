// Package cli implements the sum512 command line interface.
package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sum512/internal/logging"
)

// NewRootCommand builds the sum512 command tree writing to the provided
// streams.
func NewRootCommand(out io.Writer, errOut io.Writer) *cobra.Command {
	var verbose bool

	logger := logging.New(errOut, logrus.InfoLevel)

	root := &cobra.Command{
		Use:           "sum512",
		Short:         "Compute and verify SHA-512 checksums",
		Long:          "sum512 computes SHA-512 and SHA-512/t checksums of files or stdin,\nand verifies checksum files in the same format as md5sum/sha512sum.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSumCommand(logger),
		newVerifyCommand(logger),
		newVersionCommand(),
	)

	return root
}
