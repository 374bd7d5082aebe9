package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apperrors "sum512/internal/errors"
)

func newVerifyCommand(logger *logrus.Logger) *cobra.Command {
	var variant int

	cmd := &cobra.Command{
		Use:   "verify [flags] CHECKFILE",
		Short: "Verify checksums from a checksum file",
		Long:  "Read \"<hex digest>  <name>\" lines from CHECKFILE, recompute each digest,\nand report OK or FAILED per entry. Exits non-zero if any entry fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("verify requires exactly one checksum file argument: %w", apperrors.ErrUsage)
			}
			if err := checkVariant(variant); err != nil {
				return err
			}
			return runVerify(cmd, args[0], variant, logger)
		},
	}
	cmd.Flags().IntVarP(&variant, "variant", "t", 512, "truncation parameter t used when the checksums were produced")

	return cmd
}

func runVerify(cmd *cobra.Command, path string, variant int, logger *logrus.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open checksum file: %w", err)
	}
	defer f.Close()

	var total, failed int
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		want, name, err := parseCheckLine(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}

		total++
		got, err := digestPath(cmd, name, variant, false, logger)
		if err != nil {
			return err
		}
		if got == want {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
		} else {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: FAILED\n", name)
			logger.Debugf("%s: want %s got %s", name, want, got)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read checksum file: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d computed checksums did not match: %w", failed, total, apperrors.ErrVerify)
	}
	return nil
}

// parseCheckLine splits a "<hex digest>  <name>" entry. The two-space
// separator is the md5sum convention; names may contain further spaces.
func parseCheckLine(line string) (digest, name string, err error) {
	parts := strings.SplitN(line, "  ", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("malformed checksum line %q", line)
	}
	return strings.ToLower(parts[0]), parts[1], nil
}
