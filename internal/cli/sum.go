package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apperrors "sum512/internal/errors"
	"sum512/internal/progress"
	"sum512/sha512"
)

const readBufferSize = 1 << 20

func newSumCommand(logger *logrus.Logger) *cobra.Command {
	var variant int
	var showProgress bool

	cmd := &cobra.Command{
		Use:   "sum [flags] [file...]",
		Short: "Print SHA-512 (or SHA-512/t) checksums",
		Long:  "Print checksums of the named files, or of stdin when no file (or \"-\")\nis given. Output lines are \"<hex digest>  <name>\", the md5sum convention.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkVariant(variant); err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, name := range args {
				digest, err := digestPath(cmd, name, variant, showProgress, logger)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest, name); err != nil {
					return fmt.Errorf("write checksum line: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&variant, "variant", "t", 512, "truncation parameter t for SHA-512/t; 512 selects plain SHA-512")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "report hashing progress on stderr")

	return cmd
}

// checkVariant rejects unsupported t values up front so the error carries
// usage semantics instead of surfacing per file.
func checkVariant(t int) error {
	if t == 512 {
		return nil
	}
	if _, err := sha512.NewT(t); err != nil {
		return fmt.Errorf("%w: %w", err, apperrors.ErrUsage)
	}
	return nil
}

// newContext returns a hashing context for the requested output width.
// checkVariant has already rejected invalid values.
func newContext(t int) sha512.Context {
	if t == 512 {
		return sha512.New()
	}
	ctx, _ := sha512.NewT(t)
	return ctx
}

// digestPath hashes one file, or stdin for "-", and returns the hex digest
// truncated to the variant's output width.
func digestPath(cmd *cobra.Command, name string, variant int, showProgress bool, logger *logrus.Logger) (string, error) {
	var in io.Reader
	var total uint64

	if name == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()
		if fi, err := f.Stat(); err == nil {
			total = uint64(fi.Size())
		}
		in = f
	}

	var reporter *progress.Reporter
	if showProgress {
		reporter = progress.NewReporter(cmd.ErrOrStderr(), name, total)
	}

	digest, n, err := digestReader(in, variant, reporter)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", name, err)
	}
	logger.Debugf("hashed %s (%d bytes)", name, n)
	return digest, nil
}

// digestReader streams r through a hashing writer and returns the hex digest
// and the number of bytes consumed.
func digestReader(r io.Reader, variant int, reporter *progress.Reporter) (string, uint64, error) {
	w := sha512.NewWriterContext(newContext(variant))
	buf := make([]byte, readBufferSize)
	var total uint64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = w.Write(buf[:n])
			total += uint64(n)
			if reporter != nil {
				reporter.Update(total)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", total, fmt.Errorf("read input: %w", err)
		}
	}
	if reporter != nil {
		reporter.Done(total)
	}

	d := w.Sum()
	return hex.EncodeToString(d[:(variant+7)/8]), total, nil
}
