package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"receiptor/pkg/config"
	"receiptor/pkg/preprocess"
)

// Process exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitLoadError = 2
	exitSaveError = 3
)

var errNoInput = errors.New("no image path on stdin")

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:           "receiptor",
		Short:         "Binarize a scanned receipt for OCR",
		Long:          "Reads an image path from stdin, converts it to black and white and prints the path of the result.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := initLogger(cmd.ErrOrStderr(), cfg.Debug)

			path, err := readPath(cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, err := preprocess.New(cfg, log).Run(path)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for the processed image (default: system temp dir)")
	cmd.Flags().StringVar(&cfg.DebugDir, "debug-dir", cfg.DebugDir, "also write intermediate gray/binary stages here")
	cmd.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	return cmd
}

// readPath returns the first whitespace-delimited token from r.
func readPath(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if sc.Scan() {
		return sc.Text(), nil
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return "", errNoInput
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case preprocess.IsLoadError(err):
		return exitLoadError
	case preprocess.IsSaveError(err):
		return exitSaveError
	}
	return exitFailure
}

// initLogger writes to w so stdout stays reserved for the result path.
func initLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.WarnLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
