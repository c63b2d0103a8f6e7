package preprocess

import (
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"receiptor/pkg/config"
)

// Preprocessor runs the load -> grayscale -> threshold -> save pipeline.
type Preprocessor struct {
	// OutputDir receives the result; empty means os.TempDir().
	OutputDir string
	// DebugDir, when non-empty, also receives the gray and binary stages.
	DebugDir string
	Logger   logrus.FieldLogger
}

// New builds a Preprocessor from cfg. A nil log discards output.
func New(cfg config.Config, log logrus.FieldLogger) *Preprocessor {
	if log == nil {
		log = discardLogger()
	}
	return &Preprocessor{
		OutputDir: cfg.OutputDir,
		DebugDir:  cfg.DebugDir,
		Logger:    log,
	}
}

// OptimizeForOCR processes the image at path with default settings and
// returns the path of the binarized PNG.
func OptimizeForOCR(path string) (string, error) {
	return New(config.Config{}, nil).Run(path)
}

// Run processes the image at path and returns where the result was written.
// Exactly one output file is created, and none when loading fails.
func (p *Preprocessor) Run(path string) (string, error) {
	log := p.logger().WithField("input", path)

	img, err := Load(path)
	if err != nil {
		return "", err
	}
	b := img.Bounds()
	log.WithFields(logrus.Fields{"width": b.Dx(), "height": b.Dy()}).Debug("image loaded")

	gray := Grayscale(img)
	p.dump(log, path, "gray", gray)

	bin := Threshold(gray, DefaultThreshold)
	p.dump(log, path, "binary", bin)

	out, err := SaveTemp(bin, p.OutputDir)
	if err != nil {
		return "", err
	}
	log.WithField("output", out).Info("receipt preprocessed")
	return out, nil
}

// dump writes an intermediate stage to DebugDir. Failures are only logged.
func (p *Preprocessor) dump(log logrus.FieldLogger, input, stage string, img image.Image) {
	if p.DebugDir == "" {
		return
	}
	dst := filepath.Join(p.DebugDir, debugName(input, stage))
	if err := Save(img, dst); err != nil {
		log.WithError(err).WithField("stage", stage).Warn("debug dump failed")
		return
	}
	log.WithFields(logrus.Fields{"stage": stage, "path": dst}).Debug("debug dump written")
}

func (p *Preprocessor) logger() logrus.FieldLogger {
	if p.Logger == nil {
		return discardLogger()
	}
	return p.Logger
}

// debugName derives "<stem>.<stage>.png" from the input file name.
func debugName(input, stage string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "." + stage + ".png"
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
