package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"receiptor/pkg/config"
	"receiptor/pkg/preprocess"
)

// Runs the preprocessing pipeline on one file and keeps every intermediate
// stage next to the result for visual inspection.
func main() {
	f := flag.String("file", "", "image file to preprocess")
	dir := flag.String("dir", "", "directory for stage dumps and the result (default: new temp dir)")
	flag.Parse()
	if *f == "" {
		log.Fatalf("-file required")
	}
	if *dir == "" {
		d, err := os.MkdirTemp("", "receiptor-debug-*")
		if err != nil {
			log.Fatalf("mkdir temp: %v", err)
		}
		*dir = d
	}

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	p := preprocess.New(config.Config{OutputDir: *dir, DebugDir: *dir}, logger)
	out, err := p.Run(*f)
	if err != nil {
		log.Fatalf("preprocess: %v", err)
	}
	fmt.Printf("stages=%s result=%s\n", *dir, out)
}
