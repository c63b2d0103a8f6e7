package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Config holds runtime settings for the preprocessor.
type Config struct {
	// OutputDir receives the processed image. Empty means os.TempDir().
	OutputDir string
	// DebugDir, when set, also receives the intermediate gray and binary stages.
	DebugDir string
	// Debug switches logging to debug level with a human readable formatter.
	Debug bool
}

// Load reads ./.env (if present) and then the RECEIPTOR_* environment.
func Load() Config {
	LoadDotEnv(".env")
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		OutputDir: os.Getenv("RECEIPTOR_OUTPUT_DIR"),
		DebugDir:  os.Getenv("RECEIPTOR_DEBUG_DIR"),
		Debug:     parseBool(os.Getenv("RECEIPTOR_DEBUG")),
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// LoadDotEnv loads key=value pairs from path into the environment without
// overwriting variables that are already set. Lines starting with # are ignored.
func LoadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.Trim(strings.TrimSpace(line[eq+1:]), `"'`)
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
