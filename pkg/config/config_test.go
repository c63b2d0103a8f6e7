package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".env")
	content := "# comment\n\nRECEIPTOR_OUTPUT_DIR=/from/file\nRECEIPTOR_DEBUG_DIR=\"/quoted\"\nnot a pair\n"
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("RECEIPTOR_OUTPUT_DIR", "/already/set")
	// t.Setenv restores on cleanup; unset the other key explicitly so LoadDotEnv sets it.
	t.Setenv("RECEIPTOR_DEBUG_DIR", "")
	os.Unsetenv("RECEIPTOR_DEBUG_DIR")

	LoadDotEnv(p)

	if got := os.Getenv("RECEIPTOR_OUTPUT_DIR"); got != "/already/set" {
		t.Fatalf("existing var overridden: got %q", got)
	}
	if got := os.Getenv("RECEIPTOR_DEBUG_DIR"); got != "/quoted" {
		t.Fatalf("expected /quoted got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RECEIPTOR_OUTPUT_DIR", "/out")
	t.Setenv("RECEIPTOR_DEBUG_DIR", "/dbg")
	t.Setenv("RECEIPTOR_DEBUG", "Yes")
	cfg := FromEnv()
	if cfg.OutputDir != "/out" || cfg.DebugDir != "/dbg" || !cfg.Debug {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{" ON ", true},
		{"0", false},
		{"no", false},
		{"", false},
	}
	for _, c := range cases {
		if got := parseBool(c.in); got != c.want {
			t.Errorf("parseBool(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
