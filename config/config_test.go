package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
grammar = "array"
format = "json"
color = "never"
verbosity = 2

[lsp.grammar_by_extension]
".nums" = "array"

[serve]
addr = ":9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grammar != "array" {
		t.Errorf("Grammar = %q, want %q", cfg.Grammar, "array")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, ":9000")
	}
	if got := cfg.GrammarFor("numbers.nums"); got != "array" {
		t.Errorf("GrammarFor(.nums) = %q, want %q", got, "array")
	}
	if got := cfg.GrammarFor("notes.txt"); got != "array" {
		t.Errorf("GrammarFor(.txt) = %q, want default %q", got, "array")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grammar != "tagged" || cfg.Format != "text" || cfg.Color != "auto" {
		t.Errorf("defaults = %+v", cfg)
	}
	if got := cfg.GrammarFor("x.arr"); got != "array" {
		t.Errorf("GrammarFor(.arr) = %q, want %q", got, "array")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of explicit missing file succeeded")
	}

	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Grammar != "tagged" {
		t.Errorf("Grammar = %q, want default", cfg.Grammar)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "grammar = ", "load config"},
		{"color", `color = "sometimes"`, "color must be"},
		{"verbosity", `verbosity = -1`, "verbosity"},
		{"extension", "[lsp.grammar_by_extension]\narr = \"array\"", "must start with a dot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
