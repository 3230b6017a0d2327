package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and returns stdout output.
// Flag state persists on the package-level command, so each run resets it.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func TestRoot_DerivesWithBuiltinPreset(t *testing.T) {
	// The test binary has no default.json beside it, so the built-in
	// preset applies and the output is the pinned golden value.
	out, err := execute(t, "MySecretPassword123!", "example.com")
	if err != nil {
		t.Fatalf("execute returned unexpected error: %v", err)
	}
	if got := strings.TrimSuffix(out, "\n"); got != "Mo9f61cesXtURK-n" {
		t.Errorf("output = %q, want %q", got, "Mo9f61cesXtURK-n")
	}
}

func TestRoot_ConfigFlag(t *testing.T) {
	doc := `{
	  "name": "Short",
	  "version": 1,
	  "hashAlgorithm": "sha256",
	  "rngAlgorithm": "chaCha20",
	  "shuffleAlgorithm": "fisherYates",
	  "length": 4,
	  "platformId": "aegispass.example",
	  "charsets": [
	    "0123456789",
	    "abcdefghijklmnopqrstuvwxyz",
	    "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	    "!@#$%^&*()_+-="
	  ]
	}`
	path := filepath.Join(t.TempDir(), "short.json")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "MySecretPassword123!", "example.com")
	if err != nil {
		t.Fatalf("execute returned unexpected error: %v", err)
	}
	if got := strings.TrimSuffix(out, "\n"); got != "G8)e" {
		t.Errorf("output = %q, want %q", got, "G8)e")
	}
}

func TestRoot_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"version": 99}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--config", path, "secret", "example.com"); err == nil {
		t.Fatal("expected error for unsupported preset version")
	}
}

func TestRoot_DerivationError(t *testing.T) {
	// Empty secret must surface the core's validation error.
	if _, err := execute(t, "", "example.com"); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestRoot_MissingSecretWithoutTerminal(t *testing.T) {
	// One positional argument triggers the terminal prompt; under `go
	// test` stdin is not a terminal, so the command must fail cleanly.
	if _, err := execute(t, "example.com"); err == nil {
		t.Fatal("expected error when stdin is not a terminal")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute returned unexpected error: %v", err)
	}
	if !strings.Contains(out, "aegispass") || !strings.Contains(out, version) {
		t.Errorf("version output = %q", out)
	}
}
