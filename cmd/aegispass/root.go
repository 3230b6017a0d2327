package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aegispass/aegispass/derive"
	"github.com/aegispass/aegispass/preset"
)

// defaultPresetFile is looked up beside the executable when --config is
// not given; if it does not exist either, the built-in preset is used.
const defaultPresetFile = "default.json"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "aegispass [flags] [SECRET] LABEL",
	Short: "deterministic password generator",
	Long: `aegispass derives a reproducible high-entropy password from a secret you
remember, a label that distinguishes the target (for example a site name),
and a preset describing algorithm choices and output shape.

The same secret, label, and preset always produce the identical password,
so nothing needs to be stored anywhere. With a single argument the secret
is prompted for on the terminal without echo.`,
	Example: `  aegispass example.com
  aegispass 'MySecretPassword123!' example.com
  aegispass --config work.json example.com`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to a preset JSON file (default: default.json beside the executable)")
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	var secret, label string
	switch len(args) {
	case 2:
		secret, label = args[0], args[1]
	case 1:
		label = args[0]
		s, err := promptSecret(cmd)
		if err != nil {
			return err
		}
		secret = s
	}

	p, err := loadPreset()
	if err != nil {
		return err
	}

	password, err := derive.Password(secret, label, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), password)
	return nil
}

// loadPreset resolves the preset: explicit --config, then default.json
// beside the executable, then the built-in default.
func loadPreset() (preset.Preset, error) {
	if configPath != "" {
		return preset.DecodeFile(configPath)
	}
	if exe, err := os.Executable(); err == nil {
		path := filepath.Join(filepath.Dir(exe), defaultPresetFile)
		if _, err := os.Stat(path); err == nil {
			return preset.DecodeFile(path)
		}
	}
	return preset.Default(), nil
}

// promptSecret reads the secret from the terminal without echoing it.
func promptSecret(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no secret argument given and stdin is not a terminal")
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Secret: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return string(b), nil
}
