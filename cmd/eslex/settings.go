package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"eslex/internal/config"
	"eslex/internal/driver"
	"eslex/internal/observ"
)

// settings is eslex.toml merged with the flags the user set explicitly.
type settings struct {
	cfg     config.Config
	opts    driver.Options
	quiet   bool
	timer   *observ.Timer
	colorOn func(f *os.File) bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	root := cmd.Root().PersistentFlags()

	configPath, err := root.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, _, err = config.Discover(".")
	}
	if err != nil {
		return nil, err
	}

	if err := applyFlagOverrides(cmd, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts, err := driver.OptionsFromConfig(&cfg)
	if err != nil {
		return nil, err
	}

	quiet, err := root.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := root.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	s := &settings{cfg: cfg, opts: opts, quiet: quiet}
	if timings {
		s.timer = observ.NewTimer()
		s.opts.Timer = s.timer
	}
	mode := cfg.Output.Color
	s.colorOn = func(f *os.File) bool { return resolveColor(mode, isTerminal(f)) }
	return s, nil
}

// applyFlagOverrides copies explicitly set flags over the file values.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	root := cmd.Root().PersistentFlags()
	if root.Changed("color") {
		v, err := root.GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		cfg.Output.Color = strings.ToLower(strings.TrimSpace(v))
	}
	if root.Changed("max-diagnostics") {
		v, err := root.GetInt("max-diagnostics")
		if err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		cfg.Output.MaxDiagnostics = v
	}

	local := cmd.Flags()
	if f := local.Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = strings.ToLower(f.Value.String())
	}
	if f := local.Lookup("context"); f != nil && f.Changed {
		cfg.Lexer.Context = config.ContextMode(strings.ToLower(f.Value.String()))
	}
	if f := local.Lookup("operator"); f != nil && f.Changed {
		v, err := local.GetBool("operator")
		if err != nil {
			return fmt.Errorf("failed to get operator flag: %w", err)
		}
		cfg.Lexer.OperatorPosition = v
	}
	if f := local.Lookup("asi"); f != nil && f.Changed {
		v, err := local.GetBool("asi")
		if err != nil {
			return fmt.Errorf("failed to get asi flag: %w", err)
		}
		cfg.Lexer.ASI = v
	}
	if f := local.Lookup("reserve"); f != nil && f.Changed {
		v, err := local.GetStringSlice("reserve")
		if err != nil {
			return fmt.Errorf("failed to get reserve flag: %w", err)
		}
		cfg.Lexer.ExtraReserved = append(cfg.Lexer.ExtraReserved, v...)
	}
	return nil
}

// addLexerFlags registers the per-command lexer overrides.
func addLexerFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", config.FormatPretty, "output format (pretty|json|msgpack)")
	cmd.Flags().String("context", string(config.ContextTrack), "context driver (track|fixed)")
	cmd.Flags().Bool("operator", false, "start in operator position ('/' divides)")
	cmd.Flags().Bool("asi", false, "start with line breaks significant")
	cmd.Flags().StringSlice("reserve", nil, "extra reserved words, e.g. --reserve await")
}

func resolveColor(mode string, tty bool) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return tty
	}
}
