// Package config loads eslex.toml, the per-project lexer and output settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"eslex/internal/diag"
	"eslex/internal/token"
)

// FileName is the name searched for upward from the working directory.
const FileName = "eslex.toml"

// ContextMode selects how the CLI drives the lexer's grammar context.
type ContextMode string

const (
	// ContextTrack derives the context from the previous significant token.
	ContextTrack ContextMode = "track"
	// ContextFixed keeps the flags from [lexer] for the whole file.
	ContextFixed ContextMode = "fixed"
)

// Output formats for token dumps.
const (
	FormatPretty  = "pretty"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Config is the decoded eslex.toml.
type Config struct {
	// Path is the file the config was read from; empty for defaults.
	Path   string       `toml:"-"`
	Lexer  LexerConfig  `toml:"lexer"`
	Output OutputConfig `toml:"output"`
}

type LexerConfig struct {
	Context          ContextMode `toml:"context"`
	OperatorPosition bool        `toml:"operator_position"`
	ASI              bool        `toml:"asi"`
	ExtraReserved    []string    `toml:"extra_reserved"`
}

type OutputConfig struct {
	Format         string `toml:"format"`
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// Default returns the settings used when no eslex.toml is found.
func Default() Config {
	return Config{
		Lexer: LexerConfig{Context: ContextTrack},
		Output: OutputConfig{
			Format:         FormatPretty,
			Color:          "auto",
			MaxDiagnostics: 100,
		},
	}
}

// FieldError describes an invalid value in eslex.toml.
type FieldError struct {
	Path  string
	Field string
	Value string
	Want  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q (expected %s)", e.Path, e.Field, e.Value, e.Want)
}

// Code returns the diagnostic code for configuration errors.
func (e *FieldError) Code() diag.Code { return diag.CfgInvalidValue }

// Find walks from startDir up to the filesystem root looking for eslex.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads eslex.toml starting at startDir.
// Without a file it returns Default() and false.
func Discover(startDir string) (Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return Default(), false, err
	}
	cfg, err := Load(path)
	if err != nil {
		return Default(), true, err
	}
	return cfg, true, nil
}

// Load decodes and validates the file at path. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if meta.IsDefined("lexer", "context") {
		cfg.Lexer.Context = ContextMode(strings.ToLower(strings.TrimSpace(string(cfg.Lexer.Context))))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and reserved-word names.
func (c *Config) Validate() error {
	path := c.Path
	if path == "" {
		path = FileName
	}
	switch c.Lexer.Context {
	case ContextTrack, ContextFixed:
	default:
		return &FieldError{Path: path, Field: "[lexer].context", Value: string(c.Lexer.Context), Want: "track|fixed"}
	}
	for _, w := range c.Lexer.ExtraReserved {
		if _, ok := token.LookupWord(w); !ok {
			return &FieldError{Path: path, Field: "[lexer].extra_reserved entry", Value: w, Want: "a known reserved word"}
		}
	}
	switch c.Output.Format {
	case FormatPretty, FormatJSON, FormatMsgpack:
	default:
		return &FieldError{Path: path, Field: "[output].format", Value: c.Output.Format, Want: "pretty|json|msgpack"}
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return &FieldError{Path: path, Field: "[output].color", Value: c.Output.Color, Want: "auto|on|off"}
	}
	if c.Output.MaxDiagnostics < 0 {
		return &FieldError{Path: path, Field: "[output].max_diagnostics", Value: fmt.Sprint(c.Output.MaxDiagnostics), Want: "a non-negative integer"}
	}
	return nil
}

// ReservedTable returns the default reserved words extended by extra_reserved.
func (c *Config) ReservedTable() (token.ReservedTable, error) {
	if len(c.Lexer.ExtraReserved) == 0 {
		return token.DefaultReserved(), nil
	}
	words := make([]token.Word, 0, len(c.Lexer.ExtraReserved))
	for _, name := range c.Lexer.ExtraReserved {
		w, ok := token.LookupWord(name)
		if !ok {
			return nil, fmt.Errorf("unknown reserved word %q", name)
		}
		words = append(words, w)
	}
	return token.DefaultReserved().With(words...), nil
}
