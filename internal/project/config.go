package project

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrUnknownKey is returned when lacon.toml carries keys the loader does not know.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue is returned for out-of-range or unsupported values.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Output formats accepted by [output] format and --format.
var OutputFormats = []string{"pretty", "json", "msgpack"}

// Color modes accepted by [output] color and --color.
var ColorModes = []string{"auto", "on", "off"}

type LexerConfig struct {
	KeepDocComments bool `toml:"keep_doc_comments"`
	KeepTrivia      bool `toml:"keep_trivia"`
	MaxTokenLength  int  `toml:"max_token_length"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type DiagnosticsConfig struct {
	Max int `toml:"max"`
}

type ProjectConfig struct {
	Extensions []string `toml:"extensions"`
	Jobs       int      `toml:"jobs"`
}

// Config is the merged view of defaults and lacon.toml.
type Config struct {
	Lexer       LexerConfig       `toml:"lexer"`
	Output      OutputConfig      `toml:"output"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Project     ProjectConfig     `toml:"project"`

	// Path is the manifest the values came from; empty for pure defaults.
	Path string `toml:"-"`
}

// Defaults returns the configuration used when no lacon.toml is found.
func Defaults() Config {
	return Config{
		Output:      OutputConfig{Format: "pretty", Color: "auto"},
		Diagnostics: DiagnosticsConfig{Max: 100},
		Project:     ProjectConfig{Extensions: []string{".lacon"}},
	}
}

// LoadFile decodes path on top of Defaults. Keys absent from the file keep
// their default values.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	cfg.Project.Extensions = normalizeExtensions(cfg.Project.Extensions)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover looks for lacon.toml above target and loads it; without a
// manifest it returns Defaults.
func Discover(target string) (Config, error) {
	path, ok, err := FindManifest(target)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Defaults(), nil
	}
	return LoadFile(path)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Lexer.MaxTokenLength < 0:
		return fmt.Errorf("%w: lexer.max_token_length must be >= 0", ErrInvalidValue)
	case c.Diagnostics.Max < 0:
		return fmt.Errorf("%w: diagnostics.max must be >= 0", ErrInvalidValue)
	case c.Project.Jobs < 0:
		return fmt.Errorf("%w: project.jobs must be >= 0", ErrInvalidValue)
	case !slices.Contains(OutputFormats, c.Output.Format):
		return fmt.Errorf("%w: output.format %q (want one of %s)", ErrInvalidValue, c.Output.Format, strings.Join(OutputFormats, ", "))
	case !slices.Contains(ColorModes, c.Output.Color):
		return fmt.Errorf("%w: output.color %q (want one of %s)", ErrInvalidValue, c.Output.Color, strings.Join(ColorModes, ", "))
	case len(c.Project.Extensions) == 0:
		return fmt.Errorf("%w: project.extensions is empty", ErrInvalidValue)
	}
	return nil
}

// Overrides carries command-line values; nil fields were not set.
type Overrides struct {
	KeepDocComments *bool
	KeepTrivia      *bool
	MaxTokenLength  *int
	Format          *string
	Color           *string
	MaxDiagnostics  *int
	Jobs            *int
	Extensions      []string
}

// Apply layers o over c and validates the result.
func (c Config) Apply(o Overrides) (Config, error) {
	if o.KeepDocComments != nil {
		c.Lexer.KeepDocComments = *o.KeepDocComments
	}
	if o.KeepTrivia != nil {
		c.Lexer.KeepTrivia = *o.KeepTrivia
	}
	if o.MaxTokenLength != nil {
		c.Lexer.MaxTokenLength = *o.MaxTokenLength
	}
	if o.Format != nil {
		c.Output.Format = *o.Format
	}
	if o.Color != nil {
		c.Output.Color = *o.Color
	}
	if o.MaxDiagnostics != nil {
		c.Diagnostics.Max = *o.MaxDiagnostics
	}
	if o.Jobs != nil {
		c.Project.Jobs = *o.Jobs
	}
	if len(o.Extensions) > 0 {
		c.Project.Extensions = normalizeExtensions(o.Extensions)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// normalizeExtensions adds the leading dot and drops duplicates.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}
