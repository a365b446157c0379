package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"xcstringstool/internal/domain"
	"xcstringstool/internal/infrastructure/logging"
)

// DefaultPath is read when no config path is given and the file exists.
const DefaultPath = "xcstringstool.toml"

type Config struct {
	Compile CompileConfig  `toml:"compile"`
	Log     logging.Config `toml:"log"`
	UI      UIConfig       `toml:"ui"`
}

type CompileConfig struct {
	OutputDirectory string               `toml:"output_directory"`
	Format          domain.OutputFormat  `toml:"format"`
	Serialization   domain.Serialization `toml:"serialization_format"`
	Variants        domain.VariantPolicy `toml:"variants"`
	Table           string               `toml:"table"`
	Languages       []string             `toml:"languages"`
	DryRun          bool                 `toml:"dry_run"`
}

// UIConfig controls the language of the tool's own messages.
type UIConfig struct {
	Locale string `toml:"locale"`
}

// Overrides carries command-line values. Empty fields and a nil DryRun leave
// the loaded configuration untouched.
type Overrides struct {
	OutputDirectory string
	Format          string
	Serialization   string
	Variants        string
	Table           string
	Languages       []string
	DryRun          *bool
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Compile: CompileConfig{
			Format:        domain.FormatStrings,
			Serialization: domain.SerializationText,
			Variants:      domain.VariantExpand,
			Table:         "Localizable",
		},
		Log: logging.Config{Level: "info", Format: "text"},
		UI:  UIConfig{Locale: "en"},
	}
}

// Load builds the configuration from defaults, the TOML file at path,
// environment variables (optionally from .env) and finally the command-line
// overrides, then validates it.
//
// An empty path falls back to XCSTRINGS_CONFIG, then to DefaultPath if it exists.
func Load(path string, o Overrides) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment.
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("XCSTRINGS_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.apply(o)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Compile.OutputDirectory, "XCSTRINGS_OUTPUT_DIRECTORY")
	setString((*string)(&c.Compile.Format), "XCSTRINGS_FORMAT")
	setString((*string)(&c.Compile.Serialization), "XCSTRINGS_SERIALIZATION_FORMAT")
	setString((*string)(&c.Compile.Variants), "XCSTRINGS_VARIANTS")
	setString(&c.Compile.Table, "XCSTRINGS_TABLE")
	setString(&c.Log.Level, "XCSTRINGS_LOG_LEVEL")
	setString(&c.Log.Format, "XCSTRINGS_LOG_FORMAT")
	setString(&c.UI.Locale, "XCSTRINGS_UI_LOCALE")
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func (c *Config) apply(o Overrides) {
	if o.OutputDirectory != "" {
		c.Compile.OutputDirectory = o.OutputDirectory
	}
	if o.Format != "" {
		c.Compile.Format = domain.OutputFormat(o.Format)
	}
	if o.Serialization != "" {
		c.Compile.Serialization = domain.Serialization(o.Serialization)
	}
	if o.Variants != "" {
		c.Compile.Variants = domain.VariantPolicy(o.Variants)
	}
	if o.Table != "" {
		c.Compile.Table = o.Table
	}
	if len(o.Languages) > 0 {
		c.Compile.Languages = o.Languages
	}
	if o.DryRun != nil {
		c.Compile.DryRun = *o.DryRun
	}
}

// validate normalizes the closed enumerations and rejects unknown values.
func (c *Config) validate() error {
	var err error
	if c.Compile.Format, err = domain.ParseOutputFormat(string(c.Compile.Format)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Compile.Serialization, err = domain.ParseSerialization(string(c.Compile.Serialization)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Compile.Variants, err = domain.ParseVariantPolicy(string(c.Compile.Variants)); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if strings.TrimSpace(c.Compile.Table) == "" || strings.ContainsAny(c.Compile.Table, `/\`) {
		return fmt.Errorf("config: invalid table name %q", c.Compile.Table)
	}

	for _, l := range c.Compile.Languages {
		if _, err := language.Parse(l); err != nil {
			return fmt.Errorf("config: %w: %q", domain.ErrInvalidLocale, l)
		}
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("config: ui locale: %w: %q", domain.ErrInvalidLocale, c.UI.Locale)
	}
	return nil
}
