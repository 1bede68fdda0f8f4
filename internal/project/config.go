package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the parsed avail.toml. Zero values mean "not set"; Defaults()
// gives the effective baseline and Load layers the manifest over it.
//
//	[check]
//	grammar = "condition"   # or "attribute"
//	max-diagnostics = 64
//	jobs = 0                # 0 = all cores
//	cache = true
//
//	[output]
//	color = "auto"          # auto | always | never
//	format = "pretty"       # pretty | json
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

type CheckConfig struct {
	Grammar        string `toml:"grammar"`
	MaxDiagnostics int    `toml:"max-diagnostics"`
	Jobs           int    `toml:"jobs"`
	Cache          bool   `toml:"cache"`
}

type OutputConfig struct {
	Color  string `toml:"color"`
	Format string `toml:"format"`
}

// Defaults returns the configuration used when no manifest is found.
func Defaults() Config {
	return Config{
		Check: CheckConfig{
			Grammar:        "condition",
			MaxDiagnostics: 64,
			Jobs:           0,
			Cache:          true,
		},
		Output: OutputConfig{
			Color:  "auto",
			Format: "pretty",
		},
	}
}

// Load reads and validates the manifest at path, layered over Defaults().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds the nearest manifest above startDir and loads it, falling
// back to Defaults() when no manifest exists.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := FindAvailToml(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Defaults(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func (c Config) validate() error {
	switch c.Check.Grammar {
	case "condition", "attribute":
	default:
		return fmt.Errorf("invalid [check].grammar %q: want \"condition\" or \"attribute\"", c.Check.Grammar)
	}
	if c.Check.MaxDiagnostics < 1 {
		return fmt.Errorf("invalid [check].max-diagnostics %d: must be positive", c.Check.MaxDiagnostics)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("invalid [check].jobs %d: must be zero or positive", c.Check.Jobs)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid [output].color %q: want \"auto\", \"always\" or \"never\"", c.Output.Color)
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("invalid [output].format %q: want \"pretty\" or \"json\"", c.Output.Format)
	}
	return nil
}
