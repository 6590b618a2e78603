package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reelspin/constant"
	"github.com/lixenwraith/reelspin/spin"
)

// Duration wraps time.Duration with YAML string parsing ("1200ms", "2s")
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MachineConfig parameterizes the spin engine
type MachineConfig struct {
	Rows             int      `yaml:"rows"`
	Columns          int      `yaml:"columns"`
	Symbols          int      `yaml:"symbols"`
	BaseDuration     Duration `yaml:"base_duration"`
	StaggerIncrement Duration `yaml:"stagger_increment"`
	ScrollSpeed      float64  `yaml:"scroll_speed"`
	MinRunLength     int      `yaml:"min_run_length"`
	CreditsPerMatch  int64    `yaml:"credits_per_match"`
	Instant          bool     `yaml:"instant"`
}

// AppConfig parameterizes the host application around the engine
type AppConfig struct {
	LogFile         string `yaml:"log_file"`
	StartingBalance string `yaml:"starting_balance"`
	Bet             string `yaml:"bet"`
	Audio           bool   `yaml:"audio"`
}

// Config is the full file layout
type Config struct {
	Machine MachineConfig `yaml:"machine"`
	App     AppConfig     `yaml:"app"`
}

// Default returns the reference machine and app settings
func Default() *Config {
	return &Config{
		Machine: MachineConfig{
			Rows:             constant.GridRows,
			Columns:          constant.GridColumns,
			Symbols:          constant.SymbolCount,
			BaseDuration:     Duration(constant.BaseSpinDuration),
			StaggerIncrement: Duration(constant.StaggerIncrement),
			ScrollSpeed:      constant.DefaultScrollSpeed,
			MinRunLength:     constant.MinRunLength,
			CreditsPerMatch:  constant.CreditsPerMatch,
		},
		App: AppConfig{
			LogFile:         "reelspin.log",
			StartingBalance: "100",
			Bet:             "10",
			Audio:           true,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error: the defaults
// stand
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults stand
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment override file values; .env loading in
// the entrypoint feeds these
func (c *Config) applyEnv() {
	if v := os.Getenv("REELSPIN_LOG_FILE"); v != "" {
		c.App.LogFile = v
	}
	if v := os.Getenv("REELSPIN_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.App.Audio = b
		}
	}
	if v := os.Getenv("REELSPIN_INSTANT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Machine.Instant = b
		}
	}
	if v := os.Getenv("REELSPIN_BALANCE"); v != "" {
		c.App.StartingBalance = v
	}
	if v := os.Getenv("REELSPIN_BET"); v != "" {
		c.App.Bet = v
	}
}

// SpinConfig converts the machine section into the engine's config.
// Validation stays with the engine
func (c *Config) SpinConfig() spin.Config {
	return spin.Config{
		Rows:             c.Machine.Rows,
		Columns:          c.Machine.Columns,
		SymbolCount:      c.Machine.Symbols,
		BaseDuration:     time.Duration(c.Machine.BaseDuration),
		StaggerIncrement: time.Duration(c.Machine.StaggerIncrement),
		ScrollSpeed:      c.Machine.ScrollSpeed,
		MinRunLength:     c.Machine.MinRunLength,
		CreditsPerMatch:  c.Machine.CreditsPerMatch,
		Instant:          c.Machine.Instant,
	}
}
