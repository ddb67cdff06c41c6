// Package config holds the evaluator limits and tracing setup, decoded from TOML.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"shunt/internal/trace"
)

type Config struct {
	Limits Limits      `toml:"limits"`
	Trace  TraceConfig `toml:"trace"`
}

// Limits bound the work a single expression may cause. Zero means unlimited,
// and that is the default: nesting is then bounded only by the input length.
type Limits struct {
	MaxInputBytes uint32 `toml:"max_input_bytes"`
	MaxDepth      int    `toml:"max_depth"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Mode   string `toml:"mode"`
	Format string `toml:"format"`
	Output string `toml:"output"` // "-" or empty means stderr
}

// Default has no limits and tracing off.
func Default() Config {
	return Config{
		Trace: TraceConfig{Level: "off", Mode: "ring", Format: "auto"},
	}
}

// Parse decodes a TOML document on top of Default.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return finish(cfg, meta)
}

// LoadFile reads and decodes a TOML file on top of Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	cfg, err = finish(cfg, meta)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func finish(cfg Config, meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if meta.IsDefined("limits", "max_depth") && cfg.Limits.MaxDepth < 0 {
		return Config{}, fmt.Errorf("[limits].max_depth must not be negative, got %d", cfg.Limits.MaxDepth)
	}
	if err := cfg.Trace.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (tc TraceConfig) validate() error {
	if _, err := trace.ParseLevel(tc.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(tc.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if _, err := trace.ParseFormat(tc.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	return nil
}

// Tracer builds the tracer described by the [trace] section.
// With level "off" it returns trace.Nop.
func (c Config) Tracer() (trace.Tracer, error) {
	level, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return nil, err
	}
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(c.Trace.Format)
	if err != nil {
		return nil, err
	}
	return trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: c.Trace.Output,
	})
}
