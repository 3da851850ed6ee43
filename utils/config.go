package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Placement stamps a catalogue construct onto the starting board
type Placement struct {
	Name string `json:"name" yaml:"name"`
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Rows                int         `json:"rows" yaml:"rows"`
	Cols                int         `json:"cols" yaml:"cols"`
	FrameRate           Duration    `json:"frame_rate" yaml:"frame_rate"`
	MaxGenerations      int         `json:"max_generations" yaml:"max_generations"`
	Strategy            string      `json:"strategy" yaml:"strategy"`
	Workers             int         `json:"workers" yaml:"workers"`
	UseMemoryPool       bool        `json:"use_memory_pool" yaml:"use_memory_pool"`
	RandomDensity       float64     `json:"random_density" yaml:"random_density"`
	Seed                int64       `json:"seed" yaml:"seed"`
	AutoRestart         bool        `json:"auto_restart" yaml:"auto_restart"`
	StagnationThreshold int         `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	InjectionCount      int         `json:"injection_count" yaml:"injection_count"`
	Patterns            []Placement `json:"patterns" yaml:"patterns"`
	LogLevel            string      `json:"log_level" yaml:"log_level"`
	LogFormat           string      `json:"log_format" yaml:"log_format"`
	Plain               bool        `json:"plain" yaml:"plain"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                30,
		Cols:                60,
		FrameRate:           Duration(150 * time.Millisecond),
		MaxGenerations:      1000,
		Strategy:            string(model.StrategyBounded),
		UseMemoryPool:       true,
		RandomDensity:       0.15,
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the config can drive a simulation
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] board %dx%d", c.Rows, c.Cols)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density %v not in [0, 1]", c.RandomDensity)
	}
	if c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold %d must be at least 1", c.StagnationThreshold)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	}
	if _, err := model.ParseStrategy(c.Strategy); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	for _, p := range c.Patterns {
		if _, err := model.LookupConstruct(p.Name); err != nil {
			return errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	return nil
}

// Duration is a time.Duration that decodes from "150ms" style strings or integer nanoseconds
type Duration time.Duration

// Std returns the time.Duration value
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "[Duration] %q", value)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("[Duration] unsupported value %s", b)
	}
	return nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var ns int64
	if err := node.Decode(&ns); err == nil {
		*d = Duration(ns)
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return errors.Wrapf(err, "[Duration] line %d", node.Line)
	}
	*d = Duration(parsed)
	return nil
}
