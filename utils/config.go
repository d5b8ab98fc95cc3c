package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the configuration for a lobby floor run
type Config struct {
	Generations   int    `json:"generations" yaml:"generations"`
	InputFile     string `json:"input_file" yaml:"input_file"` // empty uses the embedded input
	UseParallel   bool   `json:"use_parallel" yaml:"use_parallel"`
	Workers       int    `json:"workers" yaml:"workers"` // 0 means runtime.NumCPU()
	UseMemoryPool bool   `json:"use_memory_pool" yaml:"use_memory_pool"`
	Verbose       bool   `json:"verbose" yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations:   100,
		UseParallel:   false,
		UseMemoryPool: true,
		Verbose:       false,
	}
}

// WorkerCount returns how many goroutines each generation is split across
func (c Config) WorkerCount() int {
	if !c.UseParallel {
		return 1
	}
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must be >= 0, got %d", c.Generations)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, picked by extension
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
