package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Shading model names used by the active pipeline and the pipelines it replaced.
type Config struct {
	TargetModel string `yaml:"target_model"`
	ErrorModel  string `yaml:"error_model"`

	LegacyModels         []string `yaml:"legacy_models"`
	IncompatiblePrefixes []string `yaml:"incompatible_prefixes"`
	SpecularModels       []string `yaml:"specular_models"`

	// Models the runtime can evaluate. The target model must be listed,
	// otherwise migration is disabled.
	SupportedModels []string `yaml:"supported_models"`

	DefaultTint [4]float32 `yaml:"default_tint,flow"`

	AlphaTestDrawOrder   int     `yaml:"alpha_test_draw_order"`
	TransparentDrawOrder int     `yaml:"transparent_draw_order"`
	DefaultCutoff        float32 `yaml:"default_cutoff"`
}

func Default() *Config {
	return &Config{
		TargetModel: "Universal Render Pipeline/Lit",
		ErrorModel:  "Hidden/InternalErrorShader",
		LegacyModels: []string{
			"Standard",
			"Standard (Specular setup)",
		},
		IncompatiblePrefixes: []string{
			"Legacy Shaders/",
			"Mobile/",
			"Nature/",
			"Particles/",
		},
		SpecularModels: []string{
			"Standard (Specular setup)",
		},
		SupportedModels: []string{
			"Universal Render Pipeline/Lit",
			"Universal Render Pipeline/Simple Lit",
			"Universal Render Pipeline/Unlit",
			"Universal Render Pipeline/Particles/Lit",
			"Universal Render Pipeline/Particles/Unlit",
			"Universal Render Pipeline/Terrain/Lit",
			"Sprites/Default",
			"UI/Default",
		},
		DefaultTint:          [4]float32{0.5, 0.5, 0.5, 1},
		AlphaTestDrawOrder:   2450,
		TransparentDrawOrder: 3000,
		DefaultCutoff:        0.5,
	}
}

// Load reads a YAML config file. Fields missing from the file keep the
// values of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read config %q", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.TargetModel == "" {
		return errors.Errorf("target_model is empty")
	}
	if c.AlphaTestDrawOrder >= c.TransparentDrawOrder {
		return errors.Errorf("alpha_test_draw_order (%d) must be below transparent_draw_order (%d)",
			c.AlphaTestDrawOrder, c.TransparentDrawOrder)
	}
	return nil
}

func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to marshal config")
	}
	return data, nil
}

var current = Default()

func Get() *Config {
	return current
}

func Set(c *Config) {
	current = c
}
