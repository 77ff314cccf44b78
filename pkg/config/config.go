package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// default values
const (
	DefaultCorpus = "kyrgyz_corpus.txt"
	DefaultOutput = "trigrams.txt"
	DefaultFormat = "text"
	DefaultTopN   = 300
	DefaultSample = 20
)

// Config holds the application configuration
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus" json:"corpus" jsonschema:"description=Corpus input configuration"`
	Output  OutputConfig  `yaml:"output" json:"output" jsonschema:"description=Output configuration"`
	Extract ExtractConfig `yaml:"extract" json:"extract" jsonschema:"description=Trigram extraction configuration"`
	Profile ProfileConfig `yaml:"profile" json:"profile" jsonschema:"description=Language profile (data.json) update"`
}

// CorpusConfig defines the corpus file and how to read it
type CorpusConfig struct {
	Path   string `yaml:"path" json:"path" jsonschema:"default=kyrgyz_corpus.txt,description=Corpus file path" validate:"required"`
	Format string `yaml:"format" json:"format" jsonschema:"default=text,enum=text,enum=html,enum=article,description=Corpus file format" validate:"oneof=text html article"`
	NFC    bool   `yaml:"nfc" json:"nfc" jsonschema:"default=false,description=Normalize corpus to unicode NFC before extraction"`
}

// OutputConfig defines where trigrams go
type OutputConfig struct {
	Path   string `yaml:"path" json:"path" jsonschema:"default=trigrams.txt,description=Output file path" validate:"required"`
	Sample int    `yaml:"sample" json:"sample" jsonschema:"default=20,minimum=0,description=Number of trigrams shown on console" validate:"gte=0"`
}

// ExtractConfig holds extraction settings
type ExtractConfig struct {
	TopN int `yaml:"top_n" json:"top_n" jsonschema:"default=300,minimum=1,description=Number of most frequent trigrams to keep" validate:"gte=1"`
}

// ProfileConfig defines the optional data.json entry to update
type ProfileConfig struct {
	DataPath string `yaml:"data_path" json:"data_path" jsonschema:"description=Profile file to update (disabled if empty)"`
	Script   string `yaml:"script" json:"script" jsonschema:"description=Script key in profile file (detected from corpus if empty)"`
	Lang     string `yaml:"lang" json:"lang" jsonschema:"description=ISO 639-3 language code in profile file" validate:"omitempty,len=3,alpha,lowercase"`
}

// Default returns configuration with all defaults set
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = DefaultCorpus
	}
	if cfg.Corpus.Format == "" {
		cfg.Corpus.Format = DefaultFormat
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutput
	}
	if cfg.Output.Sample == 0 {
		cfg.Output.Sample = DefaultSample
	}
	if cfg.Extract.TopN == 0 {
		cfg.Extract.TopN = DefaultTopN
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Profile.DataPath != "" && c.Profile.Lang == "" {
		return fmt.Errorf("profile.lang is required with profile.data_path")
	}
	return nil
}
