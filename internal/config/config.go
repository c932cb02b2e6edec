package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMedicationTable = "medicationLogging"
	DefaultSentimentTable  = "walkingSentimentLogging"
	DefaultListenAddress   = ":8080"
)

type Server struct {
	ListenAddress string        `yaml:"listen_address"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
}

type Tables struct {
	Medication string `yaml:"medication"`
	Sentiment  string `yaml:"sentiment"`
}

type DynamoDB struct {
	// Endpoint points the client at DynamoDB Local; empty uses the AWS default.
	Endpoint string `yaml:"endpoint"`
}

type Config struct {
	Server   Server   `yaml:"server"`
	Tables   Tables   `yaml:"tables"`
	DynamoDB DynamoDB `yaml:"dynamodb"`
	LogLevel string   `yaml:"log_level"`
}

// FromEnv builds the configuration the Lambda runs with.
func FromEnv() *Config {
	c := &Config{}
	c.applyEnv()
	c.applyDefaults()
	return c
}

// Load reads a YAML file and then applies environment overrides.
// An empty path behaves like FromEnv.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	c.applyEnv()
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DYNAMODB_MEDICATION_TABLE"); v != "" {
		c.Tables.Medication = v
	}
	if v := os.Getenv("DYNAMODB_SENTIMENT_TABLE"); v != "" {
		c.Tables.Sentiment = v
	}
	if v := os.Getenv("DYNAMODB_ENDPOINT"); v != "" {
		c.DynamoDB.Endpoint = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) applyDefaults() {
	if c.Tables.Medication == "" {
		c.Tables.Medication = DefaultMedicationTable
	}
	if c.Tables.Sentiment == "" {
		c.Tables.Sentiment = DefaultSentimentTable
	}
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = DefaultListenAddress
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
