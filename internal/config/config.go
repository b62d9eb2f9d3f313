package config

import (
	"io"
	"os"

	"cribbage-server/internal/util"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = "config.yaml"

// Config provides configuration for the cribbage scorer
// Environment keys are derived from the field path (i.e., CRIBBAGE_PIPE_PATH)
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" split_words:"true"`
	} `yaml:"log"`
	HTTP struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowedOrigins" split_words:"true"`
	} `yaml:"http"`
	Pipe struct {
		Path string `yaml:"path"`
	} `yaml:"pipe"`
	Output struct {
		// one of auto, table, json, yaml
		Format string `yaml:"format"`
	} `yaml:"output"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.HTTP.Addr = ":5000"
	cfg.HTTP.AllowedOrigins = []string{"*"}
	cfg.Pipe.Path = "/tmp/cribbage.fifo"
	cfg.Output.Format = "auto"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are layered: defaults, then the YAML file, then the environment (including .env)
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("CRIBBAGE_CONFIG_FILE", defaultConfigFile)
	file, err := os.Open(configFile)
	if err != nil {
		// the default file is optional
		if !os.IsNotExist(err) || configFile != defaultConfigFile {
			return err
		}
	} else {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && err != io.EOF {
			return err
		}
	}

	if err := envconfig.Process("cribbage", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
