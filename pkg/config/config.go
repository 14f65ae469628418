// Package config loads the library defaults from the environment.
package config

import (
	"github.com/bsv-blockchain/go-http-assertions/pkg/defs"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of every environment variable read by Load.
const Prefix = "HTTPASSERT"

// Config holds the process-wide defaults of the library.
type Config struct {
	// Serializer selects the backend installed as the process-wide serializer.
	Serializer defs.SerializerBackend `envconfig:"SERIALIZER" default:"jsonv2"`

	CaseInsensitivePropertyNames bool `envconfig:"CASE_INSENSITIVE" default:"true"`
	AllowTrailingCommas          bool `envconfig:"ALLOW_TRAILING_COMMAS" default:"true"`
	EnumsAsStrings               bool `envconfig:"ENUMS_AS_STRINGS" default:"true"`
	NumbersFromStrings           bool `envconfig:"NUMBERS_FROM_STRINGS" default:"false"`

	LogLevel   defs.LogLevel   `envconfig:"LOG_LEVEL" default:"off"`
	LogHandler defs.LogHandler `envconfig:"LOG_HANDLER" default:"text"`
}

// Default returns the configuration used when nothing is set in the environment.
func Default() Config {
	return Config{
		Serializer:                   defs.SerializerJSONv2,
		CaseInsensitivePropertyNames: true,
		AllowTrailingCommas:          true,
		EnumsAsStrings:               true,
		NumbersFromStrings:           false,
		LogLevel:                     defs.LogLevelOff,
		LogHandler:                   defs.TextHandler,
	}
}

// Load reads the configuration from HTTPASSERT_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
