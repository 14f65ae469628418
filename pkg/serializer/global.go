package serializer

import (
	"github.com/bsv-blockchain/go-http-assertions/pkg/config"
	"github.com/bsv-blockchain/go-http-assertions/pkg/defs"
	"github.com/bsv-blockchain/go-http-assertions/pkg/internal/logging"
)

// current is the process-wide serializer. It is not guarded by a lock:
// tests that swap it must not run in parallel with each other.
var current = fromEnvironment()

func fromEnvironment() Serializer {
	cfg, err := config.Load()
	if err != nil {
		logging.Child(nil, "serializer").Warn("Invalid environment configuration, using default serializer", logging.Error(err))
	}
	return FromConfig(cfg)
}

// FromConfig builds the serializer described by the configuration.
func FromConfig(cfg config.Config) Serializer {
	options := WithOptions(Options{
		CaseInsensitivePropertyNames: cfg.CaseInsensitivePropertyNames,
		AllowTrailingCommas:          cfg.AllowTrailingCommas,
		EnumsAsStrings:               cfg.EnumsAsStrings,
		NumbersFromStrings:           cfg.NumbersFromStrings,
	})

	if cfg.Serializer == defs.SerializerStdJSON {
		return NewStdJSON(options)
	}
	return NewJSONv2(options)
}

// Current returns the process-wide serializer.
func Current() Serializer {
	return current
}

// Use installs s as the process-wide serializer, nil restores the default backend.
func Use(s Serializer) {
	if s == nil {
		s = NewJSONv2()
	}
	current = s
}

// Save captures the process-wide serializer and returns a function restoring it.
//
//	defer serializer.Save()()
func Save() (restore func()) {
	previous := current
	return func() {
		current = previous
	}
}

// OrCurrent returns s, or the process-wide serializer when s is nil.
func OrCurrent(s Serializer) Serializer {
	if s == nil {
		return current
	}
	return s
}
