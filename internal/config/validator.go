package config

import (
	"fmt"

	"github.com/spf13/viper"
)

var validStrategies = map[string]bool{
	"flat":     true,
	"nested":   true,
	"dispatch": true,
	"all":      true,
}

var validInputs = map[string]bool{
	"sequential": true,
	"random":     true,
	"zeros":      true,
	"ones":       true,
}

var validStores = map[string]bool{
	"":           true,
	"sqlite":     true,
	"sqlite3":    true,
	"postgres":   true,
	"postgresql": true,
	"json":       true,
	"file":       true,
}

// ValidateConfig validates configuration values and returns an error if any
// are invalid. It should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet("iterations") {
		if n := viper.GetInt("iterations"); n <= 0 {
			errors = append(errors, fmt.Sprintf("iterations must be positive, got: %d", n))
		}
	}

	if viper.IsSet("warmup") {
		if n := viper.GetInt("warmup"); n < 0 {
			errors = append(errors, fmt.Sprintf("warmup must not be negative, got: %d", n))
		}
	}

	if viper.IsSet("strategy") {
		if s := viper.GetString("strategy"); !validStrategies[s] {
			errors = append(errors, fmt.Sprintf("strategy must be flat, nested, dispatch or all, got: %s", s))
		}
	}

	if viper.IsSet("input") {
		if in := viper.GetString("input"); !validInputs[in] {
			errors = append(errors, fmt.Sprintf("input must be sequential, random, zeros or ones, got: %s", in))
		}
	}

	if viper.IsSet("store") {
		if st := viper.GetString("store"); !validStores[st] {
			errors = append(errors, fmt.Sprintf("store must be sqlite, postgres or json, got: %s", st))
		}
	}

	if viper.IsSet("metrics_port") {
		if port := viper.GetInt("metrics_port"); port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("metrics_port must be between 1 and 65535, got: %d", port))
		}
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
