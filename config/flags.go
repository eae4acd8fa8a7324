package config

import (
	"errors"
	"fmt"
)

// CaseInsensitiveEnv forces case-insensitive search when present, whatever its value
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

// LookupEnvFunc looks up an environment variable, like os.LookupEnv
type LookupEnvFunc func(key string) (string, bool)

// Config holds application configuration
type Config struct {
	Query      string
	Filename   string
	IgnoreCase bool
	Highlight  bool
	Verbose    bool
	Settings   *Settings
}

// CheckArgs validates the positional arguments: a query and a filename
func CheckArgs(args []string) error {
	switch len(args) {
	case 0:
		return errors.New("missing required arguments <query> and <filename>")
	case 1:
		return errors.New("missing required argument <filename>")
	case 2:
		return nil
	default:
		return fmt.Errorf("expected 2 arguments (<query> <filename>), got %d", len(args))
	}
}

// Resolve builds a Config from the positional arguments and the ignore-case flag.
// When the flag is not set the environment decides.
func Resolve(args []string, ignoreCase bool, lookupEnv LookupEnvFunc) (*Config, error) {
	if err := CheckArgs(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Query:    args[0],
		Filename: args[1],
	}

	// Determine case sensitivity
	if ignoreCase {
		cfg.IgnoreCase = true
	} else {
		cfg.IgnoreCase = envIgnoreCase(lookupEnv)
	}

	return cfg, nil
}

// envIgnoreCase reports whether CASE_INSENSITIVE is present
func envIgnoreCase(lookupEnv LookupEnvFunc) bool {
	if lookupEnv == nil {
		return false
	}
	_, ok := lookupEnv(CaseInsensitiveEnv)
	return ok
}
