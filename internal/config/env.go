// Package config loads matcher and server settings from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taxamatch/taxamatch"
)

// LoadEnv loads environment variables from a .env file, checking the
// current directory and its two parents. Keys already set in the
// environment are left untouched.
func LoadEnv() error {
	envPaths := []string{".env", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		data, err := os.ReadFile(envPath)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
		break
	}
	return nil
}

// getEnv is the shared parsing core behind GetEnv/GetEnvInt/GetEnvFloat/
// GetEnvBool: look up key, hand a non-empty value to parse, and fall back
// to defaultValue if the variable is unset or parse rejects it.
func getEnv[T any](key string, defaultValue T, parse func(string) (T, bool)) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if parsed, ok := parse(value); ok {
		return parsed
	}
	return defaultValue
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	return getEnv(key, defaultValue, func(s string) (string, bool) { return s, true })
}

// GetEnvInt gets integer environment variable with default
func GetEnvInt(key string, defaultValue int) int {
	return getEnv(key, defaultValue, func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	})
}

// GetEnvFloat gets float environment variable with default
func GetEnvFloat(key string, defaultValue float64) float64 {
	return getEnv(key, defaultValue, func(s string) (float64, bool) {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil
	})
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	return getEnv(key, defaultValue, func(s string) (bool, bool) {
		switch strings.ToLower(s) {
		case "true", "1", "yes", "on":
			return true, true
		case "false", "0", "no", "off":
			return false, true
		default:
			return false, false
		}
	})
}

// LoadMatcherConfig builds a taxamatch.Config from TAXAMATCH_* environment
// variables. Oracle is left nil; callers attach a pgoracle or memoracle
// instance once the lexicon source is known.
func LoadMatcherConfig() (taxamatch.Config, error) {
	table := GetEnv("TAXAMATCH_TABLE", "")
	column := GetEnv("TAXAMATCH_COLUMN", "")
	if table == "" || column == "" {
		return taxamatch.Config{}, fmt.Errorf("config: TAXAMATCH_TABLE and TAXAMATCH_COLUMN are required")
	}

	cfg := taxamatch.Config{
		Table:    table,
		Column:   column,
		QCutoff:  GetEnvFloat("TAXAMATCH_QCUTOFF", taxamatch.DefaultQCutoff),
		LowerLen: GetEnvInt("TAXAMATCH_LOWERLEN", taxamatch.DefaultLowerLen),
		UpperLen: GetEnvInt("TAXAMATCH_UPPERLEN", taxamatch.DefaultUpperLen),
		K:        GetEnvInt("TAXAMATCH_K", taxamatch.DefaultK),
		KCap:     GetEnvInt("TAXAMATCH_KCAP", taxamatch.DefaultKCap),
		Trace:    GetEnvBool("TAXAMATCH_TRACE", false),
		Partial:  GetEnvBool("TAXAMATCH_PARTIAL", false),
	}

	if alphabet := GetEnv("TAXAMATCH_ALPHABET", ""); alphabet != "" {
		cfg.Alphabet = []rune(alphabet)
	}

	return cfg, nil
}
