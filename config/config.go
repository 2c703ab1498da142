// Package config snapshots the process environment into a plain map with
// typed lookups. The server reads it once at boot; each component names its
// own fallback at the call site (ports, timeouts, database DSNs), so there is
// no central defaults table to keep in sync.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New captures the current environment. Values set after the snapshot are
// not visible through it.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

// GetString returns the value for key, or defaultValue when the key is
// absent. An empty value set in the environment is returned as-is.
func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns the value for key parsed as an integer. Absent keys and
// unparseable values both fall back to defaultValue.
func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
