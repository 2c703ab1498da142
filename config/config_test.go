package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCapturesEnvironment(t *testing.T) {
	t.Setenv("AH_TEST_DATABASE_URL", "postgres://localhost/authors_haven")
	t.Setenv("AH_TEST_EMPTY", "")

	cfg := New()

	assert.Equal(t, "postgres://localhost/authors_haven", GetString(cfg, "AH_TEST_DATABASE_URL", "fallback"))
	// A key set to the empty string is present, not missing
	assert.Equal(t, "", GetString(cfg, "AH_TEST_EMPTY", "fallback"))
}

func TestGetStringFallsBack(t *testing.T) {
	cfg := map[string]string{"PORT": "8080"}

	assert.Equal(t, "8080", GetString(cfg, "PORT", "3000"))
	assert.Equal(t, "3000", GetString(cfg, "MISSING", "3000"))
	assert.Equal(t, "3000", GetString(nil, "PORT", "3000"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{
		"READ_TIMEOUT_SECONDS": "30",
		"NOT_A_NUMBER":         "soon",
	}

	assert.Equal(t, 30, GetInt(cfg, "READ_TIMEOUT_SECONDS", 180))
	assert.Equal(t, 180, GetInt(cfg, "NOT_A_NUMBER", 180))
	assert.Equal(t, 180, GetInt(cfg, "MISSING", 180))
	assert.Equal(t, 180, GetInt(nil, "READ_TIMEOUT_SECONDS", 180))
}
