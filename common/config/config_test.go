package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("TOGETHER_API_KEY", "  key-123 ")
	t.Setenv("SECRET_KEY", "signing-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("FLASK_ENV", "development")
	t.Setenv("LOCALE", "th")

	Load()

	assert.Equal(t, "key-123", ServerAPIKey)
	assert.Equal(t, "signing-secret", SessionSecret)
	assert.True(t, SessionSecretConfigured)
	assert.Equal(t, 8080, DefaultPort)
	assert.True(t, DebugEnabled)
	assert.Equal(t, "th", Locale)
}

func TestLoadWithoutCredential(t *testing.T) {
	t.Setenv("TOGETHER_API_KEY", "")
	t.Setenv("FLASK_ENV", "production")
	t.Setenv("DEBUG", "")

	Load()

	assert.Empty(t, ServerAPIKey)
	assert.False(t, DebugEnabled)
}
