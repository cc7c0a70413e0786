package config

import (
	"os"
	"strings"

	"github.com/flux-image/flux-image/common/env"
	"github.com/google/uuid"
)

var SystemName = "FLUX Image Generator"
var ServiceName = "flux-image"
var InstanceId = hostname()

// Sessions are signed with SessionSecret. A random value is used until SECRET_KEY is set.
var SessionSecret = uuid.New().String()
var SessionSecretConfigured = false

// ServerAPIKey is the default Together credential. Empty means every request
// has to bring its own api_key.
var ServerAPIKey = ""

// Empty values fall back to the Together defaults in relay/channel/together.
var BaseURL = ""
var ModelName = ""

var DefaultPort = 5000
var Locale = "en"

var DebugEnabled = false

var RelayTimeout = 0 // unit is second, 0 means no timeout
var ProxyURL = ""

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}

// Load reads the process environment. It runs after the .env file has been applied.
func Load() {
	if secret := os.Getenv("SECRET_KEY"); secret != "" {
		SessionSecret = secret
		SessionSecretConfigured = true
	}
	ServerAPIKey = strings.TrimSpace(os.Getenv("TOGETHER_API_KEY"))
	BaseURL = env.String("TOGETHER_BASE_URL", BaseURL)
	ModelName = env.String("TOGETHER_MODEL", ModelName)
	DefaultPort = env.Int("PORT", DefaultPort)
	Locale = env.String("LOCALE", Locale)
	DebugEnabled = env.Bool("DEBUG", false) || os.Getenv("FLASK_ENV") == "development"
	RelayTimeout = env.Int("RELAY_TIMEOUT", RelayTimeout)
	ProxyURL = env.String("PROXY_URL", ProxyURL)
	ServiceName = env.String("SERVICE_NAME", ServiceName)
}
