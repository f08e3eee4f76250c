package config

import (
	"strings"
	"time"

	"github.com/Lasya-02/Mama-Sync/utils"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	GuideCacheTTL  time.Duration
}

// LoadServerConfig reads the HTTP-facing settings. The CORS allow-list
// is a comma-separated set of origins.
func LoadServerConfig() ServerConfig {
	origins := utils.GetEnvAsString("CORS_ALLOWED_ORIGINS",
		"http://localhost:3000,http://127.0.0.1:3000")

	var allowed []string
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowed = append(allowed, trimmed)
		}
	}

	return ServerConfig{
		Port:           utils.GetEnvAsString("PORT", "8000"),
		AllowedOrigins: allowed,
		GuideCacheTTL:  utils.GetEnvAsDuration("GUIDE_CACHE_TTL", 10*time.Minute),
	}
}
