// Package config reads the application settings from the environment.
package config

import "time"

// Config holds the process-wide settings. Database and Redis settings are
// loaded by their own packages.
type Config struct {
	Port               string
	AppName            string
	AdminEmail         string
	JWTSecret          string
	JWTExpiration      time.Duration
	CORSAllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty means the peer address is the client.
	TrustedProxies     []string
	SeedPlants         bool
	SeedDemo           bool
	PlantCacheTTL      time.Duration
	LogLevel           string
	ShutdownTimeout    time.Duration

	// AuthRateLimit requests per AuthRateWindow are allowed on /login and
	// /registration for each client IP.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads Config from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:               String("PORT", "8080"),
		AppName:            String("APP_NAME", "Garden Assistant"),
		AdminEmail:         String("ADMIN_EMAIL", ""),
		JWTSecret:          String("JWT_SECRET", ""),
		JWTExpiration:      Duration("JWT_EXPIRATION", 8*time.Hour),
		CORSAllowedOrigins: List("CORS_ALLOWED_ORIGINS"),
		TrustedProxies:     List("TRUSTED_PROXIES"),
		SeedPlants:         Bool("SEED_PLANTS", true),
		SeedDemo:           Bool("SEED_DEMO", false),
		PlantCacheTTL:      Duration("PLANT_CACHE_TTL", 5*time.Minute),
		LogLevel:           String("LOG_LEVEL", "info"),
		ShutdownTimeout:    Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		AuthRateLimit:      Int("AUTH_RATE_LIMIT", 10),
		AuthRateWindow:     Duration("AUTH_RATE_WINDOW", time.Minute),
	}
}
