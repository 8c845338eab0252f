// Package router assembles the Gin engine and every route of the service.
package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "garden_backend/internal/feature/auth/transport/handler"
	gardenhandler "garden_backend/internal/feature/garden/transport/handler"
	platformhandler "garden_backend/internal/platform/http/handler"
	"garden_backend/internal/platform/http/middleware"
	jwtmw "garden_backend/internal/platform/jwt"
	"garden_backend/internal/platform/metrics"
	"garden_backend/internal/shared/ratelimiter"
)

// Deps are the handlers and settings NewRouter needs.
type Deps struct {
	Gardens   *gardenhandler.GardenHandler
	Beds      *gardenhandler.BedHandler
	Plantings *gardenhandler.PlantingHandler
	Plants    *gardenhandler.PlantHandler
	Auth      *authhandler.AuthHandler

	// DB answers the readiness probe.
	DB      platformhandler.Pinger
	Metrics *metrics.Metrics

	JWTSecret          string
	CORSAllowedOrigins []string
	// TrustedProxies are the addresses allowed to set X-Forwarded-For. With none,
	// the client IP is the peer address.
	TrustedProxies     []string
	// AuthLimiter throttles /login and /registration. Nil disables it.
	AuthLimiter        ratelimiter.Limiter
}

// NewRouter builds the engine.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		slog.Error("invalid trusted proxies, trusting none", "proxies", d.TrustedProxies, "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.ResponseTime(), middleware.Logger())
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	if len(d.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(d.CORSAllowedOrigins)))
	}

	// probes
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	if d.DB != nil {
		r.GET("/readyz", platformhandler.Ready(d.DB))
		r.HEAD("/readyz", platformhandler.Ready(d.DB))
	}
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// accounts
	public := r.Group("/")
	if d.AuthLimiter != nil {
		public.Use(middleware.RateLimit(d.AuthLimiter))
	}
	public.POST("/registration", d.Auth.Registration)
	public.POST("/login", d.Auth.Login)

	users := r.Group("/users")
	users.Use(jwtmw.AuthRequired(d.JWTSecret))
	{
		users.GET("/current", d.Auth.Current)
	}

	api := r.Group("/api")
	{
		gardens := api.Group("/gardens")
		gardens.GET("/types/", d.Gardens.Types)
		gardens.GET("/zones/", d.Gardens.Zones)
		gardens.POST("/", d.Gardens.Create)
		gardens.GET("/", d.Gardens.List)
		gardens.GET("/:id", d.Gardens.Get)
		gardens.PATCH("/:id", d.Gardens.Update)
		gardens.DELETE("/:id", d.Gardens.Delete)

		beds := api.Group("/beds")
		beds.GET("/soil_types/", d.Beds.SoilTypes)
		beds.GET("/irrigation_zones/", d.Beds.IrrigationZones)
		beds.POST("/", d.Beds.Create)
		beds.GET("/", d.Beds.List)
		beds.GET("/:id", d.Beds.Get)
		beds.PATCH("/:id", d.Beds.Update)
		beds.DELETE("/:id", d.Beds.Delete)

		plantings := api.Group("/plantings")
		plantings.POST("/", d.Plantings.Create)
		plantings.GET("/", d.Plantings.List)
		plantings.GET("/:id", d.Plantings.Get)
		plantings.PATCH("/:id", d.Plantings.Update)
		plantings.DELETE("/:id", d.Plantings.Delete)

		plants := api.Group("/plants")
		plants.POST("/", d.Plants.Create)
		plants.GET("/", d.Plants.List)
		plants.GET("/:id", d.Plants.Get)
		plants.PATCH("/:id", d.Plants.Update)
		plants.DELETE("/:id", d.Plants.Delete)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "HEAD", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID,
			"HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger",
		},
		ExposeHeaders: []string{"HX-Trigger", middleware.HeaderRequestID, middleware.HeaderResponseTime},
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
