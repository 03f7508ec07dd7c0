package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flightincognito/internal/cache"
	"github.com/dharmasatrya/flightincognito/internal/engine"
	"github.com/dharmasatrya/flightincognito/internal/handler"
	"github.com/dharmasatrya/flightincognito/internal/history"
	"github.com/dharmasatrya/flightincognito/internal/launcher"
	"github.com/dharmasatrya/flightincognito/internal/sites"
)

type Config struct {
	Port           string
	CacheEnabled   bool
	RedisHost      string
	RedisPort      string
	RedisTTL       time.Duration
	HistoryDBPath  string
	LaunchInterval time.Duration
	StrictSiteIDs  bool
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := loadConfig()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	eng := engine.New(engine.Config{
		DefaultToAll:  true,
		StrictSiteIDs: cfg.StrictSiteIDs,
	})
	log.Printf("Registered %d site encoders", len(sites.All))

	var linkCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.RedisTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		linkCache = redisCache
		log.Printf("Redis cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.RedisTTL)
	} else {
		linkCache = cache.NewNoOpCache()
		log.Println("Cache disabled")
	}

	store, err := history.NewStore(cfg.HistoryDBPath)
	if err != nil {
		log.Fatalf("Failed to open history store: %v", err)
	}
	defer store.Close()
	log.Printf("History store ready (path: %s)", cfg.HistoryDBPath)

	browserLauncher := launcher.New(launcher.Config{Interval: cfg.LaunchInterval})

	linksHandler := handler.NewLinksHandler(eng, linkCache, browserLauncher, store)
	historyHandler := handler.NewHistoryHandler(store)

	api := e.Group("/api/v1")
	api.POST("/links/generate", linksHandler.Generate)
	api.POST("/links/launch", linksHandler.Launch)
	api.GET("/history/recent", historyHandler.Recent)
	api.GET("/history/popular", historyHandler.Popular)
	api.GET("/history/count", historyHandler.Count)
	api.GET("/history/:id", historyHandler.ByID)
	api.DELETE("/history/:id", historyHandler.Delete)
	api.DELETE("/history", historyHandler.Clear)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting flight link server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func loadConfig() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		CacheEnabled:   getEnvBool("CACHE_ENABLED", false),
		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisTTL:       getEnvDuration("REDIS_TTL", 5*time.Minute),
		HistoryDBPath:  getEnv("HISTORY_DB_PATH", "flight_searches.db"),
		LaunchInterval: getEnvDuration("LAUNCH_INTERVAL", 300*time.Millisecond),
		StrictSiteIDs:  getEnvBool("STRICT_SITE_IDS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
