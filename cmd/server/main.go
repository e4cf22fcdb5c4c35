package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/faq-portal/internal/config"     // Internal config loader
	"github.com/iliyamo/faq-portal/internal/database"   // MySQL pool
	"github.com/iliyamo/faq-portal/internal/handler"    // HTTP handlers
	"github.com/iliyamo/faq-portal/internal/middleware" // rate limiter / cache middleware
	"github.com/iliyamo/faq-portal/internal/queue"      // activity event consumer
	"github.com/iliyamo/faq-portal/internal/repository" // data access layer
	"github.com/iliyamo/faq-portal/internal/router"     // route registration
	"github.com/iliyamo/faq-portal/migrations"          // embedded schema migrations
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	if err := migrations.Migrate(db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Redis is optional: when unavailable the cache and limiter disable
	// themselves and the service runs without them.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiter disabled")
	}

	users := repository.NewUserRepo(db)
	bookmarks := repository.NewBookmarkRepo(db)
	faqs := repository.NewFaqRepo(db)
	stats := repository.NewAnalyticsRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, bookmarks, stats)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarks)
	faqHandler := handler.NewFaqHandler(faqs, stats)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, bookmarkHandler, cfg.JWTSecret)
	router.RegisterFaq(e, faqHandler, cfg.JWTSecret,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Background consumer appends activity events to logs/activity.log
	// and reconnects on broker failures.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
