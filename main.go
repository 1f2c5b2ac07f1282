package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"foodhub-api/config"
	"foodhub-api/handlers"
	"foodhub-api/middleware"
	"foodhub-api/routes"
	"foodhub-api/services"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}
	log.Info().Str("dsn", cfg.DatabaseDSN).Msg("database connected and migrated")

	authService := services.NewAuthService(db, log, cfg.BcryptCost, cfg.SessionTTL)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	// CORS for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	routes.Setup(r, routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Menus:       handlers.NewMenuHandler(services.NewMenuService(db, log)),
		Orders:      handlers.NewOrderHandler(services.NewOrderService(db, log)),
		Reviews:     handlers.NewReviewHandler(services.NewReviewService(db, log)),
		Admin:       handlers.NewAdminHandler(services.NewAdminService(db, log)),
		AuthService: authService,
	})

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
