package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barberbook/barberbook-api/internal/cache"
	"github.com/barberbook/barberbook-api/internal/config"
	dbpkg "github.com/barberbook/barberbook-api/internal/db"
	"github.com/barberbook/barberbook-api/internal/logger"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/routes"
)

func main() {

	cfg := config.Load()
	logger.Init(cfg)

	db := dbpkg.New(cfg)
	rdb := cache.New(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(r, db, rdb, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
