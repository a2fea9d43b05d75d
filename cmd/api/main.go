package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/YuliaRizki/nailBook/internal/config"
	dbpkg "github.com/YuliaRizki/nailBook/internal/db"
	"github.com/YuliaRizki/nailBook/internal/middleware"
	"github.com/YuliaRizki/nailBook/internal/routes"
	"github.com/YuliaRizki/nailBook/pkg/logging"
	"github.com/gin-gonic/gin"
)

func main() {

	logging.Setup()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	slog.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
