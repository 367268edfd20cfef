package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nexai/timetablegen/internal/metrics"
	"github.com/nexai/timetablegen/internal/service"
	"github.com/nexai/timetablegen/pkg/config"
	"github.com/nexai/timetablegen/pkg/logger"
	corsmiddleware "github.com/nexai/timetablegen/pkg/middleware/cors"
	reqidmiddleware "github.com/nexai/timetablegen/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logr.Sugar().Fatalw("failed to create output dir", "dir", cfg.Output.Dir, "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	srv := &Server{
		cfg:       cfg,
		logger:    logr,
		generator: service.NewGenerator(validator.New(), logr, m),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(m.GinMiddleware())

	r.GET("/health", srv.handleHealth)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.POST("/timetable", srv.handlePostTimetable)
	r.GET("/timetables", srv.handleListTimetables)
	r.GET("/timetables/:id", srv.handleGetTimetable)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
