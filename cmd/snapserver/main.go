// Command snapserver is the ambient demo transport: a thin Gin + Gorilla
// WebSocket process wrapping the snap engine. It is not part of the
// engine's own contract (spec.md §6) — every request here goes through
// the exact same public Engine API a direct Go caller would use; this
// binary only adds HTTP/WebSocket plumbing and an optional Redis mirror
// on top.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coverageeng/snap-engine/internal/broadcast"
	"github.com/coverageeng/snap-engine/pkg/config"
	"github.com/coverageeng/snap-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init("", cfg.IsDevelopment())
	log.WithFields(map[string]interface{}{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("starting snap-engine demo server")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var cache *broadcast.Cache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		c, err := broadcast.Connect(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.WithError(err).Warn("redis unavailable, running without snapshot cache")
		} else {
			cache = c
			defer cache.Close()
		}
	}

	srv := NewServer(cfg, cache)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", srv.health)

	plays := router.Group("/plays")
	{
		plays.POST("", srv.createPlay)
		plays.GET("/:id/state", srv.getState)
		plays.GET("/:id/watch", srv.watch)
		plays.POST("/:id/concept", srv.setConcept)
		plays.POST("/:id/coverage", srv.setCoverage)
		plays.POST("/:id/personnel", srv.setPersonnel)
		plays.POST("/:id/position", srv.updatePosition)
		plays.POST("/:id/motion", srv.sendInMotion)
		plays.POST("/:id/qb-movement", srv.setQBMovement)
		plays.POST("/:id/audible", srv.audibleRoute)
		plays.POST("/:id/snap", srv.snap)
		plays.POST("/:id/throw", srv.throwTo)
		plays.POST("/:id/reset", srv.resetPlay)
		plays.POST("/:id/next", srv.nextPlay)
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("snap-engine demo server listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down snap-engine demo server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("snap-engine demo server forced to shutdown")
	}
	log.Info("snap-engine demo server exited")
}
