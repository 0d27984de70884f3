package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autopredict-web/internal/adapters/primary/http/handlers"
	"autopredict-web/internal/adapters/primary/http/middleware"
	"autopredict-web/internal/adapters/primary/http/views"
	"autopredict-web/internal/adapters/secondary/handoff"
	"autopredict-web/internal/adapters/secondary/imageprobe"
	"autopredict-web/internal/adapters/secondary/predictorapi"
	"autopredict-web/internal/config"
	ports "autopredict-web/internal/core/ports/output"
	"autopredict-web/internal/core/services"
	"autopredict-web/internal/requestid"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports)
	predictorAPI := predictorapi.NewPredictorClient(&cfg.Predictor)
	carrier := handoff.NewMemoryStore(&cfg.Handoff)
	log.WithField("url", cfg.Predictor.URL).Info("predictor api client initialized")

	// Image Prober (Optional - based on config)
	var prober ports.ImageProber
	if cfg.ImageProbe.Enabled {
		prober = imageprobe.NewProber(&cfg.ImageProbe)
		log.Info("image probe enabled")
	} else {
		log.Info("image probe disabled")
	}

	// Core Services (Application Layer)
	formSvc := services.NewFormService(predictorAPI, carrier)
	dashboardSvc := services.NewDashboardService(predictorAPI, cfg.Dashboard.RecentLimit)
	resultsSvc := services.NewResultsService(carrier, prober)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(formSvc, dashboardSvc, resultsSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	router.SetHTMLTemplate(views.Templates())
	router.StaticFS("/static", views.Static())

	h.RegisterRoutes(router)

	api := router.Group("/api/v1")
	api.Use(cors.New(corsConfig(cfg)))
	h.RegisterAPIRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestid.Header},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Location", requestid.Header},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.CORS.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
