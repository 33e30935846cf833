package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"equiprent/internal/config"
	"equiprent/internal/database"
	"equiprent/internal/logger"
	"equiprent/internal/middleware"
	"equiprent/internal/modules/admin"
	"equiprent/internal/modules/auth"
	"equiprent/internal/modules/booking"
	"equiprent/internal/modules/catalog"
	"equiprent/internal/modules/feed"
	"equiprent/internal/modules/stats"
	jwtsvc "equiprent/internal/pkg/jwt"
	"equiprent/internal/repository"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := feed.NewHub()
	defer hub.Close()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(equipmentRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, equipmentRepo, hub))
	statsHandler := stats.NewHandler(stats.NewService(equipmentRepo, bookingRepo))
	adminHandler := admin.NewHandler(admin.NewService(userRepo))
	feedHandler := feed.NewHandler(hub, j)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		authd := v1.Group("/")
		authd.Use(middleware.Auth(j))

		manager := v1.Group("/")
		manager.Use(middleware.Auth(j), middleware.RequireManager())

		adminGrp := v1.Group("/")
		adminGrp.Use(middleware.Auth(j), middleware.AdminOnly())

		authHandler.RegisterRoutes(v1, authd)
		catalogHandler.RegisterRoutes(v1, adminGrp)
		bookingHandler.RegisterRoutes(authd, middleware.RequireManager())
		statsHandler.RegisterRoutes(manager, adminGrp)
		adminHandler.RegisterRoutes(adminGrp)
		feedHandler.RegisterRoutes(v1)
	}

	log.Info("starting server", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
