package main

import (
	"database/sql"
	"log"
	"time"

	"bendahara-api/config"
	"bendahara-api/db"
	"bendahara-api/internal/handler"
	"bendahara-api/internal/middleware"
	"bendahara-api/internal/repository"
	"bendahara-api/internal/service"

	"github.com/avast/retry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, skip loading")
	}

	cfg := config.LoadConfig()
	if cfg.JWT.Secret == config.DefaultJWTSecret {
		log.Println("Warning: JWT_SECRET not set, using insecure development default")
	}

	// Connect to database
	database, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// The database container may still be coming up; retry the first ping.
	err = retry.Do(
		database.Ping,
		retry.Attempts(10),
		retry.Delay(2*time.Second),
		retry.DelayType(retry.FixedDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("Waiting for database (attempt %d): %v", n+1, err)
		}),
	)
	if err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.ApplyMigrations(database); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Database migrations applied")

	// Initialize layers
	userRepo := repository.NewUserRepository(database)
	refreshRepo := repository.NewRefreshTokenRepository(database)
	santriRepo := repository.NewSantriRepository(database)
	pegawaiRepo := repository.NewPegawaiRepository(database)
	pembayaranRepo := repository.NewPembayaranRepository(database)
	gajiRepo := repository.NewGajiRepository(database)
	transaksiRepo := repository.NewTransaksiRepository(database)

	authService := service.NewAuthService(userRepo, refreshRepo, cfg.JWT)
	santriService := service.NewSantriService(santriRepo)
	pegawaiService := service.NewPegawaiService(pegawaiRepo)
	pembayaranService := service.NewPembayaranService(pembayaranRepo)
	gajiService := service.NewGajiService(gajiRepo, pegawaiRepo)
	transaksiService := service.NewTransaksiService(transaksiRepo)
	summaryService := service.NewSummaryService(santriRepo, pembayaranRepo, gajiRepo, transaksiRepo)

	if err := authService.SeedDefaultAdmin(); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	santriHandler := handler.NewSantriHandler(santriService)
	pegawaiHandler := handler.NewPegawaiHandler(pegawaiService)
	pembayaranHandler := handler.NewPembayaranHandler(pembayaranService)
	gajiHandler := handler.NewGajiHandler(gajiService)
	transaksiHandler := handler.NewTransaksiHandler(transaksiService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.GET("/schema", handler.Schema)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/refresh", authHandler.Refresh)

	// Protected routes
	authed := r.Group("/", middleware.AuthRequired(authService))
	{
		authed.GET("/me", authHandler.Me)

		authed.POST("/santri", santriHandler.Create)
		authed.GET("/santri", santriHandler.List)

		authed.POST("/pegawai", pegawaiHandler.Create)
		authed.GET("/pegawai", pegawaiHandler.List)

		authed.POST("/syariah", pembayaranHandler.Create)
		authed.GET("/syariah", pembayaranHandler.List)

		authed.POST("/gaji", gajiHandler.Create)
		authed.GET("/gaji", gajiHandler.List)

		authed.POST("/transaksi", transaksiHandler.Create)
		authed.GET("/transaksi", transaksiHandler.List)

		authed.GET("/summary", summaryHandler.Summary)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Treasurer API starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
