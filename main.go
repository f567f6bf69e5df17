package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StephenRJohns/5JKitchens/config"
	"github.com/StephenRJohns/5JKitchens/controllers"
	"github.com/StephenRJohns/5JKitchens/database"
	"github.com/StephenRJohns/5JKitchens/logger"
	"github.com/StephenRJohns/5JKitchens/mailer"
	"github.com/StephenRJohns/5JKitchens/models"
	"github.com/StephenRJohns/5JKitchens/repository"
	"github.com/StephenRJohns/5JKitchens/routes"
	"github.com/StephenRJohns/5JKitchens/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Initialize(cfg.Environment)
	defer logger.Log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Could not connect to PostgreSQL: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(redisClient, cfg.CartTTL)

	var sender mailer.EmailSender
	if cfg.SMTPConfigured() {
		sender = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		sender = mailer.NewLogMailer(logger.Log)
	}

	tokens := services.NewTokenService([]byte(cfg.AdminJWTSecret), cfg.SessionTTL)
	auth := services.NewAuthService(userRepo)
	users := services.NewUserService(userRepo)
	newsletter := services.NewNewsletterService(subscriberRepo, userRepo, sender, logger.Log)
	orders := services.NewOrderService(orderRepo)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(logger.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.Register(r, routes.Controllers{
		Auth:       controllers.NewAuthController(auth, tokens, cfg.IsProduction()),
		Users:      controllers.NewUserController(users, newsletter),
		Newsletter: controllers.NewNewsletterController(newsletter),
		Checkout:   controllers.NewCheckoutController(orders),
		Cart:       controllers.NewCartController(cartRepo),
		Products:   controllers.NewProductController(),
	}, tokens)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Storefront service is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server shutdown complete.")
}
