package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/data"
	"travel-backend/middleware"
	"travel-backend/routes"
	"travel-backend/services"
	"travel-backend/utils"
)

func main() {
	cfg := config.Load()

	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		log.Println("⚠️  RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET not set; orders and payment verification will fail")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Printf("✅ Database connection established (%s) and migrations applied.", cfg.DBDriver)

	catalog, err := data.Load()
	if err != nil {
		log.Fatalf("❌ Static catalog failed to load: %v", err)
	}

	var limiter middleware.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Printf("⚠️  Redis at %s unreachable (%v); requests pass through until it recovers", cfg.RedisAddr, err)
		} else {
			log.Printf("✅ Rate limiting via Redis at %s (%d/min)", cfg.RedisAddr, cfg.RateLimitPerMinute)
		}
		cancel()
		limiter = middleware.NewRedisLimiter(rdb)
		defer rdb.Close()
	} else {
		log.Println("⚠️  REDIS_ADDR not set; rate limiting disabled")
	}

	var notifier services.InquiryNotifier
	if cfg.MailEnabled() {
		notifier = &utils.InquiryMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			FromName: cfg.SMTPFromName,
			To:       cfg.InquiryNotifyEmail,
		}
		log.Printf("✅ Inquiry notifications go to %s", cfg.InquiryNotifyEmail)
	}

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	packageService := services.NewPackageService(db)
	inquiryService := services.NewInquiryService(db, notifier)
	customerService := services.NewCustomerService(db)
	paymentService := services.NewPaymentService(db,
		services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		cfg.RazorpayKeySecret, cfg.PaymentCurrency)
	catalogService := services.NewCatalogService(catalog, packageService)

	router, err := routes.SetupRouter(routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Package:  controllers.NewPackageController(packageService),
		Inquiry:  controllers.NewInquiryController(inquiryService),
		Customer: controllers.NewCustomerController(customerService),
		Payment:  controllers.NewPaymentController(paymentService),
		Catalog:  controllers.NewCatalogController(catalogService),
	}, routes.Options{
		DB:              db,
		JWTSecret:       cfg.JWTSecret,
		CORSOrigins:     cfg.CORSOrigins,
		Limiter:         limiter,
		RateLimitPerMin: cfg.RateLimitPerMinute,
	})
	if err != nil {
		log.Fatalf("❌ Router setup failed: %v", err)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
