package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel-backend/controllers"
	"travel-backend/middleware"
	"travel-backend/utils"
)

// Controllers groups the handlers SetupRouter mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Package  *controllers.PackageController
	Inquiry  *controllers.InquiryController
	Customer *controllers.CustomerController
	Payment  *controllers.PaymentController
	Catalog  *controllers.CatalogController
}

type Options struct {
	DB          *gorm.DB
	JWTSecret   string
	CORSOrigins []string

	// Limiter may be nil; public form endpoints are then unlimited.
	Limiter         middleware.Limiter
	RateLimitPerMin int
}

func SetupRouter(ctl Controllers, opts Options) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protect := middleware.Protect(opts.DB, opts.JWTSecret)
	adminOnly := middleware.AdminOnly()
	limit := func(scope string) gin.HandlerFunc {
		return middleware.RateLimit(opts.Limiter, scope, opts.RateLimitPerMin, time.Minute)
	}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", limit("signup"), ctl.Auth.Signup)
			auth.POST("/login", limit("login"), ctl.Auth.Login)
			auth.POST("/reset-password", limit("reset-password"), ctl.Auth.ResetPassword)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", ctl.Package.GetPackages)
			packages.GET("/:id", ctl.Package.GetPackage)
			packages.POST("", protect, adminOnly, ctl.Package.CreatePackage)
			packages.DELETE("/:id", protect, adminOnly, ctl.Package.DeletePackage)
		}

		inquiries := api.Group("/inquiries")
		{
			inquiries.POST("", limit("inquiry"), ctl.Inquiry.CreateInquiry)
			inquiries.GET("", protect, adminOnly, ctl.Inquiry.GetInquiries)
			inquiries.DELETE("/:id", protect, adminOnly, ctl.Inquiry.DeleteInquiry)
		}

		admin := api.Group("/admin", protect, adminOnly)
		{
			admin.GET("/customers", ctl.Customer.GetCustomers)
		}

		payment := api.Group("/payment")
		{
			payment.POST("/create-order", ctl.Payment.CreateOrder)
			payment.POST("/verify-payment", protect, ctl.Payment.VerifyPayment)
			payment.GET("/my-bookings", protect, ctl.Payment.MyBookings)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/sections/:name", ctl.Catalog.GetSection)
			catalog.GET("/trips/:id", ctl.Catalog.GetTrip)
			catalog.GET("/trips/:id/quote", ctl.Catalog.QuoteTrip)
		}
	}

	return r, nil
}
