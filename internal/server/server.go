package server

import (
	"context"
	"net/http"
	"time"

	_ "fitbook/docs"
	"fitbook/internal/availability"
	"fitbook/internal/booking"
	"fitbook/internal/config"
	"fitbook/internal/email"
	"fitbook/internal/facility"
	"fitbook/internal/trainer"
	"fitbook/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userHandler := user.NewHandler(db)
	trainerHandler := trainer.NewHandler(db)
	facilityHandler := facility.NewHandler(db)
	availabilityHandler := availability.NewHandler(db)

	bookingService := booking.NewService(
		booking.NewRepository(db),
		availability.NewRepository(db),
		trainer.NewRepository(db),
		facility.NewRepository(db),
		user.NewRepository(db),
		emailService,
	)
	bookingHandler := booking.NewHandler(bookingService)

	auth := router.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
	}

	router.GET("/trainers", trainerHandler.ListTrainers)
	router.GET("/trainers/:trainerID", trainerHandler.GetTrainer)
	router.GET("/certifications", trainerHandler.ListCertifications)
	router.GET("/facilities", facilityHandler.ListFacilities)

	router.POST("/availability", availabilityHandler.SetAvailability)
	router.GET("/availability/:trainerID", availabilityHandler.GetAvailability)

	bookings := router.Group("/bookings")
	{
		bookings.GET("/available-slots/:trainerID/:day", bookingHandler.GetAvailableSlots)
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.PUT("/:bookingID/cancel", bookingHandler.CancelBooking)
		bookings.GET("/sessions/:trainerID", bookingHandler.GetTrainerSessions)
		bookings.GET("/client/:clientID", bookingHandler.GetClientSessions)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
