package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/antologiabox23-boop/antologia-pro/internal/attendance"
	"github.com/antologiabox23-boop/antologia-pro/internal/auth"
	"github.com/antologiabox23-boop/antologia-pro/internal/config"
	"github.com/antologiabox23-boop/antologia-pro/internal/membership"
	"github.com/antologiabox23-boop/antologia-pro/internal/notify"
	"github.com/antologiabox23-boop/antologia-pro/internal/payment"
	"github.com/antologiabox23-boop/antologia-pro/internal/user"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	notify     *notify.Service
}

func New(db *sqlx.DB, cfg *config.Config, notifyService *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userRepo := user.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(userRepo))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, userRepo, notifyService))
	attendanceHandler := attendance.NewHandler(attendance.NewService(attendanceRepo, userRepo))
	membershipHandler := membership.NewHandler(membership.NewService(
		userRepo, paymentRepo, attendanceRepo, notifyService, cfg.InactivityThresholdDays))
	authHandler := auth.NewHandler(cfg.AdminUser, cfg.AdminPassword, cfg.JWTSecret)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(1, 5))
	{
		public.POST("/login", authHandler.Login)
		public.POST("/refresh", authHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	adminMiddleware := auth.RequireRole("admin")
	protected := router.Group("/")
	protected.Use(authMiddleware, adminMiddleware)
	{
		protected.POST("/users", userHandler.Create)
		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.Get)
		protected.PUT("/users/:id", userHandler.Update)
		protected.DELETE("/users/:id", userHandler.Delete)
		protected.POST("/users/:id/deactivate", userHandler.Deactivate)

		protected.POST("/payments", paymentHandler.Record)
		protected.PUT("/payments/:id", paymentHandler.Update)
		protected.DELETE("/payments/:id", paymentHandler.Delete)
		protected.GET("/payments/summary", paymentHandler.Summarize)
		protected.GET("/users/:id/payments", paymentHandler.ListByUser)
		protected.GET("/users/:id/payments/suggest", paymentHandler.SuggestDates)

		protected.POST("/attendance", attendanceHandler.Mark)
		protected.POST("/attendance/mark-all", attendanceHandler.MarkAll)
		protected.GET("/attendance", attendanceHandler.ListByDate)
		protected.GET("/attendance/report", attendanceHandler.Report)
		protected.GET("/users/:id/attendance", attendanceHandler.ListByUser)

		protected.GET("/members/:id/vigency", membershipHandler.MemberStatus)
		protected.GET("/alerts", membershipHandler.Alerts)
		protected.POST("/alerts/:id/notify", membershipHandler.NotifyInactive)
		protected.GET("/stats", membershipHandler.Stats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		notify: notifyService,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
