package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/auth"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/config"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/db"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/email"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/gallery"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/lead"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/media"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/member"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/renewal"
)

type Server struct {
	router  *gin.Engine
	http    *http.Server
	config  *config.Config
	email   *email.Service
	renewal *renewal.Service
}

func New(mongo *db.Mongo, cfg *config.Config, emailService *email.Service, storage media.Storage) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	memberStore := member.NewRepository(mongo.Collection("members"))
	leadStore := lead.NewRepository(mongo.Collection("leads"))
	galleryStore := gallery.NewRepository(mongo.Collection("gallery"))

	memberService := member.NewService(memberStore, storage, emailService)
	renewalService := renewal.New(memberStore, emailService, emailService.Redis(), cfg.ReminderWindowDays)

	authHandler := auth.NewHandler(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
	memberHandler := member.NewHandler(memberStore, memberService, cfg.ReminderWindowDays)
	leadHandler := lead.NewHandler(leadStore)
	galleryHandler := gallery.NewHandler(galleryStore, storage)
	renewalHandler := renewal.NewHandler(renewalService)

	api := router.Group("/api")

	public := api.Group("/")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/refresh", authHandler.Refresh)
		public.POST("/leads", leadHandler.Create)
		public.GET("/gallery", galleryHandler.List)
	}

	authMiddleware := auth.Middleware(cfg.JWTSecret)
	admin := api.Group("/")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/members", memberHandler.Create)
		admin.GET("/members", memberHandler.ListActive)
		admin.GET("/members/expiring", memberHandler.ListExpiring)
		admin.POST("/members/:id/remind", memberHandler.Remind)

		admin.GET("/leads", leadHandler.List)
		admin.PATCH("/leads/:id", leadHandler.UpdateStatus)

		admin.POST("/gallery", galleryHandler.Upload)
		admin.DELETE("/gallery/:id", galleryHandler.Delete)
	}

	api.GET("/cron/check-renewal", renewal.CronAuth(cfg.CronSecret), renewalHandler.Check)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router:  router,
		config:  cfg,
		email:   emailService,
		renewal: renewalService,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Renewal exposes the sweep service so main can hand it to the scheduler.
func (s *Server) Renewal() *renewal.Service {
	return s.renewal
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Cron-Secret")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
