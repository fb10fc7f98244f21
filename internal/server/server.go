package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/globalbiznex/biznexbot/internal/config"
	"github.com/globalbiznex/biznexbot/internal/service"
	"github.com/globalbiznex/biznexbot/internal/store"
)

type Server struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine
	Logger *zap.Logger
	Server *http.Server

	// Services
	Store     store.RecordStore
	Dispatch  *service.DispatchService
	Scheduler *service.Scheduler
	Auth      *service.AuthService

	drafts *draftSessions
}

func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	// Set gin mode
	gin.SetMode(cfg.Server.Mode)

	var db *gorm.DB
	var recordStore store.RecordStore
	if cfg.Database.Type == "memory" {
		recordStore = store.NewMemoryStore()
	} else {
		var err error
		db, err = store.NewDatabase(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		recordStore = store.NewGormStore(db)
	}

	// Initialize services
	dispatch, err := service.BuildDispatch(cfg, db, recordStore, logger)
	if err != nil {
		return nil, err
	}
	scheduler := service.NewScheduler(&cfg.Scheduler, logger, dispatch)

	// Create router
	router := gin.New()

	// Create server
	srv := &Server{
		Config:    cfg,
		DB:        db,
		Router:    router,
		Logger:    logger,
		Store:     recordStore,
		Dispatch:  dispatch,
		Scheduler: scheduler,
		drafts:    newDraftSessions(),
	}

	if cfg.Auth.Enabled && cfg.Auth.TOTPSecret != "" {
		srv.Auth = service.NewAuthService(logger, cfg.Auth.TOTPSecret)
	}

	// Setup middleware and routes
	srv.setupMiddleware()
	srv.setupRoutes()

	return srv, nil
}

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.Router.Use(gin.Recovery())

	// Logger middleware
	s.Router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	// CORS middleware
	s.Router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	if s.Auth != nil {
		s.Router.Use(s.Auth.Middleware())
	}
}

func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// API routes
	api := s.Router.Group("/api/v1")
	{
		api.POST("/auth/login", s.handleLogin)

		drafts := api.Group("/drafts")
		{
			drafts.POST("", s.handleParsePrompt)
			drafts.GET("/:id", s.handleGetDraft)
			drafts.PUT("/:id", s.handleUpdateDraft)
			drafts.POST("/:id/confirm", s.handleConfirmDraft)
		}

		items := api.Group("/items")
		{
			items.POST("", s.handleCreateItem)
			items.GET("", s.handleListItems)
		}

		api.POST("/dispatch/run", s.handleRunDispatch)
		api.GET("/postlog", s.handleGetPostLog)
	}
}

func (s *Server) Start(ctx context.Context) error {
	// Start scheduler
	if err := s.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)

	s.Server = &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	s.Logger.Info("Starting HTTP server", zap.String("addr", addr))

	if s.Config.Server.CertFile != "" && s.Config.Server.KeyFile != "" {
		return s.Server.ListenAndServeTLS(s.Config.Server.CertFile, s.Config.Server.KeyFile)
	}

	return s.Server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	// Stop scheduler first
	s.Scheduler.Stop()

	if s.Server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return s.Server.Shutdown(shutdownCtx)
}
