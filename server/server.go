package server

import (
	"context"
	"log/slog"
	"net/http"

	"califica-tu-profe/auth"
	"califica-tu-profe/moderation"
	"califica-tu-profe/observability"
	"califica-tu-profe/repositories"
	"califica-tu-profe/services"

	"github.com/gin-gonic/gin"
)

// Moderator is the decision engine seen from the HTTP layer.
type Moderator interface {
	Moderate(ctx context.Context, text, userID string) moderation.Verdict
}

type Server struct {
	router    *gin.Engine
	moderator Moderator
	reports   services.IReportService
	analysis  services.AnalysisService
	audit     repositories.IAuditRepository
	monitor   *observability.Monitor
	tokens    auth.TokenManager
	log       *slog.Logger
}

func NewServer(moderator Moderator, reports services.IReportService,
	analysis services.AnalysisService, audit repositories.IAuditRepository,
	monitor *observability.Monitor, tokens auth.TokenManager, log *slog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:    router,
		moderator: moderator,
		reports:   reports,
		analysis:  analysis,
		audit:     audit,
		monitor:   monitor,
		tokens:    tokens,
		log:       log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	authenticated := s.router.Group("/api")
	authenticated.Use(s.authMiddleware())
	{
		authenticated.POST("/moderation/check", s.checkContent)
		authenticated.POST("/analysis", s.analyzeReview)
		authenticated.POST("/reports", s.submitReport)
	}

	admin := s.router.Group("/api")
	admin.Use(s.authMiddleware(), s.adminOnly())
	{
		admin.GET("/reports", s.listReports)
		admin.POST("/reports/:id/resolve", s.resolveReport)
		admin.POST("/content/:type/:id/unhide", s.unhideContent)
		admin.GET("/audit", s.searchAudit)
		admin.GET("/stats", s.stats)
	}
}

// Handler exposes the router for net/http and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
