// Package server exposes the villa over a polling HTTP API: read endpoints
// for every record type and a guarded trigger that runs one simulation
// cycle.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/metrics"
	"github.com/dotslashsimran/ai-love-island/internal/models"
	"github.com/dotslashsimran/ai-love-island/internal/sim"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const defaultListLimit = 50

// ReadStore is the read-side persistence surface the API serves from.
type ReadStore interface {
	LoadCharacters(ctx context.Context) ([]models.Character, error)
	LoadRecentInteractions(ctx context.Context, limit int) ([]models.Interaction, error)
	LoadTimelineEvents(ctx context.Context, limit int) ([]models.TimelineEvent, error)
	LoadConfessionals(ctx context.Context, limit int) ([]models.Confessional, error)
	LoadConversations(ctx context.Context, limit int) ([]models.Conversation, error)
	LoadConversationsForCharacter(ctx context.Context, characterID string, limit int) ([]models.Conversation, error)
}

// CycleRunner triggers one simulation cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*sim.CycleResult, error)
}

// Server wires the villa's read and trigger endpoints onto echo.
type Server struct {
	echo       *echo.Echo
	store      ReadStore
	engine     CycleRunner
	metrics    *metrics.Collector
	cronSecret string
	logger     *slog.Logger
}

// New creates the HTTP server. An empty cronSecret leaves the simulate
// endpoint open.
func New(store ReadStore, engine CycleRunner, collector *metrics.Collector, cronSecret string, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover(), middleware.CORS())

	s := &Server{
		echo:       e,
		store:      store,
		engine:     engine,
		metrics:    collector,
		cronSecret: cronSecret,
		logger:     logger,
	}
	e.Use(s.requestLogger)
	s.setupRoutes()
	return s
}

// Start begins serving on addr, blocking until shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.health)

	api := s.echo.Group("/api")
	api.GET("/characters", s.listCharacters)
	api.GET("/interactions", s.listInteractions)
	api.GET("/timeline", s.listTimeline)
	api.GET("/confessionals", s.listConfessionals)
	api.GET("/conversations", s.listConversations)
	api.GET("/stats", s.stats)
	api.POST("/simulate", s.simulate, s.requireCronSecret)
}

// requestLogger logs each request with method, path, status and latency.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		s.logger.Info("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start))
		return nil
	}
}

// requireCronSecret guards the simulate endpoint with a static bearer
// credential. When no secret is configured the endpoint is open.
func (s *Server) requireCronSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.cronSecret == "" {
			return next(c)
		}
		auth := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.cronSecret)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		return next(c)
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listCharacters(c echo.Context) error {
	chars, err := s.store.LoadCharacters(c.Request().Context())
	if err != nil {
		s.logger.Error("listing characters failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load characters")
	}
	if chars == nil {
		chars = []models.Character{}
	}
	return c.JSON(http.StatusOK, chars)
}

func (s *Server) listInteractions(c echo.Context) error {
	ins, err := s.store.LoadRecentInteractions(c.Request().Context(), limitParam(c))
	if err != nil {
		s.logger.Error("listing interactions failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load interactions")
	}
	if ins == nil {
		ins = []models.Interaction{}
	}
	return c.JSON(http.StatusOK, ins)
}

func (s *Server) listTimeline(c echo.Context) error {
	evs, err := s.store.LoadTimelineEvents(c.Request().Context(), limitParam(c))
	if err != nil {
		s.logger.Error("listing timeline failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load timeline")
	}
	if evs == nil {
		evs = []models.TimelineEvent{}
	}
	return c.JSON(http.StatusOK, evs)
}

func (s *Server) listConfessionals(c echo.Context) error {
	confs, err := s.store.LoadConfessionals(c.Request().Context(), limitParam(c))
	if err != nil {
		s.logger.Error("listing confessionals failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load confessionals")
	}
	if confs == nil {
		confs = []models.Confessional{}
	}
	return c.JSON(http.StatusOK, confs)
}

func (s *Server) listConversations(c echo.Context) error {
	ctx := c.Request().Context()
	limit := limitParam(c)

	var convs []models.Conversation
	var err error
	if characterID := c.QueryParam("characterId"); characterID != "" {
		convs, err = s.store.LoadConversationsForCharacter(ctx, characterID, limit)
	} else {
		convs, err = s.store.LoadConversations(ctx, limit)
	}
	if err != nil {
		s.logger.Error("listing conversations failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load conversations")
	}
	if convs == nil {
		convs = []models.Conversation{}
	}
	return c.JSON(http.StatusOK, convs)
}

// simulateResponse reports what one cycle created.
type simulateResponse struct {
	Success       bool `json:"success"`
	Interactions  int  `json:"interactions"`
	Events        int  `json:"events"`
	Confessionals int  `json:"confessionals"`
	Conversations int  `json:"conversations"`
}

func (s *Server) simulate(c echo.Context) error {
	result, err := s.engine.RunCycle(c.Request().Context())
	if err != nil {
		if errors.Is(err, sim.ErrCycleInProgress) {
			return echo.NewHTTPError(http.StatusConflict, "cycle already in progress")
		}
		s.logger.Error("cycle failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "simulation failed")
	}
	return c.JSON(http.StatusOK, simulateResponse{
		Success:       true,
		Interactions:  len(result.Interactions),
		Events:        len(result.Events),
		Confessionals: len(result.Confessionals),
		Conversations: len(result.Conversations),
	})
}

func (s *Server) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.metrics.Snapshot())
}

func limitParam(c echo.Context) int {
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultListLimit
}
