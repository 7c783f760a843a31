package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coverageeng/snap-engine/internal/broadcast"
	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/engine"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
	"github.com/coverageeng/snap-engine/pkg/config"
	"github.com/coverageeng/snap-engine/pkg/logger"
)

// Server holds every in-flight play session. A real deployment would
// expire idle sessions; this demo transport keeps them for process
// lifetime.
type Server struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cat   catalog.Catalog
	cfg   *config.Config
	cache *broadcast.Cache
}

// NewServer builds a Server backed by the static data catalog and the
// given config/cache.
func NewServer(cfg *config.Config, cache *broadcast.Cache) *Server {
	return &Server{
		sessions: make(map[string]*Session),
		cat:      catalog.New(),
		cfg:      cfg,
		cache:    cache,
	}
}

func (srv *Server) session(id string) (*Session, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()
	s, ok := srv.sessions[id]
	return s, ok
}

// createPlay starts a fresh engine at the 25-yard line, 1st & 10.
func (srv *Server) createPlay(c *gin.Context) {
	mode := model.ModeFreePlay
	if c.Query("mode") == "challenge" {
		mode = model.ModeChallenge
	}

	s := NewSession(engine.Config{
		Catalog:     srv.cat,
		Logger:      engineLogAdapter,
		MaxAudibles: srv.cfg.MaxAudibles,
		Mode:        mode,
		RNGSeed:     uint64(time.Now().UnixNano()),
	}, srv.cache)

	srv.mu.Lock()
	srv.sessions[s.ID] = s
	srv.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"play_id": s.ID, "state": s.snapshot()})
}

func engineLogAdapter(component, message string) {
	// Diagnostics are already recorded on GameState.Diagnostics; this
	// adapter also surfaces them through the process's structured
	// logger so a human watching stdout sees recovered invariants live.
	logger.WithComponent(component).Warn(message)
}

type conceptRequest struct {
	FormationID string  `json:"formation_id" binding:"required"`
	ConceptID   string  `json:"concept_id" binding:"required"`
	LOS         float64 `json:"los" binding:"required"`
	Hash        string  `json:"hash" binding:"required"`
}

func (srv *Server) setConcept(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req conceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		return e.SetPlayConcept(req.FormationID, req.ConceptID, req.LOS, model.Hash(req.Hash))
	})
	respondCommand(c, s, ok)
}

type coverageRequest struct {
	Type         string `json:"type"`
	CoverageID   string `json:"coverage_id"`
}

func (srv *Server) setCoverage(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req coverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		if req.CoverageID != "" {
			return e.SetCoverageByDef(req.CoverageID)
		}
		return e.SetCoverageByType(model.CoverageType(req.Type))
	})
	respondCommand(c, s, ok)
}

type personnelRequest struct {
	Package string `json:"package" binding:"required"`
}

func (srv *Server) setPersonnel(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req personnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		return e.SetPersonnel(model.DefensivePackage(req.Package))
	})
	respondCommand(c, s, ok)
}

type positionRequest struct {
	PlayerID string  `json:"player_id" binding:"required"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

func (srv *Server) updatePosition(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		return e.UpdatePlayerPosition(req.PlayerID, vector.V2{X: req.X, Y: req.Y})
	})
	respondCommand(c, s, ok)
}

type motionRequest struct {
	PlayerID   string `json:"player_id" binding:"required"`
	MotionType string `json:"motion_type" binding:"required"`
}

func (srv *Server) sendInMotion(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req motionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		return e.SendInMotion(req.PlayerID, model.MotionType(req.MotionType))
	})
	respondCommand(c, s, ok)
}

type qbMovementRequest struct {
	DropType string `json:"drop_type" binding:"required"`
}

func (srv *Server) setQBMovement(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req qbMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		return e.SetQBMovement(model.QBDropType(req.DropType))
	})
	respondCommand(c, s, ok)
}

type audibleRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	RouteType string `json:"route_type" binding:"required"`
}

func (srv *Server) audibleRoute(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req audibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool {
		return e.AudibleRoute(req.PlayerID, model.RouteType(req.RouteType))
	})
	respondCommand(c, s, ok)
}

// snap transitions the play post-snap and starts the server-side 60Hz
// clock that drives tick() until the play is over.
func (srv *Server) snap(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool { return e.Snap() })
	if ok {
		s.startClock()
	}
	respondCommand(c, s, ok)
}

type throwRequest struct {
	TargetID string `json:"target_id" binding:"required"`
}

func (srv *Server) throwTo(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	var req throwRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok = s.withEngine(func(e *engine.Engine) bool { return e.ThrowTo(req.TargetID) })
	respondCommand(c, s, ok)
}

func (srv *Server) resetPlay(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	s.stopClock()
	ok = s.withEngine(func(e *engine.Engine) bool { return e.ResetPlay() })
	if srv.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		srv.cache.Clear(ctx, s.ID)
		cancel()
	}
	respondCommand(c, s, ok)
}

func (srv *Server) nextPlay(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	s.stopClock()
	ok = s.withEngine(func(e *engine.Engine) bool { return e.NextPlay() })
	if srv.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		srv.cache.Clear(ctx, s.ID)
		cancel()
	}
	respondCommand(c, s, ok)
}

func (srv *Server) getState(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	c.JSON(http.StatusOK, s.snapshot())
}

func (srv *Server) watch(c *gin.Context) {
	s, ok := srv.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "play not found"})
		return
	}
	s.hub.HandleWebSocket(c)
}

func (srv *Server) health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if srv.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := srv.cache.HealthCheck(ctx); err != nil {
			body["redis"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["redis"] = "ok"
	}
	c.JSON(http.StatusOK, body)
}

func respondCommand(c *gin.Context, s *Session, ok bool) {
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "command rejected", "state": s.snapshot()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": s.snapshot()})
}
