package main

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coverageeng/snap-engine/internal/broadcast"
	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/engine"
	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/pkg/logger"
)

// TickInterval is the server-driven clock rate for post-snap plays.
// The engine itself takes dt from whoever calls Tick; this demo
// transport is that caller (spec.md §5: "single-threaded and
// cooperative" - every call into eng is serialized through mu).
const TickInterval = time.Second / 60

// Session owns one play's *engine.Engine plus the server-side clock and
// the set of WebSocket clients currently watching it. All access to the
// underlying engine goes through mu, exactly as the engine's own
// single-owner contract requires (spec.md §5).
type Session struct {
	ID  string
	eng *engine.Engine

	mu      sync.Mutex
	hub     *Hub
	cache   *broadcast.Cache
	stopCh  chan struct{}
	running bool
}

// NewSession builds a fresh play session with its own engine instance.
func NewSession(cfg engine.Config, cache *broadcast.Cache) *Session {
	return &Session{
		ID:     uuid.NewString(),
		eng:    engine.New(cfg),
		hub:    NewHub(),
		cache:  cache,
		stopCh: make(chan struct{}),
	}
}

// withEngine runs fn against the session's engine under the session
// lock, returning fn's result.
func (s *Session) withEngine(fn func(*engine.Engine) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.eng)
}

// snapshot returns the current GameState snapshot under lock.
func (s *Session) snapshot() *model.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.GetGameState()
}

// startClock begins the 60Hz server-side tick loop once a play is
// snapped, broadcasting a fresh snapshot to every connected client
// after each tick and mirroring it to Redis if configured.
func (s *Session) startClock() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(TickInterval)
		defer ticker.Stop()
		dt := TickInterval.Seconds()

		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.mu.Lock()
				s.eng.Tick(dt)
				gs := s.eng.GetGameState()
				s.mu.Unlock()

				s.hub.Broadcast(gs)
				if s.cache != nil {
					ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
					if err := s.cache.Publish(ctx, s.ID, gs); err != nil {
						logger.WithPlay("snapserver", s.ID).WithError(err).Warn("failed to publish snapshot")
					}
					cancel()
				}

				if gs.Phase == model.PhasePlayOver {
					s.stopClock()
					return
				}
			}
		}
	}()
}

func (s *Session) stopClock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopCh)
	s.stopCh = make(chan struct{})
}
