// Package catalog implements the read-only data catalog loader
// (spec.md §4.2): lookups by key for play concepts, coverages and
// formations, returning deep-cloned definitions so a caller can never
// mutate the shared static record. A missing key is a normal outcome
// the caller must handle, not an error.
package catalog

import "github.com/coverageeng/snap-engine/internal/model"

// Catalog is the interface the rest of the engine depends on, so a
// host can substitute its own data source (per Design Notes §9,
// "Avoiding global singletons": the catalog is constructed once and
// passed by reference, never a package-level singleton the engine
// reaches for implicitly).
type Catalog interface {
	GetConcept(id string) (*model.Concept, bool)
	GetCoverage(id string) (*model.Coverage, bool)
	GetFormation(id string) (*model.Formation, bool)
	GetRoute(rt model.RouteType) *model.Route
}

// Static is the built-in Catalog backed by the package-level maps in
// concepts.go, coverages.go and formations.go.
type Static struct{}

// New returns the built-in static catalog.
func New() *Static { return &Static{} }

func (s *Static) GetConcept(id string) (*model.Concept, bool) {
	c, ok := concepts[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

func (s *Static) GetCoverage(id string) (*model.Coverage, bool) {
	c, ok := coverages[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

func (s *Static) GetFormation(id string) (*model.Formation, bool) {
	f, ok := formations[id]
	if !ok {
		return nil, false
	}
	return f.Clone(), true
}

// GetRoute synthesizes a fresh route for the given type from the
// static timing table; used by hot-route conversion and sight
// adjustment to build a substitute route on demand.
func (s *Static) GetRoute(rt model.RouteType) *model.Route {
	r := BuildRoute(rt)
	return &r
}
