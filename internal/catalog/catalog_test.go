package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coverageeng/snap-engine/internal/model"
)

func TestGetConcept_ReturnsClonedIndependentCopies(t *testing.T) {
	cat := New()
	a, ok := cat.GetConcept("slant-flat")
	require.True(t, ok)
	b, ok := cat.GetConcept("slant-flat")
	require.True(t, ok)

	wr1 := a.RoutesBySlot["WR1"]
	wr1.Type = model.RouteGo
	a.RoutesBySlot["WR1"] = wr1

	assert.Equal(t, model.RouteSlant, b.RoutesBySlot["WR1"].Type)
}

func TestGetConcept_UnknownIDReturnsFalse(t *testing.T) {
	cat := New()
	_, ok := cat.GetConcept("does-not-exist")
	assert.False(t, ok)
}

func TestGetCoverage_KnownIDsResolveToExpectedTypes(t *testing.T) {
	cat := New()
	c, ok := cat.GetCoverage("cover-3")
	require.True(t, ok)
	assert.Equal(t, model.Cover3, c.Type)
	assert.Equal(t, 1, c.SafetyCount)
}

func TestGetFormation_TripsRightHasElevenPersonnel(t *testing.T) {
	cat := New()
	f, ok := cat.GetFormation("trips-right")
	require.True(t, ok)
	assert.Equal(t, "11", f.Personnel.Code())
}

func TestGetFormation_MutatingReturnedCopyDoesNotAffectCatalog(t *testing.T) {
	cat := New()
	a, _ := cat.GetFormation("singleback")
	spec := a.Positions["QB"]
	spec.OffsetX = 999
	a.Positions["QB"] = spec

	b, _ := cat.GetFormation("singleback")
	assert.NotEqual(t, 999.0, b.Positions["QB"].OffsetX)
}

func TestGetRoute_SynthesizesRouteWithDeclaredDepth(t *testing.T) {
	cat := New()
	r := cat.GetRoute(model.RouteGo)
	assert.Equal(t, model.RouteGo, r.Type)
	assert.Equal(t, model.DeclaredDepth[model.RouteGo], r.Depth())
}
