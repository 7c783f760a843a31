package hotroute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/catalog"
	"github.com/coverageeng/snap-engine/internal/model"
)

func sixBlitzers() []*model.Player {
	var out []*model.Player
	for i := 0; i < 6; i++ {
		out = append(out, &model.Player{
			ID:                     string(rune('a' + i)),
			CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespBlitz},
		})
	}
	out = append(out, &model.Player{ID: "zone1", CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone}})
	return out
}

func TestDetectBlitz_SixOfSevenTriggers(t *testing.T) {
	assert.True(t, DetectBlitz(sixBlitzers()))
}

func TestDetectBlitz_FiveDoesNotTrigger(t *testing.T) {
	defenders := sixBlitzers()[:5]
	defenders = append(defenders, &model.Player{CoverageResponsibility: &model.CoverageResponsibility{Kind: model.RespZone}})
	assert.False(t, DetectBlitz(defenders))
}

func TestShouldAutoFire_FiveRushersAtTwoSeconds(t *testing.T) {
	defenders := sixBlitzers()[:5]
	assert.True(t, ShouldAutoFire(defenders, 2.0))
	assert.False(t, ShouldAutoFire(defenders, 1.9))
}

func TestConvertAll_RewritesEligibleRoutesToHotVariant(t *testing.T) {
	cat := catalog.New()
	goRoute := cat.GetRoute(model.RouteGo)
	receiver := &model.Player{ID: "wr1", Route: goRoute}
	offense := []*model.Player{receiver}

	assert.True(t, ConvertAll(offense, cat))
	assert.Equal(t, model.RouteSlant, receiver.Route.Type)
}

func TestConvertAll_LeavesIneligibleRoutesUnchanged(t *testing.T) {
	cat := catalog.New()
	slant := cat.GetRoute(model.RouteSlant)
	receiver := &model.Player{ID: "wr1", Route: slant}
	offense := []*model.Player{receiver}

	assert.False(t, ConvertAll(offense, cat))
	assert.Equal(t, model.RouteSlant, receiver.Route.Type)
}

func TestApplyCoverageAudible_Cover3Table(t *testing.T) {
	cat := catalog.New()
	goRoute := cat.GetRoute(model.RouteGo)
	receiver := &model.Player{ID: "wr1", Route: goRoute}
	offense := []*model.Player{receiver}

	n := ApplyCoverageAudible(offense, model.Cover3, cat)
	assert.Equal(t, 1, n)
	assert.Equal(t, model.RouteComeback, receiver.Route.Type)
}

func TestClassify_TightEndIsAlignTight(t *testing.T) {
	te := &model.Player{Type: model.TE}
	assert.Equal(t, AlignTight, Classify(te))
}

func TestClassify_SlotReceiver(t *testing.T) {
	wr := &model.Player{Type: model.WR, IsSlot: true}
	assert.Equal(t, AlignSlot, Classify(wr))
}

func TestApply_Cover3OutsideSubstitutesComeback(t *testing.T) {
	cat := catalog.New()
	wr := &model.Player{
		Type:       model.WR,
		IsEligible: true,
		Route:      cat.GetRoute(model.RouteGo),
	}
	ok := Apply(wr, model.Cover3, cat)
	assert.True(t, ok)
	assert.Equal(t, model.RouteComeback, wr.Route.Type)
}
