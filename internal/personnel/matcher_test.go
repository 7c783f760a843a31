package personnel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverageeng/snap-engine/internal/model"
)

func TestSelectPackage_BasePersonnelMapping(t *testing.T) {
	// yardsToGo kept under the long-yardage override threshold (8) and
	// off 3rd/4th down so only the base personnel mapping is exercised.
	sit := Situation{Down: 1, YardsToGo: 7, FieldPositionY: 25}
	assert.Equal(t, model.PackageNickel, SelectPackage("11", sit))
	assert.Equal(t, model.PackageBase, SelectPackage("21", sit))
	assert.Equal(t, model.PackageDime, SelectPackage("00", sit))
}

func TestSelectPackage_RedZoneGoesHeavier(t *testing.T) {
	sit := Situation{Down: 1, YardsToGo: 10, FieldPositionY: 95}
	assert.Equal(t, model.PackageBase, SelectPackage("11", sit))
}

func TestSelectPackage_ThirdAndShortGoesHeavier(t *testing.T) {
	sit := Situation{Down: 3, YardsToGo: 1, FieldPositionY: 40}
	assert.Equal(t, model.PackageBase, SelectPackage("11", sit))
}

func TestSelectPackage_LongYardageGoesDime(t *testing.T) {
	sit := Situation{Down: 2, YardsToGo: 12, FieldPositionY: 40}
	assert.Equal(t, model.PackageDime, SelectPackage("11", sit))
}

func TestSelectPackage_UnknownPersonnelDefaultsToNickel(t *testing.T) {
	sit := Situation{Down: 1, YardsToGo: 7, FieldPositionY: 40}
	assert.Equal(t, model.PackageNickel, SelectPackage("99", sit))
}

func TestCompatibilityWarning_TampaTwoRequiresThreeLinebackers(t *testing.T) {
	_, ok := CompatibilityWarning(model.Tampa2, model.PackageNickel)
	assert.False(t, ok, "nickel has only 2 LBs, below tampa-2's minimum of 3")

	_, ok = CompatibilityWarning(model.Tampa2, model.PackageBase)
	assert.True(t, ok)
}

func TestCompatibilityWarning_Cover0IncompatibleWithGoalLine(t *testing.T) {
	_, ok := CompatibilityWarning(model.Cover0, model.PackageGoalLine)
	assert.False(t, ok)
}

func TestCompatibilityWarning_Cover4IncompatibleWithGoalLine(t *testing.T) {
	_, ok := CompatibilityWarning(model.Cover4, model.PackageGoalLine)
	assert.False(t, ok)
}

func TestGenerateDefensivePlayerTypes_AlwaysReturnsSevenWithTwoCBAndTwoSafety(t *testing.T) {
	for _, pkg := range []model.DefensivePackage{model.PackageBase, model.PackageNickel, model.PackageDime, model.PackageQuarter, model.PackageGoalLine} {
		types := GenerateDefensivePlayerTypes(pkg)
		assert.Len(t, types, 7, "package %s", pkg)
		cb, s := 0, 0
		for _, ty := range types {
			if ty == model.CB {
				cb++
			}
			if ty == model.S {
				s++
			}
		}
		assert.Equal(t, 2, cb, "package %s", pkg)
		assert.Equal(t, 2, s, "package %s", pkg)
	}
}

func TestBlitzSuitableDefenders_NeverLeavesFewerThanFiveInCoverage(t *testing.T) {
	players := make([]*model.Player, 7)
	for i := range players {
		players[i] = &model.Player{ID: string(rune('a' + i)), Type: model.LB}
	}
	out := BlitzSuitableDefenders(players, 6)
	assert.LessOrEqual(t, len(out), 2)
}

func TestBlitzSuitableDefenders_PrefersLinebackersThenSafetyThenNickel(t *testing.T) {
	players := []*model.Player{
		{ID: "cb1", Type: model.CB},
		{ID: "s1", Type: model.S},
		{ID: "nb1", Type: model.NB},
		{ID: "lb1", Type: model.LB},
		{ID: "lb2", Type: model.LB},
		{ID: "cb2", Type: model.CB},
		{ID: "s2", Type: model.S},
	}
	out := BlitzSuitableDefenders(players, 2)
	assert.Len(t, out, 2)
	assert.Equal(t, model.LB, out[0].Type)
	assert.Equal(t, model.LB, out[1].Type)
}
