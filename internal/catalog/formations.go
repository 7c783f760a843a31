package catalog

import "github.com/coverageeng/snap-engine/internal/model"

// formations is the static catalog of offensive formations, keyed by
// "{base}-{personnel}" per spec.md §6. OffsetX is relative to the
// ball's x (26.665); OffsetY is relative to the LOS (negative = behind
// the LOS, i.e. in the offensive backfield / on the line).
var formations = map[string]*model.Formation{
	"trips-right": tripsRight(11),
	"trips-right-10": tripsRight(10),
	"singleback":     singleback(11),
	"singleback-11":  singleback(11),
	"singleback-12":  singleback(12),
	"spread-2x2":     spread2x2(10),
	"spread-2x2-11":  spread2x2(11),
	"empty":          empty(),
	"i-form-21":      iForm(21),
	"strong-22":      strong(22),
}

func personnelFor(code int) model.Personnel {
	rb := code / 10
	te := code % 10
	return model.Personnel{QB: 1, RB: rb, TE: te, WR: 5 - rb - te}
}

func tripsRight(code int) *model.Formation {
	p := personnelFor(code)
	pos := map[string]model.PositionSpec{
		"QB":  {PlayerType: model.QB, OffsetX: 0, OffsetY: -5},
		"RB":  {PlayerType: model.RB, OffsetX: -2, OffsetY: -6},
		"WR1": {PlayerType: model.WR, OffsetX: -20, OffsetY: 0},
		"WR2": {PlayerType: model.WR, OffsetX: 12, OffsetY: 0},
		"WR3": {PlayerType: model.WR, OffsetX: 17, OffsetY: 0.5},
		"TE":  {PlayerType: model.WR, OffsetX: 22, OffsetY: 0},
	}
	if p.TE >= 1 {
		pos["TE"] = model.PositionSpec{PlayerType: model.TE, OffsetX: 9, OffsetY: 0}
		pos["WR2"] = model.PositionSpec{PlayerType: model.WR, OffsetX: 16, OffsetY: 0}
		pos["WR3"] = model.PositionSpec{PlayerType: model.WR, OffsetX: 21, OffsetY: 0.5}
	}
	return &model.Formation{Name: "trips-right", Positions: pos, Personnel: p}
}

func singleback(code int) *model.Formation {
	p := personnelFor(code)
	pos := map[string]model.PositionSpec{
		"QB": {PlayerType: model.QB, OffsetX: 0, OffsetY: -5},
		"RB": {PlayerType: model.RB, OffsetX: -1, OffsetY: -6},
		"WR1": {PlayerType: model.WR, OffsetX: -20, OffsetY: 0},
		"WR2": {PlayerType: model.WR, OffsetX: 20, OffsetY: 0},
	}
	if p.TE >= 1 {
		pos["TE"] = model.PositionSpec{PlayerType: model.TE, OffsetX: 9, OffsetY: 0}
	}
	if p.TE >= 2 {
		pos["TE2"] = model.PositionSpec{PlayerType: model.TE, OffsetX: -9, OffsetY: 0}
	} else {
		pos["WR3"] = model.PositionSpec{PlayerType: model.WR, OffsetX: 13, OffsetY: 0.3}
	}
	return &model.Formation{Name: "singleback", Positions: pos, Personnel: p}
}

func spread2x2(code int) *model.Formation {
	p := personnelFor(code)
	pos := map[string]model.PositionSpec{
		"QB":  {PlayerType: model.QB, OffsetX: 0, OffsetY: -5},
		"RB":  {PlayerType: model.RB, OffsetX: 2, OffsetY: -6},
		"WR1": {PlayerType: model.WR, OffsetX: -22, OffsetY: 0},
		"WR2": {PlayerType: model.WR, OffsetX: -13, OffsetY: 0.2},
		"WR3": {PlayerType: model.WR, OffsetX: 13, OffsetY: 0.2},
		"WR4": {PlayerType: model.WR, OffsetX: 22, OffsetY: 0},
	}
	if p.TE >= 1 {
		pos["TE"] = model.PositionSpec{PlayerType: model.TE, OffsetX: 9, OffsetY: 0}
		delete(pos, "WR3")
	}
	return &model.Formation{Name: "spread-2x2", Positions: pos, Personnel: p}
}

func empty() *model.Formation {
	p := model.Personnel{QB: 1, WR: 4, TE: 1}
	pos := map[string]model.PositionSpec{
		"QB":  {PlayerType: model.QB, OffsetX: 0, OffsetY: -5},
		"WR1": {PlayerType: model.WR, OffsetX: -22, OffsetY: 0},
		"WR2": {PlayerType: model.WR, OffsetX: -13, OffsetY: 0.2},
		"TE":  {PlayerType: model.TE, OffsetX: 9, OffsetY: 0},
		"WR3": {PlayerType: model.WR, OffsetX: 17, OffsetY: 0.2},
		"WR4": {PlayerType: model.WR, OffsetX: 22, OffsetY: 0},
	}
	return &model.Formation{Name: "empty", Positions: pos, Personnel: p}
}

func iForm(code int) *model.Formation {
	p := personnelFor(code)
	p.FB = 1
	p.RB = 1
	pos := map[string]model.PositionSpec{
		"QB": {PlayerType: model.QB, OffsetX: 0, OffsetY: -5},
		"FB": {PlayerType: model.FB, OffsetX: 0, OffsetY: -7},
		"RB": {PlayerType: model.RB, OffsetX: 0, OffsetY: -9},
		"TE": {PlayerType: model.TE, OffsetX: 9, OffsetY: 0},
		"WR1": {PlayerType: model.WR, OffsetX: -20, OffsetY: 0},
		"WR2": {PlayerType: model.WR, OffsetX: 20, OffsetY: 0},
	}
	return &model.Formation{Name: "i-form-21", Positions: pos, Personnel: p}
}

func strong(code int) *model.Formation {
	p := personnelFor(code)
	p.FB = 1
	p.RB = 1
	pos := map[string]model.PositionSpec{
		"QB": {PlayerType: model.QB, OffsetX: 0, OffsetY: -5},
		"FB": {PlayerType: model.FB, OffsetX: 6, OffsetY: -6},
		"RB": {PlayerType: model.RB, OffsetX: -2, OffsetY: -6},
		"TE": {PlayerType: model.TE, OffsetX: 9, OffsetY: 0},
		"TE2": {PlayerType: model.TE, OffsetX: 11, OffsetY: 0.2},
		"WR1": {PlayerType: model.WR, OffsetX: -20, OffsetY: 0},
	}
	return &model.Formation{Name: "strong-22", Positions: pos, Personnel: p}
}
