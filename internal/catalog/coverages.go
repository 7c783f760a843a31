package catalog

import "github.com/coverageeng/snap-engine/internal/model"

// coverages is the static catalog of coverage metadata keyed by id,
// covering the base eight plus the disguise/rotation variants spec.md's
// Open Questions direct us to treat as first-class (SPEC_FULL.md §12.4).
var coverages = map[string]*model.Coverage{
	"cover-0":   {Name: "cover-0", Type: model.Cover0, SafetyCount: 0},
	"cover-1":   {Name: "cover-1", Type: model.Cover1, SafetyCount: 1},
	"cover-2":   {Name: "cover-2", Type: model.Cover2, SafetyCount: 2},
	"cover-3":   {Name: "cover-3", Type: model.Cover3, SafetyCount: 1},
	"cover-4":   {Name: "cover-4", Type: model.Cover4, SafetyCount: 2},
	"cover-6":   {Name: "cover-6", Type: model.Cover6, SafetyCount: 2},
	"quarters":  {Name: "quarters", Type: model.Quarters, SafetyCount: 2},
	"tampa-2":   {Name: "tampa-2", Type: model.Tampa2, SafetyCount: 2},
	"cover-2-roll-to-1": {Name: "cover-2-roll-to-1", Type: model.Cover2RollTo1, SafetyCount: 2},
	"quarters-poach":    {Name: "quarters-poach", Type: model.QuartersPoach, SafetyCount: 2},
	"cover-2-invert":    {Name: "cover-2-invert", Type: model.Cover2Invert, SafetyCount: 2},
}
