// Package formation implements the formation analyzer (spec.md §4.3):
// classifies offensive alignment, strength side, receiver clustering,
// slot/widest receivers, and gap responsibilities.
package formation

import (
	"sort"

	"github.com/coverageeng/snap-engine/internal/model"
	"github.com/coverageeng/snap-engine/internal/vector"
)

// Analysis is the formation analyzer's output.
type Analysis struct {
	Type      model.FormationType
	Strength  model.Strength
	Sets      map[model.ReceiverSet]bool
	Personnel string // "{RB+FB}{TE}"

	WidestLeftID  string
	WidestRightID string
	SlotIDs       []string
	BackfieldIDs  []string

	Leverage map[string]model.Leverage // defender id -> leverage, filled by caller after defenders exist

	Gaps []string
}

// BunchMaxSpread is the max horizontal spread, in yards, for three
// receivers to count as a bunch set (spec.md §4.3).
const BunchMaxSpread = 4.0

// StackMaxHorizontal and StackMinVertical define a stack pair (spec.md
// §4.3: "within 2yd horizontally, >2yd apart vertically").
const (
	StackMaxHorizontal = 2.0
	StackMinVertical   = 2.0
)

// Analyze classifies the offense's current alignment.
func Analyze(offense []*model.Player) *Analysis {
	a := &Analysis{Sets: map[model.ReceiverSet]bool{}}

	var receivers []*model.Player
	var backs []*model.Player
	var rbCount, teCount int
	for _, p := range offense {
		switch p.Type {
		case model.WR, model.TE:
			receivers = append(receivers, p)
			if p.Type == model.TE {
				teCount++
			}
		case model.RB, model.FB:
			backs = append(backs, p)
			rbCount++
			a.BackfieldIDs = append(a.BackfieldIDs, p.ID)
		}
	}

	sort.Slice(receivers, func(i, j int) bool { return receivers[i].Position.X < receivers[j].Position.X })

	a.Personnel = personnelCode(rbCount, teCount)
	a.Sets = detectSets(receivers)

	a.Type = classifyType(a.Sets, rbCount, teCount, len(receivers))
	a.Strength = classifyStrength(receivers, backs, teCount)

	if len(receivers) > 0 {
		a.WidestLeftID = receivers[0].ID
		a.WidestRightID = receivers[len(receivers)-1].ID
	}
	a.SlotIDs = slotReceivers(receivers)

	a.Gaps = gapsFor(teCount)

	return a
}

func personnelCode(rb, te int) string {
	digits := []rune{rune('0' + rb), rune('0' + te)}
	return string(digits)
}

// detectSets finds bunch/trips/stack/spread/twins/balanced clusters per
// spec.md §4.3.
func detectSets(receivers []*model.Player) map[model.ReceiverSet]bool {
	sets := map[model.ReceiverSet]bool{}
	n := len(receivers)

	// Bunch: any 3 receivers within BunchMaxSpread horizontally.
	for i := 0; i+2 < n; i++ {
		if receivers[i+2].Position.X-receivers[i].Position.X <= BunchMaxSpread {
			sets[model.SetBunch] = true
		}
	}
	// Trips: 3+ receivers clustered on one side of center (looser than
	// bunch; approximate as 3 within 12 yd horizontally, same side).
	for i := 0; i+2 < n; i++ {
		if receivers[i+2].Position.X-receivers[i].Position.X <= 12 {
			sameSide := sameSideOfCenter(receivers[i].Position.X, receivers[i+2].Position.X)
			if sameSide {
				sets[model.SetTrips] = true
			}
		}
	}
	// Stack: pair within 2yd horizontally, >2yd apart vertically.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := receivers[j].Position.X - receivers[i].Position.X
			if dx < 0 {
				dx = -dx
			}
			dy := receivers[j].Position.Y - receivers[i].Position.Y
			if dy < 0 {
				dy = -dy
			}
			if dx <= StackMaxHorizontal && dy > StackMinVertical {
				sets[model.SetStack] = true
			}
		}
	}
	if n >= 2 {
		left := countSide(receivers, true)
		right := countSide(receivers, false)
		if left == right {
			sets[model.SetBalanced] = true
		} else {
			sets[model.SetTwins] = abs(left-right) == 1 && (left >= 2 || right >= 2)
		}
	}
	if n >= 4 {
		sets[model.SetSpread] = true
	}
	return sets
}

func sameSideOfCenter(x1, x2 float64) bool {
	c := vector.CenterX
	return (x1-c)*(x2-c) >= 0
}

func countSide(receivers []*model.Player, left bool) int {
	c := vector.CenterX
	n := 0
	for _, r := range receivers {
		if left && r.Position.X < c {
			n++
		}
		if !left && r.Position.X >= c {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// classifyType runs the ordered test from spec.md §4.3.
func classifyType(sets map[model.ReceiverSet]bool, rbCount, teCount, wrCount int) model.FormationType {
	switch {
	case sets[model.SetBunch]:
		return model.FormationBunch
	case sets[model.SetTrips]:
		return model.FormationTrips
	case rbCount == 0:
		return model.FormationEmpty
	case wrCount >= 4:
		return model.FormationSpread
	case isHeavyPersonnel(rbCount, teCount):
		return model.FormationHeavy
	case rbCount >= 2:
		return model.FormationIForm
	case teCount >= 1 && rbCount >= 1:
		return model.FormationStrong
	default:
		return model.FormationBalanced
	}
}

func isHeavyPersonnel(rb, te int) bool {
	code := rb*10 + te
	return code == 12 || code == 13 || code == 21 || code == 22
}

// classifyStrength runs the ordered test from spec.md §4.3.
func classifyStrength(receivers, backs []*model.Player, teCount int) model.Strength {
	left := countSide(receivers, true)
	right := countSide(receivers, false)

	if left >= 3 || right >= 3 {
		if left > right {
			return model.StrengthLeft
		}
		return model.StrengthRight
	}
	for _, r := range receivers {
		if r.Type == model.TE {
			if r.Position.X < vector.CenterX {
				return model.StrengthLeft
			}
			return model.StrengthRight
		}
	}
	if left != right {
		if left > right {
			return model.StrengthLeft
		}
		return model.StrengthRight
	}
	for _, b := range backs {
		if b.Type == model.RB {
			if b.Position.X < vector.CenterX-0.5 {
				return model.StrengthLeft
			}
			if b.Position.X > vector.CenterX+0.5 {
				return model.StrengthRight
			}
		}
	}
	return model.StrengthBalanced
}

// slotReceivers returns receivers lined up between the numbers, within
// 10 yd of the center (spec.md §4.3).
func slotReceivers(receivers []*model.Player) []string {
	var out []string
	for _, r := range receivers {
		dx := r.Position.X - vector.CenterX
		if dx < 0 {
			dx = -dx
		}
		if dx <= 10 && dx > 1 {
			out = append(out, r.ID)
		}
	}
	return out
}

// gapsFor returns A/B/C always, plus D when a TE is on the field
// (spec.md §4.3).
func gapsFor(teCount int) []string {
	gaps := []string{"A", "B", "C"}
	if teCount > 0 {
		gaps = append(gaps, "D")
	}
	return gaps
}

// LeverageAgainst computes a leverage map (defender id -> leverage)
// against the nearest eligible receiver for each defender, per spec.md
// §4.3.
func LeverageAgainst(defenders []*model.Player, receivers []*model.Player) map[string]model.Leverage {
	out := map[string]model.Leverage{}
	for _, d := range defenders {
		var nearest *model.Player
		best := -1.0
		for _, r := range receivers {
			dist := vector.Distance(d.Position, r.Position)
			if best < 0 || dist < best {
				best = dist
				nearest = r
			}
		}
		if nearest == nil {
			continue
		}
		dx := d.Position.X - nearest.Position.X
		switch {
		case dx > 0.5:
			out[d.ID] = model.LeverageOutside
		case dx < -0.5:
			out[d.ID] = model.LeverageInside
		default:
			out[d.ID] = model.LeverageHeadUp
		}
	}
	return out
}
