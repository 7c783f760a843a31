package model

// Formation is the static, catalog-sourced alignment definition: a
// name, a map from player id to lined-up position (relative to the
// line of scrimmage and the ball's x), and personnel counts.
type Formation struct {
	Name      string
	Positions map[string]PositionSpec
	Personnel Personnel
}

// PositionSpec places one offensive slot relative to the LOS/hash.
type PositionSpec struct {
	PlayerType PlayerType
	// OffsetX/OffsetY are relative to the ball's x and the LOS y.
	OffsetX float64
	OffsetY float64
}

// Personnel is the offensive grouping, "{RB+FB}{TE}" digits per
// spec.md §4.3.
type Personnel struct {
	QB int
	RB int
	WR int
	TE int
	FB int
}

// Code renders the personnel as the two-digit string used by formation
// ids and the personnel matcher, e.g. "11", "21", "00".
func (p Personnel) Code() string {
	rb := p.RB + p.FB
	digits := []rune{rune('0' + rb), rune('0' + p.TE)}
	return string(digits)
}

// Clone deep-copies a Formation.
func (f *Formation) Clone() *Formation {
	if f == nil {
		return nil
	}
	cp := &Formation{Name: f.Name, Personnel: f.Personnel}
	cp.Positions = make(map[string]PositionSpec, len(f.Positions))
	for k, v := range f.Positions {
		cp.Positions[k] = v
	}
	return cp
}
