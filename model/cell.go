package model

// Cell is a single automaton cell.
//
// Newborn marks a cell that became alive in the most recent change (seed,
// toggle or birth). It is presentation only and meaningless on dead cells.
type Cell struct {
	Alive   bool
	Newborn bool
}

// Age returns the display age of the cell: "young", "old", or "" when dead
func (c Cell) Age() string {
	switch {
	case !c.Alive:
		return ""
	case c.Newborn:
		return "young"
	default:
		return "old"
	}
}
