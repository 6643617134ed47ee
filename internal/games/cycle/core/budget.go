package core

// Budget limits rewinding on a level. Total counts rewind commands,
// Individual counts removed segments.
type Budget struct {
	Total      int
	Individual int
}

// Spend charges one rewind of the given size. Values may go negative;
// the level is lost once either counter is below zero.
func (b *Budget) Spend(steps int) {
	b.Total--
	b.Individual -= steps
}

// Exhausted returns true once the budget has been overspent.
func (b Budget) Exhausted() bool {
	return b.Total < 0 || b.Individual < 0
}
