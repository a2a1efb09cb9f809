package demand

// Tracker is the set of base ingredient symbols seen during one export run.
// It keeps insertion order so the equipment table has stable columns, and it
// only ever grows. A Tracker has a single writer and is not safe for
// concurrent use.
type Tracker struct {
	order []string
	seen  map[string]struct{}
}

// NewTracker creates an empty tracker for a new run
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Add records symbol and reports whether it was new
func (t *Tracker) Add(symbol string) bool {
	if _, ok := t.seen[symbol]; ok {
		return false
	}
	t.seen[symbol] = struct{}{}
	t.order = append(t.order, symbol)
	return true
}

// Contains reports whether symbol has been recorded
func (t *Tracker) Contains(symbol string) bool {
	_, ok := t.seen[symbol]
	return ok
}

// Len returns the number of distinct symbols recorded
func (t *Tracker) Len() int {
	return len(t.order)
}

// Symbols returns a copy of the recorded symbols in insertion order
func (t *Tracker) Symbols() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
