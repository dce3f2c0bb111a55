package clvmtesting

// CallRecorder is embedded by test doubles, such as a puzzle evaluator
// handed to coin.NonEphemeralCoins, to check which operations ran and in
// what order. The zero value is ready to use.
type CallRecorder struct {
	counts map[string]int
	order  []string
}

// Record notes one call to name and returns how many calls to it there have
// been, this one included.
func (r *CallRecorder) Record(name string) int {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[name]++
	r.order = append(r.order, name)
	return r.counts[name]
}

func (r *CallRecorder) Count(name string) int {
	return r.counts[name]
}

// Calls returns every recorded name, oldest first.
func (r *CallRecorder) Calls() []string {
	return r.order
}
