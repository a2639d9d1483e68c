package domain

// Counter is the domain entity: a color label and an integer count.
type Counter struct {
	Color  string
	Number int
}

// AppState holds the full application state: an ordered list of counters.
// It is a value type; transitions produce a new AppState and never mutate
// the receiver, so prior snapshots stay valid for change detection.
type AppState struct {
	Counters []Counter
}

// Len returns the number of counters.
func (s AppState) Len() int {
	return len(s.Counters)
}

// Counter returns the counter at index i and whether it exists.
func (s AppState) Counter(i int) (Counter, bool) {
	if i < 0 || i >= len(s.Counters) {
		return Counter{}, false
	}
	return s.Counters[i], true
}

// Equal reports whether two states hold the same counters in the same order.
func (s AppState) Equal(other AppState) bool {
	if len(s.Counters) != len(other.Counters) {
		return false
	}
	for i, c := range s.Counters {
		if c != other.Counters[i] {
			return false
		}
	}
	return true
}

// InitialState returns the seed state: a single black counter at zero.
func InitialState() AppState {
	return AppState{Counters: []Counter{{Color: "black", Number: 0}}}
}
