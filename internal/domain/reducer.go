package domain

// Reduce maps the current state and an action to the next state. It is pure:
// the input state is never modified, and every transition that changes
// anything allocates a fresh counter slice. Unrecognized actions (including
// nil) return the input state unchanged, matching the store convention of
// broadcasting actions a reducer does not own. Index-carrying actions whose
// index is out of range are no-ops, as is Remove on an empty list.
func Reduce(state AppState, action Action) AppState {
	if action == nil {
		return state
	}

	switch a := action.(type) {
	case CreateAction:
		counters := make([]Counter, len(state.Counters), len(state.Counters)+1)
		copy(counters, state.Counters)
		counters = append(counters, Counter{Color: a.Color, Number: 0})
		return AppState{Counters: counters}

	case RemoveAction:
		if len(state.Counters) == 0 {
			return state
		}
		counters := make([]Counter, len(state.Counters)-1)
		copy(counters, state.Counters[:len(state.Counters)-1])
		return AppState{Counters: counters}

	case IncrementAction:
		return updateCounter(state, a.Index, func(c Counter) Counter {
			c.Number++
			return c
		})

	case DecrementAction:
		return updateCounter(state, a.Index, func(c Counter) Counter {
			c.Number--
			return c
		})

	case SetColorAction:
		return updateCounter(state, a.Index, func(c Counter) Counter {
			c.Color = a.Color
			return c
		})

	default:
		return state
	}
}

// updateCounter returns a new state with the counter at index replaced by
// fn's result, or the input state unchanged when index is out of range.
func updateCounter(state AppState, index int, fn func(Counter) Counter) AppState {
	if index < 0 || index >= len(state.Counters) {
		return state
	}
	counters := make([]Counter, len(state.Counters))
	copy(counters, state.Counters)
	counters[index] = fn(counters[index])
	return AppState{Counters: counters}
}
