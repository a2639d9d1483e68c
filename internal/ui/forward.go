package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"counterdeck/internal/domain"
	"counterdeck/internal/store"
)

// ForwardState subscribes to the store and forwards committed snapshots
// into the program as StateChangedMsg. Forwarding goes through a buffered
// channel drained by a dedicated goroutine: store listeners run on the
// dispatching goroutine, and when a dispatch originates inside Update a
// direct p.Send would block on the event loop it is called from.
// The returned stop function unsubscribes and drains the forwarder.
func ForwardState(s store.Store, p *tea.Program) func() {
	stateChan := make(chan domain.AppState, 100)

	unsubscribe := s.Subscribe(func(state domain.AppState) {
		select {
		case stateChan <- state:
		default:
			log.Println("State channel full, dropping snapshot")
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for state := range stateChan {
			p.Send(StateChangedMsg{State: state})
		}
	}()

	return func() {
		unsubscribe()
		close(stateChan)
		<-done
	}
}
