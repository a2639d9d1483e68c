package ui

import (
	"counterdeck/internal/domain"
)

// StateChangedMsg carries a committed store snapshot into the UI
type StateChangedMsg struct {
	State domain.AppState
}

// pagerDoneMsg contains the result of running the action-log pager
type pagerDoneMsg struct {
	err error
}
