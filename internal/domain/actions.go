package domain

// ActionType represents the type of dispatched action
type ActionType string

// Action types
const (
	ActionCreate    ActionType = "Create"
	ActionRemove    ActionType = "Remove"
	ActionIncrement ActionType = "Increment"
	ActionDecrement ActionType = "Decrement"
	ActionSetColor  ActionType = "SetColor"
)

// Action is the interface for all dispatched actions
type Action interface {
	Type() ActionType
}

// CreateAction appends a new counter with the given color and a zero count
type CreateAction struct {
	Color string
}

func (a CreateAction) Type() ActionType { return ActionCreate }

// RemoveAction drops the last counter in the list
type RemoveAction struct{}

func (a RemoveAction) Type() ActionType { return ActionRemove }

// IncrementAction adds one to the counter at Index
type IncrementAction struct {
	Index int
}

func (a IncrementAction) Type() ActionType { return ActionIncrement }

// DecrementAction subtracts one from the counter at Index
type DecrementAction struct {
	Index int
}

func (a DecrementAction) Type() ActionType { return ActionDecrement }

// SetColorAction changes the color of the counter at Index
type SetColorAction struct {
	Index int
	Color string
}

func (a SetColorAction) Type() ActionType { return ActionSetColor }

// NewCounter creates an action that appends a counter with the given color.
func NewCounter(color string) Action {
	return CreateAction{Color: color}
}

// RemoveLast creates an action that drops the last counter.
func RemoveLast() Action {
	return RemoveAction{}
}

// Increment creates an action that adds one to the counter at index.
func Increment(index int) Action {
	return IncrementAction{Index: index}
}

// Decrement creates an action that subtracts one from the counter at index.
func Decrement(index int) Action {
	return DecrementAction{Index: index}
}

// SetColor creates an action that recolors the counter at index.
func SetColor(index int, color string) Action {
	return SetColorAction{Index: index, Color: color}
}
