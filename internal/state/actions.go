package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveSelectionAction struct {
	Delta int // +1 / -1 for arrows, larger for page moves
}
type SelectFirstAction struct{}
type SelectLastAction struct{}
type EnterAction struct{}
type GoBackAction struct{}
type GoForwardAction struct{}

// ===== PAGER ACTIONS =====

type PagerScrollAction struct {
	Delta int
}
type PagerScrollToStartAction struct{}
type PagerScrollToEndAction struct{}
type PagerExitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
