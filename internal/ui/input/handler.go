package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/korzen-labs/wend/internal/state"
)

// InputHandler converts tcell events to Actions.
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // reference to current state for mode routing
}

// NewInputHandler creates a new input handler.
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode routing.
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false when
// the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) paging() bool {
	return ih.state != nil && ih.state.Mode == statepkg.ModePaging
}

func (ih *InputHandler) pageSize() int {
	if ih.state == nil {
		return 1
	}
	if ih.paging() {
		return ih.state.PagerVisibleRows()
	}
	rows := ih.state.ScreenHeight - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

// processKeyEvent routes keyboard input by mode. Unrecognized keys are no-ops.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerExitAction{}
			return true
		}
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerScrollAction{Delta: -1}
		} else {
			ih.actionChan <- statepkg.MoveSelectionAction{Delta: -1}
		}
		return true

	case tcell.KeyDown:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerScrollAction{Delta: 1}
		} else {
			ih.actionChan <- statepkg.MoveSelectionAction{Delta: 1}
		}
		return true

	case tcell.KeyLeft:
		if !ih.paging() {
			ih.actionChan <- statepkg.GoBackAction{}
		}
		return true

	case tcell.KeyRight:
		if !ih.paging() {
			ih.actionChan <- statepkg.GoForwardAction{}
		}
		return true

	case tcell.KeyEnter:
		if !ih.paging() {
			ih.actionChan <- statepkg.EnterAction{}
		}
		return true

	case tcell.KeyPgUp:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerScrollAction{Delta: -ih.pageSize()}
		} else {
			ih.actionChan <- statepkg.MoveSelectionAction{Delta: -ih.pageSize()}
		}
		return true

	case tcell.KeyPgDn:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerScrollAction{Delta: ih.pageSize()}
		} else {
			ih.actionChan <- statepkg.MoveSelectionAction{Delta: ih.pageSize()}
		}
		return true

	case tcell.KeyHome:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerScrollToStartAction{}
		} else {
			ih.actionChan <- statepkg.SelectFirstAction{}
		}
		return true

	case tcell.KeyEnd:
		if ih.paging() {
			ih.actionChan <- statepkg.PagerScrollToEndAction{}
		} else {
			ih.actionChan <- statepkg.SelectLastAction{}
		}
		return true

	default:
		return true
	}
}
