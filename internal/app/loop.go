package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/korzen-labs/wend/internal/state"
	inputui "github.com/korzen-labs/wend/internal/ui/input"
	renderui "github.com/korzen-labs/wend/internal/ui/render"
)

// NewApplication initializes the terminal screen and loads the starting
// directory from the process working directory.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	state := newInitialState(cwd)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	renderer := renderui.NewRenderer(screen)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	statepkg.LoadDirectory(state, cwd)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
	}, nil
}

func newInitialState(cwd string) *statepkg.AppState {
	return &statepkg.AppState{
		Mode:          statepkg.ModeBrowsing,
		CurrentPath:   cwd,
		Entries:       []statepkg.FileEntry{},
		SelectedIndex: 0,
	}
}

// Run drives the single-threaded event loop: draw, block on one event,
// apply the resulting actions, repeat.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		select {
		case ev := <-eventChan:
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		}

		app.processActions()

		if !app.shouldQuit {
			app.renderer.Render(app.state)
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	}
}

// processActions drains the action channel so one key event's actions are
// all applied before the next redraw.
func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}

	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
	}
}
