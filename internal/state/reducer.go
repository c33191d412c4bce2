package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fsutil "github.com/korzen-labs/wend/internal/fs"
)

// Collaborator seams, overridable in tests.
var (
	listDirFn        = fsutil.List
	statFn           = os.Stat
	readFileFn       = os.ReadFile
	isTextReadableFn = fsutil.IsTextReadable
	openExternalFn   = fsutil.OpenWithDefaultApplication
)

// StateReducer applies actions to state.
type StateReducer struct{}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// LoadDirectory populates state with the listing for path. Enumeration
// failures surface as an empty listing, never as an error.
func LoadDirectory(state *AppState, path string) {
	state.CurrentPath = path
	state.Entries = listDirFn(path)
	state.SelectedIndex = 0
}

// Reduce applies an action to state and returns the (mutated) state.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	// The notice line is one-shot: any key event clears it.
	state.Notice = ""

	switch a := action.(type) {

	// ===== NAVIGATION =====

	case MoveSelectionAction:
		if state.Mode != ModeBrowsing || len(state.Entries) == 0 {
			return state, nil
		}
		idx := state.SelectedIndex + a.Delta
		if idx < 0 {
			idx = 0
		}
		if idx > len(state.Entries)-1 {
			idx = len(state.Entries) - 1
		}
		state.SelectedIndex = idx
		return state, nil

	case SelectFirstAction:
		if state.Mode == ModeBrowsing && len(state.Entries) > 0 {
			state.SelectedIndex = 0
		}
		return state, nil

	case SelectLastAction:
		if state.Mode == ModeBrowsing && len(state.Entries) > 0 {
			state.SelectedIndex = len(state.Entries) - 1
		}
		return state, nil

	case EnterAction:
		if state.Mode != ModeBrowsing {
			return state, nil
		}
		return r.enterSelected(state)

	case GoBackAction:
		if state.Mode != ModeBrowsing || len(state.BackHistory) == 0 {
			return state, nil
		}
		top := len(state.BackHistory) - 1
		target := state.BackHistory[top]
		state.BackHistory = state.BackHistory[:top]
		state.ForwardHistory = append(state.ForwardHistory, state.CurrentPath)
		LoadDirectory(state, target)
		return state, nil

	case GoForwardAction:
		if state.Mode != ModeBrowsing || len(state.ForwardHistory) == 0 {
			return state, nil
		}
		top := len(state.ForwardHistory) - 1
		target := state.ForwardHistory[top]
		state.ForwardHistory = state.ForwardHistory[:top]
		state.BackHistory = append(state.BackHistory, state.CurrentPath)
		LoadDirectory(state, target)
		return state, nil

	// ===== PAGER =====

	case PagerScrollAction:
		if state.Mode == ModePaging && state.Pager != nil {
			state.Pager.Scroll(a.Delta, state.PagerVisibleRows())
		}
		return state, nil

	case PagerScrollToStartAction:
		if state.Mode == ModePaging && state.Pager != nil {
			state.Pager.Scroll(-len(state.Pager.Lines), state.PagerVisibleRows())
		}
		return state, nil

	case PagerScrollToEndAction:
		if state.Mode == ModePaging && state.Pager != nil {
			state.Pager.Scroll(len(state.Pager.Lines), state.PagerVisibleRows())
		}
		return state, nil

	case PagerExitAction:
		if state.Mode == ModePaging {
			state.Pager = nil
			state.Mode = ModeBrowsing
		}
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		if state.Mode == ModePaging && state.Pager != nil {
			state.Pager.ClampToViewport(state.PagerVisibleRows())
		}
		return state, nil
	}

	return state, nil
}

// enterSelected implements the Enter key: descend into a directory, resolve
// "..", or open a file in the pager.
func (r *StateReducer) enterSelected(state *AppState) (*AppState, error) {
	entry := state.SelectedEntry()
	if entry == nil {
		return state, nil
	}

	if entry.Name == ".." {
		parent, ok := parentPath(state.CurrentPath)
		if !ok {
			return state, nil
		}
		if _, err := statFn(parent); err != nil {
			return state, nil
		}
		r.descend(state, parent)
		return state, nil
	}

	target := filepath.Join(state.CurrentPath, entry.Name)
	info, err := statFn(target)
	if err != nil {
		// Classification failure: the engine stays on the current listing.
		return state, nil
	}

	if info.IsDir() {
		r.descend(state, target)
		return state, nil
	}

	if !info.Mode().IsRegular() {
		return state, nil
	}

	return r.openFile(state, target)
}

// descend performs a fresh forward move: the forward stack becomes invalid.
func (r *StateReducer) descend(state *AppState, target string) {
	state.BackHistory = append(state.BackHistory, state.CurrentPath)
	state.ForwardHistory = nil
	LoadDirectory(state, target)
}

// openFile starts a paging session for target, or hands the file to the
// host's default application when it is not pageable text.
func (r *StateReducer) openFile(state *AppState, target string) (*AppState, error) {
	if !isTextReadableFn(target) {
		state.Notice = fmt.Sprintf("Not a text file, opening with default application: %s", filepath.Base(target))
		openExternalFn(target)
		return state, nil
	}

	content, err := readFileFn(target)
	if err != nil {
		// Passed the readability check but the full read failed; stay in
		// the directory view and surface the problem on the notice line.
		state.Notice = fmt.Sprintf("Cannot open file: %v", err)
		return state, nil
	}

	state.Pager = NewPagerState(target, content)
	state.Mode = ModePaging
	return state, nil
}

// parentPath truncates path at its last separator. Paths without a
// separator have no parent; truncating to "" resolves to the root.
func parentPath(path string) (string, bool) {
	idx := strings.LastIndexByte(path, filepath.Separator)
	if idx < 0 {
		return "", false
	}
	parent := path[:idx]
	if parent == "" {
		parent = string(filepath.Separator)
	}
	if parent == path {
		return "", false
	}
	return parent, true
}
