package state

import (
	fsutil "github.com/korzen-labs/wend/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Mode selects which component owns the next input event.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModePaging
)

// AppState is the single source of truth.
type AppState struct {
	// Navigation
	Mode           Mode
	CurrentPath    string
	Entries        []FileEntry
	SelectedIndex  int
	BackHistory    []string // stack, top is the last element
	ForwardHistory []string // valid only immediately after a back move

	// Pager, non-nil only while Mode == ModePaging
	Pager *PagerState

	// Dimensions, refreshed on every resize event
	ScreenWidth  int
	ScreenHeight int

	// One-shot status message shown on the bottom row of the directory
	// view; cleared by the next key event.
	Notice string

	LastError error
}

// SelectedEntry returns the entry under the cursor, or nil for an empty listing.
func (s *AppState) SelectedEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// PagerVisibleRows reports how many content rows the pager can show: the
// screen minus the filename header and the help row.
func (s *AppState) PagerVisibleRows() int {
	rows := s.ScreenHeight - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}
