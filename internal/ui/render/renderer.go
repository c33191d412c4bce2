package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/korzen-labs/wend/internal/state"
	textutil "github.com/korzen-labs/wend/internal/textutil"
)

const pagerHelpText = "Use arrow keys to navigate, ESC to exit"

// Renderer handles all UI rendering.
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // for non-ASCII runes
}

// NewRenderer creates a new renderer.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	if state.Mode == statepkg.ModePaging && state.Pager != nil {
		r.drawPager(state, w, h)
	} else {
		r.drawDirectory(state, w, h)
	}

	r.screen.Show()
}

// drawDirectory renders the browsing view: path header, one row per entry,
// the selected row highlighted. The listing is clipped to the screen; it is
// not paginated.
func (r *Renderer) drawDirectory(state *statepkg.AppState, w, h int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	header := "Directory: " + textutil.SanitizeTerminalText(state.CurrentPath)
	endX := r.drawTextLine(0, 0, w, r.truncateTextToWidth(header, w), headerStyle)
	r.fillLine(endX, 0, w, headerStyle)

	for i, entry := range state.Entries {
		y := i + 1
		if y >= h {
			break
		}

		rowStyle := tcell.StyleDefault.Foreground(r.theme.FileFg)
		if entry.IsDir {
			rowStyle = rowStyle.Foreground(r.theme.DirectoryFg)
		}
		if i == state.SelectedIndex {
			rowStyle = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}

		label := textutil.SanitizeTerminalText(entry.Label)
		endX := r.drawTextLine(0, y, w, r.truncateTextToWidth(label, w), rowStyle)
		if i == state.SelectedIndex {
			r.fillLine(endX, y, w, rowStyle)
		}
	}

	if state.Notice != "" && h > 1 {
		noticeStyle := tcell.StyleDefault.Foreground(r.theme.NoticeFg)
		notice := textutil.SanitizeTerminalText(state.Notice)
		endX := r.drawTextLine(0, h-1, w, r.truncateTextToWidth(notice, w), noticeStyle)
		r.fillLine(endX, h-1, w, noticeStyle)
	}
}

// drawPager renders the file view: filename header, the visible slice of
// lines with the cursor line highlighted, and a static help row.
func (r *Renderer) drawPager(state *statepkg.AppState, w, h int) {
	pager := state.Pager

	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	header := "File: " + textutil.SanitizeTerminalText(pager.FilePath)
	endX := r.drawTextLine(0, 0, w, r.truncateTextToWidth(header, w), headerStyle)
	r.fillLine(endX, 0, w, headerStyle)

	visibleRows := state.PagerVisibleRows()
	for i := 0; i < visibleRows; i++ {
		lineIdx := pager.TopLine + i
		if lineIdx >= len(pager.Lines) {
			break
		}
		y := i + 1
		if y >= h-1 {
			break
		}

		rowStyle := tcell.StyleDefault
		if lineIdx == pager.CurrentLine {
			rowStyle = rowStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}

		line := textutil.SanitizeTerminalText(pager.Lines[lineIdx])
		endX := r.drawTextLine(0, y, w, r.truncateTextToWidth(line, w), rowStyle)
		if lineIdx == pager.CurrentLine {
			r.fillLine(endX, y, w, rowStyle)
		}
	}

	if h > 1 {
		helpStyle := tcell.StyleDefault.Foreground(r.theme.HelpFg)
		endX := r.drawTextLine(0, h-1, w, r.truncateTextToWidth(pagerHelpText, w), helpStyle)
		r.fillLine(endX, h-1, w, helpStyle)
	}
}
