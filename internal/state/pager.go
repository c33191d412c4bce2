package state

import (
	"strings"

	fsutil "github.com/korzen-labs/wend/internal/fs"
	textutil "github.com/korzen-labs/wend/internal/textutil"
)

// PagerState holds one file-viewing session. It is created when a readable
// file is opened and discarded when the user leaves the pager.
type PagerState struct {
	FilePath    string
	Lines       []string // immutable once loaded
	TopLine     int      // first visible line
	CurrentLine int      // highlighted cursor line
}

// NewPagerState splits raw file content into display lines. Known Unicode
// BOM encodings are decoded first, CR-LF endings are normalized, and tabs
// are expanded to terminal columns. A trailing newline does not produce a
// phantom empty last line.
func NewPagerState(filePath string, content []byte) *PagerState {
	text := fsutil.NormalizeTextContent(content)

	var lines []string
	if text != "" {
		raw := strings.Split(text, "\n")
		if raw[len(raw)-1] == "" {
			raw = raw[:len(raw)-1]
		}
		lines = make([]string, len(raw))
		for i, line := range raw {
			line = strings.TrimSuffix(line, "\r")
			lines[i] = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
		}
	}

	return &PagerState{
		FilePath:    filePath,
		Lines:       lines,
		TopLine:     0,
		CurrentLine: 0,
	}
}

// Scroll moves the cursor by delta lines and adjusts the scroll window so
// TopLine <= CurrentLine < TopLine+visibleRows holds afterwards.
func (p *PagerState) Scroll(delta, visibleRows int) {
	if len(p.Lines) == 0 {
		return
	}
	if visibleRows < 1 {
		visibleRows = 1
	}

	p.CurrentLine += delta
	if p.CurrentLine < 0 {
		p.CurrentLine = 0
	}
	if p.CurrentLine > len(p.Lines)-1 {
		p.CurrentLine = len(p.Lines) - 1
	}

	if p.CurrentLine < p.TopLine {
		p.TopLine = p.CurrentLine
	} else if p.CurrentLine >= p.TopLine+visibleRows {
		p.TopLine = p.CurrentLine - visibleRows + 1
	}
}

// ClampToViewport re-establishes the scroll invariant after the visible row
// count changed, e.g. on a terminal resize.
func (p *PagerState) ClampToViewport(visibleRows int) {
	p.Scroll(0, visibleRows)
}
