package fs

import (
	"os"
	"strings"
	"time"
)

// Entry represents a single row of a directory listing.
type Entry struct {
	Name     string // bare file name, may be ".."
	FullPath string
	Label    string // full formatted row; always ends with Name
	IsDir    bool
	Size     int64
	Modified time.Time
	Mode     os.FileMode
}

// NameFromLabel recovers the entry name from a display label by taking the
// suffix after the last space. Labels are built so this round-trips.
func NameFromLabel(label string) string {
	if idx := strings.LastIndex(label, " "); idx >= 0 {
		return label[idx+1:]
	}
	return label
}
