package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/unicode/norm"
)

const labelTimeFormat = "Jan _2 15:04"

// List returns the listing for dirPath. It never fails: an unreadable or
// nonexistent path yields an empty listing. A synthetic ".." entry is
// prepended unless dirPath is the filesystem root.
func List(dirPath string) []Entry {
	dirEntries, err := os.ReadDir(dirPath)
	if err != nil {
		return []Entry{}
	}

	listing := make([]Entry, 0, len(dirEntries)+1)

	if parent := filepath.Dir(dirPath); parent != dirPath {
		if info, err := os.Stat(parent); err == nil {
			listing = append(listing, newEntry("..", parent, info))
		}
	}

	files := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		name := norm.NFC.String(e.Name())
		files = append(files, newEntry(name, filepath.Join(dirPath, e.Name()), info))
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].IsDir != files[j].IsDir {
			return files[i].IsDir
		}
		return files[i].Name < files[j].Name
	})

	return append(listing, files...)
}

func newEntry(name, fullPath string, info os.FileInfo) Entry {
	return Entry{
		Name:     name,
		FullPath: fullPath,
		Label:    formatLabel(name, info),
		IsDir:    info.IsDir(),
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
	}
}

// formatLabel builds the ls-style display row. The name is the trailing
// token so it can be recovered with NameFromLabel.
func formatLabel(name string, info os.FileInfo) string {
	return fmt.Sprintf("%s %8d %s %s",
		info.Mode().String(),
		info.Size(),
		info.ModTime().Format(labelTimeFormat),
		name)
}
