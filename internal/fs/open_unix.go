//go:build !windows

package fs

import (
	"os/exec"
	"runtime"
)

// OpenWithDefaultApplication hands the file to the host's default opener.
// Best effort: the caller never observes success or failure.
func OpenWithDefaultApplication(path string) {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	cmd := exec.Command(opener, path)
	_ = cmd.Start()
	go func() {
		_ = cmd.Wait()
	}()
}
