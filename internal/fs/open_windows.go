//go:build windows

package fs

import "os/exec"

// OpenWithDefaultApplication hands the file to the shell's default opener.
// Best effort: the caller never observes success or failure.
func OpenWithDefaultApplication(path string) {
	cmd := exec.Command("cmd", "/C", "start", "", path)
	_ = cmd.Start()
	go func() {
		_ = cmd.Wait()
	}()
}
