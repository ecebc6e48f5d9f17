// Package platform isolates the OS-specific "open file with the default
// application" capability so the renderers never branch on platform identity.
package platform

import (
	"os/exec"
	"runtime"

	"github.com/flanksource/commons/logger"
)

// Opener opens a file with the platform's default handler. The call is
// best-effort: implementations must never fail the render because a viewer
// could not be launched.
type Opener interface {
	Open(path string)
}

// DefaultOpener shells out to the OS-native open command.
type DefaultOpener struct{}

func (DefaultOpener) Open(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		logger.Debugf("failed to open %s: %v", path, err)
	}
}

// NopOpener does nothing. Tests and headless environments use it.
type NopOpener struct{}

func (NopOpener) Open(string) {}
