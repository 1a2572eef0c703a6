package main

import (
	"fmt"
	"io"
	"os/exec"

	logger "github.com/sirupsen/logrus"
)

// Launcher opens a freshly created repository in an editor
type Launcher struct {
	config   *Config
	out      io.Writer
	lookPath func(file string) (string, error)
	start    func(path string, args ...string) error
}

func NewLauncher(config *Config, out io.Writer) *Launcher {
	return &Launcher{
		config:   config,
		out:      out,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

// Open spawns the editor without waiting for it. Errors are reported to the
// user and returned, but they never undo the repository.
func (l *Launcher) Open(repoPath string, editor Editor) error {
	if editor == NoEditor {
		return nil
	}

	binary := l.config.EditorBinary(editor)
	resolved, err := l.lookPath(binary)
	if err != nil {
		fmt.Fprintln(l.out, errorStyle.Render(fmt.Sprintf("Error: %s is not installed or not in PATH", binary)))
		return fmt.Errorf("%s: %w", binary, ErrNotInstalled)
	}

	logger.Debugf("Launching %s %s", resolved, repoPath)
	if err := l.start(resolved, repoPath); err != nil {
		fmt.Fprintln(l.out, errorStyle.Render(fmt.Sprintf("Error opening IDE: %v", err)))
		return fmt.Errorf("failed to start %s: %w", binary, err)
	}

	fmt.Fprintln(l.out, info.Render(fmt.Sprintf("Opening repository in %s...", editor)))
	fmt.Fprintln(l.out, info.Render("You can now close this terminal - the IDE will remain open."))
	return nil
}
