package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

var errMockFailure = errors.New("exit status 1")

// fakeRunner records every command line and fails the ones listed in failOn
type fakeRunner struct {
	commands []string
	dirs     []string
	failOn   map[string]error
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.commands = append(f.commands, line)
	f.dirs = append(f.dirs, dir)

	if err, ok := f.failOn[line]; ok {
		if errors.Is(err, ErrNotInstalled) {
			return "", err
		}
		return "mock output", &CommandError{Command: line, Output: "mock output", Err: err}
	}
	return "", nil
}

// fakeHost records remote creations
type fakeHost struct {
	authErr   error
	createErr error
	created   []string
	privacy   []Privacy
}

func (h *fakeHost) CheckAuth(context.Context) error {
	return h.authErr
}

func (h *fakeHost) CreateAndPush(_ context.Context, _, name string, privacy Privacy) error {
	if h.createErr != nil {
		return h.createErr
	}
	h.created = append(h.created, name)
	h.privacy = append(h.privacy, privacy)
	return nil
}

func (h *fakeHost) LoginHint() string {
	return "fake login"
}

// testConfig points both base directories into a temporary directory
func testConfig(t *testing.T) *Config {
	t.Helper()

	base := t.TempDir()
	config := DefaultConfig()
	config.GitHubDir = filepath.Join(base, "github")
	config.HuggingFaceDir = filepath.Join(base, "hugging-face")
	return config
}
