package main

import (
	"io"
	"os"

	"go.uber.org/dig"
	"golang.org/x/term"
)

// injectApp builds the object graph for one run
func injectApp(config *Config, in io.Reader, out io.Writer) (*App, error) {
	container := dig.New()

	providers := []any{
		func() *Config { return config },
		func() io.Reader { return in },
		func() io.Writer { return out },
		func() Runner { return ExecRunner{} },
		newHost,
		newPrompter,
		NewCreator,
		NewLauncher,
		NewApp,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	var app *App
	if err := container.Invoke(func(a *App) {
		app = a
	}); err != nil {
		return nil, err
	}
	return app, nil
}

func newHost(config *Config, runner Runner) Host {
	if config.UseAPI {
		return NewGitHubAPIHost(newGitHubClient(config.Token), config.Token)
	}
	return NewGHCLIHost(runner)
}

// newPrompter only hands out the TUI when stdin is a real terminal
func newPrompter(config *Config, in io.Reader, out io.Writer) Prompter {
	if config.UseTUI && isTerminal(in) {
		return NewTUIPrompter(in, out)
	}
	return NewConsolePrompter(in, out)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
