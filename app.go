package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitError = 1
)

// App runs the interactive workflow from authentication to editor launch
type App struct {
	host     Host
	prompter Prompter
	creator  *Creator
	launcher *Launcher
	out      io.Writer
}

func NewApp(host Host, prompter Prompter, creator *Creator, launcher *Launcher, out io.Writer) *App {
	return &App{
		host:     host,
		prompter: prompter,
		creator:  creator,
		launcher: launcher,
		out:      out,
	}
}

// Run returns the process exit code
func (a *App) Run(ctx context.Context) int {
	ShowLogo(a.out)

	if err := a.host.CheckAuth(ctx); err != nil {
		logger.Debugf("Authentication check failed: %v", err)
		if errors.Is(err, ErrNotInstalled) {
			a.printError("Error: GitHub CLI (gh) is not installed or not in PATH")
		}
		a.printError("Please authenticate with GitHub first: " + a.host.LoginHint())
		return exitError
	}

	req, err := a.gather()
	if err != nil {
		return a.interrupted(err)
	}

	a.printSummary(req)

	fmt.Fprintln(a.out)
	proceed, err := a.prompter.Confirm("Proceed with creation?")
	if err != nil {
		return a.interrupted(err)
	}
	if !proceed {
		fmt.Fprintln(a.out, info.Render("Repository creation cancelled."))
		return exitOK
	}

	repoPath, err := a.create(ctx, req)
	if errors.Is(err, ErrUnsupportedRepoType) {
		a.printError(fmt.Sprintf("%s repository creation will be implemented later.", req.Type))
		return exitError
	}
	if err != nil {
		a.printError(fmt.Sprintf("Error during repository creation: %v", err))
		a.printError("\n❌ Repository creation failed!")
		return exitError
	}

	fmt.Fprintln(a.out, success.Render(fmt.Sprintf("\n✅ Success! Repository '%s' created successfully!", req.Name)))
	fmt.Fprintln(a.out, info.Render("📁 Location: "+repoPath))

	editor, err := a.prompter.Editor()
	if err != nil {
		return a.interrupted(err)
	}
	if err := a.launcher.Open(repoPath, editor); err != nil {
		logger.Debugf("Editor launch failed: %v", err)
	}
	return exitOK
}

func (a *App) gather() (RepoRequest, error) {
	var req RepoRequest
	var err error

	if req.Name, err = a.prompter.RepoName(); err != nil {
		return req, err
	}
	if req.Type, err = a.prompter.RepoType(); err != nil {
		return req, err
	}
	if req.Privacy, err = a.prompter.Privacy(); err != nil {
		return req, err
	}
	return req, nil
}

func (a *App) create(ctx context.Context, req RepoRequest) (string, error) {
	switch req.Type {
	case GitHub:
		return a.creator.Create(ctx, req.Name, req.Privacy)
	default:
		return "", fmt.Errorf("%s: %w", req.Type, ErrUnsupportedRepoType)
	}
}

func (a *App) printSummary(req RepoRequest) {
	fmt.Fprintln(a.out, titleStyle.Render("\n📋 Summary:"))
	fmt.Fprintf(a.out, "Repository name: %s\n", req.Name)
	fmt.Fprintf(a.out, "Type: %s\n", req.Type)
	fmt.Fprintf(a.out, "Privacy: %s\n", req.Privacy)
}

func (a *App) printError(msg string) {
	fmt.Fprintln(a.out, errorStyle.Render(msg))
}

func (a *App) interrupted(err error) int {
	logger.Debugf("Prompt aborted: %v", err)
	fmt.Fprintln(a.out, warning.Render("\n\nOperation cancelled by user."))
	return exitError
}
