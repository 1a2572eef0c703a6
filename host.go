package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/google/go-github/v38/github"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Host creates remote repositories on a hosting platform
type Host interface {
	CheckAuth(ctx context.Context) error
	CreateAndPush(ctx context.Context, dir, name string, privacy Privacy) error
	LoginHint() string
}

// For mocking in tests
var newGitHubClient = func(token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// GHCLIHost drives the GitHub CLI (gh)
type GHCLIHost struct {
	runner Runner
}

func NewGHCLIHost(runner Runner) *GHCLIHost {
	return &GHCLIHost{runner: runner}
}

func (h *GHCLIHost) CheckAuth(ctx context.Context) error {
	_, err := h.runner.Run(ctx, "", "gh", "auth", "status")
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotInstalled) {
		return fmt.Errorf("GitHub CLI (gh) is %w: %w", ErrNotInstalled, ErrNotAuthenticated)
	}
	return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
}

func (h *GHCLIHost) CreateAndPush(ctx context.Context, dir, name string, privacy Privacy) error {
	_, err := h.runner.Run(ctx, dir, "gh", "repo", "create", name, privacy.Flag(), "--source=.", "--push")
	if err != nil {
		return fmt.Errorf("failed to create GitHub repository: %w", err)
	}
	return nil
}

func (h *GHCLIHost) LoginHint() string {
	return "gh auth login"
}

// GitHubAPIHost talks to the GitHub REST API and pushes with go-git,
// so it works without the gh binary.
type GitHubAPIHost struct {
	client *github.Client
	token  string
}

func NewGitHubAPIHost(client *github.Client, token string) *GitHubAPIHost {
	return &GitHubAPIHost{client: client, token: token}
}

func (h *GitHubAPIHost) CheckAuth(ctx context.Context) error {
	if h.token == "" {
		return fmt.Errorf("%w: no GitHub token configured", ErrNotAuthenticated)
	}
	user, _, err := h.client.Users.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	logger.Debugf("Authenticated with GitHub as %s", user.GetLogin())
	return nil
}

func (h *GitHubAPIHost) CreateAndPush(ctx context.Context, dir, name string, privacy Privacy) error {
	repo, _, err := h.client.Repositories.Create(ctx, "", &github.Repository{
		Name:    github.String(name),
		Private: github.Bool(privacy == Private),
	})
	if err != nil {
		return fmt.Errorf("failed to create GitHub repository: %w", err)
	}
	logger.Debugf("Created %s", repo.GetHTMLURL())

	return pushToRemote(ctx, dir, repo.GetCloneURL(), h.token)
}

func (h *GitHubAPIHost) LoginHint() string {
	return "pass --token or set GITHUB_TOKEN"
}

func pushToRemote(ctx context.Context, dir, remoteURL, token string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open local repository: %w", err)
	}

	if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	}); err != nil {
		return fmt.Errorf("failed to add origin remote: %w", err)
	}

	opts := &git.PushOptions{RemoteName: "origin"}
	if strings.HasPrefix(remoteURL, "https://") || strings.HasPrefix(remoteURL, "http://") {
		opts.Auth = &githttp.BasicAuth{Username: "x-access-token", Password: token}
	}

	if err := repo.PushContext(ctx, opts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push to %s: %w", remoteURL, err)
	}
	return nil
}
