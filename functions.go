package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	logger "github.com/sirupsen/logrus"
)

var (
	ErrNotInstalled        = errors.New("not installed or not in PATH")
	ErrRepoExists          = errors.New("already exists")
	ErrUnsupportedRepoType = errors.New("repository type is not supported yet")
)

var hyphenRuns = regexp.MustCompile(`-+`)

// SanitizeRepoName converts a free-form name into a lowercase, hyphenated slug.
// Any Unicode whitespace separates words; other non-ASCII runes are dropped.
func SanitizeRepoName(name string) string {
	kept := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, name)

	sanitized := strings.ToLower(strings.Join(strings.Fields(kept), "-"))
	sanitized = hyphenRuns.ReplaceAllString(sanitized, "-")
	return strings.Trim(sanitized, "-")
}

type CommandError struct {
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("Command '%s' failed: %v\nOutput: %s", e.Command, e.Err, strings.TrimSpace(e.Output))
	}
	return fmt.Sprintf("Command '%s' failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes external commands and captures their combined output
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	commandLine := strings.TrimSpace(name + " " + strings.Join(args, " "))
	logger.Debugf("Executing: %s (dir: %q)", commandLine, dir)

	if _, err := exec.LookPath(name); err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotInstalled)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), &CommandError{
			Command: commandLine,
			Output:  string(output),
			Err:     err,
		}
	}
	return string(output), nil
}

// Creator builds the local repository and publishes it through a Host
type Creator struct {
	baseDir       string
	commitMessage string
	attribution   string
	runner        Runner
	host          Host
	out           io.Writer
}

func NewCreator(config *Config, runner Runner, host Host, out io.Writer) *Creator {
	return &Creator{
		baseDir:       config.BaseDir(GitHub),
		commitMessage: config.CommitMessage,
		attribution:   config.ReadmeAttribution,
		runner:        runner,
		host:          host,
		out:           out,
	}
}

// Create makes <base>/<name>, commits a README and pushes it to a new remote.
// On any failure after the directory exists, the directory is removed again.
func (c *Creator) Create(ctx context.Context, name string, privacy Privacy) (string, error) {
	repoPath := filepath.Join(c.baseDir, name)

	if _, err := os.Stat(repoPath); err == nil {
		return "", fmt.Errorf("directory %s %w", repoPath, ErrRepoExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to inspect %s: %w", repoPath, err)
	}

	if err := os.MkdirAll(repoPath, 0755); err != nil {
		c.rollback(repoPath)
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	fmt.Fprintln(c.out, info.Render("Created directory: "+repoPath))

	steps := []struct {
		done string
		run  func() error
	}{
		{"Initialized git repository", func() error {
			return c.git(ctx, repoPath, "init")
		}},
		{"Created README.md", func() error {
			return c.writeReadme(repoPath, name)
		}},
		{"Committed initial files", func() error {
			if err := c.git(ctx, repoPath, "add", "README.md"); err != nil {
				return err
			}
			return c.git(ctx, repoPath, "commit", "-m", c.commitMessage)
		}},
		{"Created and pushed to GitHub repository: " + name, func() error {
			return c.host.CreateAndPush(ctx, repoPath, name, privacy)
		}},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			c.rollback(repoPath)
			return "", err
		}
		fmt.Fprintln(c.out, info.Render(step.done))
	}

	return repoPath, nil
}

func (c *Creator) git(ctx context.Context, dir string, args ...string) error {
	if _, err := c.runner.Run(ctx, dir, "git", args...); err != nil {
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}

func (c *Creator) writeReadme(dir, name string) error {
	content := fmt.Sprintf("# %s\n\n%s\n", name, c.attribution)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write README.md: %w", err)
	}
	return nil
}

func (c *Creator) rollback(repoPath string) {
	if err := os.RemoveAll(repoPath); err != nil {
		fmt.Fprintln(c.out, warning.Render(fmt.Sprintf("Warning: failed to clean up %s: %v", repoPath, err)))
		return
	}
	logger.Debugf("Removed %s after failed creation", repoPath)
}
