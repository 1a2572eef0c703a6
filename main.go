package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version will be set during build
var version = "dev"

func newRootCommand(in io.Reader, out io.Writer, exitCode *int) *cobra.Command {
	flags := CommandLineFlags{}

	cmd := &cobra.Command{
		Use:   "quickrepo",
		Short: "Create a local repository and publish it in one go",
		Long: `QuickRepo asks for a repository name, creates <base>/<name>, commits a
README.md, creates the remote repository and pushes, then offers to open
the new directory in an editor.

By default the remote is created with the GitHub CLI (gh). Use --api to
talk to the GitHub API directly with a token instead.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, _ []string) error {
			if flags.Verbose {
				logger.SetLevel(logger.DebugLevel)
			}

			config, err := loadConfig(flags)
			if err != nil {
				return err
			}

			app, err := injectApp(config, in, out)
			if err != nil {
				return err
			}
			*exitCode = app.Run(command.Context())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.ConfigPath, "config", "c", "", "Path to config file (default: auto-detect)")
	f.StringVar(&flags.GitHubDir, "github-dir", "", "Base directory for GitHub repositories")
	f.StringVar(&flags.HuggingFaceDir, "hf-dir", "", "Base directory for Hugging Face repositories")
	f.StringVarP(&flags.Token, "token", "t", "", "GitHub token for --api (default: $GITHUB_TOKEN)")
	f.StringVarP(&flags.CommitMsg, "message", "m", "", "Initial commit message")
	f.BoolVar(&flags.UseAPI, "api", false, "Create the remote through the GitHub API instead of gh")
	f.BoolVar(&flags.UseTUI, "tui", false, "Use interactive screens instead of line prompts")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func loadConfig(flags CommandLineFlags) (*Config, error) {
	path := flags.ConfigPath
	if path == "" {
		if found, err := FindConfigFile(); err == nil {
			path = found
		}
	}

	config := DefaultConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config.ApplyFlags(flags)

	logger.Debugf("GitHub base directory: %s", config.GitHubDir)
	logger.Debugf("Hugging Face base directory: %s", config.HuggingFaceDir)
	return config, nil
}

func execute(ctx context.Context, args []string, in io.Reader, out io.Writer) int {
	exitCode := exitOK
	cmd := newRootCommand(in, out, &exitCode)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(out)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(out, errorStyle.Render("Error: "+err.Error()))
		return exitError
	}
	return exitCode
}

// handleInterrupt exits immediately on Ctrl-C; a directory being created at
// that moment is left as is.
func handleInterrupt(out io.Writer) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Fprintln(out, warning.Render("\n\nOperation cancelled by user."))
		os.Exit(exitError)
	}()
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	handleInterrupt(os.Stdout)
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout))
}
