package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultCommitMsg   = "Initial commit"
	defaultAttribution = "Repository created with QuickRepo CLI"
)

// Config is everything that used to be hard-coded: base directories,
// commit defaults and editor binaries.
type Config struct {
	GitHubDir         string            `yaml:"github_dir"`
	HuggingFaceDir    string            `yaml:"huggingface_dir"`
	CommitMessage     string            `yaml:"commit_message"`
	ReadmeAttribution string            `yaml:"readme_attribution"`
	Token             string            `yaml:"token"` // inline or ${ENV_VAR}
	Editors           map[string]string `yaml:"editors"`

	UseAPI bool `yaml:"-"`
	UseTUI bool `yaml:"-"`
}

var defaultEditorBinaries = map[Editor]string{
	Windsurf:     "windsurf",
	VSCode:       "code",
	CodeInsiders: "code-insiders",
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		GitHubDir:         filepath.Join(home, "repos", "github"),
		HuggingFaceDir:    filepath.Join(home, "repos", "hugging-face"),
		CommitMessage:     defaultCommitMsg,
		ReadmeAttribution: defaultAttribution,
		Editors:           map[string]string{},
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if cfg.Editors == nil {
		cfg.Editors = map[string]string{}
	}

	cfg.GitHubDir = expandHome(cfg.GitHubDir)
	cfg.HuggingFaceDir = expandHome(cfg.HuggingFaceDir)
	cfg.Token = resolveToken(cfg.Token)

	if cfg.GitHubDir == "" || cfg.HuggingFaceDir == "" {
		return nil, fmt.Errorf("config file %q: base directories must not be empty", path)
	}

	logger.Debugf("Loaded config from %s", path)
	return cfg, nil
}

// FindConfigFile searches the standard locations and returns the first match.
func FindConfigFile() (string, error) {
	locations := []string{".quickrepo.yaml", ".quickrepo.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".quickrepo.yaml"),
			filepath.Join(home, ".config", "quickrepo.yaml"),
			filepath.Join(home, ".config", "quickrepo", "config.yaml"),
		)
	}

	for _, p := range locations {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("config file not found in default locations")
}

// ApplyFlags overrides file values with whatever was set on the command line.
func (c *Config) ApplyFlags(flags CommandLineFlags) {
	if flags.GitHubDir != "" {
		c.GitHubDir = expandHome(flags.GitHubDir)
	}
	if flags.HuggingFaceDir != "" {
		c.HuggingFaceDir = expandHome(flags.HuggingFaceDir)
	}
	if flags.CommitMsg != "" {
		c.CommitMessage = flags.CommitMsg
	}
	if flags.Token != "" {
		c.Token = flags.Token
	}
	if c.Token == "" {
		c.Token = os.Getenv("GITHUB_TOKEN")
	}
	c.UseAPI = c.UseAPI || flags.UseAPI
	c.UseTUI = c.UseTUI || flags.UseTUI
}

func (c *Config) BaseDir(t RepoType) string {
	if t == HuggingFace {
		return c.HuggingFaceDir
	}
	return c.GitHubDir
}

// EditorBinary returns the command used to launch an editor.
func (c *Config) EditorBinary(e Editor) string {
	if bin, ok := c.Editors[e.Key()]; ok && bin != "" {
		return bin
	}
	return defaultEditorBinaries[e]
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warnf("Cannot expand %q: %v", path, err)
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
