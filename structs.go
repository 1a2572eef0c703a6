package main

// RepoType represents the hosting platform a repository is created on
type RepoType int

const (
	GitHub RepoType = iota
	HuggingFace
)

func (t RepoType) String() string {
	switch t {
	case GitHub:
		return "GitHub"
	case HuggingFace:
		return "Hugging Face"
	default:
		return "Unknown"
	}
}

// Privacy is the visibility of the remote repository
type Privacy int

const (
	Private Privacy = iota
	Public
)

func (p Privacy) String() string {
	if p == Public {
		return "Public"
	}
	return "Private"
}

// Flag returns the visibility flag understood by the GitHub CLI
func (p Privacy) Flag() string {
	if p == Public {
		return "--public"
	}
	return "--private"
}

// Editor identifies one of the IDEs offered once the repository exists
type Editor int

const (
	NoEditor Editor = iota
	Windsurf
	VSCode
	CodeInsiders
)

// Key is the editor identifier used in the config file
func (e Editor) Key() string {
	switch e {
	case Windsurf:
		return "windsurf"
	case VSCode:
		return "vscode"
	case CodeInsiders:
		return "code-insiders"
	default:
		return "none"
	}
}

func (e Editor) String() string {
	switch e {
	case Windsurf:
		return "Windsurf"
	case VSCode:
		return "VS Code"
	case CodeInsiders:
		return "Code Insiders"
	default:
		return "No editor"
	}
}

// RepoRequest contains everything gathered from the user for one run
type RepoRequest struct {
	Name    string
	Type    RepoType
	Privacy Privacy
}

// CommandLineFlags holds all possible command line arguments
type CommandLineFlags struct {
	ConfigPath     string
	GitHubDir      string
	HuggingFaceDir string
	Token          string
	CommitMsg      string
	UseAPI         bool
	UseTUI         bool
	Verbose        bool
}
