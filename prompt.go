package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInterrupted is returned by a prompter when the user aborts input
var ErrInterrupted = errors.New("operation cancelled by user")

// Prompter collects the user's choices. Every method blocks until it has a
// valid answer.
type Prompter interface {
	RepoName() (string, error)
	RepoType() (RepoType, error)
	Privacy() (Privacy, error)
	Editor() (Editor, error)
	Confirm(question string) (bool, error)
}

// menu is a numbered list of choices; Default < 0 means an empty answer is invalid
type menu struct {
	Title   string
	Options []string
	Default int
}

var (
	repoTypeMenu = menu{
		Title:   "What type of repo is this?",
		Options: []string{"GitHub (default)", "Hugging Face"},
		Default: 0,
	}
	privacyMenu = menu{
		Title:   "Should this repo be public or private?",
		Options: []string{"Private (default)", "Public"},
		Default: 0,
	}
	editorMenu = menu{
		Title:   "Would you like to open the repo in an IDE?",
		Options: []string{"Windsurf", "VS Code", "Code Insiders", "No, thanks"},
		Default: -1,
	}

	repoTypeChoices = []RepoType{GitHub, HuggingFace}
	privacyChoices  = []Privacy{Private, Public}
	editorChoices   = []Editor{Windsurf, VSCode, CodeInsiders, NoEditor}
)

func (m menu) String() string {
	var b strings.Builder
	b.WriteString(m.Title + "\n")
	for i, option := range m.Options {
		fmt.Fprintf(&b, "%d) %s\n", i+1, option)
	}
	fmt.Fprintf(&b, "Choice (1-%d): ", len(m.Options))
	return b.String()
}

// parse maps an answer to an option index
func (m menu) parse(answer string) (int, bool) {
	if answer == "" && m.Default >= 0 {
		return m.Default, true
	}
	for i := range m.Options {
		if answer == strconv.Itoa(i+1) {
			return i, true
		}
	}
	return 0, false
}

func (m menu) invalidMessage() string {
	if len(m.Options) == 2 {
		return "Invalid choice. Please enter 1 or 2."
	}
	return fmt.Sprintf("Invalid choice. Please enter 1-%d.", len(m.Options))
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	}
	return false
}

// ConsolePrompter asks line-oriented questions
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

func (p *ConsolePrompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("end of input: %w", ErrInterrupted)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *ConsolePrompter) RepoName() (string, error) {
	for {
		name, err := p.ask("Please provide a name for the repository: ")
		if err != nil {
			return "", err
		}
		if name == "" {
			fmt.Fprintln(p.out, errorStyle.Render("Repository name cannot be empty. Please try again."))
			continue
		}

		sanitized := SanitizeRepoName(name)
		if sanitized == "" {
			fmt.Fprintln(p.out, errorStyle.Render("Repository name must contain letters or digits. Please try again."))
			continue
		}
		if sanitized == name {
			return sanitized, nil
		}

		ok, err := p.Confirm(fmt.Sprintf("Repository name will be: '%s'. Continue?", sanitized))
		if err != nil {
			return "", err
		}
		if ok {
			return sanitized, nil
		}
	}
}

func (p *ConsolePrompter) choose(m menu) (int, error) {
	for {
		answer, err := p.ask(m.String())
		if err != nil {
			return 0, err
		}
		if idx, ok := m.parse(answer); ok {
			return idx, nil
		}
		fmt.Fprintln(p.out, errorStyle.Render(m.invalidMessage()))
	}
}

func (p *ConsolePrompter) RepoType() (RepoType, error) {
	idx, err := p.choose(repoTypeMenu)
	if err != nil {
		return GitHub, err
	}
	return repoTypeChoices[idx], nil
}

func (p *ConsolePrompter) Privacy() (Privacy, error) {
	idx, err := p.choose(privacyMenu)
	if err != nil {
		return Private, err
	}
	return privacyChoices[idx], nil
}

func (p *ConsolePrompter) Editor() (Editor, error) {
	fmt.Fprintln(p.out)
	idx, err := p.choose(editorMenu)
	if err != nil {
		return NoEditor, err
	}
	return editorChoices[idx], nil
}

func (p *ConsolePrompter) Confirm(question string) (bool, error) {
	answer, err := p.ask(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	return isYes(answer), nil
}
