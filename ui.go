package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575")).
		Bold(true)

	info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87C1FF"))

	warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFA07A"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF616E")).
			Bold(true)

	logoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF86C8")).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF86C8")).
			Bold(true).
			MarginLeft(2)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87C1FF")).
			MarginLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			MarginLeft(2)
)

const Logo = `
  ___        _    _    ___
 / _ \ _  _ (_)__| |__| _ \___ _ __  ___
| (_) | || || / _| / /|   / -_) '_ \/ _ \
 \__\_\\_,_||_\__|_\_\|_|_\___| .__/\___/
                              |_|
`

// For mocking in tests
var runTeaProgram = func(model tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(model, opts...).Run()
}

func ShowLogo(out io.Writer) {
	fmt.Fprintln(out, logoStyle.Render(Logo))
	fmt.Fprintln(out, info.Render("QuickRepo CLI - Fast Repository Creation"))
	fmt.Fprintln(out, strings.Repeat("=", 45))
}

// NameModel handles the repository name input
type NameModel struct {
	TextInput textinput.Model
	Err       string
	Done      bool
	Cancelled bool
}

func InitialNameModel() NameModel {
	ti := textinput.New()
	ti.Placeholder = "my-new-repo"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return NameModel{TextInput: ti}
}

func (m NameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.TextInput.Value()) == "" {
				m.Err = "Repository name cannot be empty. Please try again."
				return m, nil
			}
			m.Done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		}
	}

	m.Err = ""
	m.TextInput, cmd = m.TextInput.Update(msg)
	return m, cmd
}

func (m NameModel) View() string {
	var s string
	s += titleStyle.Render("Please provide a name for the repository:") + "\n\n"
	s += inputStyle.Render(m.TextInput.View()) + "\n\n"
	if m.Err != "" {
		s += errorStyle.Render("  "+m.Err) + "\n"
	}
	s += inputStyle.Render("(Press Enter to confirm or Esc/Ctrl+C to cancel)") + "\n"
	return s
}

// Value returns the trimmed name typed so far
func (m NameModel) Value() string {
	return strings.TrimSpace(m.TextInput.Value())
}

// MenuModel handles a numbered choice list
type MenuModel struct {
	Menu      menu
	Cursor    int
	Chosen    int
	Err       string
	Done      bool
	Cancelled bool
}

// NewMenuModel places the cursor on the default, or on the last option
// when the menu has none.
func NewMenuModel(m menu) MenuModel {
	cursor := len(m.Options) - 1
	if m.Default >= 0 {
		cursor = m.Default
	}
	return MenuModel{Menu: m, Cursor: cursor}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down", "j":
		if m.Cursor < len(m.Menu.Options)-1 {
			m.Cursor++
		}
		return m, nil
	case "enter":
		m.Chosen = m.Cursor
		m.Done = true
		m.Err = ""
		return m, tea.Quit
	}

	if idx, valid := m.Menu.parse(key.String()); valid {
		m.Chosen = idx
		m.Cursor = idx
		m.Done = true
		m.Err = ""
		return m, tea.Quit
	}
	m.Err = m.Menu.invalidMessage()
	return m, nil
}

func (m MenuModel) View() string {
	var s string
	s += titleStyle.Render(m.Menu.Title) + "\n\n"
	for i, option := range m.Menu.Options {
		line := fmt.Sprintf("%d) %s", i+1, option)
		if i == m.Cursor {
			s += selectedStyle.Render("> "+line) + "\n"
		} else {
			s += inputStyle.Render("  "+line) + "\n"
		}
	}
	if m.Err != "" {
		s += "\n" + errorStyle.Render("  "+m.Err) + "\n"
	}
	s += "\n" + inputStyle.Render(fmt.Sprintf("(Press 1-%d or use arrows and Enter)", len(m.Menu.Options))) + "\n"
	return s
}

// ConfirmModel handles the confirmation prompt
type ConfirmModel struct {
	Question  string
	Done      bool
	Answer    bool
	Cancelled bool
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.Done = true
			m.Answer = true
			return m, tea.Quit
		case "n", "N", "q", "Q", "esc":
			m.Done = true
			m.Answer = false
			return m, tea.Quit
		case "ctrl+c":
			m.Cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var s string
	s += titleStyle.Render(m.Question) + "\n\n"
	s += inputStyle.Render("Press 'y' or Enter to continue, 'n' to decline") + "\n"
	return s
}

// TUIPrompter asks the same questions as ConsolePrompter with bubbletea screens
type TUIPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTUIPrompter(in io.Reader, out io.Writer) *TUIPrompter {
	return &TUIPrompter{in: in, out: out}
}

func (p *TUIPrompter) run(model tea.Model) (tea.Model, error) {
	return runTeaProgram(model, tea.WithInput(p.in), tea.WithOutput(p.out))
}

func (p *TUIPrompter) RepoName() (string, error) {
	for {
		m, err := p.run(InitialNameModel())
		if err != nil {
			return "", err
		}
		model, ok := m.(NameModel)
		if !ok || !model.Done {
			return "", ErrInterrupted
		}

		name := model.Value()
		sanitized := SanitizeRepoName(name)
		if sanitized == "" {
			fmt.Fprintln(p.out, errorStyle.Render("Repository name must contain letters or digits. Please try again."))
			continue
		}
		if sanitized == name {
			return sanitized, nil
		}

		confirmed, err := p.Confirm(fmt.Sprintf("Repository name will be: '%s'. Continue?", sanitized))
		if err != nil {
			return "", err
		}
		if confirmed {
			return sanitized, nil
		}
	}
}

func (p *TUIPrompter) choose(m menu) (int, error) {
	result, err := p.run(NewMenuModel(m))
	if err != nil {
		return 0, err
	}
	model, ok := result.(MenuModel)
	if !ok || !model.Done {
		return 0, ErrInterrupted
	}
	return model.Chosen, nil
}

func (p *TUIPrompter) RepoType() (RepoType, error) {
	idx, err := p.choose(repoTypeMenu)
	if err != nil {
		return GitHub, err
	}
	return repoTypeChoices[idx], nil
}

func (p *TUIPrompter) Privacy() (Privacy, error) {
	idx, err := p.choose(privacyMenu)
	if err != nil {
		return Private, err
	}
	return privacyChoices[idx], nil
}

func (p *TUIPrompter) Editor() (Editor, error) {
	idx, err := p.choose(editorMenu)
	if err != nil {
		return NoEditor, err
	}
	return editorChoices[idx], nil
}

func (p *TUIPrompter) Confirm(question string) (bool, error) {
	result, err := p.run(ConfirmModel{Question: question})
	if err != nil {
		return false, err
	}
	model, ok := result.(ConfirmModel)
	if !ok || model.Cancelled {
		return false, ErrInterrupted
	}
	return model.Answer, nil
}
