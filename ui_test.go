package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestShowLogo(t *testing.T) {
	var out bytes.Buffer

	ShowLogo(&out)

	assert.Contains(t, out.String(), "QuickRepo CLI - Fast Repository Creation")
	assert.Contains(t, out.String(), strings.Repeat("=", 45))
}

func TestNameModel(t *testing.T) {
	testCases := []struct {
		name              string
		inputKeys         []string
		expectedDone      bool
		expectedCancelled bool
		expectedValue     string
		expectedErr       bool
	}{
		{
			name:          "Valid name",
			inputKeys:     []string{"T", "e", "s", "t", " ", "R", "e", "p", "o", "enter"},
			expectedDone:  true,
			expectedValue: "Test Repo",
		},
		{
			name:        "Empty name",
			inputKeys:   []string{"enter"},
			expectedErr: true,
		},
		{
			name:              "Cancel with escape",
			inputKeys:         []string{"t", "e", "s", "t", "esc"},
			expectedCancelled: true,
			expectedValue:     "test",
		},
		{
			name:              "Cancel with ctrl+c",
			inputKeys:         []string{"ctrl+c"},
			expectedCancelled: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model := InitialNameModel()

			for _, key := range tc.inputKeys {
				updated, _ := model.Update(keyMsg(key))
				model = updated.(NameModel)
			}

			assert.Equal(t, tc.expectedDone, model.Done)
			assert.Equal(t, tc.expectedCancelled, model.Cancelled)
			assert.Equal(t, tc.expectedValue, model.Value())
			assert.Equal(t, tc.expectedErr, model.Err != "")
			if tc.expectedErr {
				assert.Contains(t, model.View(), "cannot be empty")
			}
		})
	}
}

func TestMenuModel(t *testing.T) {
	testCases := []struct {
		name           string
		menu           menu
		inputKeys      []string
		expectedDone   bool
		expectedChosen int
		expectedErr    bool
	}{
		{"Enter picks the default", privacyMenu, []string{"enter"}, true, 0, false},
		{"Number picks directly", privacyMenu, []string{"2"}, true, 1, false},
		{"Enter without a default declines the editor", editorMenu, []string{"enter"}, true, 3, false},
		{"Arrows move the cursor", editorMenu, []string{"up", "up", "enter"}, true, 1, false},
		{"Cursor stops at the bottom", editorMenu, []string{"down", "enter"}, true, 3, false},
		{"Cursor stops at the top", repoTypeMenu, []string{"up", "enter"}, true, 0, false},
		{"Out of range number", editorMenu, []string{"9"}, false, 0, true},
		{"Recovers after invalid key", editorMenu, []string{"x", "4"}, true, 3, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model := NewMenuModel(tc.menu)

			for _, key := range tc.inputKeys {
				updated, _ := model.Update(keyMsg(key))
				model = updated.(MenuModel)
			}

			assert.Equal(t, tc.expectedDone, model.Done)
			if tc.expectedDone {
				assert.Equal(t, tc.expectedChosen, model.Chosen)
			}
			assert.Equal(t, tc.expectedErr, model.Err != "")
		})
	}

	t.Run("Escape cancels", func(t *testing.T) {
		updated, cmd := NewMenuModel(editorMenu).Update(keyMsg("esc"))
		model := updated.(MenuModel)
		assert.True(t, model.Cancelled)
		assert.NotNil(t, cmd)
	})

	t.Run("View lists every option", func(t *testing.T) {
		view := NewMenuModel(editorMenu).View()
		for _, option := range editorMenu.Options {
			assert.Contains(t, view, option)
		}
	})
}

func TestConfirmModel(t *testing.T) {
	testCases := []struct {
		name              string
		key               string
		expectedDone      bool
		expectedYes       bool
		expectedCancelled bool
	}{
		{"Confirm with y", "y", true, true, false},
		{"Confirm with Y", "Y", true, true, false},
		{"Confirm with enter", "enter", true, true, false},
		{"Deny with n", "n", true, false, false},
		{"Deny with N", "N", true, false, false},
		{"Deny with q", "q", true, false, false},
		{"Deny with escape", "esc", true, false, false},
		{"Interrupt with ctrl+c", "ctrl+c", false, false, true},
		{"Invalid key", "x", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			model := ConfirmModel{Question: "Test question"}

			updated, _ := model.Update(keyMsg(tc.key))
			finalModel := updated.(ConfirmModel)

			assert.Equal(t, tc.expectedDone, finalModel.Done)
			assert.Equal(t, tc.expectedYes, finalModel.Answer)
			assert.Equal(t, tc.expectedCancelled, finalModel.Cancelled)
		})
	}
}

func TestConfirmModelView(t *testing.T) {
	model := ConfirmModel{Question: "Proceed with creation?"}

	view := model.View()

	assert.Contains(t, view, "Proceed with creation?")
	assert.Contains(t, view, "Press 'y'")
}

func typed(text string, keys ...string) []string {
	var script []string
	for _, r := range text {
		script = append(script, string(r))
	}
	return append(script, keys...)
}

// scriptScreens replaces the bubbletea runner; each screen gets the next key script
func scriptScreens(t *testing.T, scripts ...[]string) *int {
	t.Helper()

	calls := 0
	original := runTeaProgram
	runTeaProgram = func(model tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		if calls >= len(scripts) {
			t.Fatalf("unexpected screen %d: %T", calls+1, model)
		}
		for _, key := range scripts[calls] {
			model, _ = model.Update(keyMsg(key))
		}
		calls++
		return model, nil
	}
	t.Cleanup(func() { runTeaProgram = original })
	return &calls
}

func TestTUIPrompterRepoName(t *testing.T) {
	testCases := []struct {
		name     string
		scripts  [][]string
		expected string
		output   string
	}{
		{
			name:     "Clean name needs no confirmation",
			scripts:  [][]string{typed("clean-name", "enter")},
			expected: "clean-name",
		},
		{
			name:     "Sanitized name accepted with enter",
			scripts:  [][]string{typed("Test Repo", "enter"), {"enter"}},
			expected: "test-repo",
		},
		{
			name:     "Declined name asks again",
			scripts:  [][]string{typed("Bad Name", "enter"), {"n"}, typed("good", "enter")},
			expected: "good",
		},
		{
			name:     "Name without letters or digits asks again",
			scripts:  [][]string{typed("!!!", "enter"), typed("ok", "enter")},
			expected: "ok",
			output:   "Repository name must contain letters or digits.",
		},
		{
			name:     "Empty enter keeps the same screen",
			scripts:  [][]string{typed("", "enter", "r", "enter")},
			expected: "r",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := scriptScreens(t, tc.scripts...)
			var out bytes.Buffer
			p := NewTUIPrompter(strings.NewReader(""), &out)

			name, err := p.RepoName()

			require.NoError(t, err)
			assert.Equal(t, tc.expected, name)
			assert.Equal(t, len(tc.scripts), *calls)
			assert.Contains(t, out.String(), tc.output)
		})
	}
}

func TestTUIPrompterInterrupts(t *testing.T) {
	testCases := []struct {
		name    string
		scripts [][]string
		ask     func(p *TUIPrompter) error
	}{
		{"Escape on the name screen", [][]string{typed("abc", "esc")}, func(p *TUIPrompter) error {
			_, err := p.RepoName()
			return err
		}},
		{"Ctrl+C on the name confirmation", [][]string{typed("A B", "enter"), {"ctrl+c"}}, func(p *TUIPrompter) error {
			_, err := p.RepoName()
			return err
		}},
		{"Escape on the type menu", [][]string{{"esc"}}, func(p *TUIPrompter) error {
			_, err := p.RepoType()
			return err
		}},
		{"Ctrl+C on the privacy menu", [][]string{{"ctrl+c"}}, func(p *TUIPrompter) error {
			_, err := p.Privacy()
			return err
		}},
		{"Escape on the editor menu", [][]string{{"esc"}}, func(p *TUIPrompter) error {
			_, err := p.Editor()
			return err
		}},
		{"Ctrl+C on the final confirmation", [][]string{{"ctrl+c"}}, func(p *TUIPrompter) error {
			_, err := p.Confirm("Proceed with creation?")
			return err
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scriptScreens(t, tc.scripts...)
			p := NewTUIPrompter(strings.NewReader(""), &bytes.Buffer{})

			err := tc.ask(p)

			require.ErrorIs(t, err, ErrInterrupted)
		})
	}
}

func TestTUIPrompterMenus(t *testing.T) {
	t.Run("repo type", func(t *testing.T) {
		for key, expected := range map[string]RepoType{"enter": GitHub, "1": GitHub, "2": HuggingFace} {
			scriptScreens(t, []string{key})
			got, err := NewTUIPrompter(strings.NewReader(""), &bytes.Buffer{}).RepoType()
			require.NoError(t, err)
			assert.Equal(t, expected, got, "key %q", key)
		}
	})

	t.Run("privacy", func(t *testing.T) {
		for key, expected := range map[string]Privacy{"enter": Private, "1": Private, "2": Public} {
			scriptScreens(t, []string{key})
			got, err := NewTUIPrompter(strings.NewReader(""), &bytes.Buffer{}).Privacy()
			require.NoError(t, err)
			assert.Equal(t, expected, got, "key %q", key)
		}
	})

	t.Run("editor", func(t *testing.T) {
		testCases := []struct {
			keys     []string
			expected Editor
		}{
			{[]string{"enter"}, NoEditor},
			{[]string{"1"}, Windsurf},
			{[]string{"2"}, VSCode},
			{[]string{"up", "enter"}, CodeInsiders},
			{[]string{"9", "4"}, NoEditor},
		}
		for _, tc := range testCases {
			scriptScreens(t, tc.keys)
			got, err := NewTUIPrompter(strings.NewReader(""), &bytes.Buffer{}).Editor()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got, "keys %v", tc.keys)
		}
	})

	t.Run("confirm", func(t *testing.T) {
		for key, expected := range map[string]bool{"enter": true, "y": true, "n": false, "esc": false} {
			scriptScreens(t, []string{key})
			got, err := NewTUIPrompter(strings.NewReader(""), &bytes.Buffer{}).Confirm("Proceed with creation?")
			require.NoError(t, err)
			assert.Equal(t, expected, got, "key %q", key)
		}
	})
}

func TestTUIPrompterProgramError(t *testing.T) {
	original := runTeaProgram
	runTeaProgram = func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
		return nil, errors.New("could not open a new TTY")
	}
	t.Cleanup(func() { runTeaProgram = original })
	p := NewTUIPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Privacy()

	require.EqualError(t, err, "could not open a new TTY")
}
