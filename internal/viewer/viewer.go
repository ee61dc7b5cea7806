// Package viewer shows drawn figures full-screen in the terminal, one at a
// time, and blocks until the user dismisses each one.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned when the user quits the whole run instead of
// moving on to the next figure.
var ErrAborted = errors.New("viewer: aborted by user")

type model struct {
	title   string
	body    string
	index   int
	width   int
	aborted bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ", "n", "q", "esc":
			return m, tea.Quit
		case "ctrl+c", "Q":
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	header := m.title
	if m.index > 0 {
		header = fmt.Sprintf("%s  %s", positionStyle.Render(fmt.Sprintf("#%d", m.index)), m.title)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")
	panel := panelStyle
	if m.width > 0 {
		panel = panel.MaxWidth(m.width)
	}
	b.WriteString(panel.Render(m.body))
	b.WriteString("\n")
	b.WriteString(keyHint.Render("enter/q: next figure  ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

// Viewer presents figures with a bubbletea program per figure.
type Viewer struct {
	opts  []tea.ProgramOption
	shown int
}

func New(opts ...tea.ProgramOption) *Viewer {
	return &Viewer{opts: opts}
}

// Present blocks until the figure is dismissed.
func (v *Viewer) Present(ctx context.Context, title, body string) error {
	v.shown++
	m := model{title: title, body: body, index: v.shown}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, v.opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.aborted {
		return ErrAborted
	}
	return nil
}
