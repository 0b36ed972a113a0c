package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authResultMsg struct{ err error }

type loginModel struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	message  string
	busy     bool
}

func newLoginModel() loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword

	return loginModel{email: email, password: password}
}

func (m *loginModel) signIn(a *App) tea.Cmd {
	email, password := m.email.Value(), m.password.Value()
	provider := a.deps.Provider
	return func() tea.Msg {
		_, err := provider.SignIn(context.Background(), email, password)
		return authResultMsg{err: err}
	}
}

func (m *loginModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.busy = false
		if msg.err != nil {
			// The provider's message, verbatim.
			m.message = msg.err.Error()
			return a, nil
		}
		m.message = ""
		// Navigation happens when the session snapshot lands.
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.focus = (m.focus + 1) % 2
		case tea.KeyUp:
			m.focus = (m.focus + 1) % 2
		case tea.KeyEnter:
			if m.busy {
				return a, nil
			}
			m.busy = true
			m.message = "Signing in…"
			return a, m.signIn(a)
		default:
			switch msg.String() {
			case "ctrl+n":
				return a, a.navigate(routeCreateAccount)
			case "ctrl+a":
				return a, a.navigate(routeAbout)
			}
		}
	}

	if m.focus == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (m *loginModel) view() string {
	s := "\n  " + titleStyle.Render("Welcome to HomeSlice!") + "\n"
	s += "  " + taglineStyle.Render("Discover new recipes. Cook with what you have.") + "\n\n"
	s += "  " + m.email.View() + "\n"
	s += "  " + m.password.View() + "\n\n"
	if m.message != "" {
		s += "  " + errorStyle.Render(m.message) + "\n\n"
	}
	s += "  " + hintStyle.Render("enter sign in · ctrl+n create account · ctrl+a about · ctrl+c quit") + "\n"
	return s
}
