package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	homeslice "github.com/tavmurphy1/homeslice-go"
)

type accountCreatedMsg struct{ err error }

type accountModel struct {
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	focus    int
	message  string
	busy     bool
}

func newAccountModel() accountModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword

	confirm := textinput.New()
	confirm.Placeholder = "Confirm password"
	confirm.EchoMode = textinput.EchoPassword

	return accountModel{email: email, password: password, confirm: confirm}
}

func (m *accountModel) submit(a *App) tea.Cmd {
	req := homeslice.CreateAccountRequest{Email: m.email.Value(), Password: m.password.Value()}
	client := a.deps.Client
	return func() tea.Msg {
		_, err := client.CreateAccount(context.Background(), req)
		return accountCreatedMsg{err: err}
	}
}

func (m *accountModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case accountCreatedMsg:
		m.busy = false
		if msg.err != nil {
			m.message = msg.err.Error()
			return a, nil
		}
		a.login.message = "Account created, please sign in."
		return a, a.navigate(routeLogin)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.focus = (m.focus + 1) % 3
		case tea.KeyUp:
			m.focus = (m.focus + 2) % 3
		case tea.KeyEsc:
			return a, a.navigate(routeLogin)
		case tea.KeyEnter:
			if m.busy {
				return a, nil
			}
			// Mismatched passwords never reach the network.
			if m.password.Value() != m.confirm.Value() {
				m.message = "Passwords do not match."
				return a, nil
			}
			m.busy = true
			m.message = "Creating account…"
			return a, m.submit(a)
		}
	}

	inputs := []*textinput.Model{&m.email, &m.password, &m.confirm}
	for i, in := range inputs {
		if i == m.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}

	var cmds []tea.Cmd
	for _, in := range inputs {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (m *accountModel) view() string {
	s := "\n  " + titleStyle.Render("Create your HomeSlice account") + "\n\n"
	s += "  " + m.email.View() + "\n"
	s += "  " + m.password.View() + "\n"
	s += "  " + m.confirm.View() + "\n\n"
	if m.message != "" {
		s += "  " + errorStyle.Render(m.message) + "\n\n"
	}
	s += "  " + hintStyle.Render("enter submit · esc back to login · ctrl+c quit") + "\n"
	return s
}
