package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tavmurphy1/homeslice-go/internal/recipebook"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

type recipesLoadedMsg struct {
	seq int
	err error
}

type recipeGeneratedMsg struct {
	seq int
	err error
}

type recipeDeletedMsg struct {
	seq int
	err error
}

type recipesModel struct {
	store *recipebook.Store
	ctx   context.Context
	seq   int

	recipes    []types.Recipe
	cursor     int
	loading    bool
	generating bool
	message    string
}

func newRecipesModel() recipesModel {
	return recipesModel{}
}

func (m *recipesModel) enter(ctx context.Context, seq int, store *recipebook.Store) tea.Cmd {
	m.store = store
	m.ctx = ctx
	m.seq = seq
	m.loading = true
	m.message = ""
	m.recipes = store.Recipes()
	return func() tea.Msg {
		return recipesLoadedMsg{seq: seq, err: store.Refresh(ctx)}
	}
}

// generateTimeout bounds the model-backed generation endpoint. The client's
// regular HTTP timeout does not apply to generation, so the view sets its
// own ceiling.
const generateTimeout = 90 * time.Second

func (m *recipesModel) generate() tea.Cmd {
	ctx, seq, store := m.ctx, m.seq, m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, generateTimeout)
		defer cancel()
		_, err := store.Generate(ctx)
		return recipeGeneratedMsg{seq: seq, err: err}
	}
}

func (m *recipesModel) deleteSelected() tea.Cmd {
	if m.cursor >= len(m.recipes) {
		return nil
	}
	id := m.recipes[m.cursor].ID
	ctx, seq, store := m.ctx, m.seq, m.store
	return func() tea.Msg {
		return recipeDeletedMsg{seq: seq, err: store.Remove(ctx, id)}
	}
}

func (m *recipesModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		if msg.seq != m.seq {
			return a, nil
		}
		m.loading = false
		if msg.err != nil {
			// A failed list stops the loading state and shows the error.
			m.message = msg.err.Error()
		}
		m.recipes = m.store.Recipes()
		if m.cursor >= len(m.recipes) {
			m.cursor = 0
		}
		return a, nil

	case recipeGeneratedMsg:
		if msg.seq != m.seq {
			return a, nil
		}
		m.generating = false
		if msg.err != nil {
			m.message = msg.err.Error()
			return a, nil
		}
		m.message = ""
		m.recipes = m.store.Recipes()
		m.cursor = 0
		return a, nil

	case recipeDeletedMsg:
		if msg.seq != m.seq {
			return a, nil
		}
		if msg.err != nil {
			m.message = msg.err.Error()
			return a, nil
		}
		m.recipes = m.store.Recipes()
		if m.cursor >= len(m.recipes) && m.cursor > 0 {
			m.cursor--
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.recipes)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.recipes) {
				id := m.recipes[m.cursor].ID
				return a, a.openDetail(id)
			}
		case "g":
			if !m.generating {
				m.generating = true
				m.message = "Generating recipe from your pantry…"
				return a, m.generate()
			}
		case "d":
			return a, m.deleteSelected()
		case "r":
			m.loading = true
			return a, m.enter(m.ctx, m.seq, m.store)
		case "1":
			return a, a.navigate(routePantry)
		case "q":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (m *recipesModel) view() string {
	s := "\n  " + titleStyle.Render("Your Recipes") + "\n\n"

	switch {
	case m.loading:
		s += "  " + taglineStyle.Render("Loading recipes…") + "\n"
	case len(m.recipes) == 0:
		s += "  " + itemStyle.Render("You have no saved recipes.") + "\n"
	default:
		for i, r := range m.recipes {
			line := r.Title
			if r.Description != "" {
				line += " · " + r.Description
			}
			if i == m.cursor {
				s += "  " + selectedStyle.Render("> "+line) + "\n"
			} else {
				s += "  " + itemStyle.Render("  "+line) + "\n"
			}
		}
	}

	if m.message != "" {
		style := errorStyle
		if m.generating {
			style = infoStyle
		}
		s += "\n  " + style.Render(m.message) + "\n"
	}

	s += "\n  " + hintStyle.Render("enter view · g generate · d delete · r refresh · 1 pantry · ctrl+o sign out · q quit") + "\n"
	return s
}
