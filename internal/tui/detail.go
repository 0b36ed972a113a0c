package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tavmurphy1/homeslice-go/internal/recipebook"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

type detailLoadedMsg struct {
	seq    int
	recipe *types.Recipe
	err    error
}

type detailModel struct {
	seq     int
	recipe  *types.Recipe
	loading bool
	message string
}

func (m *detailModel) enter(ctx context.Context, seq int, store *recipebook.Store, id string) tea.Cmd {
	*m = detailModel{seq: seq, loading: true}
	return func() tea.Msg {
		recipe, err := store.Detail(ctx, id)
		return detailLoadedMsg{seq: seq, recipe: recipe, err: err}
	}
}

func (m *detailModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.seq != m.seq {
			return a, nil
		}
		m.loading = false
		if msg.err != nil {
			m.message = msg.err.Error()
			return a, nil
		}
		m.recipe = msg.recipe
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "2":
			return a, a.navigate(routeRecipes)
		case "q":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (m *detailModel) view() string {
	if m.loading {
		return "\n  " + taglineStyle.Render("Loading recipe…") + "\n"
	}
	if m.message != "" {
		return "\n  " + errorStyle.Render(m.message) + "\n\n  " +
			hintStyle.Render("esc back · q quit") + "\n"
	}
	if m.recipe == nil {
		return "\n  " + itemStyle.Render("No recipe found.") + "\n\n  " +
			hintStyle.Render("esc back · q quit") + "\n"
	}

	r := m.recipe
	s := "\n  " + titleStyle.Render(r.Title) + "\n"
	if r.Description != "" {
		s += "  " + taglineStyle.Render(r.Description) + "\n"
	}
	s += "  " + labelStyle.Render(fmt.Sprintf("prep %dm · cook %dm · serves %d", r.PrepTime, r.CookTime, r.Servings)) + "\n"

	s += "\n  " + labelStyle.Render("Ingredients:") + "\n"
	for _, ing := range r.Ingredients {
		s += "  " + itemStyle.Render(fmt.Sprintf("- %g %s %s", ing.Quantity, ing.Unit, ing.Name)) + "\n"
	}

	s += "\n  " + labelStyle.Render("Steps:") + "\n"
	for i, step := range r.Steps {
		s += "  " + itemStyle.Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n"
	}

	if r.ImageURL != "" {
		s += "\n  " + hintStyle.Render(r.ImageURL) + "\n"
	}

	s += "\n  " + hintStyle.Render("esc back · q quit") + "\n"
	return s
}
