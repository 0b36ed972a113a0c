package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tavmurphy1/homeslice-go/internal/pantry"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

type pantryLoadedMsg struct {
	seq int
	err error
}

type pantryOpMsg struct {
	seq int
	err error
}

type pantryModel struct {
	store *pantry.Store
	ctx   context.Context
	seq   int

	items   []types.Ingredient
	cursor  int
	loading bool
	message string

	// inline add/edit form
	formOpen bool
	editID   string // empty while adding
	name     textinput.Model
	quantity textinput.Model
	unit     textinput.Model
	focus    int
}

func newPantryModel() pantryModel {
	name := textinput.New()
	name.Placeholder = "Name"
	quantity := textinput.New()
	quantity.Placeholder = "Quantity"
	unit := textinput.New()
	unit.Placeholder = "Unit (pieces, cups, grams, …)"
	return pantryModel{name: name, quantity: quantity, unit: unit}
}

// enter wires the view to its per-visit context and kicks off the initial
// list fetch. Results from a previous visit carry a stale seq and are
// dropped.
func (m *pantryModel) enter(ctx context.Context, seq int, store *pantry.Store) tea.Cmd {
	m.store = store
	m.ctx = ctx
	m.seq = seq
	m.loading = true
	m.message = ""
	m.formOpen = false
	m.items = store.Items()
	return func() tea.Msg {
		return pantryLoadedMsg{seq: seq, err: store.Refresh(ctx)}
	}
}

func (m *pantryModel) refresh() tea.Cmd {
	ctx, seq, store := m.ctx, m.seq, m.store
	return func() tea.Msg {
		return pantryLoadedMsg{seq: seq, err: store.Refresh(ctx)}
	}
}

func (m *pantryModel) submitForm() tea.Cmd {
	qty, err := strconv.ParseFloat(m.quantity.Value(), 64)
	if err != nil {
		m.message = "invalid quantity: enter a number"
		return nil
	}
	in := types.IngredientInput{Name: m.name.Value(), Quantity: qty, Unit: m.unit.Value()}
	ctx, seq, store, editID := m.ctx, m.seq, m.store, m.editID
	return func() tea.Msg {
		var err error
		if editID == "" {
			_, err = store.Add(ctx, in)
		} else {
			_, err = store.Update(ctx, editID, in)
		}
		return pantryOpMsg{seq: seq, err: err}
	}
}

func (m *pantryModel) deleteSelected() tea.Cmd {
	if m.cursor >= len(m.items) {
		return nil
	}
	id := m.items[m.cursor].ID
	ctx, seq, store := m.ctx, m.seq, m.store
	return func() tea.Msg {
		return pantryOpMsg{seq: seq, err: store.Remove(ctx, id)}
	}
}

func (m *pantryModel) openForm(editing *types.Ingredient) {
	m.formOpen = true
	m.focus = 0
	m.message = ""
	if editing != nil {
		m.editID = editing.ID
		m.name.SetValue(editing.Name)
		m.quantity.SetValue(fmt.Sprintf("%g", editing.Quantity))
		m.unit.SetValue(editing.Unit)
	} else {
		m.editID = ""
		m.name.SetValue("")
		m.quantity.SetValue("")
		m.unit.SetValue("")
	}
}

func (m *pantryModel) closeForm() {
	m.formOpen = false
	m.name.Blur()
	m.quantity.Blur()
	m.unit.Blur()
}

func (m *pantryModel) update(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pantryLoadedMsg:
		if msg.seq != m.seq {
			return a, nil
		}
		m.loading = false
		if msg.err != nil {
			m.message = msg.err.Error()
		}
		m.items = m.store.Items()
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return a, nil

	case pantryOpMsg:
		if msg.seq != m.seq {
			return a, nil
		}
		if msg.err != nil {
			m.message = msg.err.Error()
			return a, nil
		}
		// Success clears and closes the form.
		m.message = ""
		m.closeForm()
		m.items = m.store.Items()
		if m.cursor >= len(m.items) && m.cursor > 0 {
			m.cursor--
		}
		return a, nil

	case tea.KeyMsg:
		if m.formOpen {
			return m.updateForm(a, msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "a":
			m.openForm(nil)
		case "e":
			if m.cursor < len(m.items) {
				it := m.items[m.cursor]
				m.openForm(&it)
			}
		case "d":
			return a, m.deleteSelected()
		case "r":
			m.loading = true
			return a, m.refresh()
		case "2":
			return a, a.navigate(routeRecipes)
		case "q":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (m *pantryModel) updateForm(a *App, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeForm()
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		m.focus = (m.focus + 1) % 3
	case tea.KeyUp:
		m.focus = (m.focus + 2) % 3
	case tea.KeyEnter:
		return a, m.submitForm()
	}

	inputs := []*textinput.Model{&m.name, &m.quantity, &m.unit}
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

func (m *pantryModel) view() string {
	s := "\n  " + titleStyle.Render("Your Pantry") + "\n\n"

	switch {
	case m.loading:
		s += "  " + taglineStyle.Render("Loading pantry…") + "\n"
	case len(m.items) == 0:
		// A failed first load is not the same as an empty pantry.
		if m.store != nil && !m.store.Loaded() {
			s += "  " + itemStyle.Render("Couldn't load your pantry.") + "\n"
		} else {
			s += "  " + itemStyle.Render("Your pantry is empty.") + "\n"
		}
	default:
		for i, it := range m.items {
			line := fmt.Sprintf("%g %s %s", it.Quantity, it.Unit, it.Name)
			if i == m.cursor {
				s += "  " + selectedStyle.Render("> "+line) + "\n"
			} else {
				s += "  " + itemStyle.Render("  "+line) + "\n"
			}
		}
	}

	if m.formOpen {
		header := "Add ingredient"
		if m.editID != "" {
			header = "Edit ingredient"
		}
		s += "\n  " + labelStyle.Render(header) + "\n"
		s += "  " + m.name.View() + "\n"
		s += "  " + m.quantity.View() + "\n"
		s += "  " + m.unit.View() + "\n"
	}

	if m.message != "" {
		s += "\n  " + errorStyle.Render(m.message) + "\n"
	}

	if m.formOpen {
		s += "\n  " + hintStyle.Render("enter save · esc cancel") + "\n"
	} else {
		s += "\n  " + hintStyle.Render("a add · e edit · d delete · r refresh · 2 recipes · ctrl+o sign out · q quit") + "\n"
	}
	return s
}
