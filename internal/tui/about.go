package tui

import tea "github.com/charmbracelet/bubbletea"

func updateAbout(a *App, msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "backspace":
			return a, a.navigate(routeLogin)
		case "q":
			return a, tea.Quit
		}
	}
	return a, nil
}

func viewAbout() string {
	return "\n  " + titleStyle.Render("About HomeSlice") + "\n\n" +
		"  " + itemStyle.Render("HomeSlice keeps track of what is in your pantry and") + "\n" +
		"  " + itemStyle.Render("turns it into recipes you can actually cook tonight.") + "\n\n" +
		"  " + itemStyle.Render("Add ingredients as you buy them, generate a recipe") + "\n" +
		"  " + itemStyle.Render("from whatever you have on hand, and save the keepers.") + "\n\n" +
		"  " + hintStyle.Render("esc back to sign in · q quit") + "\n"
}
