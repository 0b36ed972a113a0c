// Package tui is the terminal front end for HomeSlice: login,
// create-account, pantry, recipes, recipe-detail and about views over the
// client SDK. Protected views sit behind the route guard; while auth state
// is unresolved a placeholder is shown, and a signed-out visitor lands on
// the login view with no way to navigate back into the guarded area.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	homeslice "github.com/tavmurphy1/homeslice-go"
	"github.com/tavmurphy1/homeslice-go/internal/idp"
	"github.com/tavmurphy1/homeslice-go/internal/pantry"
	"github.com/tavmurphy1/homeslice-go/internal/recipebook"
	"github.com/tavmurphy1/homeslice-go/internal/types"
)

type route int

const (
	routeLogin route = iota
	routeCreateAccount
	routeAbout
	routePantry
	routeRecipes
	routeDetail
)

func (r route) protected() bool {
	switch r {
	case routePantry, routeRecipes, routeDetail:
		return true
	default:
		return false
	}
}

// Deps are the collaborators the TUI renders over.
type Deps struct {
	Client   *homeslice.Client
	Auth     *homeslice.AuthStore
	Provider idp.Provider
	Pantry   *pantry.Store
	Recipes  *recipebook.Store
}

// sessionMsg carries one processed auth-state snapshot.
type sessionMsg types.Session

// App is the root Bubble Tea model.
type App struct {
	deps Deps

	route   route
	session types.Session

	sessions      <-chan types.Session
	cancelWatch   func()
	viewCtx       context.Context
	cancelView    context.CancelFunc
	viewSeq       int
	width, height int

	// lastProfileUID dedupes the post-sign-in profile upsert per identity.
	lastProfileUID string

	login   loginModel
	account accountModel
	pantry  pantryModel
	recipes recipesModel
	detail  detailModel
}

// NewApp builds the root model. The auth store must already be started.
func NewApp(deps Deps) *App {
	sessions, cancelWatch := deps.Auth.Watch()
	a := &App{
		deps:        deps,
		route:       routeLogin,
		session:     deps.Auth.Session(),
		sessions:    sessions,
		cancelWatch: cancelWatch,
	}
	a.login = newLoginModel()
	a.account = newAccountModel()
	a.pantry = newPantryModel()
	a.recipes = newRecipesModel()
	a.viewCtx, a.cancelView = context.WithCancel(context.Background())
	return a
}

// Run starts the program and blocks until quit.
func (a *App) Run() error {
	defer a.cancelWatch()
	defer a.cancelView()
	_, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.awaitSession()
}

// awaitSession forwards the next auth-state snapshot into the program.
func (a *App) awaitSession() tea.Cmd {
	ch := a.sessions
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return sessionMsg(s)
	}
}

// navigate switches views. The previous view's context is cancelled so its
// in-flight requests are torn down with it, and stale result messages are
// dropped by sequence number.
func (a *App) navigate(r route) tea.Cmd {
	a.cancelView()
	a.viewCtx, a.cancelView = context.WithCancel(context.Background())
	a.viewSeq++
	a.route = r

	switch r {
	case routePantry:
		return a.pantry.enter(a.viewCtx, a.viewSeq, a.deps.Pantry)
	case routeRecipes:
		return a.recipes.enter(a.viewCtx, a.viewSeq, a.deps.Recipes)
	default:
		return nil
	}
}

// upsertProfile records the signed-in identity with the backend, once per
// UID. Failures are logged and otherwise ignored; the profile row is not
// load-bearing for any view.
func (a *App) upsertProfile() tea.Cmd {
	s := a.session
	if s.User == nil || s.Token == "" || s.User.UID == a.lastProfileUID {
		return nil
	}
	a.lastProfileUID = s.User.UID
	client, uid, email := a.deps.Client, s.User.UID, s.User.Email
	return func() tea.Msg {
		if err := client.SaveProfile(context.Background(), types.ProfileRequest{UID: uid, Email: email}); err != nil {
			log.Warn().Err(err).Msg("profile upsert failed")
		}
		return nil
	}
}

// openDetail navigates to the recipe-detail view and starts the fetch under
// the new view's context.
func (a *App) openDetail(id string) tea.Cmd {
	nav := a.navigate(routeDetail)
	fetch := a.detail.enter(a.viewCtx, a.viewSeq, a.deps.Recipes, id)
	return tea.Batch(nav, fetch)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case sessionMsg:
		a.session = types.Session(msg)
		cmds := []tea.Cmd{a.awaitSession()}
		switch g := homeslice.Guard(a.session); {
		case a.route.protected() && g.Decision == homeslice.GuardRedirect:
			// A sign-out while inside the guarded area sends the visitor
			// back to login.
			cmds = append(cmds, a.navigate(routeLogin))
		case (a.route == routeLogin || a.route == routeCreateAccount) && g.Decision == homeslice.GuardAllow:
			cmds = append(cmds, a.navigate(routeRecipes))
		}
		if cmd := a.upsertProfile(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if msg.String() == "ctrl+o" && a.route.protected() {
			provider := a.deps.Provider
			// The resulting signed-out snapshot routes back to login.
			return a, func() tea.Msg {
				if err := provider.SignOut(context.Background()); err != nil {
					log.Warn().Err(err).Msg("sign out failed")
				}
				return nil
			}
		}
	}

	// Guarded subtree: children receive no input while the guard says
	// pending or redirect.
	if a.route.protected() {
		switch homeslice.Guard(a.session).Decision {
		case homeslice.GuardPending:
			return a, nil
		case homeslice.GuardRedirect:
			return a, a.navigate(routeLogin)
		}
	}

	switch a.route {
	case routeLogin:
		return a.login.update(a, msg)
	case routeCreateAccount:
		return a.account.update(a, msg)
	case routeAbout:
		return updateAbout(a, msg)
	case routePantry:
		return a.pantry.update(a, msg)
	case routeRecipes:
		return a.recipes.update(a, msg)
	case routeDetail:
		return a.detail.update(a, msg)
	}
	return a, nil
}

func (a *App) View() string {
	if a.route.protected() {
		switch homeslice.Guard(a.session).Decision {
		case homeslice.GuardPending:
			return taglineStyle.Render("\n  Checking your session…\n")
		case homeslice.GuardRedirect:
			// navigate fires from Update; render nothing guarded meanwhile.
			return ""
		}
	}

	switch a.route {
	case routeLogin:
		return a.login.view()
	case routeCreateAccount:
		return a.account.view()
	case routeAbout:
		return viewAbout()
	case routePantry:
		return a.pantry.view()
	case routeRecipes:
		return a.recipes.view()
	case routeDetail:
		return a.detail.view()
	}
	return ""
}
