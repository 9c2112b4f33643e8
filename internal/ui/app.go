// Package ui implements the terminal screens using Bubble Tea: home
// (favorites and categories), category dish list, recipe detail, and the
// recipe create/edit form.
//
// Navigation is a stack of screen instances. Each screen owns its state
// for its lifetime and is discarded on exit; nothing is shared or reused
// across navigations. Every screen instance carries a unique token, and
// fetch replies tagged with a token that is no longer on top are dropped.
package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"cookbook/internal/domain"
	"cookbook/internal/logger"
)

// screen is one entry in the navigation stack.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

// deps carries what every screen needs. Width and height track the
// terminal and are updated by the root model before delegation.
type deps struct {
	svc    domain.DishService
	cats   domain.CatalogSource
	log    *logger.Logger
	base   string // API base URL, for resolving relative image paths
	width  int
	height int
}

// App is the root Bubble Tea model.
type App struct {
	d     *deps
	stack []screen
	flash string
}

// NewApp builds the application rooted at the home screen.
func NewApp(svc domain.DishService, cats domain.CatalogSource, log *logger.Logger, baseURL string) *App {
	d := &deps{svc: svc, cats: cats, log: log, base: baseURL, width: 80, height: 24}
	return &App{
		d:     d,
		stack: []screen{newHomeScreen(d)},
	}
}

func (a *App) top() screen { return a.stack[len(a.stack)-1] }

// Init starts the home screen's loads.
func (a *App) Init() tea.Cmd { return a.top().Init() }

// Update routes messages. Window sizes go to every screen on the stack
// so a screen returned to still fits the terminal; everything else goes
// to the top screen only.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		a.flash = ""

	case tea.WindowSizeMsg:
		a.d.width = msg.Width
		a.d.height = msg.Height
		var cmds []tea.Cmd
		for i, s := range a.stack {
			next, cmd := s.Update(msg)
			a.stack[i] = next
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case pushScreenMsg:
		a.stack = append(a.stack, msg.s)
		return a, msg.s.Init()

	case popScreenMsg:
		if len(a.stack) == 1 {
			return a, tea.Quit
		}
		a.stack = a.stack[:len(a.stack)-1]
		a.flash = msg.note
		return a, nil
	}

	next, cmd := a.top().Update(msg)
	a.stack[len(a.stack)-1] = next
	return a, cmd
}

// View renders the top screen plus a transient flash line.
func (a *App) View() string {
	v := a.top().View()
	if a.flash != "" {
		v += "\n" + okStyle.Render("  "+a.flash)
	}
	return v
}

// push wraps a screen into the navigation message.
func push(s screen) tea.Cmd {
	return func() tea.Msg { return pushScreenMsg{s: s} }
}

// pop leaves the current screen, optionally flashing a note on the
// screen below.
func pop(note string) tea.Cmd {
	return func() tea.Msg { return popScreenMsg{note: note} }
}

// errorLine renders a screen-level failure the way every screen shows
// it: a message plus the manual retry hint. Not-found is called out
// separately from generic errors.
func errorLine(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return errorStyle.Render("  Recipe not found") + "\n" +
			footerStyle.Render("  esc: back")
	}
	return errorStyle.Render("  Error loading data") + "\n" +
		secondaryStyle.Render("  "+err.Error()) + "\n" +
		footerStyle.Render("  r: retry • esc: back")
}
