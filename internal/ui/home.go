package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"cookbook/internal/domain"
	"cookbook/internal/view"
)

// homeScreen shows the favorites shelf and the category grid.
type homeScreen struct {
	d     *deps
	token string

	loading bool
	spin    spinner.Model
	err     error

	favorites  []domain.Dish
	categories []domain.Category
	cursor     int
}

func newHomeScreen(d *deps) *homeScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = secondaryStyle
	return &homeScreen{
		d:       d,
		token:   uuid.NewString(),
		loading: true,
		spin:    sp,
	}
}

func (h *homeScreen) Init() tea.Cmd {
	return tea.Batch(h.spin.Tick, loadHome(h.d, h.token))
}

func (h *homeScreen) itemCount() int {
	return len(h.favorites) + len(h.categories)
}

func (h *homeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeDataMsg:
		if msg.token != h.token {
			return h, nil
		}
		h.loading = false
		h.err = nil
		h.favorites = view.Favorites(msg.dishes)
		h.categories = view.OrderedCategories(msg.categories)
		if h.cursor >= h.itemCount() {
			h.cursor = 0
		}
		return h, nil

	case loadFailedMsg:
		if msg.token != h.token {
			return h, nil
		}
		h.loading = false
		h.err = msg.err
		return h, nil

	case spinner.TickMsg:
		if !h.loading {
			return h, nil
		}
		var cmd tea.Cmd
		h.spin, cmd = h.spin.Update(msg)
		return h, cmd

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	return h, nil
}

func (h *homeScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return h, tea.Quit

	case "r":
		h.loading = true
		h.err = nil
		return h, tea.Batch(h.spin.Tick, loadHome(h.d, h.token))

	case "n":
		return h, push(newEditScreen(h.d, 0))

	case "up", "k":
		if h.cursor > 0 {
			h.cursor--
		}
		return h, nil

	case "down", "j":
		if h.cursor < h.itemCount()-1 {
			h.cursor++
		}
		return h, nil

	case "enter":
		if h.loading || h.err != nil || h.itemCount() == 0 {
			return h, nil
		}
		if h.cursor < len(h.favorites) {
			return h, push(newDetailScreen(h.d, h.favorites[h.cursor].ID))
		}
		cat := h.categories[h.cursor-len(h.favorites)]
		return h, push(newCategoryScreen(h.d, cat.ID))
	}

	return h, nil
}

func (h *homeScreen) View() string {
	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("  Cookbook") + "\n\n")

	if h.loading {
		b.WriteString("  " + h.spin.View() + secondaryStyle.Render(" loading dishes...") + "\n")
		return b.String()
	}
	if h.err != nil {
		b.WriteString(errorLine(h.err))
		return b.String()
	}

	b.WriteString(headerStyle.Render("  Favorites") + "\n")
	if len(h.favorites) == 0 {
		b.WriteString(secondaryStyle.Render("  No favorites yet") + "\n")
	}
	for i, dish := range h.favorites {
		line := fmt.Sprintf("%s  %d min", dish.Name, dish.TotalTime())
		b.WriteString(h.renderItem(i, line, true))
	}

	b.WriteString("\n" + headerStyle.Render("  Categories") + "\n")
	if len(h.categories) == 0 {
		b.WriteString(secondaryStyle.Render("  No categories") + "\n")
	}
	for i, cat := range h.categories {
		b.WriteString(h.renderItem(len(h.favorites)+i, view.CategoryTitle(cat.Name), false))
	}

	b.WriteString("\n" + footerStyle.Render("  up/down: move • enter: open • n: new dish • r: refresh • q: quit"))
	return b.String()
}

func (h *homeScreen) renderItem(index int, label string, favorite bool) string {
	marker := "  "
	style := primaryStyle
	if index == h.cursor {
		marker = "> "
		style = selectedStyle
	}
	line := "  " + marker + style.Render(label)
	if favorite {
		line += " " + favoriteStyle.Render("♥")
	}
	return line + "\n"
}
