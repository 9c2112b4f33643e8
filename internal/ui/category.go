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

// categoryScreen lists the dishes of one category.
type categoryScreen struct {
	d          *deps
	token      string
	categoryID int64

	loading bool
	spin    spinner.Model
	err     error

	category *domain.Category
	dishes   []domain.Dish
	cursor   int
}

func newCategoryScreen(d *deps, categoryID int64) *categoryScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = secondaryStyle
	return &categoryScreen{
		d:          d,
		token:      uuid.NewString(),
		categoryID: categoryID,
		loading:    true,
		spin:       sp,
	}
}

func (c *categoryScreen) Init() tea.Cmd {
	return tea.Batch(c.spin.Tick, loadCategory(c.d, c.token, c.categoryID))
}

func (c *categoryScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case categoryDataMsg:
		if msg.token != c.token {
			return c, nil
		}
		c.loading = false
		c.err = nil
		c.category = msg.category
		c.dishes = msg.dishes
		if c.cursor >= len(c.dishes) {
			c.cursor = 0
		}
		return c, nil

	case loadFailedMsg:
		if msg.token != c.token {
			return c, nil
		}
		c.loading = false
		c.err = msg.err
		return c, nil

	case spinner.TickMsg:
		if !c.loading {
			return c, nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return c, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return c, pop("")

		case "r":
			// The manual refresh path; failed loads are never retried on
			// their own.
			c.loading = true
			c.err = nil
			return c, tea.Batch(c.spin.Tick, loadCategory(c.d, c.token, c.categoryID))

		case "up", "k":
			if c.cursor > 0 {
				c.cursor--
			}
			return c, nil

		case "down", "j":
			if c.cursor < len(c.dishes)-1 {
				c.cursor++
			}
			return c, nil

		case "enter":
			if c.loading || c.err != nil || len(c.dishes) == 0 {
				return c, nil
			}
			return c, push(newDetailScreen(c.d, c.dishes[c.cursor].ID))
		}
	}

	return c, nil
}

func (c *categoryScreen) View() string {
	var b strings.Builder

	title := "Recipes"
	if c.category != nil {
		title = view.CategoryTitle(c.category.Name)
	}
	b.WriteString("\n" + titleStyle.Render("  "+title) + "\n\n")

	if c.loading {
		b.WriteString("  " + c.spin.View() + secondaryStyle.Render(" loading dishes...") + "\n")
		return b.String()
	}
	if c.err != nil {
		b.WriteString(errorLine(c.err))
		return b.String()
	}

	if len(c.dishes) == 0 {
		b.WriteString(secondaryStyle.Render("  No dishes found in this category") + "\n")
	}
	for i, dish := range c.dishes {
		marker := "  "
		style := primaryStyle
		if i == c.cursor {
			marker = "> "
			style = selectedStyle
		}
		line := "  " + marker + style.Render(dish.Name) +
			secondaryStyle.Render(fmt.Sprintf("  %d min", dish.TotalTime()))
		if dish.Favorite {
			line += " " + favoriteStyle.Render("♥")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + footerStyle.Render("  up/down: move • enter: open • r: refresh • esc: back"))
	return b.String()
}
