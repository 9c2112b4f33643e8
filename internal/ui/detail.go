package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"cookbook/internal/domain"
	"cookbook/internal/view"
)

// detailScreen renders one recipe: metadata, an ingredient checklist,
// and the numbered instructions, scrollable in a viewport. Deleting
// requires typing the confirmation phrase first.
type detailScreen struct {
	d      *deps
	token  string
	dishID int64

	loading bool
	spin    spinner.Model
	err     error

	dish    *domain.Dish
	checked map[int]bool
	vp      viewport.Model

	confirming bool
	deleting   bool
	confirm    textinput.Model
	deleteErr  error
}

func newDetailScreen(d *deps, dishID int64) *detailScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = secondaryStyle

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = labelStyle
	ti.CharLimit = 120

	return &detailScreen{
		d:       d,
		token:   uuid.NewString(),
		dishID:  dishID,
		loading: true,
		spin:    sp,
		checked: make(map[int]bool),
		confirm: ti,
	}
}

func (s *detailScreen) Init() tea.Cmd {
	return tea.Batch(s.spin.Tick, loadDetail(s.d, s.token, s.dishID))
}

// confirmPhrase is what must be typed before the DELETE request is sent.
func (s *detailScreen) confirmPhrase() string {
	name := "this recipe"
	if s.dish != nil {
		name = s.dish.Name
	}
	return "Delete " + name
}

func (s *detailScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailDataMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.loading = false
		s.err = nil
		s.dish = msg.dish
		s.checked = make(map[int]bool)
		s.resizeViewport()
		s.vp.SetContent(s.renderDish())
		return s, nil

	case loadFailedMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.loading = false
		s.err = msg.err
		return s, nil

	case deletedMsg:
		if msg.token != s.token {
			return s, nil
		}
		return s, pop("Recipe deleted")

	case deleteFailedMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.deleting = false
		s.deleteErr = msg.err
		return s, nil

	case spinner.TickMsg:
		if !s.loading && !s.deleting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.WindowSizeMsg:
		s.resizeViewport()
		if s.dish != nil {
			s.vp.SetContent(s.renderDish())
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *detailScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	if s.confirming {
		return s.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "esc", "q":
		return s, pop("")

	case "r":
		s.loading = true
		s.err = nil
		return s, tea.Batch(s.spin.Tick, loadDetail(s.d, s.token, s.dishID))

	case "e":
		if s.dish == nil {
			return s, nil
		}
		return s, push(newEditScreen(s.d, s.dishID))

	case "d":
		if s.dish == nil {
			return s, nil
		}
		s.confirming = true
		s.deleteErr = nil
		s.confirm.SetValue("")
		return s, s.confirm.Focus()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if s.dish == nil {
			return s, nil
		}
		idx := int(msg.String()[0]-'0') - 1
		if idx < len(s.dish.Ingredients) {
			s.checked[idx] = !s.checked[idx]
			s.vp.SetContent(s.renderDish())
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *detailScreen) handleConfirmKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		s.confirming = false
		s.confirm.SetValue("")
		s.deleteErr = nil
		return s, nil

	case tea.KeyEnter:
		if s.deleting || s.confirm.Value() != s.confirmPhrase() {
			return s, nil
		}
		s.deleting = true
		return s, tea.Batch(s.spin.Tick, deleteDish(s.d, s.token, s.dishID))
	}

	var cmd tea.Cmd
	s.confirm, cmd = s.confirm.Update(msg)
	return s, cmd
}

func (s *detailScreen) resizeViewport() {
	// Leave room for the title line and the footer.
	h := s.d.height - 6
	if h < 3 {
		h = 3
	}
	s.vp.Width = s.d.width
	s.vp.Height = h
}

func (s *detailScreen) View() string {
	var b strings.Builder

	name := ""
	if s.dish != nil {
		name = s.dish.Name
	}
	b.WriteString("\n" + titleStyle.Render("  "+name) + "\n\n")

	if s.loading {
		b.WriteString("  " + s.spin.View() + secondaryStyle.Render(" loading recipe...") + "\n")
		return b.String()
	}
	if s.err != nil {
		b.WriteString(errorLine(s.err))
		return b.String()
	}

	b.WriteString(s.vp.View() + "\n")

	if s.confirming {
		b.WriteString(errorStyle.Render("  Confirm deletion") + "\n")
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  Type %q and press enter:", s.confirmPhrase())) + "\n")
		b.WriteString("  " + s.confirm.View() + "\n")
		if s.deleting {
			b.WriteString("  " + s.spin.View() + secondaryStyle.Render(" deleting...") + "\n")
		}
		if s.deleteErr != nil {
			b.WriteString(errorStyle.Render("  Failed to delete recipe: "+s.deleteErr.Error()) + "\n")
		}
		b.WriteString(footerStyle.Render("  enter: delete permanently • esc: cancel"))
		return b.String()
	}

	b.WriteString(footerStyle.Render("  up/down: scroll • 1-9: check ingredient • e: edit • d: delete • r: refresh • esc: back"))
	return b.String()
}

func (s *detailScreen) renderDish() string {
	d := s.dish
	var b strings.Builder

	if d.Description != "" {
		b.WriteString(primaryStyle.Render("  "+d.Description) + "\n\n")
	}

	b.WriteString(secondaryStyle.Render(fmt.Sprintf(
		"  Prep: %d min   Cook: %d min   Total: %d min",
		d.PrepTime, d.CookTime, d.TotalTime())) + "\n")

	if !d.Image.IsZero() {
		b.WriteString(secondaryStyle.Render("  Image: "+view.ImageURL(s.d.base, d.Image)) + "\n")
	}

	b.WriteString("\n" + headerStyle.Render("  Ingredients") + "\n")
	for i, ing := range d.Ingredients {
		box := "[ ]"
		style := primaryStyle
		if s.checked[i] {
			box = "[x]"
			style = checkedStyle
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(box), style.Render(view.IngredientLine(ing))))
	}

	b.WriteString("\n" + headerStyle.Render("  Instructions") + "\n")
	for _, st := range d.Steps {
		instruction := st.Instruction
		if instruction == "" {
			instruction = "No instructions provided"
		}
		b.WriteString(selectedStyle.Render(fmt.Sprintf("  Step %d", st.Number)) + "\n")
		b.WriteString(primaryStyle.Render("  "+instruction) + "\n")
		if !st.Image.IsZero() {
			b.WriteString(secondaryStyle.Render("  Image: "+view.ImageURL(s.d.base, st.Image)) + "\n")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
