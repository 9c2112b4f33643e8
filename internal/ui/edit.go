package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"cookbook/internal/autocomplete"
	"cookbook/internal/domain"
	"cookbook/internal/form"
	"cookbook/internal/view"
)

// maxSuggestions caps the autocomplete dropdown height.
const maxSuggestions = 5

type fieldKind int

const (
	fieldName fieldKind = iota
	fieldDescription
	fieldCategory
	fieldImage
	fieldPrep
	fieldCook
	fieldIngName
	fieldIngQty
	fieldIngUnit
	fieldStepInstr
	fieldStepImage
)

// fieldRef addresses one focusable form field. row is the ingredient or
// step index for the per-row kinds.
type fieldRef struct {
	kind fieldKind
	row  int
}

// editScreen drives one form session: create when dishID is 0, edit
// otherwise. A single text input travels between fields; each keystroke
// is synced into the form so the form is always the source of truth.
type editScreen struct {
	d      *deps
	token  string
	dishID int64

	loading bool
	spin    spinner.Model
	err     error

	form        *form.Form
	ingredients []domain.CatalogEntry
	units       []domain.CatalogEntry
	categories  []domain.Category

	fields []fieldRef
	focus  int
	input  textinput.Model

	sugCursor int // highlight within the autocomplete dropdown
	catCursor int // highlight within the category dropdown, 0 = none

	saving  bool
	saveErr string
}

func newEditScreen(d *deps, dishID int64) *editScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = secondaryStyle

	ti := textinput.New()
	ti.Prompt = ""
	ti.TextStyle = primaryStyle
	ti.CharLimit = 500
	ti.Width = 48

	return &editScreen{
		d:       d,
		token:   uuid.NewString(),
		dishID:  dishID,
		loading: true,
		spin:    sp,
		input:   ti,
	}
}

func (e *editScreen) Init() tea.Cmd {
	return tea.Batch(e.spin.Tick, loadEdit(e.d, e.token, e.dishID))
}

func (e *editScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case editDataMsg:
		if msg.token != e.token {
			return e, nil
		}
		e.loading = false
		e.err = nil
		e.ingredients = msg.ingredients
		e.units = msg.units
		e.categories = msg.categories
		if msg.dish != nil {
			e.form = form.FromDish(msg.dish, msg.categories, e.d.base)
		} else {
			e.form = form.New()
		}
		e.rebuildFields()
		e.setFocus(0)
		return e, e.input.Focus()

	case loadFailedMsg:
		if msg.token != e.token {
			return e, nil
		}
		e.loading = false
		e.err = msg.err
		return e, nil

	case savedMsg:
		if msg.token != e.token {
			return e, nil
		}
		if msg.created {
			return e, pop("Dish created")
		}
		return e, pop("Dish updated")

	case saveFailedMsg:
		if msg.token != e.token {
			return e, nil
		}
		// The form is untouched; the user retries with the same edits.
		e.saving = false
		e.saveErr = "Failed to save dish: " + msg.err.Error()
		return e, nil

	case spinner.TickMsg:
		if !e.loading && !e.saving {
			return e, nil
		}
		var cmd tea.Cmd
		e.spin, cmd = e.spin.Update(msg)
		return e, cmd

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e, nil
}

// rebuildFields recomputes the focus order from the current row counts.
func (e *editScreen) rebuildFields() {
	e.fields = e.fields[:0]
	e.fields = append(e.fields,
		fieldRef{kind: fieldName},
		fieldRef{kind: fieldDescription},
		fieldRef{kind: fieldCategory},
		fieldRef{kind: fieldImage},
		fieldRef{kind: fieldPrep},
		fieldRef{kind: fieldCook},
	)
	for i := range e.form.Ingredients() {
		e.fields = append(e.fields,
			fieldRef{kind: fieldIngName, row: i},
			fieldRef{kind: fieldIngQty, row: i},
			fieldRef{kind: fieldIngUnit, row: i},
		)
	}
	for i := range e.form.Steps() {
		e.fields = append(e.fields,
			fieldRef{kind: fieldStepInstr, row: i},
			fieldRef{kind: fieldStepImage, row: i},
		)
	}
}

func (e *editScreen) current() fieldRef { return e.fields[e.focus] }

// setFocus moves the shared input onto another field, seeding it with
// that field's current text.
func (e *editScreen) setFocus(i int) {
	if i < 0 {
		i = len(e.fields) - 1
	}
	if i >= len(e.fields) {
		i = 0
	}
	e.focus = i
	e.sugCursor = 0
	e.input.SetValue(e.fieldText(e.current()))
	e.input.CursorEnd()

	e.catCursor = 0
	if e.current().kind == fieldCategory && e.form.Category != nil {
		for idx, c := range e.categories {
			if c.ID == e.form.Category.ID {
				e.catCursor = idx + 1 // slot 0 is "none"
				break
			}
		}
	}
}

func (e *editScreen) fieldText(ref fieldRef) string {
	switch ref.kind {
	case fieldName:
		return e.form.Name
	case fieldDescription:
		return e.form.Description
	case fieldImage:
		return string(e.form.Image)
	case fieldPrep:
		return e.form.PrepTime
	case fieldCook:
		return e.form.CookTime
	case fieldIngName:
		return e.form.Ingredients()[ref.row].Ingredient.Name()
	case fieldIngQty:
		return e.form.Ingredients()[ref.row].Quantity
	case fieldIngUnit:
		return e.form.Ingredients()[ref.row].Unit.Name()
	case fieldStepInstr:
		return e.form.Steps()[ref.row].Instruction
	case fieldStepImage:
		return string(e.form.Steps()[ref.row].Image)
	}
	return ""
}

// syncInput pushes the input's value into the form after a keystroke.
func (e *editScreen) syncInput() {
	v := e.input.Value()
	ref := e.current()
	switch ref.kind {
	case fieldName:
		e.form.Name = v
	case fieldDescription:
		e.form.Description = v
	case fieldImage:
		e.form.SetImage(domain.ImageRef(v))
	case fieldPrep:
		e.form.PrepTime = v
	case fieldCook:
		e.form.CookTime = v
	case fieldIngName:
		e.form.SetIngredientName(ref.row, v)
	case fieldIngQty:
		e.form.SetIngredientQuantity(ref.row, v)
	case fieldIngUnit:
		e.form.SetIngredientUnit(ref.row, v)
	case fieldStepInstr:
		e.form.SetStepInstruction(ref.row, v)
	case fieldStepImage:
		e.form.SetStepImage(ref.row, domain.ImageRef(v))
	}
}

// suggestions returns the autocomplete dropdown for the focused field.
func (e *editScreen) suggestions() []domain.CatalogEntry {
	var catalog []domain.CatalogEntry
	switch e.current().kind {
	case fieldIngName:
		catalog = e.ingredients
	case fieldIngUnit:
		catalog = e.units
	default:
		return nil
	}
	matches := autocomplete.Filter(e.input.Value(), catalog)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return matches
}

func (e *editScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	if e.loading || e.err != nil {
		switch msg.String() {
		case "esc", "q":
			return e, pop("")
		case "r":
			if e.err != nil {
				e.loading = true
				e.err = nil
				return e, tea.Batch(e.spin.Tick, loadEdit(e.d, e.token, e.dishID))
			}
		}
		return e, nil
	}
	if e.saving {
		return e, nil
	}

	switch msg.String() {
	case "esc":
		// The form session is discarded on exit, never persisted.
		return e, pop("")

	case "ctrl+s":
		return e.save()

	case "ctrl+f":
		e.form.ToggleFavorite()
		return e, nil

	case "ctrl+a":
		e.form.AddIngredient()
		e.rebuildFields()
		return e, nil

	case "ctrl+t":
		e.form.AddStep()
		e.rebuildFields()
		return e, nil

	case "ctrl+x":
		return e.removeCurrentRow()

	case "tab":
		e.setFocus(e.focus + 1)
		return e, nil

	case "shift+tab":
		e.setFocus(e.focus - 1)
		return e, nil

	case "up":
		return e.moveCursor(-1)

	case "down":
		return e.moveCursor(1)

	case "enter":
		return e.accept()
	}

	if e.current().kind == fieldCategory {
		// The category field has no free text; only the dropdown.
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	e.syncInput()
	e.sugCursor = 0
	return e, cmd
}

// moveCursor moves within an open dropdown, or between fields when the
// focused field has none.
func (e *editScreen) moveCursor(delta int) (screen, tea.Cmd) {
	switch e.current().kind {
	case fieldCategory:
		e.catCursor += delta
		if e.catCursor < 0 {
			e.catCursor = 0
		}
		if e.catCursor > len(e.categories) {
			e.catCursor = len(e.categories)
		}
		return e, nil

	case fieldIngName, fieldIngUnit:
		if n := len(e.suggestions()); n > 0 {
			e.sugCursor += delta
			if e.sugCursor < 0 {
				e.sugCursor = 0
			}
			if e.sugCursor >= n {
				e.sugCursor = n - 1
			}
			return e, nil
		}
	}

	e.setFocus(e.focus + delta)
	return e, nil
}

// accept applies the highlighted dropdown entry, or just advances focus
// for plain fields.
func (e *editScreen) accept() (screen, tea.Cmd) {
	ref := e.current()
	switch ref.kind {
	case fieldCategory:
		if e.catCursor == 0 {
			e.form.ClearCategory()
		} else if e.catCursor-1 < len(e.categories) {
			e.form.SelectCategory(e.categories[e.catCursor-1])
		}

	case fieldIngName:
		if sugs := e.suggestions(); len(sugs) > 0 {
			entry := sugs[e.sugCursor]
			e.form.SelectIngredient(ref.row, entry)
			e.input.SetValue(entry.Name)
			e.input.CursorEnd()
		}

	case fieldIngUnit:
		if sugs := e.suggestions(); len(sugs) > 0 {
			entry := sugs[e.sugCursor]
			e.form.SelectUnit(ref.row, entry)
			e.input.SetValue(entry.Name)
			e.input.CursorEnd()
		}
	}

	e.setFocus(e.focus + 1)
	return e, nil
}

// removeCurrentRow deletes the ingredient or step row under focus. The
// form guards against emptying either list.
func (e *editScreen) removeCurrentRow() (screen, tea.Cmd) {
	ref := e.current()
	switch ref.kind {
	case fieldIngName, fieldIngQty, fieldIngUnit:
		e.form.RemoveIngredient(ref.row)
	case fieldStepInstr, fieldStepImage:
		e.form.RemoveStep(ref.row)
	default:
		return e, nil
	}
	e.rebuildFields()
	if e.focus >= len(e.fields) {
		e.focus = len(e.fields) - 1
	}
	e.setFocus(e.focus)
	return e, nil
}

func (e *editScreen) save() (screen, tea.Cmd) {
	sub, err := e.form.BuildSubmission()
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			e.saveErr = ve.Message
		} else {
			e.saveErr = err.Error()
		}
		return e, nil
	}
	e.saveErr = ""
	e.saving = true
	return e, tea.Batch(e.spin.Tick, saveDish(e.d, e.token, e.dishID, sub))
}

// ── Rendering ────────────────────────────────────────────────────

func (e *editScreen) View() string {
	title := "Edit Dish"
	if e.dishID == 0 {
		title = "New Dish"
	}

	var head strings.Builder
	head.WriteString("\n" + titleStyle.Render("  "+title))
	if e.form != nil && e.form.Favorite {
		head.WriteString(" " + favoriteStyle.Render("♥"))
	}
	head.WriteString("\n\n")

	if e.loading {
		return head.String() + "  " + e.spin.View() + secondaryStyle.Render(" loading form...") + "\n"
	}
	if e.err != nil {
		return head.String() + errorLine(e.err)
	}

	lines, focusLine := e.renderForm()

	// Window the form around the focused field so it stays visible on
	// small terminals.
	avail := e.d.height - 8
	if avail < 5 {
		avail = 5
	}
	if len(lines) > avail {
		start := focusLine - avail/2
		if start < 0 {
			start = 0
		}
		if start+avail > len(lines) {
			start = len(lines) - avail
		}
		lines = lines[start : start+avail]
	}

	var b strings.Builder
	b.WriteString(head.String())
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteByte('\n')

	if e.saving {
		b.WriteString("  " + e.spin.View() + secondaryStyle.Render(" saving...") + "\n")
	}
	if e.saveErr != "" {
		b.WriteString(errorStyle.Render("  "+e.saveErr) + "\n")
	}

	b.WriteString(footerStyle.Render(
		"  tab: next field • enter: pick/next • ctrl+a: +ingredient • ctrl+t: +step • ctrl+x: remove row\n" +
			"  ctrl+f: favorite • ctrl+s: save • esc: cancel"))
	return b.String()
}

// renderForm returns the form body lines and the index of the focused
// field's line.
func (e *editScreen) renderForm() ([]string, int) {
	var lines []string
	focusLine := 0

	add := func(ref *fieldRef, label, value string) {
		focused := ref != nil && *ref == e.current()
		if focused {
			focusLine = len(lines)
			lines = append(lines, "  "+selectedStyle.Render("> ")+labelStyle.Render(label)+" "+e.input.View())
			return
		}
		if value == "" {
			value = secondaryStyle.Render("—")
		} else {
			value = primaryStyle.Render(value)
		}
		lines = append(lines, "    "+labelStyle.Render(label)+" "+value)
	}

	padLabel := func(s string) string { return fmt.Sprintf("%-12s", s) }

	add(&fieldRef{kind: fieldName}, padLabel("Name"), e.form.Name)
	add(&fieldRef{kind: fieldDescription}, padLabel("Description"), e.form.Description)

	// Category is a pure dropdown.
	catValue := "Select a category"
	if e.form.Category != nil {
		catValue = view.CategoryTitle(e.form.Category.Name)
	}
	catRef := fieldRef{kind: fieldCategory}
	if catRef == e.current() {
		focusLine = len(lines)
		lines = append(lines, "  "+selectedStyle.Render("> ")+labelStyle.Render(padLabel("Category"))+" "+primaryStyle.Render(catValue))
		lines = append(lines, e.renderCategoryDropdown()...)
	} else {
		add(nil, padLabel("Category"), catValue)
	}

	add(&fieldRef{kind: fieldImage}, padLabel("Image"), string(e.form.Image))
	add(&fieldRef{kind: fieldPrep}, padLabel("Prep (min)"), e.form.PrepTime)
	add(&fieldRef{kind: fieldCook}, padLabel("Cook (min)"), e.form.CookTime)

	lines = append(lines, "", headerStyle.Render("  Ingredients"))
	for i, row := range e.form.Ingredients() {
		lines = append(lines, secondaryStyle.Render(fmt.Sprintf("  Ingredient %d", i+1)))
		add(&fieldRef{kind: fieldIngName, row: i}, padLabel("Name"), row.Ingredient.Name())
		if cur := e.current(); cur.kind == fieldIngName && cur.row == i {
			lines = append(lines, e.renderSuggestions()...)
		}
		add(&fieldRef{kind: fieldIngQty, row: i}, padLabel("Quantity"), row.Quantity)
		add(&fieldRef{kind: fieldIngUnit, row: i}, padLabel("Unit"), row.Unit.Name())
		if cur := e.current(); cur.kind == fieldIngUnit && cur.row == i {
			lines = append(lines, e.renderSuggestions()...)
		}
	}

	lines = append(lines, "", headerStyle.Render("  Cooking Steps"))
	for i, st := range e.form.Steps() {
		lines = append(lines, secondaryStyle.Render(fmt.Sprintf("  Step %d", st.Number)))
		add(&fieldRef{kind: fieldStepInstr, row: i}, padLabel("Instructions"), st.Instruction)
		add(&fieldRef{kind: fieldStepImage, row: i}, padLabel("Image"), string(st.Image))
	}

	return lines, focusLine
}

func (e *editScreen) renderCategoryDropdown() []string {
	out := make([]string, 0, len(e.categories)+1)
	render := func(idx int, label string) string {
		if idx == e.catCursor {
			return dropdownPickStyle.Render(label)
		}
		return dropdownStyle.Render(label)
	}
	out = append(out, render(0, "(none)"))
	for i, c := range e.categories {
		out = append(out, render(i+1, view.CategoryTitle(c.Name)))
	}
	return out
}

func (e *editScreen) renderSuggestions() []string {
	sugs := e.suggestions()
	out := make([]string, 0, len(sugs))
	for i, s := range sugs {
		if i == e.sugCursor {
			out = append(out, dropdownPickStyle.Render(s.Name))
		} else {
			out = append(out, dropdownStyle.Render(s.Name))
		}
	}
	return out
}
