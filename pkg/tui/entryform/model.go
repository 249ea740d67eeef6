// Package entryform is the modal form used to compose a dream entry.
package entryform

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/logging"
	"tableflip.dev/dreams/pkg/schema"
	"tableflip.dev/dreams/pkg/session"
	"tableflip.dev/dreams/pkg/tui/theme"
)

type itemKind int

const (
	itemArea itemKind = iota
	itemText
	itemSelect
	itemToggle
	itemListRow
	itemSave
)

// item is one focusable row of the form.
type item struct {
	kind  itemKind
	field schema.FieldDescriptor

	area  textarea.Model
	input textinput.Model

	options []string
	// choice is -1 until the user picks an option.
	choice int
	toggle *bool

	binding form.ListBinding
}

type commitMsg struct {
	res session.Result
	err error
}

// Model renders the entry form bound to one composing session.
type Model struct {
	ctx   context.Context
	sess  *session.Session
	state *form.State
	rows  *form.Rows
	theme theme.Theme

	items []*item
	focus int

	width      int
	fieldWidth int

	committing bool
	errorMsg   string
	result     *session.Result
	cancelled  bool
}

// NewModel builds the form for sess, which must be composing.
func NewModel(ctx context.Context, sess *session.Session) *Model {
	m := &Model{
		ctx:        ctx,
		sess:       sess,
		state:      sess.Form(),
		rows:       sess.Rows(),
		theme:      theme.Default(),
		fieldWidth: 48,
	}

	m.items = append(m.items, m.build(schema.ContentField)...)
	for _, f := range schema.Fields() {
		m.items = append(m.items, m.build(f)...)
	}
	m.items = append(m.items, &item{kind: itemSave})
	m.updateFocus()
	return m
}

func (m *Model) build(f schema.FieldDescriptor) []*item {
	switch k := f.Kind.(type) {
	case schema.FreeText:
		ta := textarea.New()
		ta.Placeholder = k.Placeholder
		ta.ShowLineNumbers = false
		ta.SetWidth(m.fieldWidth)
		ta.SetHeight(4)
		if m.state.Content != nil {
			ta.SetValue(*m.state.Content)
		}
		return []*item{{kind: itemArea, field: f, area: ta}}
	case schema.Text:
		ti := newInput(k.Placeholder, m.fieldWidth)
		if p := textValue(m.state, f.ID); p != "" {
			ti.SetValue(p)
		}
		return []*item{{kind: itemText, field: f, input: ti}}
	case schema.Choice:
		return []*item{{kind: itemSelect, field: f, options: k.Options, choice: m.preselect(f.ID, k.Options)}}
	case schema.Number:
		opts := k.Options()
		return []*item{{kind: itemSelect, field: f, options: opts, choice: m.preselect(f.ID, opts)}}
	case schema.Checkbox:
		return []*item{{kind: itemToggle, field: f}}
	case schema.List:
		// one row per value already present, and at least one empty row
		var out []*item
		for m.rows.Count(f.ID) < len(m.state.List(f.ID)) {
			m.rows.Add(f.ID)
		}
		if m.rows.Count(f.ID) == 0 {
			m.rows.Add(f.ID)
		}
		for _, b := range m.rows.Bindings(f.ID) {
			out = append(out, m.listRow(f, k, b))
		}
		return out
	default:
		logging.Warnf("field %s: unsupported kind %T, skipped", f.ID, k)
		return nil
	}
}

func (m *Model) listRow(f schema.FieldDescriptor, k schema.List, b form.ListBinding) *item {
	ti := newInput("Enter value", m.fieldWidth-12)
	ti.Prompt = k.Item + ": "
	if vals := m.state.List(f.ID); b.Index < len(vals) {
		ti.SetValue(vals[b.Index])
	}
	return &item{kind: itemListRow, field: f, input: ti, binding: b}
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = width
	return ti
}

func textValue(s *form.State, id schema.ID) string {
	var p *string
	switch id {
	case schema.Title:
		p = s.Title
	case schema.Context:
		p = s.Context
	}
	if p == nil {
		return ""
	}
	return *p
}

func (m *Model) preselect(id schema.ID, options []string) int {
	current := ""
	if id == schema.Dream && m.state.Dream != nil {
		current = *m.state.Dream
	}
	if p := numberValue(m.state, id); p != nil {
		current = strconv.Itoa(*p)
	}
	for i, o := range options {
		if current != "" && o == current {
			return i
		}
	}
	return -1
}

func numberValue(s *form.State, id schema.ID) *int {
	switch id {
	case schema.Rating:
		return s.Rating
	case schema.DreamLength:
		return s.DreamLength
	case schema.SleepQuality:
		return s.SleepQuality
	case schema.Vividness:
		return s.Vividness
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, textarea.Blink)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width)
		return m, nil
	case commitMsg:
		m.committing = false
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
			return m, nil
		}
		res := msg.res
		m.result = &res
		return m, tea.Quit
	case tea.KeyMsg:
		if m.committing {
			return m, nil
		}
		return m, m.handleKey(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	it := m.items[m.focus]
	switch msg.String() {
	case "ctrl+c", "esc":
		m.sess.Cancel()
		m.cancelled = true
		return tea.Quit
	case "ctrl+s":
		return m.save()
	case "tab":
		m.move(1)
		return nil
	case "shift+tab":
		m.move(-1)
		return nil
	case "ctrl+a":
		if it.kind == itemListRow {
			m.addRow(it.field)
			return nil
		}
	}

	switch it.kind {
	case itemArea:
		// the textarea keeps up/down and enter for itself
	case itemText, itemListRow:
		switch msg.String() {
		case "up":
			m.move(-1)
			return nil
		case "down", "enter":
			m.move(1)
			return nil
		}
	case itemSelect:
		switch msg.String() {
		case "left", "h":
			m.cycle(it, -1)
		case "right", "l", " ":
			m.cycle(it, 1)
		case "up", "k":
			m.move(-1)
		case "down", "j", "enter":
			m.move(1)
		}
		return nil
	case itemToggle:
		switch msg.String() {
		case " ", "enter", "x":
			m.flip(it)
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		}
		return nil
	case itemSave:
		switch msg.String() {
		case "enter", " ":
			return m.save()
		case "up", "k":
			m.move(-1)
		}
		return nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused text widget and records any
// change in the form state.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	it := m.items[m.focus]
	var cmd tea.Cmd
	switch it.kind {
	case itemArea:
		before := it.area.Value()
		it.area, cmd = it.area.Update(msg)
		if v := it.area.Value(); v != before {
			m.state.SetContent(v)
		}
	case itemText:
		before := it.input.Value()
		it.input, cmd = it.input.Update(msg)
		if v := it.input.Value(); v != before {
			m.record(m.state.SetText(it.field.ID, v))
		}
	case itemListRow:
		before := it.input.Value()
		it.input, cmd = it.input.Update(msg)
		if v := it.input.Value(); v != before {
			m.record(it.binding.Write(m.state, v))
		}
	}
	return cmd
}

func (m *Model) cycle(it *item, delta int) {
	n := len(it.options)
	if n == 0 {
		return
	}
	switch {
	case it.choice < 0 && delta > 0:
		it.choice = 0
	case it.choice < 0:
		it.choice = n - 1
	default:
		it.choice = (it.choice + n + delta) % n
	}
	m.record(m.state.SetScalar(it.field.ID, it.options[it.choice]))
}

func (m *Model) flip(it *item) {
	v := it.toggle == nil || !*it.toggle
	it.toggle = &v
	m.record(m.state.SetCheckbox(it.field.ID, v))
}

func (m *Model) record(err error) {
	if err != nil {
		m.errorMsg = err.Error()
		return
	}
	m.errorMsg = ""
}

// addRow inserts a new row right after the last row of the same list and
// focuses it.
func (m *Model) addRow(f schema.FieldDescriptor) {
	k, ok := f.Kind.(schema.List)
	if !ok {
		return
	}
	last := -1
	for i, it := range m.items {
		if it.kind == itemListRow && it.field.ID == f.ID {
			last = i
		}
	}
	if last < 0 {
		return
	}
	row := m.listRow(f, k, m.rows.Add(f.ID))
	m.items = append(m.items[:last+1], append([]*item{row}, m.items[last+1:]...)...)
	m.focus = last + 1
	m.updateFocus()
}

func (m *Model) move(delta int) {
	m.focus = (m.focus + len(m.items) + delta) % len(m.items)
	m.updateFocus()
}

func (m *Model) updateFocus() {
	for i, it := range m.items {
		focused := i == m.focus
		switch it.kind {
		case itemArea:
			if focused {
				it.area.Focus()
			} else {
				it.area.Blur()
			}
		case itemText, itemListRow:
			if focused {
				it.input.Focus()
			} else {
				it.input.Blur()
			}
		}
	}
}

func (m *Model) save() tea.Cmd {
	m.committing = true
	m.errorMsg = ""
	ctx, sess := m.ctx, m.sess
	return func() tea.Msg {
		res, err := sess.Commit(ctx)
		return commitMsg{res: res, err: err}
	}
}

// SetSize adapts field widths to the terminal.
func (m *Model) SetSize(width int) {
	if width <= 0 {
		width = 80
	}
	m.width = width
	fw := width - 40
	if fw < 20 {
		fw = 20
	}
	if fw > 72 {
		fw = 72
	}
	m.fieldWidth = fw
	for _, it := range m.items {
		switch it.kind {
		case itemArea:
			it.area.SetWidth(fw)
		case itemText:
			it.input.Width = fw
		case itemListRow:
			it.input.Width = fw - 12
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.result != nil || m.cancelled {
		return ""
	}
	th := m.theme
	lines := []string{th.Modal.Title.Render("Dream Entry"), ""}
	for i, it := range m.items {
		if it.kind == itemListRow && it.binding.Index == 0 {
			lines = append(lines, "", th.Field.Heading.Render(it.field.Label))
		}
		lines = append(lines, m.renderItem(it, i == m.focus))
		if it.kind == itemListRow && m.isLastRow(i) {
			lines = append(lines, "")
		}
	}
	lines = append(lines, "", m.renderStatus())

	body := th.Modal.Body.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return th.Modal.Frame.Render(body)
}

func (m *Model) isLastRow(i int) bool {
	if i+1 >= len(m.items) {
		return true
	}
	next := m.items[i+1]
	return next.kind != itemListRow || next.field.ID != m.items[i].field.ID
}

const labelWidth = 28

func (m *Model) renderItem(it *item, focused bool) string {
	fs := m.theme.Field
	labelStyle := fs.Label
	if focused {
		labelStyle = fs.FocusedLabel
	}
	label := func(s string) string {
		return labelStyle.Width(labelWidth).Render(s)
	}

	switch it.kind {
	case itemArea:
		return lipgloss.JoinVertical(lipgloss.Left, label(it.field.Label), it.area.View())
	case itemText:
		return label(it.field.Label) + it.input.View()
	case itemListRow:
		return label("") + it.input.View()
	case itemSelect:
		value := fs.Unset.Render("choose")
		if it.choice >= 0 {
			value = fs.Value.Render(it.options[it.choice])
		}
		if focused {
			value = "‹ " + value + " ›"
		}
		return label(it.field.Label) + value
	case itemToggle:
		box := fs.Unset.Render("[ ]")
		if it.toggle != nil {
			if *it.toggle {
				box = fs.Value.Render("[x]")
			} else {
				box = fs.Value.Render("[ ]")
			}
		}
		return label(upperFirst(it.field.Label)) + box
	case itemSave:
		if focused {
			return fs.FocusButton.Render("Save Entry")
		}
		return fs.Button.Render("Save Entry")
	}
	return ""
}

func (m *Model) renderStatus() string {
	f := m.theme.Footer
	if m.committing {
		return f.Status.Render("saving…")
	}
	if m.errorMsg != "" {
		return f.Error.Render(m.errorMsg)
	}
	help := []string{"tab next", "ctrl+s save", "esc cancel"}
	if it := m.items[m.focus]; it.kind == itemListRow {
		help = append(help, fmt.Sprintf("ctrl+a add %s", strings.ToLower(it.field.Kind.(schema.List).Item)))
	}
	return f.Help.Render(strings.Join(help, " • "))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Result returns the commit result once the form saved.
func (m *Model) Result() (session.Result, bool) {
	if m.result == nil {
		return session.Result{}, false
	}
	return *m.result, true
}

// Cancelled reports whether the user dismissed the form.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Run shows the form until it is saved or dismissed.
func Run(ctx context.Context, sess *session.Session, opts ...tea.ProgramOption) (*Model, error) {
	m := NewModel(ctx, sess)
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		sess.Cancel()
		return nil, fmt.Errorf("entryform: %w", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("entryform: unexpected model %T", final)
	}
	return fm, nil
}
