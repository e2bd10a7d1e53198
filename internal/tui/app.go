package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/todos-tui/internal/todo"
)

// Model represents the main application state
type Model struct {
	store    *todo.Store
	filter   todo.Filter
	selected int
	width    int
	height   int

	// Search mode
	searchMode bool
	search     textinput.Model

	// Category/priority/sort pickers
	categoryMode     bool
	categorySelected int
	priorityMode     bool
	prioritySelected int
	sortMode         bool
	sortSelected     int

	// Add/edit form
	formMode     bool
	formField    int
	formInputs   []textinput.Model
	formDesc     textarea.Model
	formCategory int
	formPriority int
	editingID    string // empty while adding
	formWarning  string

	// Delete confirmation mode
	deleteConfirmMode bool
	deleteID          string
	deleteTitle       string

	warning string
}

// Sort keys offered in the sort picker
var sortKeys = []todo.SortKey{
	todo.SortCreated,
	todo.SortDue,
	todo.SortPriority,
	todo.SortTitle,
}

// Form field indices
const (
	FormFieldTitle = iota
	FormFieldDue
	FormFieldCategory
	FormFieldPriority
	FormFieldDesc
	FormFieldCount // Total number of fields
)

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Strikethrough(true)

	priorityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a new application model
func New(store *todo.Store, filter todo.Filter) *Model {
	// Setup search input
	ti := textinput.New()
	ti.Placeholder = "Search todos..."
	ti.Width = 30
	ti.CharLimit = 50
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	// Setup form inputs
	formInputs := make([]textinput.Model, 2)
	formInputs[FormFieldTitle] = textinput.New()
	formInputs[FormFieldTitle].Placeholder = "Title"
	formInputs[FormFieldTitle].Width = 40
	formInputs[FormFieldTitle].CharLimit = 200
	formInputs[FormFieldDue] = textinput.New()
	formInputs[FormFieldDue].Placeholder = "Due date (YYYY-MM-DD, blank for none)"
	formInputs[FormFieldDue].Width = 40
	formInputs[FormFieldDue].CharLimit = 10

	// Setup description input
	ta := textarea.New()
	ta.Placeholder = "Description..."
	ta.SetHeight(4)
	ta.SetWidth(50)
	ta.CharLimit = 500
	ta.ShowLineNumbers = false

	return &Model{
		store:      store,
		filter:     filter,
		search:     ti,
		formInputs: formInputs,
		formDesc:   ta,
	}
}

// SetWarning records a non-fatal warning for the status line before the
// program starts (e.g. a failed load that fell back to an empty list).
func (m *Model) SetWarning(err error) {
	if err != nil {
		m.warning = err.Error()
	}
}

// WarnMsg carries a non-fatal warning into the running program. The store's
// persistence failures arrive this way; they never interrupt the session.
type WarnMsg struct {
	Err error
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WarnMsg:
		if msg.Err != nil {
			m.warning = msg.Err.Error()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			listWidth := m.width / 2
			m.search.Width = listWidth - 4
		}
		return m, nil

	case tea.KeyMsg:
		// Category picker handling
		if m.categoryMode {
			options := m.categoryOptions()
			switch msg.String() {
			case "esc":
				m.categoryMode = false
				m.categorySelected = 0
				return m, nil
			case "enter":
				if m.categorySelected == 0 {
					m.filter.Category = ""
				} else {
					m.filter.Category = m.store.Scheme().Categories[m.categorySelected-1]
				}
				m.categoryMode = false
				m.categorySelected = 0
				m.selected = m.ensureValidSelection()
				return m, nil
			case "j", "down":
				if m.categorySelected < len(options)-1 {
					m.categorySelected++
				}
			case "k", "up":
				if m.categorySelected > 0 {
					m.categorySelected--
				}
			}
			return m, nil
		}

		// Priority picker handling
		if m.priorityMode {
			options := m.priorityOptions()
			switch msg.String() {
			case "esc":
				m.priorityMode = false
				m.prioritySelected = 0
				return m, nil
			case "enter":
				if m.prioritySelected == 0 {
					m.filter.Priority = ""
				} else {
					m.filter.Priority = m.store.Scheme().Priorities[m.prioritySelected-1]
				}
				m.priorityMode = false
				m.prioritySelected = 0
				m.selected = m.ensureValidSelection()
				return m, nil
			case "j", "down":
				if m.prioritySelected < len(options)-1 {
					m.prioritySelected++
				}
			case "k", "up":
				if m.prioritySelected > 0 {
					m.prioritySelected--
				}
			}
			return m, nil
		}

		// Sort picker handling
		if m.sortMode {
			switch msg.String() {
			case "esc":
				m.sortMode = false
				return m, nil
			case "enter":
				m.filter.SortBy = sortKeys[m.sortSelected]
				m.sortMode = false
				return m, nil
			case "j", "down":
				if m.sortSelected < len(sortKeys)-1 {
					m.sortSelected++
				}
			case "k", "up":
				if m.sortSelected > 0 {
					m.sortSelected--
				}
			}
			return m, nil
		}

		// Delete confirmation handling
		if m.deleteConfirmMode {
			switch msg.String() {
			case "y", "Y":
				m.store.Remove(m.deleteID)
				m.deleteConfirmMode = false
				m.deleteID = ""
				m.deleteTitle = ""
				m.selected = m.ensureValidSelection()
				return m, nil
			default:
				// Any other key cancels
				m.deleteConfirmMode = false
				m.deleteID = ""
				m.deleteTitle = ""
				return m, nil
			}
		}

		// Add/edit form handling
		if m.formMode {
			return m.updateForm(msg)
		}

		// Search mode handling
		if m.searchMode {
			switch msg.String() {
			case "esc":
				m.searchMode = false
				m.search.Blur()
				m.search.SetValue("")
				m.filter.Search = ""
				m.selected = m.ensureValidSelection()
				return m, nil
			case "enter":
				m.searchMode = false
				m.search.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.filter.Search = m.search.Value()
				m.selected = m.ensureValidSelection()
				return m, cmd
			}
		}

		// Normal mode
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.visibleTodos())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "/":
			m.searchMode = true
			m.search.Focus()
			return m, textinput.Blink

		case "c":
			m.categoryMode = true
			m.categorySelected = 0
			return m, nil

		case "p":
			m.priorityMode = true
			m.prioritySelected = 0
			return m, nil

		case "s":
			// Cycle completion filter
			switch m.filter.Status {
			case todo.StatusAll:
				m.filter.Status = todo.StatusPending
			case todo.StatusPending:
				m.filter.Status = todo.StatusCompleted
			default:
				m.filter.Status = todo.StatusAll
			}
			m.selected = m.ensureValidSelection()

		case "o":
			m.sortMode = true
			for i, k := range sortKeys {
				if k == m.filter.SortBy {
					m.sortSelected = i
				}
			}
			return m, nil

		case "r":
			// Reverse sort direction
			if m.filter.Order == todo.Ascending {
				m.filter.Order = todo.Descending
			} else {
				m.filter.Order = todo.Ascending
			}

		case " ", "x":
			todos := m.visibleTodos()
			if len(todos) > 0 && m.selected < len(todos) {
				m.store.Toggle(todos[m.selected].ID)
			}

		case "a":
			m.openForm(nil)
			return m, textinput.Blink

		case "e":
			todos := m.visibleTodos()
			if len(todos) > 0 && m.selected < len(todos) {
				t := todos[m.selected]
				m.openForm(&t)
				return m, textinput.Blink
			}

		case "d":
			todos := m.visibleTodos()
			if len(todos) > 0 && m.selected < len(todos) {
				m.deleteConfirmMode = true
				m.deleteID = todos[m.selected].ID
				m.deleteTitle = todos[m.selected].Title
			}
			return m, nil

		case "esc":
			// Clear all filters and the warning line
			m.filter.Category = ""
			m.filter.Priority = ""
			m.filter.Status = todo.StatusAll
			m.filter.Search = ""
			m.search.SetValue("")
			m.warning = ""
			m.selected = m.ensureValidSelection()
		}
	}

	return m, nil
}

// openForm prepares the add/edit form. A nil todo means adding.
func (m *Model) openForm(t *todo.Todo) {
	m.formMode = true
	m.formField = FormFieldTitle
	m.formWarning = ""
	scheme := m.store.Scheme()

	if t == nil {
		m.editingID = ""
		m.formInputs[FormFieldTitle].SetValue("")
		m.formInputs[FormFieldDue].SetValue("")
		m.formDesc.SetValue("")
		m.formCategory = 0
		m.formPriority = 0
	} else {
		m.editingID = t.ID
		m.formInputs[FormFieldTitle].SetValue(t.Title)
		if t.DueDate != nil {
			m.formInputs[FormFieldDue].SetValue(t.DueDate.Format("2006-01-02"))
		} else {
			m.formInputs[FormFieldDue].SetValue("")
		}
		m.formDesc.SetValue(t.Description)
		for i, c := range scheme.Categories {
			if c == t.Category {
				m.formCategory = i
			}
		}
		for i, p := range scheme.Priorities {
			if p == t.Priority {
				m.formPriority = i
			}
		}
	}

	m.formInputs[FormFieldTitle].Focus()
	m.formInputs[FormFieldDue].Blur()
	m.formDesc.Blur()
}

// updateForm handles keys while the add/edit form is open
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scheme := m.store.Scheme()

	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "tab", "shift+tab":
		forward := msg.String() == "tab"
		m.blurFormField()
		if forward {
			m.formField = (m.formField + 1) % FormFieldCount
		} else {
			m.formField = (m.formField - 1 + FormFieldCount) % FormFieldCount
		}
		return m, m.focusFormField()

	case "left", "right":
		switch m.formField {
		case FormFieldCategory:
			if msg.String() == "left" && m.formCategory > 0 {
				m.formCategory--
			} else if msg.String() == "right" && m.formCategory < len(scheme.Categories)-1 {
				m.formCategory++
			}
			return m, nil
		case FormFieldPriority:
			if msg.String() == "left" && m.formPriority > 0 {
				m.formPriority--
			} else if msg.String() == "right" && m.formPriority < len(scheme.Priorities)-1 {
				m.formPriority++
			}
			return m, nil
		}

	case "enter":
		switch m.formField {
		case FormFieldCategory:
			m.formCategory = (m.formCategory + 1) % len(scheme.Categories)
			return m, nil
		case FormFieldPriority:
			m.formPriority = (m.formPriority + 1) % len(scheme.Priorities)
			return m, nil
		case FormFieldDesc:
			// Newline in the textarea, handled below
		default:
			return m.submitForm()
		}

	case "ctrl+s":
		return m.submitForm()
	}

	// Pass remaining keys to the focused input
	var cmd tea.Cmd
	switch m.formField {
	case FormFieldTitle, FormFieldDue:
		m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
	case FormFieldDesc:
		m.formDesc, cmd = m.formDesc.Update(msg)
	}
	return m, cmd
}

// submitForm validates the form and applies the add or update. Validation
// failures keep the form open with a warning; nothing reaches the store.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	scheme := m.store.Scheme()

	title := strings.TrimSpace(m.formInputs[FormFieldTitle].Value())
	if title == "" {
		m.formWarning = "Title must not be empty"
		return m, nil
	}

	var due *time.Time
	if v := strings.TrimSpace(m.formInputs[FormFieldDue].Value()); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			m.formWarning = "Due date must be YYYY-MM-DD"
			return m, nil
		}
		if m.editingID == "" && todo.BeforeDay(d, time.Now()) {
			m.formWarning = "Due date is in the past"
			return m, nil
		}
		due = &d
	}

	desc := m.formDesc.Value()
	category := scheme.Categories[m.formCategory]
	priority := scheme.Priorities[m.formPriority]

	if m.editingID == "" {
		_, err := m.store.Add(todo.Draft{
			Title:       title,
			Description: desc,
			Category:    category,
			Priority:    priority,
			DueDate:     due,
		})
		if err != nil {
			m.formWarning = err.Error()
			return m, nil
		}
	} else {
		ch := todo.Changes{
			Title:       &title,
			Description: &desc,
			Category:    &category,
			Priority:    &priority,
		}
		if due != nil {
			ch.DueDate = due
		} else {
			ch.ClearDue = true
		}
		if _, err := m.store.Update(m.editingID, ch); err != nil {
			m.formWarning = err.Error()
			return m, nil
		}
	}

	m.closeForm()
	m.selected = m.ensureValidSelection()
	return m, nil
}

func (m *Model) closeForm() {
	m.formMode = false
	m.editingID = ""
	m.formWarning = ""
	m.blurFormField()
	m.formField = FormFieldTitle
}

func (m *Model) blurFormField() {
	switch m.formField {
	case FormFieldTitle, FormFieldDue:
		m.formInputs[m.formField].Blur()
	case FormFieldDesc:
		m.formDesc.Blur()
	}
}

func (m *Model) focusFormField() tea.Cmd {
	switch m.formField {
	case FormFieldTitle, FormFieldDue:
		m.formInputs[m.formField].Focus()
		return textinput.Blink
	case FormFieldDesc:
		m.formDesc.Focus()
		return textarea.Blink
	}
	return nil
}

// visibleTodos returns the current projection
func (m Model) visibleTodos() []todo.Todo {
	return m.filter.Apply(m.store.All())
}

// categoryOptions returns the category picker entries
func (m Model) categoryOptions() []string {
	options := []string{"all"}
	for _, c := range m.store.Scheme().Categories {
		options = append(options, string(c))
	}
	return options
}

// priorityOptions returns the priority picker entries
func (m Model) priorityOptions() []string {
	options := []string{"all"}
	for _, p := range m.store.Scheme().Priorities {
		options = append(options, string(p))
	}
	return options
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	todos := m.visibleTodos()
	if len(todos) == 0 {
		return 0
	}
	if m.selected >= len(todos) {
		return len(todos) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlays replace the main view while active
	if m.categoryMode {
		return m.renderPicker("Filter by category", m.categoryOptions(), m.categorySelected)
	}
	if m.priorityMode {
		return m.renderPicker("Filter by priority", m.priorityOptions(), m.prioritySelected)
	}
	if m.sortMode {
		options := make([]string, len(sortKeys))
		for i, k := range sortKeys {
			options[i] = string(k)
		}
		return m.renderPicker("Sort by", options, m.sortSelected)
	}
	if m.formMode {
		return m.renderForm()
	}
	if m.deleteConfirmMode {
		return m.renderDeleteConfirmation()
	}

	header := m.renderHeader()

	// Calculate pane widths
	listWidth := m.width / 2
	detailWidth := m.width - listWidth - 3 // account for borders
	paneHeight := m.height - 5            // header + status + help

	listView := m.renderList(listWidth, paneHeight)
	detailView := m.renderDetail(detailWidth, paneHeight)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(listWidth).Height(paneHeight).Render(listView),
		borderStyle.Width(detailWidth).Height(paneHeight).Render(detailView),
	)

	status := ""
	if m.warning != "" {
		status = warningStyle.Render(" ! " + m.warning)
	}

	help := m.renderHelp()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, status, help)
}

// renderHeader renders the summary counts over the canonical list
func (m Model) renderHeader() string {
	s := todo.Summarize(m.store.All(), time.Now())
	counts := fmt.Sprintf(" Todos: %d total • %d pending • %d done", s.Total, s.Pending, s.Completed)
	buckets := fmt.Sprintf("%d overdue • %d today • %d upcoming", s.Overdue, s.DueToday, s.Upcoming)
	if s.Overdue > 0 {
		buckets = overdueStyle.Render(buckets)
	}
	return counts + "  |  " + buckets
}

// renderList renders the todo list pane
func (m Model) renderList(width, height int) string {
	var lines []string

	if m.searchMode || m.filter.Search != "" {
		searchView := m.search.View()
		if searchView == "" {
			searchView = "> " + m.search.Placeholder
		}
		lines = append(lines, searchView)
		lines = append(lines, "")
		height -= 2
	}

	todos := m.visibleTodos()

	// Calculate visible range
	visibleHeight := height - 2 // account for header
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	// Header with active filter indicators
	header := fmt.Sprintf("Tasks (%d)", len(todos))
	var indicators []string
	if m.filter.Category != "" {
		indicators = append(indicators, "cat:"+string(m.filter.Category))
	}
	if m.filter.Priority != "" {
		indicators = append(indicators, "pri:"+string(m.filter.Priority))
	}
	if m.filter.Status != todo.StatusAll {
		indicators = append(indicators, string(m.filter.Status))
	}
	if len(indicators) > 0 {
		header += " [" + strings.Join(indicators, ", ") + "]"
	}
	header += " " + labelStyle.Render(fmt.Sprintf("by %s %s", m.filter.SortBy, m.filter.Order))

	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", width-2))

	now := time.Now()
	for i := startIdx; i < len(todos) && i < startIdx+visibleHeight; i++ {
		t := todos[i]

		var line string
		switch {
		case t.Completed:
			line = "✓ "
		case t.DueDate != nil && todo.BeforeDay(*t.DueDate, now):
			line = "! "
		default:
			line = "  "
		}

		title := t.Title
		if t.Completed {
			title = doneStyle.Render(title)
		}
		line += title
		line += " " + labelStyle.Render("["+string(t.Category)+"]")
		if t.Priority == todo.PriorityHigh || t.Priority == todo.PriorityUrgent {
			line += " " + priorityStyle.Render(string(t.Priority))
		}

		if i == m.selected {
			line = selectedStyle.Render(line)
		} else if !t.Completed && t.DueDate != nil && todo.BeforeDay(*t.DueDate, now) {
			line = overdueStyle.Render("!") + line[1:]
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the selected todo's detail pane
func (m Model) renderDetail(width, height int) string {
	todos := m.visibleTodos()
	if len(todos) == 0 || m.selected >= len(todos) {
		return "No todo selected"
	}

	t := todos[m.selected]
	now := time.Now()
	var lines []string

	lines = append(lines, t.Title)
	lines = append(lines, strings.Repeat("─", width-2))
	lines = append(lines, "")

	status := "pending"
	if t.Completed {
		status = "completed"
	}
	lines = append(lines, fmt.Sprintf("Status: %s", status))
	lines = append(lines, fmt.Sprintf("Category: %s", t.Category))
	lines = append(lines, fmt.Sprintf("Priority: %s", t.Priority))

	if t.DueDate != nil {
		due := fmt.Sprintf("Due: %s (%s)", t.DueDate.Format("2006-01-02"), todo.RelativeDay(*t.DueDate, now))
		if !t.Completed && todo.BeforeDay(*t.DueDate, now) {
			due = overdueStyle.Render(due)
		}
		lines = append(lines, due)
	} else {
		lines = append(lines, "Due: none")
	}

	lines = append(lines, fmt.Sprintf("Created: %s", t.CreatedAt.Format("2006-01-02 15:04")))
	lines = append(lines, fmt.Sprintf("Updated: %s", t.UpdatedAt.Format("2006-01-02 15:04")))

	if t.Description != "" {
		lines = append(lines, "")
		lines = append(lines, "Description:")
		for _, l := range wrapText(t.Description, width-4) {
			lines = append(lines, "  "+l)
		}
	}

	return strings.Join(lines, "\n")
}

// renderPicker renders a selection overlay
func (m Model) renderPicker(title string, options []string, selected int) string {
	var lines []string
	lines = append(lines, title)
	lines = append(lines, strings.Repeat("─", len(title)+4))
	for i, opt := range options {
		if i == selected {
			lines = append(lines, selectedStyle.Render("> "+opt))
		} else {
			lines = append(lines, "  "+opt)
		}
	}
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("j/k: navigate • Enter: select • Esc: cancel"))

	box := borderStyle.Padding(1, 2).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderForm renders the add/edit overlay
func (m Model) renderForm() string {
	scheme := m.store.Scheme()

	title := "Add todo"
	if m.editingID != "" {
		title = "Edit todo"
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	lines = append(lines, m.formLabel("Title", FormFieldTitle)+m.formInputs[FormFieldTitle].View())
	lines = append(lines, m.formLabel("Due", FormFieldDue)+m.formInputs[FormFieldDue].View())

	catLine := m.formLabel("Category", FormFieldCategory) + string(scheme.Categories[m.formCategory])
	if m.formField == FormFieldCategory {
		catLine += labelStyle.Render("  (←/→ to change)")
	}
	lines = append(lines, catLine)

	priLine := m.formLabel("Priority", FormFieldPriority) + string(scheme.Priorities[m.formPriority])
	if m.formField == FormFieldPriority {
		priLine += labelStyle.Render("  (←/→ to change)")
	}
	lines = append(lines, priLine)

	lines = append(lines, m.formLabel("Notes", FormFieldDesc))
	lines = append(lines, m.formDesc.View())

	if m.formWarning != "" {
		lines = append(lines, "")
		lines = append(lines, warningStyle.Render("! "+m.formWarning))
	}

	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("Tab: next field • Ctrl+S: save • Esc: cancel"))

	box := borderStyle.Padding(1, 2).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) formLabel(name string, field int) string {
	label := fmt.Sprintf("%-10s", name+":")
	if m.formField == field {
		return selectedStyle.Render(label) + " "
	}
	return label + " "
}

// renderDeleteConfirmation renders the delete overlay
func (m Model) renderDeleteConfirmation() string {
	var lines []string
	lines = append(lines, "Delete todo?")
	lines = append(lines, "")
	lines = append(lines, "  "+m.deleteTitle)
	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("y: delete • any other key: cancel"))

	box := borderStyle.Padding(1, 2).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.searchMode {
		return " type to search • Enter: keep • Esc: clear"
	}
	return " j/k: move • Space: toggle • a: add • e: edit • d: delete • /: search • c/p/s: filter • o: sort • r: reverse • Esc: clear • q: quit"
}

// wrapText wraps text to the given width
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
