package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/importly/scheduler/internal/api"
	"github.com/importly/scheduler/internal/history"
)

// InspectCmd opens an interactive TUI to browse and delete tasks.
type InspectCmd struct{}

func (cmd *InspectCmd) Run(globals *Globals) error {
	// JSON mode: fall back to list-tasks --json (TUI not meaningful for scripts).
	if globals.JSON {
		return (&ListTasksCmd{}).Run(globals)
	}

	client, err := newClient(globals)
	if err != nil {
		return err
	}

	tasks, err := client.OrderedTasks()
	if err != nil {
		return apiError(err)
	}
	sortByDue(tasks)

	if len(tasks) == 0 {
		fmt.Fprintln(os.Stdout, "No tasks.")
		return nil
	}

	m := newBrowserModel(tasks, client)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("inspect TUI: %w", err)
	}

	fm := finalModel.(browserModel)
	if fm.deleted > 0 {
		fmt.Fprintf(os.Stdout, "Deleted %d task(s).\n", fm.deleted)
	}
	return nil
}

const (
	browserLeftPaneWidth = 30 // width of the list pane
	browserSepWidth      = 3  // " │ " separator between panes
	minSplitWidth        = 64 // minimum terminal width for horizontal split
)

// browserModel is the Bubble Tea model for the task browser.
type browserModel struct {
	tasks           []api.Task
	client          *api.Client
	renderedContent []string // pre-cached glamour output per task
	cursor          int
	deleted         int
	width, height   int
	message         string // transient status message
	detailViewport  viewport.Model
	focusDetail     bool
	confirmDelete   bool
	listOffset      int
}

func newBrowserModel(tasks []api.Task, client *api.Client) browserModel {
	vp := viewport.New(80, 10)
	// Remove "d" from half-page-down (conflicts with delete key).
	vp.KeyMap.HalfPageDown = key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "½ page down"),
	)
	vp.KeyMap.Left.SetEnabled(false)
	vp.KeyMap.Right.SetEnabled(false)

	return browserModel{
		tasks:          tasks,
		client:         client,
		detailViewport: vp,
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// 1. Delete confirmation takes priority over everything.
		if m.confirmDelete {
			switch msg.String() {
			case "y":
				return m.doDelete()
			default:
				m.confirmDelete = false
			}
			return m, nil
		}

		// 2. Global keys.
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.width >= minSplitWidth && len(m.tasks) > 0 {
				m.focusDetail = !m.focusDetail
			}
			return m, nil

		case "d", "backspace", "delete":
			if !m.focusDetail && len(m.tasks) > 0 {
				m.confirmDelete = true
			}
			return m, nil
		}

		// 3. Route to focused pane (viewport handles its own keys).
		if m.focusDetail {
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}

		// 4. List navigation.
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.message = ""
				m.syncDetailContent()
				m.syncListScroll()
			}
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
				m.message = ""
				m.syncDetailContent()
				m.syncListScroll()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderAllContent()
		m.updateViewportSize()
		m.syncDetailContent()
		m.syncListScroll()
	}

	return m, nil
}

// doDelete removes the currently selected task on the service and adjusts
// model state.
func (m browserModel) doDelete() (tea.Model, tea.Cmd) {
	m.confirmDelete = false
	if m.cursor >= len(m.tasks) {
		return m, nil
	}

	task := m.tasks[m.cursor]
	if err := m.client.DeleteTask(task.ID); err != nil {
		m.message = "Delete failed: " + truncate(err.Error(), 50)
		return m, nil
	}
	_ = history.Append(history.Entry{Action: "deleted", TaskID: task.ID, Title: task.Title})

	m.tasks = append(m.tasks[:m.cursor], m.tasks[m.cursor+1:]...)
	if m.renderedContent != nil {
		m.renderedContent = append(m.renderedContent[:m.cursor], m.renderedContent[m.cursor+1:]...)
	}
	m.deleted++
	m.message = fmt.Sprintf("Deleted: %s", truncate(task.Title, 40))

	if len(m.tasks) == 0 {
		return m, tea.Quit
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	m.syncDetailContent()
	m.syncListScroll()
	return m, nil
}

// contentRows returns the number of rows available for the content area.
func (m browserModel) contentRows() int {
	overhead := 2 // title + help
	if m.width >= minSplitWidth {
		overhead += 2 // top border + bottom border
	}
	if m.message != "" {
		overhead++
	}
	return max(m.height-overhead, 1)
}

// rightPaneWidth returns the width available for the detail pane.
func (m browserModel) rightPaneWidth() int {
	return max(m.width-browserLeftPaneWidth-browserSepWidth, 1)
}

// renderAllContent pre-renders all task details for the detail pane.
func (m *browserModel) renderAllContent() {
	if m.width < minSplitWidth {
		m.renderedContent = nil
		return
	}
	rightW := m.rightPaneWidth()
	m.renderedContent = make([]string, len(m.tasks))
	for i, t := range m.tasks {
		m.renderedContent[i] = renderMarkdown(taskDetailMarkdown(t), max(rightW-2, 20))
	}
}

// taskDetailMarkdown composes a markdown document describing one task.
func taskDetailMarkdown(t api.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "- **Type:** %s\n", t.Type)
	if due := dueString(t); due != "" {
		fmt.Fprintf(&b, "- **Due:** %s\n", due)
	}
	fmt.Fprintf(&b, "- **Priority:** %s (%d)\n", priorityLabel(t.Priority), t.Priority)
	if t.Status != "" {
		fmt.Fprintf(&b, "- **Status:** %s\n", t.Status)
	}
	if t.Estimate > 0 {
		fmt.Fprintf(&b, "- **Estimate:** %d min\n", t.Estimate)
	}
	if t.ScheduledFor != "" {
		fmt.Fprintf(&b, "- **Scheduled for:** %s\n", t.ScheduledFor)
	}
	if t.Category != nil {
		fmt.Fprintf(&b, "- **Category:** %s\n", t.Category.Name)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Description)
	}
	return b.String()
}

// Cached glamour renderer — avoids re-creating on every call.
// WithAutoStyle() performs OS I/O to detect dark/light theme; caching
// eliminates this from the hot path in interactive TUIs.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
)

// renderMarkdown renders markdown as terminal-formatted text using glamour.
// If rendering fails, the raw text is returned as a fallback.
func renderMarkdown(s string, width int) string {
	if cachedRenderer == nil || cachedRendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return s
		}
		cachedRenderer = r
		cachedRendererWidth = width
	}

	rendered, err := cachedRenderer.Render(s)
	if err != nil {
		return s
	}
	return rendered
}

// updateViewportSize recalculates the detail viewport dimensions.
func (m *browserModel) updateViewportSize() {
	if m.width < minSplitWidth {
		return
	}
	rows := m.contentRows()
	vpHeight := max(rows-2, 1) // subtract header + divider in right pane
	m.detailViewport.Width = m.rightPaneWidth()
	m.detailViewport.Height = vpHeight
}

// syncDetailContent sets the viewport to the currently selected task's content.
func (m *browserModel) syncDetailContent() {
	if len(m.renderedContent) == 0 || m.cursor >= len(m.renderedContent) {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.renderedContent[m.cursor])
	m.detailViewport.GotoTop()
}

// syncListScroll ensures the cursor is visible within the list pane.
func (m *browserModel) syncListScroll() {
	rows := m.contentRows()
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+rows {
		m.listOffset = m.cursor - rows + 1
	}
}

// --- View styles ---

var (
	browserTitleStyle = lipgloss.NewStyle().Bold(true)
	browserDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	browserHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	browserMsgStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (m browserModel) View() string {
	var b strings.Builder

	// Title.
	b.WriteString(browserTitleStyle.Render(
		fmt.Sprintf("Tasks (%d)", len(m.tasks))))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(browserHelpStyle.Render("q: quit"))
		return b.String()
	}

	if m.width < minSplitWidth {
		m.viewNarrow(&b)
	} else {
		m.viewSplit(&b)
	}

	// Transient status message.
	if m.message != "" {
		b.WriteString(browserMsgStyle.Render(m.message))
		b.WriteString("\n")
	}

	// Help bar.
	b.WriteString(browserHelpStyle.Render(m.helpText()))

	return b.String()
}

// viewNarrow renders a simple list without a detail pane (for terminals <64 cols).
func (m browserModel) viewNarrow(b *strings.Builder) {
	rows := m.contentRows()
	end := min(m.listOffset+rows, len(m.tasks))
	for i := m.listOffset; i < end; i++ {
		t := m.tasks[i]
		title := truncate(firstLine(t.Title), max(m.width-26, 10))

		line := fmt.Sprintf("  %-5d %-16s %s", t.ID, truncate(dueString(t), 16), title)
		if i == m.cursor {
			sel := "> " + line[2:]
			if m.confirmDelete {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render(sel))
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Render(sel))
			}
		} else {
			b.WriteString(browserDimStyle.Render(line))
		}
		b.WriteString("\n")
	}
	// Pad remaining rows so the alt screen fills.
	for i := end - m.listOffset; i < rows; i++ {
		b.WriteString("\n")
	}
}

// viewSplit renders the horizontal split layout: list | separator | detail.
func (m browserModel) viewSplit(b *strings.Builder) {
	rows := m.contentRows()
	rightW := m.rightPaneWidth()

	// Top border: ─────┬─────
	b.WriteString(browserDimStyle.Render(
		strings.Repeat("─", browserLeftPaneWidth) + "─┬─" + strings.Repeat("─", rightW)))
	b.WriteString("\n")

	// Build left pane (list items padded to leftPaneWidth).
	leftStyle := lipgloss.NewStyle().Width(browserLeftPaneWidth)
	leftLines := make([]string, rows)
	for i := range rows {
		idx := m.listOffset + i
		if idx < len(m.tasks) {
			leftLines[i] = m.renderListItem(idx, leftStyle)
		} else {
			leftLines[i] = leftStyle.Render("")
		}
	}

	// Build separator column.
	sepColor := lipgloss.Color("240")
	if m.focusDetail {
		sepColor = lipgloss.Color("212")
	}
	sep := lipgloss.NewStyle().Foreground(sepColor).Render(" │ ")

	// Right pane: fixed header + divider + viewport lines.
	t := m.tasks[m.cursor]
	header := browserDimStyle.Render(
		fmt.Sprintf("#%d · %s · %s", t.ID, t.Type, priorityLabel(t.Priority)))
	divider := browserDimStyle.Render(strings.Repeat("─", rightW))

	vpLines := strings.Split(m.detailViewport.View(), "\n")

	// Compose rows: left | sep | right.
	for i := range rows {
		b.WriteString(leftLines[i])
		b.WriteString(sep)
		switch i {
		case 0:
			b.WriteString(header)
		case 1:
			b.WriteString(divider)
		default:
			vpIdx := i - 2
			if vpIdx < len(vpLines) {
				b.WriteString(vpLines[vpIdx])
			}
		}
		b.WriteString("\n")
	}

	// Bottom border: ─────┴─────
	b.WriteString(browserDimStyle.Render(
		strings.Repeat("─", browserLeftPaneWidth) + "─┴─" + strings.Repeat("─", rightW)))
	b.WriteString("\n")
}

// renderListItem renders a single list entry for the left pane.
func (m browserModel) renderListItem(idx int, baseStyle lipgloss.Style) string {
	t := m.tasks[idx]
	content := fmt.Sprintf("%d  %s", t.ID, truncate(firstLine(t.Title), browserLeftPaneWidth-8))

	if idx == m.cursor {
		color := lipgloss.Color("212")
		if m.confirmDelete {
			color = lipgloss.Color("214")
		}
		return baseStyle.Foreground(color).Bold(true).Render("> " + content)
	}
	return baseStyle.Foreground(lipgloss.Color("240")).Render("  " + content)
}

func (m browserModel) helpText() string {
	if m.confirmDelete {
		return "y: confirm   n: cancel"
	}
	if m.width < minSplitWidth {
		return "↑↓: navigate   d: delete   q: quit"
	}
	if m.focusDetail {
		return "↑↓: scroll   tab: list   d: delete   q: quit"
	}
	return "↑↓: navigate   tab: detail   d: delete   q: quit"
}
