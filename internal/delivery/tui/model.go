// Package tui is the terminal search surface. It renders a query.Controller
// and forwards key presses to it; all search state lives in the controller.
package tui

import (
	"context"
	"fmt"
	"strings"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/query"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxResultLines caps the rendered result list; the summary still counts every match.
const maxResultLines = 20

type stateMsg query.State

type updatesClosedMsg struct{}

// Model is the bubbletea model of the search surface.
type Model struct {
	ctx    context.Context
	ctrl   *query.Controller
	input  textinput.Model
	spin   spinner.Model
	styles Styles

	state   query.State
	cursor  int // selected suggestion, -1 for none
	popular int
	width   int
}

// New builds a model over ctrl. The caller owns ctrl and closes it after the program exits.
func New(ctx context.Context, ctrl *query.Controller) Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Search devices by name, model, manufacturer or category..."
	ti.Prompt = "› "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		input:  ti,
		spin:   sp,
		styles: styles,
		state:  ctrl.Snapshot(),
		cursor: -1,
	}
}

// Init starts the cursor blink, the spinner and the controller subscription.
// The listing surface loads its snapshot here.
func (m Model) Init() tea.Cmd {
	if m.state.Surface == query.SurfaceListing {
		m.ctrl.Load(m.ctx)
	}

	return tea.Batch(textinput.Blink, m.spin.Tick, waitForUpdate(m.ctrl.Updates()))
}

func waitForUpdate(updates <-chan query.State) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return updatesClosedMsg{}
		}

		return stateMsg(state)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 6
		}

		return m, nil

	case stateMsg:
		m.setState(query.State(msg))

		return m, waitForUpdate(m.ctrl.Updates())

	case updatesClosedMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		switch {
		case m.state.PanelOpen:
			m.ctrl.ClosePanel()
		case m.input.Value() != "":
			m.input.SetValue("")
			m.ctrl.Clear()
		default:
			return m, tea.Quit
		}

	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.state.Suggestions) {
			suggestion := m.state.Suggestions[m.cursor]
			m.input.SetValue(suggestion)
			m.input.CursorEnd()
			m.ctrl.SelectSuggestion(m.ctx, suggestion)
		} else {
			m.ctrl.Submit(m.ctx)
		}

	case "up":
		if m.cursor >= 0 {
			m.cursor--
		}

	case "down":
		if m.cursor < len(m.state.Suggestions)-1 {
			m.cursor++
		}

	case "ctrl+p":
		term := query.PopularTerms[m.popular%len(query.PopularTerms)]
		m.popular++
		m.input.SetValue(term)
		m.input.CursorEnd()
		m.ctrl.SelectPopular(m.ctx, term)

	case "ctrl+f":
		m.ctrl.Focus(m.ctx)

	case "ctrl+r":
		m.ctrl.Retry(m.ctx)

	case "ctrl+x":
		m.ctrl.ResetFilters()

	case "alt+1", "alt+2", "alt+3", "alt+4":
		index := int(key[len(key)-1] - '1')
		m.ctrl.ToggleSafetyStatus(entity.SafetyStatuses[index])

	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.cursor = -1
			m.ctrl.SetQuery(after)
		}
		m.setState(m.ctrl.Snapshot())

		return m, cmd
	}

	m.setState(m.ctrl.Snapshot())

	return m, nil
}

func (m *Model) setState(state query.State) {
	m.state = state
	if m.cursor >= len(state.Suggestions) {
		m.cursor = len(state.Suggestions) - 1
	}
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	title := "MRI Device Safety Search"
	if m.state.Surface == query.SurfaceListing {
		title = "MRI Device Catalog"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n")

	if len(m.state.Suggestions) > 0 {
		b.WriteString(m.renderSuggestions())
		b.WriteString("\n")
	}

	switch m.state.Phase {
	case query.PhaseIdle:
		b.WriteString(m.renderPopular())
	case query.PhaseSearching:
		b.WriteString(m.spin.View() + " " + m.state.Summary())
	case query.PhaseErrored:
		b.WriteString(m.styles.Error.Render(m.state.Error))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("ctrl+r to retry"))
	case query.PhaseResults:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter search · ↑/↓ suggestions · alt+1-4 safety filter · ctrl+x reset filters · esc close"))

	return b.String()
}

func (m Model) renderFilters() string {
	parts := make([]string, 0, len(entity.SafetyStatuses))
	for i, status := range entity.SafetyStatuses {
		label := fmt.Sprintf("[%d] %s", i+1, status)
		if m.state.SafetyStatus != nil && *m.state.SafetyStatus == status {
			parts = append(parts, m.styles.statusBadge(status))

			continue
		}
		parts = append(parts, m.styles.Muted.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (m Model) renderSuggestions() string {
	lines := make([]string, 0, len(m.state.Suggestions))
	for i, suggestion := range m.state.Suggestions {
		if i == m.cursor {
			lines = append(lines, m.styles.Selected.Render("› "+suggestion))

			continue
		}
		lines = append(lines, "  "+suggestion)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderPopular() string {
	if m.state.Surface == query.SurfaceListing {
		return m.styles.Muted.Render("Loading devices...")
	}

	return m.styles.Muted.Render("Popular: " + strings.Join(query.PopularTerms, ", ") + " (ctrl+p)")
}

func (m Model) renderResults() string {
	if m.state.Surface == query.SurfaceInline && !m.state.PanelOpen {
		return m.styles.Muted.Render("Results hidden (ctrl+f to reopen)")
	}

	var b strings.Builder
	b.WriteString(m.styles.Summary.Render(m.state.Summary()))
	b.WriteString("\n")

	devices := m.state.Visible()
	if len(devices) == 0 {
		if m.state.Surface != query.SurfaceListing {
			b.WriteString(m.styles.Muted.Render(query.EmptyMessage(m.state.SubmittedQuery)))
		}

		return b.String()
	}

	lines := make([]string, 0, min(len(devices), maxResultLines))
	for i, device := range devices {
		if i == maxResultLines {
			lines = append(lines, m.styles.Muted.Render(fmt.Sprintf("... and %d more", len(devices)-maxResultLines)))

			break
		}
		lines = append(lines, m.renderDevice(device))
	}

	return b.String() + m.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) renderDevice(device *entity.Device) string {
	line := m.styles.DeviceName.Render(device.Name) + " " + m.styles.statusBadge(device.SafetyStatus)

	details := make([]string, 0, 3)
	if name := device.ManufacturerName(); name != "" {
		details = append(details, name)
	}
	if name := device.CategoryName(); name != "" {
		details = append(details, name)
	}
	if device.ModelNumber != nil {
		details = append(details, "Model "+*device.ModelNumber)
	}
	if len(details) > 0 {
		line += "\n  " + m.styles.Muted.Render(strings.Join(details, " · "))
	}

	return line
}
