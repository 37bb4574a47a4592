package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/infra/dataservice/fixture"
	"mrisafe/internal/query"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, surface query.Surface) (Model, *query.Controller) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := fixture.NewRepository(logger, fixture.WithSearchLatency(0))
	ctrl := query.New(surface, repo, query.WithLogger(logger), query.WithLoader(repo))
	t.Cleanup(ctrl.Close)

	return New(context.Background(), ctrl), ctrl
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	return m
}

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

// settle waits for in-flight requests and feeds the final state to the model.
func settle(t *testing.T, m Model, ctrl *query.Controller) Model {
	t.Helper()
	ctrl.Wait()

	return press(t, m, stateMsg(ctrl.Snapshot()))
}

func TestModel_TypingShowsSuggestionsWithoutSearching(t *testing.T) {
	m, ctrl := newTestModel(t, query.SurfaceInline)

	m = press(t, m, typeText("Pace"))

	assert.Equal(t, "Pace", ctrl.Snapshot().Query)
	assert.Equal(t, query.PhaseIdle, m.state.Phase)
	view := m.View()
	assert.Contains(t, view, "Pace - Medtronic")
	assert.Contains(t, view, "Popular: Pacemaker, Insulin Pump, Cochlear Implant")
}

func TestModel_EnterSearchesAndRendersResults(t *testing.T) {
	m, ctrl := newTestModel(t, query.SurfaceInline)

	m = press(t, m, typeText("pacemaker"), tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, ctrl)

	view := m.View()
	assert.Contains(t, view, `Found 1 result for "pacemaker"`)
	assert.Contains(t, view, "CardioRhythm Pacemaker")
	assert.Contains(t, view, "Medtronic · Cardiac Devices · Model CR-PM-2023")
}

func TestModel_SelectingSuggestionSearchesIt(t *testing.T) {
	m, ctrl := newTestModel(t, query.SurfaceInline)

	m = press(t, m, typeText("Pace"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	m = settle(t, m, ctrl)

	assert.Equal(t, "Pace - Medtronic", m.input.Value())
	assert.Equal(t, "Pace - Medtronic", m.state.SubmittedQuery)
	assert.Contains(t, m.View(), `No devices found matching "Pace - Medtronic". Try different keywords.`)
}

func TestModel_PopularShortcutAndEscape(t *testing.T) {
	m, ctrl := newTestModel(t, query.SurfaceInline)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	m = settle(t, m, ctrl)
	assert.Equal(t, "Pacemaker", m.state.SubmittedQuery)
	assert.Contains(t, m.View(), "CardioRhythm Pacemaker")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.state.PanelOpen)
	assert.NotContains(t, m.View(), "CardioRhythm Pacemaker")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, query.PhaseIdle, m.state.Phase)
	assert.Empty(t, m.input.Value())
}

func TestModel_ListingFiltersLocally(t *testing.T) {
	m, ctrl := newTestModel(t, query.SurfaceListing)

	m.Init()
	m = settle(t, m, ctrl)
	assert.Contains(t, m.View(), "Showing 5 of 5 devices")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true})
	require.NotNil(t, m.state.SafetyStatus)
	assert.Equal(t, entity.SafetyStatusUnsafe, *m.state.SafetyStatus)
	assert.Contains(t, m.View(), "Showing 1 of 5 devices")
	assert.Contains(t, m.View(), "InsulinFlow Pump")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Nil(t, m.state.SafetyStatus)

	m = press(t, m, typeText("neuro"))
	assert.Contains(t, m.View(), "Showing 2 of 5 devices")
}

func TestModel_QuitsWhenUpdatesClose(t *testing.T) {
	m, _ := newTestModel(t, query.SurfaceInline)

	_, cmd := m.Update(updatesClosedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
