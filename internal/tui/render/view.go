package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/tablero/internal/tui"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The board is always the base layer with modals drawn over it
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewBoard(m)),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		modalLayer = RenderTaskFormLayer(m)
	case state.ColumnFormMode:
		modalLayer = RenderColumnFormLayer(m)
	case state.DeleteConfirmMode:
		modalLayer = RenderDeleteConfirmLayer(m)
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	layers = append(layers, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}
