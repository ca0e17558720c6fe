package state

import "github.com/thenoetrevino/tablero/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode, also used while holding a card or column
	TaskFormMode                  // Adding or editing a task with huh
	ColumnFormMode                // Renaming or recoloring a column with huh
	DeleteConfirmMode             // Confirming task deletion
	HelpMode                      // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case TaskFormMode:
		return "task-form"
	case ColumnFormMode:
		return "column-form"
	case DeleteConfirmMode:
		return "delete-confirm"
	case HelpMode:
		return "help"
	default:
		return "normal"
	}
}

// Column layout, in terminal cells
const (
	ColumnContentWidth = 32
	ColumnWidth        = ColumnContentWidth + 6 // card border, column padding and border
	columnOuterWidth   = ColumnWidth + 1        // gap between columns
	reservedWidth      = 4                      // scroll indicators
)

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int
	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// taskScrollOffsets is the index of the first visible task per column
	taskScrollOffsets map[types.ColumnID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		taskScrollOffsets: make(map[types.ColumnID]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the selected task within the selected column.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns once the header and
// status bar are drawn, never less than 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // stats line + gap
	const statusBarHeight = 2 // status bar + gap
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}
	s.viewportSize = max(1, (s.width-reservedWidth)/columnOuterWidth)
}

// EnsureSelectionVisible scrolls the viewport so the selected column is on
// screen and stays within the column count.
func (s *UIState) EnsureSelectionVisible(columnsLen int) {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = s.selectedColumn - s.viewportSize + 1
	}
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
}

// Clamp keeps the selection inside a board with the given column count and
// the given number of tasks in the selected column.
func (s *UIState) Clamp(columnsLen int, tasksInColumn func(col int) int) {
	if columnsLen == 0 {
		s.selectedColumn, s.selectedTask = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)

	n := tasksInColumn(s.selectedColumn)
	if n == 0 {
		s.selectedTask = 0
	} else {
		s.selectedTask = min(max(s.selectedTask, 0), n-1)
	}
	s.EnsureSelectionVisible(columnsLen)
}

// ResetSelection moves the selection back to the first column.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
	s.taskScrollOffsets = make(map[types.ColumnID]int)
}

// TaskScrollOffset returns the vertical scroll offset for a column.
func (s *UIState) TaskScrollOffset(id types.ColumnID) int {
	return s.taskScrollOffsets[id]
}

// EnsureTaskVisible scrolls a column so the task at index is among the
// visible ones.
func (s *UIState) EnsureTaskVisible(id types.ColumnID, index, visibleCount int) {
	visibleCount = max(visibleCount, 1)
	offset := s.taskScrollOffsets[id]
	if index < offset {
		offset = index
	}
	if index >= offset+visibleCount {
		offset = index - visibleCount + 1
	}
	s.taskScrollOffsets[id] = max(offset, 0)
}
