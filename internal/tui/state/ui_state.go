package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	TableMode Mode = iota // Default navigation mode
	HelpMode              // Displaying help screen
)

// UIState manages the user interface state: terminal dimensions and the
// current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState in table mode with unknown dimensions.
func NewUIState() *UIState {
	return &UIState{mode: TableMode}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records new terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}
