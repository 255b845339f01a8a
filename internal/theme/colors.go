package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Branch colors
const (
	ColorBranchGlyph Color = "13" // Bright purple
	ColorBranchName  Color = "7"  // White
)

// File status colors
const (
	ColorClean      Color = "2" // Green
	ColorConflicted Color = "1" // Red
	ColorDeleted    Color = "1" // Red
	ColorModified   Color = "3" // Yellow
	ColorNew        Color = "2" // Green
	ColorUntracked  Color = "6" // Cyan
)
