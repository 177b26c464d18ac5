package output

import "github.com/charmbracelet/lipgloss"

// Color constants using the ANSI 256-color palette. These provide a
// consistent color scheme across all formatters.
const (
	// ColorPrimary is used for primary elements like headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for positive status indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for dry-run notices (orange/yellow).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for errors and failed moves (red).
	ColorDanger = lipgloss.Color("196")

	// ColorMuted is used for secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// Box styles for containing grouped content.
var (
	// HeaderBox is the style for the header section with run info.
	HeaderBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1).
			MarginBottom(1)

	// FooterBox is the style for the summary footer.
	FooterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			MarginTop(1)

	// ErrorBox is the style for failed-move listings.
	ErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(0, 1)
)

// Text styles for various content types.
var (
	// LabelStyle is used for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle()

	// MutedStyle is used for secondary information.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// CategoryStyle is used for category names in the move table.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// DryRunStyle marks preview-only runs.
	DryRunStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	// ErrorStyle is used for failure lines.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)
)
