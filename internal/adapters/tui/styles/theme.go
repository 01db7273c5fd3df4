package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Table styles
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Muted).
			BorderBottom(true)

	TableCursor = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	SelectedMark = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	Ordinal = lipgloss.NewStyle().
		Foreground(Muted)

	// Dialog styles
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 2)

	DialogWarning = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	EntryList = lipgloss.NewStyle().
			Foreground(Secondary)

	// Notification styles
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(Warning)

	Success = lipgloss.NewStyle().
		Foreground(Secondary)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help line
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)
