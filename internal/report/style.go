package report

import "github.com/charmbracelet/lipgloss"

// Report styles. Names omit a "Style" suffix since they are only used here.
var (
	// Title is used for the report banner.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Heading is used for each platform section.
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("63"))

	// Success marks a post within its budget.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Error marks an over-budget or failed post.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Label is used for inline labels (e.g., "Budget:", "Remaining:").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Muted is used for rules and de-emphasized text.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Body frames the generated content.
	Body = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
)
