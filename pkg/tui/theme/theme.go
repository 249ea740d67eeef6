package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the entry form.
type Theme struct {
	Footer FooterTheme
	Modal  ModalTheme
	Field  FieldTheme
}

// FooterTheme groups styles used by the bottom status/help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles the framed entry modal.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FieldTheme styles a single labelled input row.
type FieldTheme struct {
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Heading      lipgloss.Style
	Value        lipgloss.Style
	Unset        lipgloss.Style
	Button       lipgloss.Style
	FocusButton  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(muted),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:  lipgloss.NewStyle(),
		},
		Field: FieldTheme{
			Label:        lipgloss.NewStyle().Foreground(muted),
			FocusedLabel: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Heading:      lipgloss.NewStyle().Bold(true).Underline(true),
			Value:        lipgloss.NewStyle(),
			Unset:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			Button:       lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()),
			FocusButton: lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.NormalBorder()).
				BorderForeground(accent).Foreground(accent).Bold(true),
		},
	}
}
