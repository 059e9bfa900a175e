package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header       string
	LeftPane     string
	RightPane    string
	Overlay      string
	StatusLine   string
	StatusLevel  string
	Footer       string
	Notification string
}

// Theme is the lipgloss palette for one of the two UI modes.
type Theme struct {
	Dark      bool
	Header    lipgloss.Style
	Status    lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Panel     lipgloss.Style
	Dialog    lipgloss.Style
	Footer    lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	Muted     lipgloss.Style
	Edited    lipgloss.Style
	Completed lipgloss.Style
}

func NewTheme(dark bool) Theme {
	accent, text, muted := lipgloss.Color("12"), lipgloss.Color("0"), lipgloss.Color("8")
	if dark {
		accent, text, muted = lipgloss.Color("14"), lipgloss.Color("15"), lipgloss.Color("7")
	}
	return Theme{
		Dark:      dark,
		Header:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		Dialog:    lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("9")).Padding(1, 2),
		Footer:    lipgloss.NewStyle().Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true),
		Tab:       lipgloss.NewStyle().Foreground(text),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Done:      lipgloss.NewStyle().Strikethrough(true).Foreground(muted),
		Muted:     lipgloss.NewStyle().Italic(true).Foreground(muted),
		Edited:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("9")),
		Completed: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("12")),
	}
}

func RenderApp(t Theme, data AppData) string {
	left := t.Panel.Width(58).Render(data.LeftPane)
	right := data.RightPane
	if data.Overlay != "" {
		right = data.Overlay
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, t.Panel.Width(50).Render(right))

	var status string
	switch data.StatusLevel {
	case "error":
		status = t.Error.Render(data.StatusLine)
	case "warn":
		status = t.Warning.Render(data.StatusLine)
	default:
		status = t.Status.Render(data.StatusLine)
	}

	lines := []string{
		t.Header.Render(data.Header),
		row,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, t.Panel.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, t.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md for the terminal, falling back to the raw text
// if glamour cannot.
func RenderMarkdown(md string, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
