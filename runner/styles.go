package runner

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the terminal UI.
type Styles struct {
	Bold      lipgloss.Style
	Dim       lipgloss.Style
	Muted     lipgloss.Style
	Path      lipgloss.Style
	CheckName lipgloss.Style

	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Warn    lipgloss.Style
	Skip    lipgloss.Style
	Error   lipgloss.Style
	Running lipgloss.Style

	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	SymbolPass string
	SymbolFail string
	SymbolWarn string
	SymbolSkip string
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Bold:      lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Path:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		CheckName: lipgloss.NewStyle(),

		Pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Skip:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
		Running: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),

		ProgressFilled: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ProgressEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("237")),

		SymbolPass: "✓",
		SymbolFail: "✗",
		SymbolWarn: "!",
		SymbolSkip: "○",
	}
}

// SpinnerFrames returns the frames of the running-check spinner.
func SpinnerFrames() []string {
	return []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
}

// ProgressChars returns the filled and empty progress bar characters.
func ProgressChars() (filled, empty string) {
	return "━", "─"
}
