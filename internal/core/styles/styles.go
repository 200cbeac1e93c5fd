// Package styles provides shared lipgloss styles and theme palettes for
// CLI and TUI output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/waggle/internal/core/task"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"),
		Secondary:  lipgloss.Color("#94e2d5"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Muted:      lipgloss.Color("#6c7086"),
		Surface:    lipgloss.Color("#313244"),
		Success:    lipgloss.Color("#a6e3a1"),
		Warning:    lipgloss.Color("#f9e2af"),
		Error:      lipgloss.Color("#f38ba8"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Styles derived from the active palette.
var (
	TitleStyle   lipgloss.Style
	MutedStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	urgencyStyles map[task.Urgency]lipgloss.Style
	statusStyles  map[task.Status]lipgloss.Style
)

// SetTheme activates a palette and rebuilds the derived styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	HeaderStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	WarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	urgencyStyles = map[task.Urgency]lipgloss.Style{
		task.UrgencyOverdue: lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		task.UrgencyToday:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		task.UrgencySoon:    lipgloss.NewStyle().Foreground(p.Warning),
		task.UrgencyNormal:  lipgloss.NewStyle().Foreground(p.Foreground),
		task.UrgencyNone:    lipgloss.NewStyle().Foreground(p.Muted),
	}

	statusStyles = map[task.Status]lipgloss.Style{
		task.StatusTodo:       lipgloss.NewStyle().Foreground(p.Foreground),
		task.StatusInProgress: lipgloss.NewStyle().Foreground(p.Secondary),
		task.StatusDone:       lipgloss.NewStyle().Foreground(p.Success),
		task.StatusCancelled:  lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true),
		task.StatusArchived:   lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// UrgencyStyle returns the display style for an urgency bucket.
func UrgencyStyle(u task.Urgency) lipgloss.Style {
	return urgencyStyles[u]
}

// StatusStyle returns the display style for a task status.
func StatusStyle(s task.Status) lipgloss.Style {
	return statusStyles[s]
}

func init() {
	SetTheme(themes[DefaultTheme])
}
