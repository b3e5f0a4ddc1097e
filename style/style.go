package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors — initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#7C3AED")
	Secondary color.Color = lipgloss.Color("#06B6D4")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	SelectionBgColor color.Color = lipgloss.Color("#312E81")

	RowNearColor color.Color = lipgloss.Color("#F9FAFB")
	RowFarColor  color.Color = lipgloss.Color("#374151")

	// Gradient endpoints — default to dark theme violet→cyan
	GradColorA color.Color = lipgloss.Color("#7C3AED")
	GradColorB color.Color = lipgloss.Color("#06B6D4")
)

// Base styles — rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style
	WarnText  lipgloss.Style

	// Banner
	BannerTitle  lipgloss.Style
	BannerDetail lipgloss.Style

	// Hint text
	Hint lipgloss.Style

	// -------------------------------------------------------------------------
	// Picker
	// -------------------------------------------------------------------------

	PickerRow      lipgloss.Style // row outside the selection band
	PickerSelected lipgloss.Style // row text on the selection line
	PickerBand     lipgloss.Style // selection band behind the selected row
	PickerGap      lipgloss.Style // spacing between columns
	PickerFocus    lipgloss.Style // selected row of the focused column
	PickerFrame    lipgloss.Style // border around the whole picker

	// -------------------------------------------------------------------------
	// Status bar
	// -------------------------------------------------------------------------

	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusValue  lipgloss.Style
	StatusSignal lipgloss.Style

	// -------------------------------------------------------------------------
	// Help
	// -------------------------------------------------------------------------

	HelpKey       lipgloss.Style // key binding display
	HelpDesc      lipgloss.Style // key description
	HelpSeparator lipgloss.Style

	// -------------------------------------------------------------------------
	// Rail (cyclic position indicator)
	// -------------------------------------------------------------------------

	RailThumb lipgloss.Style
	RailTrack lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	SelectionBgColor = t.SelectionBg
	RowNearColor = t.RowNear
	RowFarColor = t.RowFar
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

// IsMono reports whether colors are disabled.
func IsMono() bool {
	return CurrentThemeName == "mono"
}

// RowColor is the foreground of a row whose center sits dist lines from the
// selection line, fading toward RowFarColor at reach lines.
func RowColor(dist, reach float64) color.Color {
	if reach <= 0 || IsMono() {
		return RowNearColor
	}
	if dist < 0 {
		dist = -dist
	}
	return LerpColor(RowNearColor, RowFarColor, dist/reach)
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)
	WarnText = lipgloss.NewStyle().Foreground(Warning)

	BannerTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	BannerDetail = lipgloss.NewStyle().Foreground(Muted)

	Hint = lipgloss.NewStyle().Foreground(Muted).Italic(true)

	PickerRow = lipgloss.NewStyle().Foreground(Muted)
	PickerSelected = lipgloss.NewStyle().Foreground(RowNearColor).Bold(true)
	PickerBand = lipgloss.NewStyle().Background(SelectionBgColor)
	PickerGap = lipgloss.NewStyle()
	PickerFocus = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	PickerFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
	if IsMono() {
		PickerBand = lipgloss.NewStyle().Reverse(true)
	}

	StatusBar = lipgloss.NewStyle().Foreground(Muted)
	StatusKey = lipgloss.NewStyle().Foreground(Muted)
	StatusValue = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	StatusSignal = lipgloss.NewStyle().Foreground(Success)

	HelpKey = lipgloss.NewStyle().Foreground(Secondary)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)
	HelpSeparator = lipgloss.NewStyle().Foreground(Dim)

	RailThumb = lipgloss.NewStyle().Foreground(Primary)
	RailTrack = lipgloss.NewStyle().Foreground(Dim)
}
