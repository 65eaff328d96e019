package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ReelRed    = lipgloss.Color("#E4504A")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Amber      = lipgloss.Color("#F59E0B")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(ReelRed).
			Bold(true).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	EchoStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ReelRed).
			Bold(true)

	SelectPromptStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)

	InputBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, false, false, false).
			BorderForeground(SlateLight)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ReelRed)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)
