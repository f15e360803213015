package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconStar     = "★"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	MetricsSeparator   = " - "
	DashPlaceholder    = "—"
	DescriptionIndent  = "\t"
)

// Window defaults
const (
	WindowWidth  float32 = 1280
	WindowHeight float32 = 720
)

// Layout sizing (list pane / details pane)
const (
	ListMinWidth    float32 = 300
	ListSplitOffset         = 0.28
	PaneSpacing     float32 = 12
	PanePadding     float32 = 12

	RowMinHeight    float32 = 56
	RowCornerRadius float32 = 6

	AppImageSize       float32 = 156
	StarIconSize       float32 = 18
	DescriptionPadding float32 = 36
)
