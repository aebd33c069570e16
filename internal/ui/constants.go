package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Action button labels; these are format names, not translated text
const (
	LabelAudioButton = "mp3"
	LabelVideoButton = "mp4"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Window sizing; the window is fixed-size
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 140
)
