package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconIncrement = "+"
	IconDecrement = "−"
	IconError     = "❌"
)

// Layout sizing (CounterRow / note editor)
const (
	CounterNameWidth  float32 = 110
	CounterValueWidth float32 = 56

	RowMinWidth  float32 = 320
	RowMinHeight float32 = 40

	NoteMinHeight float32 = 96
)

// Dialog sizing
const (
	NameDialogWidth      float32 = 340
	NameDialogHeight     float32 = 140
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 380
)
