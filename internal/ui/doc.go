package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the context store and renders
// the active context's counters and note. All UI strings are localized via
// Localization.
