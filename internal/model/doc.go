package model

// Package model defines the domain data structures: the per-context record of
// counters plus note, and the persisted document wrapping all contexts.
// Structures are designed for direct rendering in the UI and explicit state
// transitions.
