package store

import (
	"github.com/multicount/multi-counter/internal/model"
)

// ContextStore defines the interface for the context store consumed by the UI.
type ContextStore interface {
	SetUpdateCallback(func())
	Load()
	Save() error
	Path() string

	ActiveName() string
	Active() *model.ContextRecord
	Names() []string
	Len() int

	SwitchTo(name string) error
	Add(name string) error
	Rename(newName string) error
	Delete() error

	Increment(i int)
	Decrement(i int)
	ResetCounter(i int)
	ResetAll()
	SetNote(note string)

	// Snapshot writes a timestamped copy of the current document into dir and
	// returns the path of the file written.
	Snapshot(dir string) (string, error)
}
