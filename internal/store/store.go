package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/multicount/multi-counter/internal/model"
	"github.com/multicount/multi-counter/internal/platform"
)

// JSON indentation for the save file, kept human readable.
const saveIndent = "    "

// Validation errors surfaced to the user as blocking dialogs.
var (
	ErrEmptyName       = errors.New("context name is empty")
	ErrNameExists      = errors.New("a context with this name already exists")
	ErrUnknownContext  = errors.New("context does not exist")
	ErrReservedContext = errors.New("the Default context cannot be changed")
)

// Store holds all contexts and the active-context pointer. It is owned by the
// UI thread; there is exactly one actor, so no locking is needed.
type Store struct {
	path     string
	contexts map[string]*model.ContextRecord
	active   string
	onUpdate func() // callback for UI re-render
}

// NewStore creates a store seeded with a single zeroed Default context.
// Call Load to populate it from disk.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		contexts: map[string]*model.ContextRecord{
			model.DefaultContextName: model.NewContextRecord(),
		},
		active: model.DefaultContextName,
	}
}

// SetUpdateCallback sets the callback invoked after every mutation.
func (s *Store) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Path returns the save file path.
func (s *Store) Path() string {
	return s.path
}

// Load populates the store from the save file. A missing file is first-run,
// not an error. A malformed file is logged and replaced with defaults in
// memory; the file on disk stays untouched until the next save. Legacy
// entries are upgraded during decoding.
func (s *Store) Load() {
	doc := model.NewDocument()

	data, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		log.Printf("Save file not found at %s, starting with Default context", s.path)
	case err != nil:
		log.Printf("Error reading save file %s: %v, starting with defaults", s.path, err)
	default:
		if err := json.Unmarshal(data, doc); err != nil {
			log.Printf("Error parsing save file %s: %v, starting with defaults", s.path, err)
			doc = model.NewDocument()
		}
	}

	doc.Normalize()
	s.contexts = doc.Contexts
	s.active = doc.LastActive

	log.Printf("Loaded %d context(s), active: %s", len(s.contexts), s.active)
	s.notifyUpdate()
}

// Save serializes the store to the document format and writes it atomically.
// On failure the error is returned; callers log and continue.
func (s *Store) Save() error {
	data, err := s.encode()
	if err != nil {
		return err
	}

	if err := platform.WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("failed to save contexts: %w", err)
	}

	log.Printf("Saved %d context(s) to %s", len(s.contexts), s.path)
	return nil
}

// encode renders the current state as the persisted document.
func (s *Store) encode() ([]byte, error) {
	doc := &model.Document{
		LastActive: s.active,
		Contexts:   s.contexts,
	}

	data, err := json.MarshalIndent(doc, "", saveIndent)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contexts: %w", err)
	}
	return data, nil
}

// ActiveName returns the name of the active context.
func (s *Store) ActiveName() string {
	return s.active
}

// Active returns the record of the active context. The active pointer always
// names an existing entry.
func (s *Store) Active() *model.ContextRecord {
	record, ok := s.contexts[s.active]
	if !ok {
		// Invariant repair; should not happen.
		log.Printf("Active context %q missing, falling back to Default", s.active)
		s.active = model.DefaultContextName
		record = s.contexts[s.active]
	}
	return record
}

// Names returns all context names with Default first and the rest sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.contexts))
	for name := range s.contexts {
		if name != model.DefaultContextName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{model.DefaultContextName}, names...)
}

// Len returns the number of contexts.
func (s *Store) Len() int {
	return len(s.contexts)
}

// SwitchTo makes name the active context. Switching to the already-active
// context is a no-op. Mutations commit into the store immediately, so there
// is no display draft to flush here.
func (s *Store) SwitchTo(name string) error {
	if name == s.active {
		return nil
	}
	if _, ok := s.contexts[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownContext, name)
	}

	s.active = name
	log.Printf("Switched to context: %s", name)
	s.notifyUpdate()
	return nil
}

// Add creates a new zeroed context and switches to it.
func (s *Store) Add(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := s.contexts[name]; ok {
		return fmt.Errorf("%w: %s", ErrNameExists, name)
	}

	s.contexts[name] = model.NewContextRecord()
	s.active = name
	log.Printf("Added context: %s", name)
	s.notifyUpdate()
	return nil
}

// Rename moves the active context's record under a new name. The Default
// context cannot be renamed; renaming to the current name is a no-op.
func (s *Store) Rename(newName string) error {
	oldName := s.active
	if oldName == model.DefaultContextName {
		return ErrReservedContext
	}
	if newName == "" {
		return ErrEmptyName
	}
	if newName == oldName {
		return nil
	}
	if _, ok := s.contexts[newName]; ok {
		return fmt.Errorf("%w: %s", ErrNameExists, newName)
	}

	s.contexts[newName] = s.contexts[oldName]
	delete(s.contexts, oldName)
	s.active = newName
	log.Printf("Renamed context %q to %q", oldName, newName)
	s.notifyUpdate()
	return nil
}

// Delete removes the active context and switches to Default. The Default
// context cannot be deleted.
func (s *Store) Delete() error {
	name := s.active
	if name == model.DefaultContextName {
		return ErrReservedContext
	}

	delete(s.contexts, name)
	s.active = model.DefaultContextName
	log.Printf("Deleted context: %s", name)
	s.notifyUpdate()
	return nil
}

// Increment increases counter i of the active context by 1.
func (s *Store) Increment(i int) {
	s.Active().Increment(i)
	s.notifyUpdate()
}

// Decrement decreases counter i of the active context by 1.
func (s *Store) Decrement(i int) {
	s.Active().Decrement(i)
	s.notifyUpdate()
}

// ResetCounter sets counter i of the active context back to 0.
func (s *Store) ResetCounter(i int) {
	s.Active().ResetCounter(i)
	s.notifyUpdate()
}

// ResetAll sets all counters of the active context back to 0.
func (s *Store) ResetAll() {
	s.Active().ResetCounters()
	s.notifyUpdate()
}

// SetNote replaces the note of the active context. No update callback here:
// the note editor already displays the text, and a re-render mid-typing would
// reset the cursor.
func (s *Store) SetNote(note string) {
	s.Active().Note = note
}

// Snapshot writes a timestamped copy of the current document into dir.
// Snapshots are plain save-file documents, so a snapshot can be restored by
// pointing the data file setting at it.
func (s *Store) Snapshot(dir string) (string, error) {
	data, err := s.encode()
	if err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate snapshot id: %w", err)
	}

	name := fmt.Sprintf("counters-%s-%s.json", time.Now().Format("20060102-150405"), id.String()[:8])
	path := filepath.Join(dir, name)

	if err := platform.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	log.Printf("Snapshot written: %s", path)
	return path, nil
}

// notifyUpdate calls the UI update callback if set.
func (s *Store) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
