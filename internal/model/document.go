package model

// Document is the persisted on-disk representation of the whole store:
// every context record keyed by name, plus the name of the context that was
// active when the document was written.
type Document struct {
	LastActive string                    `json:"__last_active__"`
	Contexts   map[string]*ContextRecord `json:"contexts"`
}

// NewDocument returns a document holding a single zeroed Default context.
// This is the state used on first run and whenever the save file cannot be
// read.
func NewDocument() *Document {
	return &Document{
		LastActive: DefaultContextName,
		Contexts: map[string]*ContextRecord{
			DefaultContextName: NewContextRecord(),
		},
	}
}

// Normalize repairs structural gaps after decoding: a nil context map, a
// missing Default entry, nil records, and a LastActive pointer that names a
// context which does not exist (falls back to Default).
func (d *Document) Normalize() {
	if d.Contexts == nil {
		d.Contexts = make(map[string]*ContextRecord)
	}
	for name, record := range d.Contexts {
		if record == nil {
			d.Contexts[name] = NewContextRecord()
		}
	}
	if _, ok := d.Contexts[DefaultContextName]; !ok {
		d.Contexts[DefaultContextName] = NewContextRecord()
	}
	if _, ok := d.Contexts[d.LastActive]; !ok {
		d.LastActive = DefaultContextName
	}
}
