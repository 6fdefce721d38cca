package model

import (
	"encoding/json"
)

// NumCounters is the number of counters every context carries.
const NumCounters = 3

// DefaultContextName is the reserved context that always exists and can
// neither be renamed nor deleted.
const DefaultContextName = "Default"

// ContextRecord holds the state of a single named context: three counters
// and one free-text note. Counter values are unbounded in both directions.
type ContextRecord struct {
	Counters [NumCounters]int `json:"counters"`
	Note     string           `json:"note"`
}

// NewContextRecord creates a record with zero counters and an empty note.
func NewContextRecord() *ContextRecord {
	return &ContextRecord{}
}

// Increment increases counter i by 1.
func (r *ContextRecord) Increment(i int) {
	if i < 0 || i >= NumCounters {
		return
	}
	r.Counters[i]++
}

// Decrement decreases counter i by 1. No clamping at zero.
func (r *ContextRecord) Decrement(i int) {
	if i < 0 || i >= NumCounters {
		return
	}
	r.Counters[i]--
}

// ResetCounter sets counter i back to 0.
func (r *ContextRecord) ResetCounter(i int) {
	if i < 0 || i >= NumCounters {
		return
	}
	r.Counters[i] = 0
}

// ResetCounters sets all counters back to 0. The note is untouched.
func (r *ContextRecord) ResetCounters() {
	r.Counters = [NumCounters]int{}
}

// Clone returns an independent copy of the record.
func (r *ContextRecord) Clone() *ContextRecord {
	c := *r
	return &c
}

// UnmarshalJSON accepts both the current record shape and the legacy on-disk
// format, where a context was stored as a bare integer array. Legacy entries
// are upgraded in place to a record with an empty note. Arrays shorter than
// NumCounters are zero-filled, longer ones truncated. Decoding an
// already-current record is a no-op upgrade.
func (r *ContextRecord) UnmarshalJSON(data []byte) error {
	var legacy []int
	if err := json.Unmarshal(data, &legacy); err == nil {
		*r = ContextRecord{}
		for i := 0; i < len(legacy) && i < NumCounters; i++ {
			r.Counters[i] = legacy[i]
		}
		return nil
	}

	// Alias type drops the custom unmarshaller to avoid recursion.
	type plain ContextRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = ContextRecord(p)
	return nil
}
