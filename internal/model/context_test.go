package model

import (
	"encoding/json"
	"testing"
)

func TestContextRecord_IncrementDecrement(t *testing.T) {
	record := NewContextRecord()

	// Three increments and one decrement net +2
	record.Increment(0)
	record.Increment(0)
	record.Increment(0)
	record.Decrement(0)

	if record.Counters[0] != 2 {
		t.Errorf("Expected counter 0 to be 2, got %d", record.Counters[0])
	}

	// Counters go below zero, no clamping
	record.Decrement(1)
	record.Decrement(1)
	if record.Counters[1] != -2 {
		t.Errorf("Expected counter 1 to be -2, got %d", record.Counters[1])
	}
}

func TestContextRecord_IndexOutOfRange(t *testing.T) {
	record := NewContextRecord()

	record.Increment(-1)
	record.Increment(NumCounters)
	record.Decrement(99)
	record.ResetCounter(-5)

	for i, v := range record.Counters {
		if v != 0 {
			t.Errorf("Counter %d changed by out-of-range access, got %d", i, v)
		}
	}
}

func TestContextRecord_Reset(t *testing.T) {
	record := &ContextRecord{Counters: [NumCounters]int{5, -3, 7}, Note: "keep me"}

	record.ResetCounter(1)
	if record.Counters != [NumCounters]int{5, 0, 7} {
		t.Errorf("ResetCounter(1) gave %v", record.Counters)
	}

	record.ResetCounters()
	if record.Counters != [NumCounters]int{} {
		t.Errorf("ResetCounters gave %v", record.Counters)
	}
	if record.Note != "keep me" {
		t.Errorf("ResetCounters should not touch the note, got %q", record.Note)
	}
}

func TestContextRecord_UnmarshalLegacy(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ContextRecord
	}{
		{"legacy array", `[1,2,3]`, ContextRecord{Counters: [NumCounters]int{1, 2, 3}}},
		{"legacy short array", `[7]`, ContextRecord{Counters: [NumCounters]int{7, 0, 0}}},
		{"legacy long array", `[1,2,3,4,5]`, ContextRecord{Counters: [NumCounters]int{1, 2, 3}}},
		{"legacy negative values", `[-1,0,-9]`, ContextRecord{Counters: [NumCounters]int{-1, 0, -9}}},
		{"current record", `{"counters":[4,5,6],"note":"abc"}`, ContextRecord{Counters: [NumCounters]int{4, 5, 6}, Note: "abc"}},
		{"current record empty note", `{"counters":[0,0,0],"note":""}`, ContextRecord{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var record ContextRecord
			if err := json.Unmarshal([]byte(test.input), &record); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", test.input, err)
			}
			if record != test.expected {
				t.Errorf("Unmarshal(%s) = %+v, expected %+v", test.input, record, test.expected)
			}
		})
	}
}

func TestContextRecord_MigrationIsIdempotent(t *testing.T) {
	var first ContextRecord
	if err := json.Unmarshal([]byte(`[1,2,3]`), &first); err != nil {
		t.Fatalf("Legacy unmarshal failed: %v", err)
	}

	// Re-encode and decode again; the round trip must not change anything.
	encoded, err := json.Marshal(&first)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var second ContextRecord
	if err := json.Unmarshal(encoded, &second); err != nil {
		t.Fatalf("Re-unmarshal failed: %v", err)
	}

	if first != second {
		t.Errorf("Migration not idempotent: %+v vs %+v", first, second)
	}
}

func TestContextRecord_MarshalShape(t *testing.T) {
	record := &ContextRecord{Counters: [NumCounters]int{1, 2, 3}, Note: "n"}

	encoded, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"counters":[1,2,3],"note":"n"}`
	if string(encoded) != expected {
		t.Errorf("Marshal = %s, expected %s", encoded, expected)
	}
}

func TestDocument_Normalize(t *testing.T) {
	// Missing contexts map and dangling active pointer
	doc := &Document{LastActive: "Ghost"}
	doc.Normalize()

	if doc.Contexts == nil {
		t.Fatal("Normalize should allocate the context map")
	}
	if _, ok := doc.Contexts[DefaultContextName]; !ok {
		t.Error("Normalize should ensure the Default context exists")
	}
	if doc.LastActive != DefaultContextName {
		t.Errorf("Dangling active pointer should fall back to Default, got %q", doc.LastActive)
	}

	// Valid active pointer is preserved
	doc.Contexts["Work"] = &ContextRecord{Counters: [NumCounters]int{1, 0, 0}}
	doc.LastActive = "Work"
	doc.Normalize()
	if doc.LastActive != "Work" {
		t.Errorf("Valid active pointer should be preserved, got %q", doc.LastActive)
	}

	// Nil records are replaced
	doc.Contexts["Broken"] = nil
	doc.Normalize()
	if doc.Contexts["Broken"] == nil {
		t.Error("Normalize should replace nil records")
	}
}

func TestDocument_LegacyMixedLoad(t *testing.T) {
	raw := `{
		"__last_active__": "X",
		"contexts": {
			"Default": [0, 0, 0],
			"X": [1, 2, 3],
			"Y": {"counters": [4, 5, 6], "note": "hello"}
		}
	}`

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	doc.Normalize()

	if doc.LastActive != "X" {
		t.Errorf("Expected active context X, got %q", doc.LastActive)
	}

	x := doc.Contexts["X"]
	if x == nil || x.Counters != [NumCounters]int{1, 2, 3} || x.Note != "" {
		t.Errorf("Legacy entry X not upgraded correctly: %+v", x)
	}

	y := doc.Contexts["Y"]
	if y == nil || y.Counters != [NumCounters]int{4, 5, 6} || y.Note != "hello" {
		t.Errorf("Current entry Y decoded incorrectly: %+v", y)
	}
}
