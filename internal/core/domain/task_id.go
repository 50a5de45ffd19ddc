package domain

import "unique"

// TaskID identifies a task within a project.
// IDs are interned because every predecessor and successor edge repeats them.
type TaskID struct {
	h unique.Handle[string]
}

// NewTaskID interns s and returns it as a TaskID.
func NewTaskID(s string) TaskID {
	return TaskID{
		h: unique.Make(s),
	}
}

// NewTaskIDs interns every string in s.
func NewTaskIDs(s []string) []TaskID {
	res := make([]TaskID, len(s))
	for i, v := range s {
		res[i] = NewTaskID(v)
	}
	return res
}

// String returns the underlying identifier.
func (id TaskID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the ID was never set.
func (id TaskID) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (id TaskID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *TaskID) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}

// TaskIDStrings converts ids back to plain strings, preserving order.
func TaskIDStrings(ids []TaskID) []string {
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = id.String()
	}
	return res
}
