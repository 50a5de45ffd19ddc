package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/crit/internal/core/domain"
)

func TestTaskID(t *testing.T) {
	id1 := domain.NewTaskID("design")
	id2 := domain.NewTaskID("design")

	if id1 != id2 {
		t.Errorf("expected identical ids to compare equal, got %v and %v", id1, id2)
	}
	if id1.String() != "design" {
		t.Errorf("expected String() to return %q, got %q", "design", id1.String())
	}
}

func TestTaskID_Zero(t *testing.T) {
	var id domain.TaskID

	if !id.IsZero() {
		t.Error("expected zero value to report IsZero")
	}
	if id.String() != "" {
		t.Errorf("expected empty string for zero id, got %q", id.String())
	}
	if domain.NewTaskID("").IsZero() {
		t.Error("an interned empty string is not the zero value")
	}
}

func TestTaskID_JSON(t *testing.T) {
	type row struct {
		ID    domain.TaskID   `json:"id"`
		After []domain.TaskID `json:"after"`
	}

	original := row{
		ID:    domain.NewTaskID("build"),
		After: domain.NewTaskIDs([]string{"design", "review"}),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	expected := `{"id":"build","after":["design","review"]}`
	if string(data) != expected {
		t.Errorf("expected JSON %s, got %s", expected, string(data))
	}

	var decoded row
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if decoded.ID != original.ID {
		t.Errorf("expected id %q, got %q", original.ID, decoded.ID)
	}
	if got := domain.TaskIDStrings(decoded.After); len(got) != 2 || got[0] != "design" || got[1] != "review" {
		t.Errorf("unexpected predecessors after round trip: %v", got)
	}
}
