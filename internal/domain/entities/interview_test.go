package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewInterview_Defaults(t *testing.T) {
	userID := uuid.New()
	iv := NewInterview(userID, "Backend screen", 240)

	if iv.Status != InterviewStatusPending {
		t.Fatalf("expected pending status got %s", iv.Status)
	}
	if iv.UserID != userID {
		t.Fatalf("expected user %s got %s", userID, iv.UserID)
	}
	if iv.HasAnalysis() {
		t.Fatal("new interview should not carry an analysis")
	}
	if iv.CompletedAt != nil {
		t.Fatal("new interview should not have a completion time")
	}
}

func TestInterview_Lifecycle(t *testing.T) {
	iv := NewInterview(uuid.New(), "Phone screen", 120)

	iv.MarkAsProcessing()
	if iv.Status != InterviewStatusProcessing {
		t.Fatalf("expected processing got %s", iv.Status)
	}

	iv.MarkAsCompleted(&InterviewAnalysis{OverallScore: 82, Grade: "A-"})
	if !iv.IsCompleted() {
		t.Fatalf("expected completed got %s", iv.Status)
	}
	if !iv.HasAnalysis() || iv.Analysis.OverallScore != 82 {
		t.Fatalf("expected analysis attached got %+v", iv.Analysis)
	}
	if iv.CompletedAt == nil {
		t.Fatal("expected completion time to be set")
	}
}

func TestInterview_MarkAsFailed(t *testing.T) {
	iv := NewInterview(uuid.New(), "Onsite", 600)
	iv.MarkAsFailed()

	if iv.Status != InterviewStatusFailed {
		t.Fatalf("expected failed got %s", iv.Status)
	}
	if iv.HasAnalysis() {
		t.Fatal("failed interview should not carry an analysis")
	}
}

func TestAnalysis_MarkArchived(t *testing.T) {
	a := NewAnalysis(uuid.New(), uuid.New(), "transcript", 42, 180)

	if a.StorageKey != nil {
		t.Fatalf("new analysis must not have a storage key, got %v", a.StorageKey)
	}

	a.MarkArchived("analyses/abc.json")
	if a.StorageKey == nil || *a.StorageKey != "analyses/abc.json" {
		t.Fatalf("expected storage key recorded, got %v", a.StorageKey)
	}
}

func TestAnalysis_SetDecision(t *testing.T) {
	a := NewAnalysis(uuid.New(), uuid.New(), "transcript", 42, 180)

	if a.Decision != DecisionPending {
		t.Fatalf("expected pending decision got %s", a.Decision)
	}

	if err := a.SetDecision(DecisionSaved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Decision != DecisionSaved {
		t.Fatalf("expected saved got %s", a.Decision)
	}

	if err := a.SetDecision("archived"); err != ErrInvalidDecision {
		t.Fatalf("expected ErrInvalidDecision got %v", err)
	}
	if a.Decision != DecisionSaved {
		t.Fatalf("invalid decision must not overwrite, got %s", a.Decision)
	}
}
