package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisDecision is the user's verdict on a completed analysis
type AnalysisDecision string

const (
	DecisionPending   AnalysisDecision = "pending"   // Awaiting user review
	DecisionSaved     AnalysisDecision = "saved"     // Kept for progress tracking
	DecisionDiscarded AnalysisDecision = "discarded" // Hidden from progress tracking
)

// IsValid checks if the decision is valid
func (d AnalysisDecision) IsValid() bool {
	switch d {
	case DecisionPending, DecisionSaved, DecisionDiscarded:
		return true
	}
	return false
}

// Analysis is the full analysis snapshot for one interview. The interview
// row carries the summary used by analytics; this row keeps the transcript
// and the complete engine output. Decision is the only field that changes
// after the snapshot is written.
type Analysis struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	InterviewID uuid.UUID `json:"interview_id" gorm:"type:uuid;not null;uniqueIndex"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	Transcript      string `json:"transcript" gorm:"type:text;not null"`
	WordCount       int    `json:"word_count" gorm:"type:integer;default:0"`
	DurationSeconds int    `json:"duration_seconds" gorm:"type:integer;default:0"`

	// Client-side assessments supplied at ingest. The engine only sees
	// text, so visual scores arrive with the transcript or stay null.
	BodyLanguageScore        *float64       `json:"body_language_score,omitempty" gorm:"type:numeric"`
	BodyLanguageObservations datatypes.JSON `json:"body_language_observations,omitempty" gorm:"type:jsonb"`
	ContentScore             *float64       `json:"content_score,omitempty" gorm:"type:numeric"`

	// RawResponse is the verbatim engine output; Results is the normalized
	// summary as attached to the interview.
	RawResponse datatypes.JSON `json:"raw_response,omitempty" gorm:"type:jsonb"`
	Results     datatypes.JSON `json:"results,omitempty" gorm:"type:jsonb"`

	Decision   AnalysisDecision `json:"decision" gorm:"type:varchar(20);not null;default:'pending';index"`
	StorageKey *string          `json:"storage_key,omitempty" gorm:"type:varchar(500)"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewAnalysis creates a new analysis snapshot
func NewAnalysis(interviewID, userID uuid.UUID, transcript string, wordCount, durationSeconds int) *Analysis {
	now := time.Now()
	return &Analysis{
		ID:              uuid.New(),
		InterviewID:     interviewID,
		UserID:          userID,
		Transcript:      transcript,
		WordCount:       wordCount,
		DurationSeconds: durationSeconds,
		Decision:        DecisionPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SetClientAssessments attaches the optional ingest-time assessments.
// observations must be valid JSON (a string array) or nil.
func (a *Analysis) SetClientAssessments(bodyScore *float64, observations datatypes.JSON, contentScore *float64) {
	a.BodyLanguageScore = bodyScore
	a.BodyLanguageObservations = observations
	a.ContentScore = contentScore
}

// SetDecision records the user's verdict on this analysis
func (a *Analysis) SetDecision(d AnalysisDecision) error {
	if !d.IsValid() {
		return ErrInvalidDecision
	}
	a.Decision = d
	a.UpdatedAt = time.Now()
	return nil
}

// MarkArchived records the object-storage key of the archived snapshot
func (a *Analysis) MarkArchived(key string) {
	a.StorageKey = &key
	a.UpdatedAt = time.Now()
}

// TableName specifies the table name for GORM
func (Analysis) TableName() string {
	return "analyses"
}
