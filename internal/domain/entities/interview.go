package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// InterviewStatus represents the current status of an interview recording
type InterviewStatus string

const (
	InterviewStatusPending    InterviewStatus = "pending"    // Uploaded, waiting for analysis
	InterviewStatusProcessing InterviewStatus = "processing" // Analysis in progress
	InterviewStatusCompleted  InterviewStatus = "completed"  // Analysis attached
	InterviewStatusFailed     InterviewStatus = "failed"     // Analysis failed
)

// Interview represents one practice interview session
type Interview struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	User            *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title           string          `json:"title" gorm:"type:varchar(255);not null"`
	DurationSeconds int             `json:"duration_seconds" gorm:"type:integer;default:0"`
	Status          InterviewStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`

	// Analysis summary (stored as JSONB, null until analysis completes)
	Analysis *InterviewAnalysis `json:"analysis,omitempty" gorm:"type:jsonb"`

	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// InterviewAnalysis is the analysis summary attached to a completed
// interview. It is what the analytics aggregations read, so field names
// follow the client-facing camelCase convention.
type InterviewAnalysis struct {
	OverallScore    float64            `json:"overallScore"`
	FillerWords     FillerWordsSummary `json:"fillerWords"`
	Tonality        TonalitySummary    `json:"tonality"`
	ClarityScore    float64            `json:"clarityScore"`
	ContentScore    float64            `json:"contentScore"`
	ConfidenceScore float64            `json:"confidenceScore"`
	BodyLanguage    BodyLanguage       `json:"bodyLanguage"`
	SpeakingRateWPM float64            `json:"speakingRateWpm"`
	WordCount       int                `json:"wordCount"`
	Grade           string             `json:"grade"`
	Strengths       []string           `json:"strengths,omitempty"`
	Improvements    []string           `json:"improvements,omitempty"`
	Recommendations []string           `json:"recommendations,omitempty"`
}

// FillerWordsSummary aggregates filler-word usage for one interview
type FillerWordsSummary struct {
	Count       int      `json:"count"`
	Words       []string `json:"words,omitempty"`
	PerMinute   float64  `json:"perMinute"`
	Per100Words float64  `json:"per100Words"`
	Severity    string   `json:"severity"`
}

// TonalitySummary captures the confidence balance of the delivery
type TonalitySummary struct {
	Confident  float64 `json:"confident"`  // 0..1
	Uncertain  float64 `json:"uncertain"`  // 0..1
	Assessment string  `json:"assessment"` // low, medium, high
}

// BodyLanguage holds the visual-delivery score when available
type BodyLanguage struct {
	Score        float64  `json:"score"`
	Observations []string `json:"observations,omitempty"`
}

// Scan implements sql.Scanner interface for GORM
func (a *InterviewAnalysis) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Value implements driver.Valuer interface for GORM
func (a InterviewAnalysis) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// NewInterview creates a new interview awaiting analysis
func NewInterview(userID uuid.UUID, title string, durationSeconds int) *Interview {
	now := time.Now()
	return &Interview{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           title,
		DurationSeconds: durationSeconds,
		Status:          InterviewStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsCompleted checks if the interview has a finished analysis
func (i *Interview) IsCompleted() bool {
	return i.Status == InterviewStatusCompleted
}

// HasAnalysis checks if an analysis summary is attached
func (i *Interview) HasAnalysis() bool {
	return i.Analysis != nil
}

// MarkAsProcessing marks the interview as being analyzed
func (i *Interview) MarkAsProcessing() {
	i.Status = InterviewStatusProcessing
	i.UpdatedAt = time.Now()
}

// MarkAsCompleted attaches the analysis summary
func (i *Interview) MarkAsCompleted(analysis *InterviewAnalysis) {
	now := time.Now()
	i.Status = InterviewStatusCompleted
	i.Analysis = analysis
	i.CompletedAt = &now
	i.UpdatedAt = now
}

// MarkAsFailed marks the interview analysis as failed
func (i *Interview) MarkAsFailed() {
	i.Status = InterviewStatusFailed
	i.UpdatedAt = time.Now()
}

// TableName specifies the table name for GORM
func (Interview) TableName() string {
	return "interviews"
}
