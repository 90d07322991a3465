package interview

// IngestInterviewRequest carries a finished mock-interview transcript.
// Field names follow the client payload convention (camelCase). The body
// language and content fields are optional client-side assessments.
type IngestInterviewRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=255"`
	DurationSeconds int    `json:"durationSeconds" validate:"omitempty,min=0,max=14400"`
	Transcript      string `json:"transcript" validate:"required"`

	BodyLanguageScore        *float64 `json:"bodyLanguageScore,omitempty" validate:"omitempty,min=0,max=100"`
	BodyLanguageObservations []string `json:"bodyLanguageObservations,omitempty" validate:"omitempty,max=20,dive,max=500"`
	ContentScore             *float64 `json:"contentScore,omitempty" validate:"omitempty,min=0,max=100"`
}

// ListInterviewsRequest represents query parameters for listing interviews
type ListInterviewsRequest struct {
	Timeframe string `query:"timeframe" validate:"omitempty,timeframe"`
	Status    string `query:"status" validate:"omitempty,oneof=pending processing completed failed"`
	Search    string `query:"search" validate:"omitempty,max=255"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"pageSize" validate:"omitempty,min=1,max=100"`
}

// UpdateDecisionRequest records whether the user keeps or discards an
// analysis
type UpdateDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=saved discarded"`
}
