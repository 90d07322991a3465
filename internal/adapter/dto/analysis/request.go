package analysis

// QuickAnalyzeRequest runs the engine synchronously without persisting
// anything. Field names follow the client payload convention (camelCase).
type QuickAnalyzeRequest struct {
	Transcript      string `json:"transcript" validate:"required"`
	DurationSeconds int    `json:"durationSeconds" validate:"omitempty,min=0,max=14400"`
}

// BatchAnalyzeRequest re-enqueues analysis for a set of interviews
type BatchAnalyzeRequest struct {
	InterviewIDs []string `json:"interviewIds" validate:"required,min=1,max=50,dive,uuid"`
}

// ListJobsRequest represents query parameters for listing analysis jobs
type ListJobsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=pending processing completed failed retrying cancelled"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}
