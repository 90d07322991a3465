package presenter

import (
	"encoding/json"
	"time"

	"github.com/interviewai-team/interviewai-backend/internal/adapter/dto/common"
	interviewDTO "github.com/interviewai-team/interviewai-backend/internal/adapter/dto/interview"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analysis"
)

// ToInterviewResponse converts an Interview entity to InterviewResponse DTO
func ToInterviewResponse(iv *entities.Interview) *interviewDTO.InterviewResponse {
	if iv == nil {
		return nil
	}
	return &interviewDTO.InterviewResponse{
		ID:              iv.ID.String(),
		Title:           iv.Title,
		DurationSeconds: iv.DurationSeconds,
		Status:          string(iv.Status),
		Analysis:        iv.Analysis,
		CompletedAt:     iv.CompletedAt,
		CreatedAt:       iv.CreatedAt,
		UpdatedAt:       iv.UpdatedAt,
	}
}

// ToInterviewListResponse converts interviews to a paginated list response
func ToInterviewListResponse(interviews []*entities.Interview, total int64, page, pageSize int) *common.ListResponse {
	items := make([]*interviewDTO.InterviewResponse, len(interviews))
	for i, iv := range interviews {
		items[i] = ToInterviewResponse(iv)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &common.ListResponse{
		Items: items,
		Pagination: &common.PaginationResponse{
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
	}
}

// ToIngestResponse bundles the stored interview with its queued job
func ToIngestResponse(iv *entities.Interview, job *entities.AnalysisJob) *interviewDTO.IngestResponse {
	return &interviewDTO.IngestResponse{
		Interview: ToInterviewResponse(iv),
		Job:       ToAnalysisJobResponse(job),
	}
}

// ToAnalysisResponse converts an Analysis snapshot to AnalysisResponse DTO
func ToAnalysisResponse(a *entities.Analysis) *interviewDTO.AnalysisResponse {
	if a == nil {
		return nil
	}

	var results *entities.InterviewAnalysis
	if len(a.Results) > 0 {
		var doc entities.InterviewAnalysis
		if err := json.Unmarshal(a.Results, &doc); err == nil {
			results = &doc
		}
	}

	return &interviewDTO.AnalysisResponse{
		ID:              a.ID.String(),
		InterviewID:     a.InterviewID.String(),
		Transcript:      a.Transcript,
		WordCount:       a.WordCount,
		DurationSeconds: a.DurationSeconds,
		Results:         results,
		Decision:        string(a.Decision),
		Archived:        a.StorageKey != nil,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ToAnalysisJobResponse converts an AnalysisJob entity to its DTO, with the
// projected time remaining for jobs still in flight
func ToAnalysisJobResponse(job *entities.AnalysisJob) *interviewDTO.AnalysisJobResponse {
	if job == nil {
		return nil
	}

	response := &interviewDTO.AnalysisJobResponse{
		ID:               job.ID.String(),
		InterviewID:      job.InterviewID.String(),
		JobType:          string(job.JobType),
		Status:           string(job.Status),
		Progress:         job.Progress,
		Stage:            job.Metadata.Stage,
		EstimatedSeconds: job.EstimatedSeconds,
		RetryCount:       job.RetryCount,
		MaxRetries:       job.MaxRetries,
		ErrorMessage:     job.ErrorMessage,
		WorkerID:         job.WorkerID,
		StartedAt:        job.StartedAt,
		CompletedAt:      job.CompletedAt,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}

	if !job.IsTerminal() {
		remaining := job.EstimatedSeconds
		if job.StartedAt != nil {
			remaining = analysis.RemainingSeconds(time.Since(*job.StartedAt), job.Progress, job.EstimatedSeconds)
		}
		response.RemainingSeconds = &remaining
	}

	return response
}

// ToAnalysisJobListResponse converts a job slice to DTOs
func ToAnalysisJobListResponse(jobs []entities.AnalysisJob) []*interviewDTO.AnalysisJobResponse {
	items := make([]*interviewDTO.AnalysisJobResponse, len(jobs))
	for i := range jobs {
		items[i] = ToAnalysisJobResponse(&jobs[i])
	}
	return items
}
