package interview

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/interviewai-team/interviewai-backend/internal/adapter/repository"
	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
	"github.com/interviewai-team/interviewai-backend/internal/usecase/analysis"
	usecaseErrors "github.com/interviewai-team/interviewai-backend/internal/usecase/errors"
)

type fakeInterviewRepo struct {
	repositories.InterviewRepository
	byID        map[uuid.UUID]*entities.Interview
	created     []*entities.Interview
	deleted     []uuid.UUID
	listResult  []*entities.Interview
	listTotal   int64
	lastFilters repositories.InterviewFilters
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byID: map[uuid.UUID]*entities.Interview{}}
}

func (f *fakeInterviewRepo) Create(ctx context.Context, iv *entities.Interview) error {
	f.created = append(f.created, iv)
	f.byID[iv.ID] = iv
	return nil
}

func (f *fakeInterviewRepo) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Interview, error) {
	iv, ok := f.byID[id]
	if !ok || iv.UserID != userID {
		return nil, entities.ErrInterviewNotFound
	}
	return iv, nil
}

func (f *fakeInterviewRepo) List(ctx context.Context, filters repositories.InterviewFilters) ([]*entities.Interview, int64, error) {
	f.lastFilters = filters
	return f.listResult, f.listTotal, nil
}

func (f *fakeInterviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

type fakeAnalysisRepo struct {
	repositories.AnalysisRepository
	byInterview  map[uuid.UUID]*entities.Analysis
	created      []*entities.Analysis
	deleted      []uuid.UUID
	lastDecision entities.AnalysisDecision
}

func newFakeAnalysisRepo() *fakeAnalysisRepo {
	return &fakeAnalysisRepo{byInterview: map[uuid.UUID]*entities.Analysis{}}
}

func (f *fakeAnalysisRepo) Create(ctx context.Context, a *entities.Analysis) error {
	f.created = append(f.created, a)
	f.byInterview[a.InterviewID] = a
	return nil
}

func (f *fakeAnalysisRepo) FindByInterviewID(ctx context.Context, interviewID uuid.UUID) (*entities.Analysis, error) {
	a, ok := f.byInterview[interviewID]
	if !ok {
		return nil, entities.ErrAnalysisNotFound
	}
	return a, nil
}

func (f *fakeAnalysisRepo) UpdateDecision(ctx context.Context, interviewID uuid.UUID, decision entities.AnalysisDecision) error {
	f.lastDecision = decision
	return nil
}

func (f *fakeAnalysisRepo) DeleteByInterviewID(ctx context.Context, interviewID uuid.UUID) error {
	f.deleted = append(f.deleted, interviewID)
	delete(f.byInterview, interviewID)
	return nil
}

type fakeEnqueuer struct {
	jobs []*entities.AnalysisJob
}

func (f *fakeEnqueuer) EnqueueJob(ctx context.Context, iv *entities.Interview) (*entities.AnalysisJob, error) {
	job := entities.NewAnalysisJob(iv.ID, iv.UserID)
	f.jobs = append(f.jobs, job)
	return job, nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateDashboards(ctx context.Context, userID uuid.UUID) {
	f.calls++
}

func newTestService(ivRepo *fakeInterviewRepo, aRepo *fakeAnalysisRepo, jobRepo *repository.AnalysisJobRepository) (*InterviewService, *fakeEnqueuer, *fakeInvalidator) {
	enq := &fakeEnqueuer{}
	inv := &fakeInvalidator{}
	return NewInterviewService(ivRepo, aRepo, jobRepo, enq, nil, inv), enq, inv
}

func TestIngest_CreatesRowsAndEnqueues(t *testing.T) {
	ivRepo := newFakeInterviewRepo()
	aRepo := newFakeAnalysisRepo()
	svc, enq, inv := newTestService(ivRepo, aRepo, nil)

	bodyScore := 75.0
	contentScore := 82.0
	userID := uuid.New()

	iv, job, err := svc.Ingest(context.Background(), IngestInput{
		UserID:                   userID,
		Title:                    "  System design round  ",
		DurationSeconds:          900,
		Transcript:               "I led the design and we shipped it.",
		BodyLanguageScore:        &bodyScore,
		BodyLanguageObservations: []string{"good posture"},
		ContentScore:             &contentScore,
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if iv.Title != "System design round" {
		t.Errorf("title = %q, want trimmed", iv.Title)
	}
	if iv.Status != entities.InterviewStatusPending {
		t.Errorf("status = %s, want pending", iv.Status)
	}
	if job == nil || len(enq.jobs) != 1 {
		t.Fatal("expected one enqueued job")
	}
	if job.InterviewID != iv.ID {
		t.Errorf("job.InterviewID = %s, want %s", job.InterviewID, iv.ID)
	}

	if len(aRepo.created) != 1 {
		t.Fatal("expected one analysis snapshot")
	}
	snapshot := aRepo.created[0]
	if snapshot.WordCount != 8 {
		t.Errorf("WordCount = %d, want 8", snapshot.WordCount)
	}
	if snapshot.BodyLanguageScore == nil || *snapshot.BodyLanguageScore != 75 {
		t.Errorf("BodyLanguageScore = %v, want 75", snapshot.BodyLanguageScore)
	}
	if snapshot.ContentScore == nil || *snapshot.ContentScore != 82 {
		t.Errorf("ContentScore = %v, want 82", snapshot.ContentScore)
	}
	if len(snapshot.BodyLanguageObservations) == 0 {
		t.Error("expected observations to be stored")
	}
	if snapshot.Decision != entities.DecisionPending {
		t.Errorf("Decision = %s, want pending", snapshot.Decision)
	}

	if inv.calls != 1 {
		t.Errorf("dashboard invalidations = %d, want 1", inv.calls)
	}
}

func TestIngest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   IngestInput
		wantErr error
	}{
		{
			name:    "blank title",
			input:   IngestInput{Title: "   ", Transcript: "some text"},
			wantErr: entities.ErrInvalidRequest,
		},
		{
			name:    "blank transcript",
			input:   IngestInput{Title: "Round", Transcript: " \n\t "},
			wantErr: usecaseErrors.ErrEmptyTranscript,
		},
		{
			name:    "oversized transcript",
			input:   IngestInput{Title: "Round", Transcript: strings.Repeat("a", analysis.MaxTranscriptChars+1)},
			wantErr: usecaseErrors.ErrTranscriptTooLong,
		},
		{
			name:    "negative duration",
			input:   IngestInput{Title: "Round", Transcript: "some text", DurationSeconds: -5},
			wantErr: usecaseErrors.ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ivRepo := newFakeInterviewRepo()
			aRepo := newFakeAnalysisRepo()
			svc, enq, _ := newTestService(ivRepo, aRepo, nil)

			tt.input.UserID = uuid.New()
			_, _, err := svc.Ingest(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Ingest error = %v, want %v", err, tt.wantErr)
			}
			if len(ivRepo.created) != 0 || len(aRepo.created) != 0 || len(enq.jobs) != 0 {
				t.Error("rejected input must not write anything")
			}
		})
	}
}

func TestList_PagingDefaults(t *testing.T) {
	ivRepo := newFakeInterviewRepo()
	svc, _, _ := newTestService(ivRepo, newFakeAnalysisRepo(), nil)
	userID := uuid.New()

	if _, _, err := svc.List(context.Background(), ListInput{UserID: userID}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if ivRepo.lastFilters.Limit != defaultPageSize || ivRepo.lastFilters.Offset != 0 {
		t.Errorf("defaults: limit=%d offset=%d", ivRepo.lastFilters.Limit, ivRepo.lastFilters.Offset)
	}
	if ivRepo.lastFilters.SortBy != "created_at" || ivRepo.lastFilters.SortOrder != "desc" {
		t.Errorf("sort = %s %s, want created_at desc", ivRepo.lastFilters.SortBy, ivRepo.lastFilters.SortOrder)
	}
	if ivRepo.lastFilters.Since != nil {
		t.Error("empty timeframe must not set a cutoff")
	}

	if _, _, err := svc.List(context.Background(), ListInput{UserID: userID, Page: 3, PageSize: 10}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if ivRepo.lastFilters.Limit != 10 || ivRepo.lastFilters.Offset != 20 {
		t.Errorf("page 3 size 10: limit=%d offset=%d", ivRepo.lastFilters.Limit, ivRepo.lastFilters.Offset)
	}

	if _, _, err := svc.List(context.Background(), ListInput{UserID: userID, PageSize: 500}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if ivRepo.lastFilters.Limit != maxPageSize {
		t.Errorf("oversized page size: limit=%d, want %d", ivRepo.lastFilters.Limit, maxPageSize)
	}
}

func TestList_TimeframeCutoff(t *testing.T) {
	ivRepo := newFakeInterviewRepo()
	svc, _, _ := newTestService(ivRepo, newFakeAnalysisRepo(), nil)
	userID := uuid.New()

	if _, _, err := svc.List(context.Background(), ListInput{UserID: userID, Timeframe: "1month"}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if ivRepo.lastFilters.Since == nil {
		t.Fatal("expected a cutoff for 1month")
	}
	want := time.Now().UTC().AddDate(0, 0, -30)
	if diff := ivRepo.lastFilters.Since.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff %s too far from %s", ivRepo.lastFilters.Since, want)
	}

	_, _, err := svc.List(context.Background(), ListInput{UserID: userID, Timeframe: "2weeks"})
	if !errors.Is(err, usecaseErrors.ErrInvalidTimeframe) {
		t.Errorf("invalid timeframe error = %v, want ErrInvalidTimeframe", err)
	}
}

func TestUpdateDecision(t *testing.T) {
	ivRepo := newFakeInterviewRepo()
	aRepo := newFakeAnalysisRepo()
	svc, _, inv := newTestService(ivRepo, aRepo, nil)

	userID := uuid.New()
	iv := entities.NewInterview(userID, "Behavioral", 600)
	ivRepo.byID[iv.ID] = iv
	aRepo.byInterview[iv.ID] = entities.NewAnalysis(iv.ID, userID, "transcript", 1, 600)

	if _, err := svc.UpdateDecision(context.Background(), userID, iv.ID, "keep"); !errors.Is(err, entities.ErrInvalidDecision) {
		t.Errorf("unknown decision error = %v, want ErrInvalidDecision", err)
	}
	if _, err := svc.UpdateDecision(context.Background(), userID, iv.ID, entities.DecisionPending); !errors.Is(err, entities.ErrInvalidDecision) {
		t.Errorf("pending decision error = %v, want ErrInvalidDecision", err)
	}

	snapshot, err := svc.UpdateDecision(context.Background(), userID, iv.ID, entities.DecisionSaved)
	if err != nil {
		t.Fatalf("UpdateDecision: %v", err)
	}
	if snapshot.Decision != entities.DecisionSaved {
		t.Errorf("Decision = %s, want saved", snapshot.Decision)
	}
	if aRepo.lastDecision != entities.DecisionSaved {
		t.Errorf("persisted decision = %s, want saved", aRepo.lastDecision)
	}
	if inv.calls != 1 {
		t.Errorf("dashboard invalidations = %d, want 1", inv.calls)
	}
}

func TestExportURL_NotArchived(t *testing.T) {
	ivRepo := newFakeInterviewRepo()
	aRepo := newFakeAnalysisRepo()
	svc, _, _ := newTestService(ivRepo, aRepo, nil)

	userID := uuid.New()
	iv := entities.NewInterview(userID, "Phone screen", 300)
	ivRepo.byID[iv.ID] = iv
	aRepo.byInterview[iv.ID] = entities.NewAnalysis(iv.ID, userID, "transcript", 1, 300)

	_, err := svc.ExportURL(context.Background(), userID, iv.ID)
	if !errors.Is(err, usecaseErrors.ErrSnapshotNotArchived) {
		t.Errorf("ExportURL error = %v, want ErrSnapshotNotArchived", err)
	}
}

func TestDelete_Cascades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	jobRepo := repository.NewAnalysisJobRepository(gdb)

	ivRepo := newFakeInterviewRepo()
	aRepo := newFakeAnalysisRepo()
	svc, _, inv := newTestService(ivRepo, aRepo, jobRepo)

	userID := uuid.New()
	iv := entities.NewInterview(userID, "Onsite loop", 1800)
	ivRepo.byID[iv.ID] = iv
	aRepo.byInterview[iv.ID] = entities.NewAnalysis(iv.ID, userID, "transcript", 1, 1800)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "analysis_jobs"`).
		WithArgs(iv.ID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	if err := svc.Delete(context.Background(), userID, iv.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(ivRepo.deleted) != 1 || ivRepo.deleted[0] != iv.ID {
		t.Errorf("interview deletions = %v", ivRepo.deleted)
	}
	if len(aRepo.deleted) != 1 || aRepo.deleted[0] != iv.ID {
		t.Errorf("analysis deletions = %v", aRepo.deleted)
	}
	if inv.calls != 1 {
		t.Errorf("dashboard invalidations = %d, want 1", inv.calls)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sql expectations: %v", err)
	}

	// The record is gone afterwards.
	if _, err := svc.Get(context.Background(), userID, iv.ID); !errors.Is(err, entities.ErrInterviewNotFound) {
		t.Errorf("Get after delete error = %v, want ErrInterviewNotFound", err)
	}
}
