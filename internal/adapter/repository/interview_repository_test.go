package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return gdb, mock
}

func TestInterviewRepo_FindCompletedSinceExcludesDiscarded(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewInterviewRepository(gdb)

	userID := uuid.New()
	since := time.Now().AddDate(0, -3, 0)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "duration_seconds", "status", "analysis", "completed_at", "created_at", "updated_at",
	}).AddRow(
		uuid.New().String(), userID.String(), "Phone screen", 300, "completed",
		[]byte(`{"overallScore":82,"grade":"A-"}`), time.Now(), time.Now(), time.Now(),
	).AddRow(
		uuid.New().String(), userID.String(), "Onsite loop", 1800, "completed",
		[]byte(`{"overallScore":74,"grade":"B"}`), time.Now(), time.Now(), time.Now(),
	)

	mock.ExpectQuery(`SELECT \* FROM "interviews" WHERE .*NOT EXISTS \(SELECT 1 FROM analyses`).
		WithArgs(userID, entities.InterviewStatusCompleted, sqlmock.AnyArg(), entities.DecisionDiscarded).
		WillReturnRows(rows)

	got, err := repo.FindCompletedSince(context.Background(), userID, since)
	if err != nil {
		t.Fatalf("FindCompletedSince: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 interviews got %d", len(got))
	}
	if got[0].Title != "Phone screen" {
		t.Fatalf("expected oldest-first ordering, got %q first", got[0].Title)
	}
	if got[0].Analysis == nil || got[0].Analysis.OverallScore != 82 {
		t.Fatalf("expected analysis scanned from jsonb, got %+v", got[0].Analysis)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestInterviewRepo_FindByIDForUserNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewInterviewRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "interviews" WHERE id = \$1 AND user_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByIDForUser(context.Background(), uuid.New(), uuid.New())
	if err != entities.ErrInterviewNotFound {
		t.Fatalf("expected ErrInterviewNotFound got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestAnalysisRepo_UpdateDecisionNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAnalysisRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "analyses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.UpdateDecision(context.Background(), uuid.New(), entities.DecisionSaved)
	if err != entities.ErrAnalysisNotFound {
		t.Fatalf("expected ErrAnalysisNotFound got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
