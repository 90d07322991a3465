package jobcontext

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJobBegin_CarriesMetadata(t *testing.T) {
	jobID := uuid.New()
	ctx, cancel := JobBegin(context.Background(), jobID, "speech_analysis", 2, time.Minute)
	defer cancel()

	gotID, ok := GetJobID(ctx)
	if !ok || gotID != jobID {
		t.Fatalf("expected job id %s, got %s (ok=%v)", jobID, gotID, ok)
	}
	jobType, ok := GetJobType(ctx)
	if !ok || jobType != "speech_analysis" {
		t.Fatalf("unexpected job type %q (ok=%v)", jobType, ok)
	}
	if workerID := GetWorkerID(ctx); workerID != 2 {
		t.Fatalf("expected worker 2, got %d", workerID)
	}
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a deadline on the job context")
	}

	meta := GetJobMetadata(ctx)
	if meta.JobID != jobID || meta.WorkerID != 2 || meta.MaxRetries != 3 || meta.RetryAttempt != 0 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.StartTime.IsZero() {
		t.Fatal("expected a start time")
	}
}

func TestGetters_Defaults(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetJobID(ctx); ok {
		t.Fatal("expected no job id on bare context")
	}
	if workerID := GetWorkerID(ctx); workerID != -1 {
		t.Fatalf("expected -1, got %d", workerID)
	}
	if retries := GetMaxRetries(ctx); retries != 3 {
		t.Fatalf("expected default max retries 3, got %d", retries)
	}
	if attempt := GetRetryAttempt(ctx); attempt != 0 {
		t.Fatalf("expected attempt 0, got %d", attempt)
	}
}

func TestJobEnd_Success(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "speech_analysis", 0, time.Minute)
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestJobEnd_RecoversPanic(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "speech_analysis", 0, time.Minute)
	defer cancel()

	calls := 0
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected an error from a panicking job")
	}
	if !strings.Contains(err.Error(), "panic recovered") {
		t.Fatalf("expected recovered panic, got %v", err)
	}
	// A panic is not retryable, the job must not run again.
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestJobEnd_NonRetryableFailsFast(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "speech_analysis", 0, time.Minute)
	defer cancel()

	calls := 0
	jobErr := errors.New("record not found")
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		return jobErr
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, jobErr) {
		t.Fatalf("expected wrapped job error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestJobEnd_RetryBudgetExhausted(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "speech_analysis", 0, time.Minute)
	defer cancel()
	ctx = SetMaxRetries(ctx, 1)

	calls := 0
	err := JobEnd(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "max retries") {
		t.Fatalf("expected retry exhaustion, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestJobEnd_CancelledContext(t *testing.T) {
	ctx, cancel := JobBegin(context.Background(), uuid.New(), "speech_analysis", 0, time.Minute)
	cancel()

	called := false
	err := JobEnd(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
	if called {
		t.Fatal("job must not run on a cancelled context")
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"io timeout", errors.New("read tcp: i/o timeout"), true},
		{"deadlock", errors.New("pq: deadlock detected"), true},
		{"serialization failure", errors.New("pq: could not serialize access (SQLSTATE 40001)"), true},
		{"rate limited", errors.New("too many requests"), true},
		{"service unavailable", errors.New("503 service unavailable"), true},
		{"not found", errors.New("record not found"), false},
		{"validation", errors.New("transcript must not be empty"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryableError(tt.err); got != tt.retryable {
				t.Fatalf("IsRetryableError(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}
