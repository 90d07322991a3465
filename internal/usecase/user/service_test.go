package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/interviewai-team/interviewai-backend/internal/domain/entities"
	"github.com/interviewai-team/interviewai-backend/internal/domain/repositories"
)

type fakeUserRepo struct {
	repositories.UserRepository
	byID            map[uuid.UUID]*entities.User
	byEmail         map[string]*entities.User
	lastActiveCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uuid.UUID]*entities.User{},
		byEmail: map[string]*entities.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entities.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entities.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastActive(ctx context.Context, userID uuid.UUID) error {
	f.lastActiveCalls++
	return nil
}

func TestCreate_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	u, err := svc.Create(context.Background(), CreateInput{
		Email: "  Dana.Kim@Example.COM ",
		Name:  "Dana Kim",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Email != "dana.kim@example.com" {
		t.Errorf("email = %q, want lowercased and trimmed", u.Email)
	}
	if u.Tier != entities.TierFree {
		t.Errorf("tier = %s, want free", u.Tier)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), CreateInput{Email: "dana@example.com", Name: "Dana"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := svc.Create(context.Background(), CreateInput{Email: "DANA@example.com", Name: "Dana Again"})
	if !errors.Is(err, entities.ErrUserAlreadyExists) {
		t.Errorf("duplicate Create error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestCreate_RejectsBlankName(t *testing.T) {
	svc := NewService(newFakeUserRepo())

	_, err := svc.Create(context.Background(), CreateInput{Email: "dana@example.com", Name: "   "})
	if !errors.Is(err, entities.ErrInvalidName) {
		t.Errorf("Create error = %v, want ErrInvalidName", err)
	}
}

func TestGet_TouchesLastActive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{Email: "dana@example.com", Name: "Dana"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("Get returned wrong user: %s", got.ID)
	}
	if repo.lastActiveCalls != 1 {
		t.Errorf("lastActiveCalls = %d, want 1", repo.lastActiveCalls)
	}

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, entities.ErrUserNotFound) {
		t.Errorf("Get unknown user error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdate_PatchesOnlyProvidedFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{Email: "dana@example.com", Name: "Dana", Timezone: "Asia/Seoul"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	role := "Staff Engineer"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{
		TargetRole:  &role,
		Preferences: map[string]interface{}{"weekly_report": false},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "Dana" {
		t.Errorf("name changed unexpectedly: %q", updated.Name)
	}
	if updated.Timezone != "Asia/Seoul" {
		t.Errorf("timezone changed unexpectedly: %q", updated.Timezone)
	}
	if updated.TargetRole == nil || *updated.TargetRole != role {
		t.Errorf("target role = %v, want %q", updated.TargetRole, role)
	}
	if string(updated.Preferences) != `{"weekly_report":false}` {
		t.Errorf("preferences = %s", updated.Preferences)
	}
}
