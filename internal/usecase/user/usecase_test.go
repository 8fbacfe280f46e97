package user

import (
	"context"
	"regexp"
	"testing"

	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/apperr"
	"fundbridge-backend/internal/domain/ledger"
	domain "fundbridge-backend/internal/domain/user"
	"fundbridge-backend/internal/testutil/repomock"
)

var reID = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestRegister_NewUser(t *testing.T) {
	var stored *domain.User
	repo := &repomock.Users{
		GetByEmailFn: func(_ context.Context, _ string) (*domain.User, error) { return nil, gorm.ErrRecordNotFound },
		CreateFn:     func(_ context.Context, u *domain.User) error { stored = u; return nil },
	}
	uc := NewUsecase(repo, &repomock.Transactions{})

	got, err := uc.Register(context.Background(), RegisterInput{
		Email:     "ana@example.com",
		FirstName: "Ana",
		LastName:  "Siregar",
		Roles:     []domain.Role{domain.RoleLender, domain.RoleBorrower},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !reID.MatchString(got.UserID) {
		t.Fatalf("user id not 32-hex: %q", got.UserID)
	}
	if !got.IsActive {
		t.Fatalf("new user must be active")
	}
	if !got.Roles.HasAny(domain.RoleLender) || !got.Roles.HasAny(domain.RoleBorrower) {
		t.Fatalf("roles not kept: %v", got.Roles)
	}
	if stored == nil || stored.Email != "ana@example.com" {
		t.Fatalf("user not persisted: %+v", stored)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &repomock.Users{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email}, nil
		},
	}
	uc := NewUsecase(repo, &repomock.Transactions{})

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "taken@example.com",
		Roles: []domain.Role{domain.RoleLender},
	})
	if apperr.KindOf(err) != apperr.KindConflict || apperr.CodeOf(err) != "EMAIL_EXISTS" {
		t.Fatalf("want EMAIL_EXISTS conflict, got %v", err)
	}
}

func TestRegister_RequiresEmailAndRole(t *testing.T) {
	uc := NewUsecase(&repomock.Users{}, &repomock.Transactions{})

	if _, err := uc.Register(context.Background(), RegisterInput{Roles: []domain.Role{domain.RoleLender}}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("missing email: want validation error, got %v", err)
	}
	if _, err := uc.Register(context.Background(), RegisterInput{Email: "x@example.com"}); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("missing roles: want validation error, got %v", err)
	}
}

func TestUpdateProfile_PatchesOnlyGivenFields(t *testing.T) {
	existing := &domain.User{UserID: "u1", FirstName: "Ana", LastName: "Siregar"}
	repo := &repomock.Users{
		GetByUserIDFn: func(_ context.Context, _ string) (*domain.User, error) { cp := *existing; return &cp, nil },
		SaveFn:        func(_ context.Context, u *domain.User) error { *existing = *u; return nil },
	}
	uc := NewUsecase(repo, &repomock.Transactions{})

	first := "Anastasia"
	got, err := uc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{FirstName: &first})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.FirstName != "Anastasia" || got.LastName != "Siregar" {
		t.Fatalf("patch mismatch: %+v", got)
	}
}

func TestTransactions_ScopedToUser(t *testing.T) {
	txs := &repomock.Transactions{
		ListByUserFn: func(_ context.Context, userID string, page, limit int) ([]ledger.Transaction, int64, error) {
			if userID != "u1" || page != 2 || limit != 10 {
				t.Fatalf("args not forwarded: %s %d %d", userID, page, limit)
			}
			return []ledger.Transaction{{TransactionID: "t1", UserID: "u1"}}, 1, nil
		},
	}
	uc := NewUsecase(&repomock.Users{}, txs)

	got, total, err := uc.Transactions(context.Background(), "u1", 2, 10)
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].TransactionID != "t1" {
		t.Fatalf("unexpected result: total=%d rows=%+v", total, got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := &repomock.Users{
		GetByUserIDFn: func(_ context.Context, _ string) (*domain.User, error) { return nil, gorm.ErrRecordNotFound },
	}
	uc := NewUsecase(repo, &repomock.Transactions{})
	if _, err := uc.Get(context.Background(), "nope"); apperr.CodeOf(err) != "USER_NOT_FOUND" {
		t.Fatalf("want USER_NOT_FOUND, got %v", err)
	}
}
