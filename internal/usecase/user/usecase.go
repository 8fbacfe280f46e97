package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/apperr"
	"fundbridge-backend/internal/domain/ledger"
	domain "fundbridge-backend/internal/domain/user"
	"fundbridge-backend/pkg/id"
)

type RegisterInput struct {
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Roles     []domain.Role `json:"roles"`
}

type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type Usecase struct {
	repo   domain.Repository
	ledger ledger.Repository
}

func NewUsecase(r domain.Repository, l ledger.Repository) *Usecase {
	return &Usecase{repo: r, ledger: l}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if in.Email == "" || len(in.Roles) == 0 {
		return nil, apperr.Validation("INVALID_INPUT", "email and at least one role are required")
	}

	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("EMAIL_EXISTS", "email already registered")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	usr := &domain.User{
		UserID:    id.NewID32(),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Roles:     domain.RoleList(in.Roles),
		IsActive:  true,
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	usr, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("USER_NOT_FOUND", "user not found")
		}
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error) {
	usr, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		usr.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		usr.LastName = *in.LastName
	}
	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// Transactions lists the caller's ledger history, newest first.
func (u *Usecase) Transactions(ctx context.Context, userID string, page, limit int) ([]ledger.Transaction, int64, error) {
	return u.ledger.ListByUser(ctx, userID, page, limit)
}
