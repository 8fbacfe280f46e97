package uowmock

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/campaign"
	"fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// errNotFound mirrors what the real UoW surfaces when the up-front row
// lock finds nothing.
func errNotFound() error { return gorm.ErrRecordNotFound }

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented.
type UoW struct {
	WithinTxFn         func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn     func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
	WithinCampaignTxFn func(ctx context.Context, campaignID string, fn func(r uow.Repos, c *campaign.Campaign) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough builds a UoW whose callbacks run immediately against the
// given repos; in usecase tests "transaction" just means "call the
// function".
func Passthrough(r uow.Repos, loans map[string]*loan.Loan, campaigns map[string]*campaign.Campaign) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinLoanTxFn: func(ctx context.Context, loanID string, fn func(uow.Repos, *loan.Loan) error) error {
			l, ok := loans[loanID]
			if !ok {
				return errNotFound()
			}
			return fn(r, l)
		},
		WithinCampaignTxFn: func(ctx context.Context, campaignID string, fn func(uow.Repos, *campaign.Campaign) error) error {
			c, ok := campaigns[campaignID]
			if !ok {
				return errNotFound()
			}
			return fn(r, c)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinCampaignTx(ctx context.Context, campaignID string, fn func(r uow.Repos, c *campaign.Campaign) error) error {
	if m.WithinCampaignTxFn != nil {
		return m.WithinCampaignTxFn(ctx, campaignID, fn)
	}
	return errUnimplemented
}
