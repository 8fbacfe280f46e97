// Package repomock holds function-backed mocks for the repository
// interfaces. Only the methods a test fills in do anything; the rest
// return a "not implemented" error so accidental calls fail loudly.
package repomock

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"fundbridge-backend/internal/domain/audit"
	"fundbridge-backend/internal/domain/campaign"
	"fundbridge-backend/internal/domain/donation"
	"fundbridge-backend/internal/domain/ledger"
	"fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/user"
)

var errUnimplemented = errors.New("repomock: method not implemented")

// ---- user ----

type Users struct {
	CreateFn      func(ctx context.Context, u *user.User) error
	GetByUserIDFn func(ctx context.Context, userID string) (*user.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*user.User, error)
	SaveFn        func(ctx context.Context, u *user.User) error
	CountFn       func(ctx context.Context) (int64, error)
}

var _ user.Repository = (*Users)(nil)

func (m *Users) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Users) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}

func (m *Users) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Users) Save(ctx context.Context, u *user.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Users) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// ---- campaign ----

type Campaigns struct {
	CreateFn                   func(ctx context.Context, c *campaign.Campaign) error
	GetByCampaignIDFn          func(ctx context.Context, campaignID string) (*campaign.Campaign, error)
	GetByCampaignIDForUpdateFn func(ctx context.Context, campaignID string) (*campaign.Campaign, error)
	SaveFn                     func(ctx context.Context, c *campaign.Campaign) error
	ListFn                     func(ctx context.Context, f campaign.ListFilter) ([]campaign.Campaign, int64, error)
	ApplyDonationFn            func(ctx context.Context, campaignID string, amount decimal.Decimal, progress float64) error
	UpdateAggregatesFn         func(ctx context.Context, campaignID string, raised decimal.Decimal, donors int64, progress float64) error
	CountFn                    func(ctx context.Context, status campaign.Status) (int64, error)
}

var _ campaign.Repository = (*Campaigns)(nil)

func (m *Campaigns) Create(ctx context.Context, c *campaign.Campaign) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Campaigns) GetByCampaignID(ctx context.Context, campaignID string) (*campaign.Campaign, error) {
	if m.GetByCampaignIDFn != nil {
		return m.GetByCampaignIDFn(ctx, campaignID)
	}
	return nil, errUnimplemented
}

func (m *Campaigns) GetByCampaignIDForUpdate(ctx context.Context, campaignID string) (*campaign.Campaign, error) {
	if m.GetByCampaignIDForUpdateFn != nil {
		return m.GetByCampaignIDForUpdateFn(ctx, campaignID)
	}
	return nil, errUnimplemented
}

func (m *Campaigns) Save(ctx context.Context, c *campaign.Campaign) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Campaigns) List(ctx context.Context, f campaign.ListFilter) ([]campaign.Campaign, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, errUnimplemented
}

func (m *Campaigns) ApplyDonation(ctx context.Context, campaignID string, amount decimal.Decimal, progress float64) error {
	if m.ApplyDonationFn != nil {
		return m.ApplyDonationFn(ctx, campaignID, amount, progress)
	}
	return nil
}

func (m *Campaigns) UpdateAggregates(ctx context.Context, campaignID string, raised decimal.Decimal, donors int64, progress float64) error {
	if m.UpdateAggregatesFn != nil {
		return m.UpdateAggregatesFn(ctx, campaignID, raised, donors, progress)
	}
	return nil
}

func (m *Campaigns) Count(ctx context.Context, status campaign.Status) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, status)
	}
	return 0, nil
}

// ---- donation ----

type Donations struct {
	CreateFn         func(ctx context.Context, d *donation.Donation) error
	ListByCampaignFn func(ctx context.Context, campaignID string, limit int) ([]donation.Donation, error)
	ListByDonorFn    func(ctx context.Context, donorID string, page, limit int) ([]donation.Donation, int64, error)
	SumByCampaignFn  func(ctx context.Context, campaignID string) (decimal.Decimal, int64, error)
	SumByDonorFn     func(ctx context.Context, donorID string) (decimal.Decimal, error)
	SumAllFn         func(ctx context.Context) (decimal.Decimal, error)
}

var _ donation.Repository = (*Donations)(nil)

func (m *Donations) Create(ctx context.Context, d *donation.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Donations) ListByCampaign(ctx context.Context, campaignID string, limit int) ([]donation.Donation, error) {
	if m.ListByCampaignFn != nil {
		return m.ListByCampaignFn(ctx, campaignID, limit)
	}
	return nil, errUnimplemented
}

func (m *Donations) ListByDonor(ctx context.Context, donorID string, page, limit int) ([]donation.Donation, int64, error) {
	if m.ListByDonorFn != nil {
		return m.ListByDonorFn(ctx, donorID, page, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Donations) SumByCampaign(ctx context.Context, campaignID string) (decimal.Decimal, int64, error) {
	if m.SumByCampaignFn != nil {
		return m.SumByCampaignFn(ctx, campaignID)
	}
	return decimal.Zero, 0, nil
}

func (m *Donations) SumByDonor(ctx context.Context, donorID string) (decimal.Decimal, error) {
	if m.SumByDonorFn != nil {
		return m.SumByDonorFn(ctx, donorID)
	}
	return decimal.Zero, nil
}

func (m *Donations) SumAll(ctx context.Context) (decimal.Decimal, error) {
	if m.SumAllFn != nil {
		return m.SumAllFn(ctx)
	}
	return decimal.Zero, nil
}

// ---- loan ----

type Loans struct {
	CreateFn               func(ctx context.Context, l *loan.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*loan.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*loan.Loan, error)
	SaveFn                 func(ctx context.Context, l *loan.Loan) error
	IncrementFundedFn      func(ctx context.Context, loanID string, amount decimal.Decimal) error
	ListFn                 func(ctx context.Context, status loan.Status, page, limit int) ([]loan.Loan, int64, error)
	ListByBorrowerFn       func(ctx context.Context, borrowerID string, page, limit int) ([]loan.Loan, int64, error)
	CountFn                func(ctx context.Context, status loan.Status) (int64, error)
}

var _ loan.Repository = (*Loans)(nil)

func (m *Loans) Create(ctx context.Context, l *loan.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Loans) GetByLoanID(ctx context.Context, loanID string) (*loan.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Loans) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loan.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Loans) Save(ctx context.Context, l *loan.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Loans) IncrementFunded(ctx context.Context, loanID string, amount decimal.Decimal) error {
	if m.IncrementFundedFn != nil {
		return m.IncrementFundedFn(ctx, loanID, amount)
	}
	return nil
}

func (m *Loans) List(ctx context.Context, status loan.Status, page, limit int) ([]loan.Loan, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status, page, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Loans) ListByBorrower(ctx context.Context, borrowerID string, page, limit int) ([]loan.Loan, int64, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID, page, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Loans) Count(ctx context.Context, status loan.Status) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, status)
	}
	return 0, nil
}

type Fundings struct {
	CreateFn     func(ctx context.Context, f *loan.Funding) error
	ListByLoanFn func(ctx context.Context, loanID string) ([]loan.Funding, error)
	SumAllFn     func(ctx context.Context) (decimal.Decimal, error)
}

var _ loan.FundingRepository = (*Fundings)(nil)

func (m *Fundings) Create(ctx context.Context, f *loan.Funding) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}

func (m *Fundings) ListByLoan(ctx context.Context, loanID string) ([]loan.Funding, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Fundings) SumAll(ctx context.Context) (decimal.Decimal, error) {
	if m.SumAllFn != nil {
		return m.SumAllFn(ctx)
	}
	return decimal.Zero, nil
}

type Repayments struct {
	CreateBatchFn      func(ctx context.Context, rs []loan.Repayment) error
	GetByRepaymentIDFn func(ctx context.Context, repaymentID string) (*loan.Repayment, error)
	SaveFn             func(ctx context.Context, r *loan.Repayment) error
	ListByLoanFn       func(ctx context.Context, loanID string) ([]loan.Repayment, error)
	CountPendingFn     func(ctx context.Context, loanID string) (int64, error)
}

var _ loan.RepaymentRepository = (*Repayments)(nil)

func (m *Repayments) CreateBatch(ctx context.Context, rs []loan.Repayment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, rs)
	}
	return nil
}

func (m *Repayments) GetByRepaymentID(ctx context.Context, repaymentID string) (*loan.Repayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, errUnimplemented
}

func (m *Repayments) Save(ctx context.Context, r *loan.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repayments) ListByLoan(ctx context.Context, loanID string) ([]loan.Repayment, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repayments) CountPending(ctx context.Context, loanID string) (int64, error) {
	if m.CountPendingFn != nil {
		return m.CountPendingFn(ctx, loanID)
	}
	return 0, nil
}

// ---- ledger ----

type Transactions struct {
	AppendFn     func(ctx context.Context, t *ledger.Transaction) error
	ListByUserFn func(ctx context.Context, userID string, page, limit int) ([]ledger.Transaction, int64, error)
	CountFn      func(ctx context.Context) (int64, error)
}

var _ ledger.Repository = (*Transactions)(nil)

func (m *Transactions) Append(ctx context.Context, t *ledger.Transaction) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, t)
	}
	return nil
}

func (m *Transactions) ListByUser(ctx context.Context, userID string, page, limit int) ([]ledger.Transaction, int64, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, page, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Transactions) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// ---- audit ----

type AuditLogs struct {
	AppendFn func(ctx context.Context, l *audit.Log) error
	ListFn   func(ctx context.Context, limit, offset int) ([]audit.Log, int64, error)
}

var _ audit.Repository = (*AuditLogs)(nil)

func (m *AuditLogs) Append(ctx context.Context, l *audit.Log) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, l)
	}
	return nil
}

func (m *AuditLogs) List(ctx context.Context, limit, offset int) ([]audit.Log, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return nil, 0, errUnimplemented
}
