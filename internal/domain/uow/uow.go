package uow

import (
	"context"

	"fundbridge-backend/internal/domain/audit"
	"fundbridge-backend/internal/domain/campaign"
	"fundbridge-backend/internal/domain/donation"
	"fundbridge-backend/internal/domain/ledger"
	"fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/user"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Users        user.Repository
	Campaigns    campaign.Repository
	Donations    donation.Repository
	Loans        loan.Repository
	Fundings     loan.FundingRepository
	Repayments   loan.RepaymentRepository
	Transactions ledger.Repository
	AuditLogs    audit.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one database transaction; any error rolls
	// everything back, so a multi-entity mutation is all-or-nothing.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. Used by
	// flows that race on funded_amount.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
	// WithinCampaignTx is the campaign-side equivalent, locking the row
	// before concurrent donations touch its aggregates.
	WithinCampaignTx(ctx context.Context, campaignID string, fn func(r Repos, c *campaign.Campaign) error) error
}
