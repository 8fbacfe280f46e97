package mysql

import (
	"context"

	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/campaign"
	"fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:        &UserRepository{db: tx},
		Campaigns:    &CampaignRepository{db: tx},
		Donations:    &DonationRepository{db: tx},
		Loans:        &LoanRepository{db: tx},
		Fundings:     &FundingRepository{db: tx},
		Repayments:   &RepaymentRepository{db: tx},
		Transactions: &LedgerRepository{db: tx},
		AuditLogs:    &AuditRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

func (u *GormUoW) WithinCampaignTx(ctx context.Context, campaignID string, fn func(r uow.Repos, c *campaign.Campaign) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		c, err := r.Campaigns.GetByCampaignIDForUpdate(ctx, campaignID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
