package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	campaignDomain "fundbridge-backend/internal/domain/campaign"
	donationDomain "fundbridge-backend/internal/domain/donation"
	loanDomain "fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/uow"
	"fundbridge-backend/pkg/id"
)

func TestWithinLoanTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	if err := NewLoanRepository(db).Create(ctx, makeTestLoan(loanID, id.NewID32())); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		l.Status = loanDomain.StatusFunded
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}

	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != loanDomain.StatusFunded {
		t.Fatalf("commit not visible: %s", got.Status)
	}
}

func TestWithinLoanTx_RollsBackEverything(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	if err := NewLoanRepository(db).Create(ctx, makeTestLoan(loanID, id.NewID32())); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	boom := errors.New("boom")
	fundingID := id.NewID32()
	err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if err := r.Fundings.Create(ctx, &loanDomain.Funding{
			FundingID: fundingID,
			LoanID:    loanID,
			LenderID:  id.NewID32(),
			Amount:    decimal.NewFromInt(500),
		}); err != nil {
			return err
		}
		if err := r.Loans.IncrementFunded(ctx, loanID, decimal.NewFromInt(500)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	// Neither the funding row nor the increment may survive.
	rows, err := NewFundingRepository(db).ListByLoan(ctx, loanID)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Fatalf("funding row survived rollback: %+v", rows)
	}
	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.FundedAmount.IsZero() {
		t.Fatalf("funded amount survived rollback: %s", got.FundedAmount)
	}
}

func TestWithinLoanTx_UnknownLoan(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	err := u.WithinLoanTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(uow.Repos, *loanDomain.Loan) error {
		t.Fatal("callback must not run for a missing loan")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestWithinCampaignTx_CommitsDonationUnit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	campaignID := id.NewID32()
	if err := NewCampaignRepository(db).Create(ctx, makeCampaign(campaignID, id.NewID32())); err != nil {
		t.Fatalf("seed campaign: %v", err)
	}

	err := u.WithinCampaignTx(ctx, campaignID, func(r uow.Repos, c *campaignDomain.Campaign) error {
		if err := r.Donations.Create(ctx, &donationDomain.Donation{
			DonationID: id.NewID32(),
			CampaignID: campaignID,
			DonorID:    id.NewID32(),
			Amount:     decimal.NewFromInt(100),
		}); err != nil {
			return err
		}
		return r.Campaigns.ApplyDonation(ctx, campaignID, decimal.NewFromInt(100), 0.02)
	})
	if err != nil {
		t.Fatalf("WithinCampaignTx: %v", err)
	}

	got, err := NewCampaignRepository(db).GetByCampaignID(ctx, campaignID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.RaisedAmount.Equal(decimal.NewFromInt(100)) || got.TotalDonors != 1 {
		t.Fatalf("donation unit not committed: %+v", got)
	}
}

func TestWithinCampaignTx_UnknownCampaign(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	err := u.WithinCampaignTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(uow.Repos, *campaignDomain.Campaign) error {
		t.Fatal("callback must not run for a missing campaign")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}
