package donation

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/apperr"
	campaignDomain "fundbridge-backend/internal/domain/campaign"
	domain "fundbridge-backend/internal/domain/donation"
	"fundbridge-backend/internal/domain/ledger"
	"fundbridge-backend/internal/domain/uow"
	"fundbridge-backend/pkg/id"
)

type CreateDonationInput struct {
	Amount       decimal.Decimal `json:"amount"`
	IsAnonymous  bool            `json:"is_anonymous"`
	Message      string          `json:"message,omitempty"`
	ExternalTxID string          `json:"external_tx_id,omitempty"`
}

// progressRecomputer is the campaign-side hook that rebuilds derived
// aggregates and drops the cached read model after a donation lands.
type progressRecomputer interface {
	RecomputeProgress(ctx context.Context, campaignID string) error
}

type Usecase struct {
	uow      uow.UnitOfWork
	repo     domain.Repository
	progress progressRecomputer
}

func NewUsecase(tx uow.UnitOfWork, repo domain.Repository, progress progressRecomputer) *Usecase {
	return &Usecase{uow: tx, repo: repo, progress: progress}
}

// Record appends a donation. The donation row, the ledger transaction
// and the campaign aggregate increments commit as one unit; the
// campaign row is locked first so concurrent donations serialize.
func (u *Usecase) Record(ctx context.Context, donorID, campaignID string, in CreateDonationInput) (*domain.Donation, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.InvalidAmount("INVALID_AMOUNT", "donation amount must be positive")
	}

	var created *domain.Donation
	err := u.uow.WithinCampaignTx(ctx, campaignID, func(r uow.Repos, c *campaignDomain.Campaign) error {
		if c.Status != campaignDomain.StatusActive {
			return apperr.InvalidState("CAMPAIGN_INACTIVE", "campaign is not active")
		}
		if c.EndDate.Before(time.Now().UTC()) {
			return apperr.Expired("CAMPAIGN_EXPIRED", "campaign has ended")
		}

		d := &domain.Donation{
			DonationID:   id.NewID32(),
			CampaignID:   campaignID,
			DonorID:      donorID,
			Amount:       in.Amount,
			IsAnonymous:  in.IsAnonymous,
			Message:      in.Message,
			ExternalTxID: in.ExternalTxID,
		}
		if err := r.Donations.Create(ctx, d); err != nil {
			return err
		}

		if err := r.Transactions.Append(ctx, &ledger.Transaction{
			TransactionID: id.NewID32(),
			Type:          ledger.TypeDonation,
			Status:        ledger.StatusCompleted,
			Amount:        in.Amount,
			UserID:        donorID,
			ReferenceID:   campaignID,
			ReferenceType: "campaign",
			ExternalTxID:  in.ExternalTxID,
			Description:   "Donation to campaign: " + c.Title,
		}); err != nil {
			return err
		}

		progress := campaignDomain.Progress(c.RaisedAmount.Add(in.Amount), c.GoalAmount)
		if err := r.Campaigns.ApplyDonation(ctx, campaignID, in.Amount, progress); err != nil {
			return err
		}

		created = d
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CAMPAIGN_NOT_FOUND", "campaign not found")
		}
		return nil, err
	}

	// Aggregates were already bumped atomically; the recompute only
	// refreshes the derived snapshot and drops the cache entry.
	if err := u.progress.RecomputeProgress(ctx, campaignID); err != nil {
		log.Printf("donation: recompute progress for %s: %v", campaignID, err)
	}
	return created, nil
}

func (u *Usecase) ListByCampaign(ctx context.Context, campaignID string, limit int) ([]domain.Donation, error) {
	return u.repo.ListByCampaign(ctx, campaignID, limit)
}

func (u *Usecase) ListByDonor(ctx context.Context, donorID string, page, limit int) ([]domain.Donation, int64, error) {
	return u.repo.ListByDonor(ctx, donorID, page, limit)
}

func (u *Usecase) TotalDonated(ctx context.Context, donorID string) (decimal.Decimal, error) {
	return u.repo.SumByDonor(ctx, donorID)
}
