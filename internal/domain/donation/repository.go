package donation

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	ListByCampaign(ctx context.Context, campaignID string, limit int) ([]Donation, error)
	ListByDonor(ctx context.Context, donorID string, page, limit int) ([]Donation, int64, error)
	// SumByCampaign returns total amount and donation count for a campaign.
	SumByCampaign(ctx context.Context, campaignID string) (decimal.Decimal, int64, error)
	SumByDonor(ctx context.Context, donorID string) (decimal.Decimal, error)
	SumAll(ctx context.Context) (decimal.Decimal, error)
}
