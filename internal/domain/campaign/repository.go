package campaign

import (
	"context"

	"github.com/shopspring/decimal"
)

type ListFilter struct {
	Status   Status
	Category Category
	Search   string
	Page     int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByCampaignID(ctx context.Context, campaignID string) (*Campaign, error)
	// GetByCampaignIDForUpdate locks the row; only valid inside a tx.
	GetByCampaignIDForUpdate(ctx context.Context, campaignID string) (*Campaign, error)
	Save(ctx context.Context, c *Campaign) error
	List(ctx context.Context, f ListFilter) ([]Campaign, int64, error)
	// ApplyDonation atomically adds amount to raised/current, bumps the
	// donor count by one, and stores the given progress percentage.
	// Must be an in-database increment, never read-modify-write.
	ApplyDonation(ctx context.Context, campaignID string, amount decimal.Decimal, progress float64) error
	// UpdateAggregates overwrites the derived donation aggregates.
	UpdateAggregates(ctx context.Context, campaignID string, raised decimal.Decimal, donors int64, progress float64) error
	Count(ctx context.Context, status Status) (int64, error)
}
