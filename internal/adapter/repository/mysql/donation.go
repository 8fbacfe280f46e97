package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	donationDomain "fundbridge-backend/internal/domain/donation"
)

type DonationRepository struct{ db *gorm.DB }

func NewDonationRepository(db *gorm.DB) *DonationRepository { return &DonationRepository{db: db} }

func (r *DonationRepository) Create(ctx context.Context, d *donationDomain.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepository) ListByCampaign(ctx context.Context, campaignID string, limit int) ([]donationDomain.Donation, error) {
	if limit < 1 {
		limit = 50
	}
	var out []donationDomain.Donation
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string, page, limit int) ([]donationDomain.Donation, int64, error) {
	q := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).Where("donor_id = ?", donorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	var out []donationDomain.Donation
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

func (r *DonationRepository) SumByCampaign(ctx context.Context, campaignID string) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.Decimal
		Cnt   int64
	}
	err := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS cnt").
		Where("campaign_id = ?", campaignID).
		Scan(&row).Error
	return row.Total, row.Cnt, err
}

func (r *DonationRepository) SumByDonor(ctx context.Context, donorID string) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("donor_id = ?", donorID).
		Scan(&row).Error
	return row.Total, err
}

func (r *DonationRepository) SumAll(ctx context.Context) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&donationDomain.Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}
