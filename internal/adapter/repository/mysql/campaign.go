package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	campaignDomain "fundbridge-backend/internal/domain/campaign"
)

type CampaignRepository struct{ db *gorm.DB }

func NewCampaignRepository(db *gorm.DB) *CampaignRepository { return &CampaignRepository{db: db} }

func (r *CampaignRepository) Create(ctx context.Context, c *campaignDomain.Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) Save(ctx context.Context, c *campaignDomain.Campaign) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CampaignRepository) GetByCampaignID(ctx context.Context, campaignID string) (*campaignDomain.Campaign, error) {
	var out campaignDomain.Campaign
	res := r.db.WithContext(ctx).Where("campaign_id = ?", campaignID).First(&out)
	return &out, res.Error
}

func (r *CampaignRepository) GetByCampaignIDForUpdate(ctx context.Context, campaignID string) (*campaignDomain.Campaign, error) {
	var out campaignDomain.Campaign
	q := r.db.WithContext(ctx)
	// sqlite has no SELECT ... FOR UPDATE
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	res := q.Where("campaign_id = ?", campaignID).First(&out)
	return &out, res.Error
}

func (r *CampaignRepository) List(ctx context.Context, f campaignDomain.ListFilter) ([]campaignDomain.Campaign, int64, error) {
	q := r.db.WithContext(ctx).Model(&campaignDomain.Campaign{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := f.Page, f.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var out []campaignDomain.Campaign
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

// ApplyDonation bumps the donation aggregates as in-database increments
// so concurrent donations never lose updates.
func (r *CampaignRepository) ApplyDonation(ctx context.Context, campaignID string, amount decimal.Decimal, progress float64) error {
	res := r.db.WithContext(ctx).Model(&campaignDomain.Campaign{}).
		Where("campaign_id = ?", campaignID).
		Updates(map[string]any{
			"raised_amount":       gorm.Expr("raised_amount + ?", amount),
			"current_amount":      gorm.Expr("current_amount + ?", amount),
			"total_donors":        gorm.Expr("total_donors + 1"),
			"progress_percentage": progress,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CampaignRepository) UpdateAggregates(ctx context.Context, campaignID string, raised decimal.Decimal, donors int64, progress float64) error {
	return r.db.WithContext(ctx).Model(&campaignDomain.Campaign{}).
		Where("campaign_id = ?", campaignID).
		Updates(map[string]any{
			"raised_amount":       raised,
			"current_amount":      raised,
			"total_donors":        donors,
			"progress_percentage": progress,
		}).Error
}

func (r *CampaignRepository) Count(ctx context.Context, status campaignDomain.Status) (int64, error) {
	q := r.db.WithContext(ctx).Model(&campaignDomain.Campaign{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
