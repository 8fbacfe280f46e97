package donation

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Donation is immutable once created; there are no update paths.
type Donation struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	DonationID   string          `gorm:"size:32;uniqueIndex:ux_donations_donation_id" json:"donation_id"`
	CampaignID   string          `gorm:"size:32;index:idx_donations_campaign" json:"campaign_id"`
	DonorID      string          `gorm:"size:32;index:idx_donations_donor" json:"donor_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	IsAnonymous  bool            `gorm:"default:false" json:"is_anonymous"`
	Message      string          `gorm:"size:500" json:"message,omitempty"`
	ExternalTxID string          `gorm:"size:64" json:"external_tx_id,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Donation) TableName() string { return "donations" }
