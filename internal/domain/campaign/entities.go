package campaign

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

// Terminal reports whether no further lifecycle transition is allowed.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

type Category string

const (
	CategoryTechnology  Category = "TECHNOLOGY"
	CategoryCreative    Category = "CREATIVE"
	CategoryCommunity   Category = "COMMUNITY"
	CategoryEducation   Category = "EDUCATION"
	CategoryHealthcare  Category = "HEALTHCARE"
	CategoryEnvironment Category = "ENVIRONMENT"
	CategoryBusiness    Category = "BUSINESS"
	CategorySocial      Category = "SOCIAL"
	CategoryOther       Category = "OTHER"
)

type Campaign struct {
	ID                 uint64          `gorm:"primaryKey;column:id" json:"-"`
	CampaignID         string          `gorm:"size:32;uniqueIndex:ux_campaigns_campaign_id_active" json:"campaign_id"`
	CreatorID          string          `gorm:"size:32;index:idx_campaigns_creator" json:"creator_id"`
	Title              string          `gorm:"size:200" json:"title"`
	Description        string          `gorm:"type:text" json:"description"`
	Category           Category        `gorm:"size:32" json:"category"`
	GoalAmount         decimal.Decimal `gorm:"type:decimal(18,2)" json:"goal_amount"`
	RaisedAmount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"raised_amount"`
	CurrentAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"current_amount"`
	TotalDonors        int64           `gorm:"default:0" json:"total_donors"`
	ProgressPercentage float64         `gorm:"type:decimal(8,4)" json:"progress_percentage"`
	Status             Status          `gorm:"size:16;default:'DRAFT';index:idx_campaigns_status" json:"status"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Campaign) TableName() string { return "campaigns" }

// Progress computes raised/goal as a percentage. Not clamped: storage
// keeps the true ratio, display clamping is the frontend's business.
func Progress(raised, goal decimal.Decimal) float64 {
	if goal.IsZero() {
		return 0
	}
	f, _ := raised.Div(goal).Mul(decimal.NewFromInt(100)).Float64()
	return f
}
