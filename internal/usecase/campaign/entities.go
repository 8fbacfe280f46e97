package campaign

import (
	"time"

	"github.com/shopspring/decimal"

	domain "fundbridge-backend/internal/domain/campaign"
)

type CreateCampaignInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    domain.Category `json:"category"`
	GoalAmount  decimal.Decimal `json:"goal_amount"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
}

// UpdateCampaignInput is a partial patch; nil fields are left untouched.
type UpdateCampaignInput struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	GoalAmount  *decimal.Decimal `json:"goal_amount,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

type Stats struct {
	GoalAmount         decimal.Decimal `json:"goal_amount"`
	TotalRaised        decimal.Decimal `json:"total_raised"`
	TotalDonors        int64           `json:"total_donors"`
	ProgressPercentage float64         `json:"progress_percentage"`
	DaysRemaining      int             `json:"days_remaining"`
}
