package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	// StatusRequested: borrower asked, awaiting admin decision.
	StatusRequested Status = "REQUESTED"
	// StatusFunded: approved and open for lender contributions.
	StatusFunded Status = "FUNDED"
	// StatusActive: fully subscribed, repayment schedule running.
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusDefaulted Status = "DEFAULTED"
	StatusRejected  Status = "REJECTED"
)

type Loan struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BorrowerID      string          `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	Title           string          `gorm:"size:200" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Purpose         string          `gorm:"size:500" json:"purpose"`
	RequestedAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"requested_amount"`
	FundedAmount    decimal.Decimal `gorm:"type:decimal(18,2)" json:"funded_amount"`
	// InterestRate is annual, in percent (e.g. 12 means 12% p.a.).
	InterestRate decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	// Duration is the term in months; one installment per month.
	Duration   int            `json:"duration"`
	Status     Status         `gorm:"size:16;default:'REQUESTED';index:idx_loans_status" json:"status"`
	ApprovedBy string         `gorm:"size:32" json:"approved_by,omitempty"`
	ApprovedAt *time.Time     `json:"approved_at,omitempty"`
	StartDate  *time.Time     `json:"start_date,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Funding is one lender's immutable contribution toward a loan.
type Funding struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	FundingID    string          `gorm:"size:32;uniqueIndex:ux_loan_fundings_funding_id" json:"funding_id"`
	LoanID       string          `gorm:"size:32;index:idx_loan_fundings_loan" json:"loan_id"`
	LenderID     string          `gorm:"size:32;index:idx_loan_fundings_lender" json:"lender_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	ExternalTxID string          `gorm:"size:64" json:"external_tx_id,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Funding) TableName() string { return "loan_fundings" }

type RepaymentStatus string

const (
	RepaymentPending RepaymentStatus = "PENDING"
	RepaymentPaid    RepaymentStatus = "PAID"
)

// Repayment is one installment of the amortization schedule. The
// schedule is generated as a batch when the loan becomes fully funded
// and the computed components are never recalculated afterwards.
type Repayment struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID  string          `gorm:"size:32;uniqueIndex:ux_loan_repayments_repayment_id" json:"repayment_id"`
	LoanID       string          `gorm:"size:32;index:idx_loan_repayments_loan" json:"loan_id"`
	EMINumber    int             `gorm:"column:emi_number" json:"emi_number"`
	DueDate      time.Time       `json:"due_date"`
	Principal    decimal.Decimal `gorm:"type:decimal(18,2)" json:"principal"`
	Interest     decimal.Decimal `gorm:"type:decimal(18,2)" json:"interest"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	Status       RepaymentStatus `gorm:"size:16;default:'PENDING'" json:"status"`
	PaidAmount   decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_amount"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
	ExternalTxID string          `gorm:"size:64" json:"external_tx_id,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Repayment) TableName() string { return "loan_repayments" }
