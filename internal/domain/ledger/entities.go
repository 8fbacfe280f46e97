package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDonation  Type = "DONATION"
	TypeFunding   Type = "FUNDING"
	TypeRepayment Type = "REPAYMENT"
)

type TxStatus string

const (
	StatusCompleted TxStatus = "COMPLETED"
	StatusPending   TxStatus = "PENDING"
	StatusFailed    TxStatus = "FAILED"
)

// Transaction is the append-only money ledger. Rows are never updated
// or soft-deleted; there is deliberately no Save on the repository.
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string          `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	Type          Type            `gorm:"size:16;index:idx_transactions_type" json:"type"`
	Status        TxStatus        `gorm:"size:16" json:"status"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	UserID        string          `gorm:"size:32;index:idx_transactions_user" json:"user_id"`
	ReferenceID   string          `gorm:"size:32;index:idx_transactions_reference" json:"reference_id"`
	ReferenceType string          `gorm:"size:16" json:"reference_type"`
	ExternalTxID  string          `gorm:"size:64" json:"external_tx_id,omitempty"`
	Description   string          `gorm:"size:255" json:"description"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
