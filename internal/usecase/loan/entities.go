package loan

import "github.com/shopspring/decimal"

type RequestLoanInput struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	// InterestRate is annual, in percent.
	InterestRate decimal.Decimal `json:"interest_rate"`
	// Duration in months.
	Duration int    `json:"duration"`
	Purpose  string `json:"purpose"`
}

type DecideLoanInput struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason,omitempty"`
}

type FundLoanInput struct {
	Amount       decimal.Decimal `json:"amount"`
	ExternalTxID string          `json:"external_tx_id,omitempty"`
}

type RecordRepaymentInput struct {
	Amount       decimal.Decimal `json:"amount"`
	ExternalTxID string          `json:"external_tx_id,omitempty"`
}
