package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row; only valid inside a tx.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// IncrementFunded adds amount to funded_amount as an in-database
	// increment, never read-modify-write.
	IncrementFunded(ctx context.Context, loanID string, amount decimal.Decimal) error
	List(ctx context.Context, status Status, page, limit int) ([]Loan, int64, error)
	ListByBorrower(ctx context.Context, borrowerID string, page, limit int) ([]Loan, int64, error)
	Count(ctx context.Context, status Status) (int64, error)
}

type FundingRepository interface {
	Create(ctx context.Context, f *Funding) error
	ListByLoan(ctx context.Context, loanID string) ([]Funding, error)
	SumAll(ctx context.Context) (decimal.Decimal, error)
}

type RepaymentRepository interface {
	CreateBatch(ctx context.Context, rs []Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	Save(ctx context.Context, r *Repayment) error
	ListByLoan(ctx context.Context, loanID string) ([]Repayment, error)
	CountPending(ctx context.Context, loanID string) (int64, error)
}
