package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fundbridge-backend/internal/domain/apperr"
	"fundbridge-backend/internal/domain/audit"
	"fundbridge-backend/internal/domain/ledger"
	domain "fundbridge-backend/internal/domain/loan"
	"fundbridge-backend/internal/domain/uow"
	userDomain "fundbridge-backend/internal/domain/user"
	"fundbridge-backend/pkg/id"
)

type Usecase struct {
	repo       domain.Repository
	fundings   domain.FundingRepository
	repayments domain.RepaymentRepository
	users      userDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(repo domain.Repository, fundings domain.FundingRepository, repayments domain.RepaymentRepository, users userDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, fundings: fundings, repayments: repayments, users: users, uow: tx}
}

func (u *Usecase) Request(ctx context.Context, borrowerID string, in RequestLoanInput) (*domain.Loan, error) {
	borrower, err := u.users.GetByUserID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("USER_NOT_FOUND", "borrower not found")
		}
		return nil, err
	}
	if !borrower.Roles.HasAny(userDomain.RoleBorrower) {
		return nil, apperr.Forbidden("FORBIDDEN", "borrower role required")
	}
	if in.RequestedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.InvalidAmount("INVALID_AMOUNT", "requested amount must be positive")
	}
	if in.Duration < 1 {
		return nil, apperr.Validation("INVALID_DURATION", "duration must be at least 1 month")
	}

	l := &domain.Loan{
		LoanID:          id.NewID32(),
		BorrowerID:      borrowerID,
		Title:           in.Title,
		Description:     in.Description,
		Purpose:         in.Purpose,
		RequestedAmount: in.RequestedAmount,
		FundedAmount:    decimal.Zero,
		InterestRate:    in.InterestRate,
		Duration:        in.Duration,
		Status:          domain.StatusRequested,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Decide settles an admin's approve/reject decision on a requested
// loan. Approval opens the loan for lender contributions (FUNDED).
func (u *Usecase) Decide(ctx context.Context, loanID, adminID string, in DecideLoanInput) (*domain.Loan, error) {
	admin, err := u.users.GetByUserID(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("USER_NOT_FOUND", "admin not found")
		}
		return nil, err
	}
	if !admin.Roles.HasAny(userDomain.RoleAdmin) {
		return nil, apperr.Forbidden("FORBIDDEN", "admin role required")
	}

	var decided *domain.Loan
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusRequested {
			return apperr.InvalidState("INVALID_STATUS", "only requested loans can be decided")
		}

		now := time.Now().UTC()
		action := audit.ActionApproveLoan
		if in.Approved {
			l.Status = domain.StatusFunded
		} else {
			l.Status = domain.StatusRejected
			action = audit.ActionRejectLoan
		}
		l.ApprovedBy = adminID
		l.ApprovedAt = &now

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.AuditLogs.Append(ctx, &audit.Log{
			LogID:      id.NewID32(),
			Action:     action,
			AdminID:    adminID,
			EntityType: "loan",
			EntityID:   loanID,
			Changes:    "{\"status\": \"REQUESTED -> " + string(l.Status) + "\"}",
			Reason:     in.Reason,
		}); err != nil {
			return err
		}
		decided = l
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("LOAN_NOT_FOUND", "loan not found")
		}
		return nil, err
	}
	return decided, nil
}

// Fund records one lender contribution. The loan row is locked for the
// whole unit: funding row, ledger row, and funded-amount increment
// commit together, and the contribution that completes the subscription
// also generates the repayment schedule (exactly once) and promotes the
// loan to ACTIVE.
func (u *Usecase) Fund(ctx context.Context, loanID, lenderID string, in FundLoanInput) (*domain.Funding, error) {
	lender, err := u.users.GetByUserID(ctx, lenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("USER_NOT_FOUND", "lender not found")
		}
		return nil, err
	}
	if !lender.Roles.HasAny(userDomain.RoleLender) {
		return nil, apperr.Forbidden("FORBIDDEN", "lender role required")
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperr.InvalidAmount("INVALID_AMOUNT", "funding amount must be positive")
	}

	var created *domain.Funding
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusFunded {
			return apperr.InvalidState("INVALID_STATUS", "loan is not available for funding")
		}
		newFunded := l.FundedAmount.Add(in.Amount)
		if newFunded.GreaterThan(l.RequestedAmount) {
			return apperr.InvalidAmount("INVALID_AMOUNT", "funding amount exceeds loan requirement")
		}

		f := &domain.Funding{
			FundingID:    id.NewID32(),
			LoanID:       loanID,
			LenderID:     lenderID,
			Amount:       in.Amount,
			ExternalTxID: in.ExternalTxID,
		}
		if err := r.Fundings.Create(ctx, f); err != nil {
			return err
		}

		if err := r.Transactions.Append(ctx, &ledger.Transaction{
			TransactionID: id.NewID32(),
			Type:          ledger.TypeFunding,
			Status:        ledger.StatusCompleted,
			Amount:        in.Amount,
			UserID:        lenderID,
			ReferenceID:   loanID,
			ReferenceType: "loan",
			ExternalTxID:  in.ExternalTxID,
			Description:   "Funding for loan: " + l.Title,
		}); err != nil {
			return err
		}

		if newFunded.GreaterThanOrEqual(l.RequestedAmount) {
			// Fully subscribed: generate the schedule exactly once and
			// promote. Re-entry is impossible, the status guard above
			// rejects anything but FUNDED.
			now := time.Now().UTC()
			schedule := domain.GenerateSchedule(loanID, l.RequestedAmount, l.InterestRate, l.Duration, now)
			if err := r.Repayments.CreateBatch(ctx, schedule); err != nil {
				return err
			}
			l.FundedAmount = newFunded
			l.Status = domain.StatusActive
			l.StartDate = &now
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		} else {
			if err := r.Loans.IncrementFunded(ctx, loanID, in.Amount); err != nil {
				return err
			}
		}

		created = f
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("LOAN_NOT_FOUND", "loan not found")
		}
		return nil, err
	}
	return created, nil
}

// RecordRepayment marks one installment paid. An installment is binary
// PENDING/PAID, whatever amount was actually received; when the last
// one settles the loan completes.
func (u *Usecase) RecordRepayment(ctx context.Context, loanID, repaymentID string, in RecordRepaymentInput) (*domain.Repayment, error) {
	var updated *domain.Repayment
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		rp, err := r.Repayments.GetByRepaymentID(ctx, repaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("REPAYMENT_NOT_FOUND", "repayment not found")
			}
			return err
		}
		if rp.LoanID != loanID {
			return apperr.NotFound("REPAYMENT_NOT_FOUND", "repayment not found")
		}

		now := time.Now().UTC()
		rp.Status = domain.RepaymentPaid
		rp.PaidAmount = in.Amount
		rp.PaidAt = &now
		if in.ExternalTxID != "" {
			rp.ExternalTxID = in.ExternalTxID
		}
		if err := r.Repayments.Save(ctx, rp); err != nil {
			return err
		}

		if err := r.Transactions.Append(ctx, &ledger.Transaction{
			TransactionID: id.NewID32(),
			Type:          ledger.TypeRepayment,
			Status:        ledger.StatusCompleted,
			Amount:        in.Amount,
			UserID:        l.BorrowerID,
			ReferenceID:   loanID,
			ReferenceType: "loan",
			ExternalTxID:  in.ExternalTxID,
			Description:   "Repayment for loan: " + l.Title,
		}); err != nil {
			return err
		}

		pending, err := r.Repayments.CountPending(ctx, loanID)
		if err != nil {
			return err
		}
		if pending == 0 {
			l.Status = domain.StatusCompleted
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		updated = rp
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("LOAN_NOT_FOUND", "loan not found")
		}
		return nil, err
	}
	return updated, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("LOAN_NOT_FOUND", "loan not found")
		}
		return nil, err
	}
	return l, nil
}

func (u *Usecase) List(ctx context.Context, status domain.Status, page, limit int) ([]domain.Loan, int64, error) {
	return u.repo.List(ctx, status, page, limit)
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID string, page, limit int) ([]domain.Loan, int64, error) {
	return u.repo.ListByBorrower(ctx, borrowerID, page, limit)
}

func (u *Usecase) Fundings(ctx context.Context, loanID string) ([]domain.Funding, error) {
	return u.fundings.ListByLoan(ctx, loanID)
}

func (u *Usecase) Repayments(ctx context.Context, loanID string) ([]domain.Repayment, error) {
	return u.repayments.ListByLoan(ctx, loanID)
}
