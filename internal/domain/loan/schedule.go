package loan

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"fundbridge-backend/pkg/id"
)

var hundred = decimal.NewFromInt(100)

// GenerateSchedule computes the fixed-payment (EMI) amortization table
// for a loan. One installment per month, due dates at start + k months,
// all installments initially PENDING.
//
// The payment factor (1+r)^n is computed in float64; every monetary
// component is decimal, rounded to the currency's minor unit. The final
// installment absorbs the rounding residual so the principal components
// sum exactly to the principal and the remaining balance reaches zero.
func GenerateSchedule(loanID string, principal, annualRatePercent decimal.Decimal, durationMonths int, start time.Time) []Repayment {
	if durationMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	// monthlyRate = annualRatePercent / 100 / 12
	monthlyRate := annualRatePercent.Div(hundred).Div(decimal.NewFromInt(12))

	var payment decimal.Decimal
	if monthlyRate.IsZero() {
		// Zero-interest degenerate case: the annuity formula divides by
		// zero here, so split the principal evenly instead.
		payment = principal.Div(decimal.NewFromInt(int64(durationMonths))).Round(2)
	} else {
		// payment = P * r * (1+r)^n / ((1+r)^n - 1)
		r, _ := monthlyRate.Float64()
		p, _ := principal.Float64()
		factor := math.Pow(1+r, float64(durationMonths))
		payment = decimal.NewFromFloat(p * r * factor / (factor - 1)).Round(2)
	}

	schedule := make([]Repayment, 0, durationMonths)
	remaining := principal

	for k := 1; k <= durationMonths; k++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)
		total := payment

		if k == durationMonths {
			// Residual allocation: clear whatever balance is left.
			principalPart = remaining
			total = principalPart.Add(interest)
		}
		remaining = remaining.Sub(principalPart)

		schedule = append(schedule, Repayment{
			RepaymentID: id.NewID32(),
			LoanID:      loanID,
			EMINumber:   k,
			DueDate:     start.AddDate(0, k, 0),
			Principal:   principalPart,
			Interest:    interest,
			TotalAmount: total,
			Status:      RepaymentPending,
		})
	}
	return schedule
}
