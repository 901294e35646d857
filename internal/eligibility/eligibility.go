// Package eligibility computes the loan limit offered to an applicant.
package eligibility

import (
	"errors"
	"math"

	"github.com/helapesa/helapesa/internal/domain"
)

const (
	MinLoanLimit = 6200
	MaxLoanLimit = 30000
)

var (
	ErrUnknownIncomeLevel      = errors.New("unknown income level")
	ErrUnknownEmploymentStatus = errors.New("unknown employment status")
)

var baseLoan = map[domain.IncomeLevel]float64{
	domain.IncomeBelow20K:  8000,
	domain.Income20Kto50K:  15000,
	domain.Income50Kto100K: 22000,
	domain.IncomeAbove100K: 28000,
}

var employmentFactor = map[domain.EmploymentStatus]float64{
	domain.EmploymentEmployed:     1.15,
	domain.EmploymentSelfEmployed: 1.05,
	domain.EmploymentStudent:      0.85,
	domain.EmploymentUnemployed:   0.75,
}

// Calculate maps an applicant's income level and employment status to a loan
// limit in KES, clamped to [MinLoanLimit, MaxLoanLimit]. Values outside the
// closed enums are rejected rather than defaulting to a zero base.
func Calculate(income domain.IncomeLevel, employment domain.EmploymentStatus) (int, error) {
	base, ok := baseLoan[income]
	if !ok {
		return 0, ErrUnknownIncomeLevel
	}
	factor, ok := employmentFactor[employment]
	if !ok {
		return 0, ErrUnknownEmploymentStatus
	}

	limit := int(math.Floor(base * factor))
	if limit < MinLoanLimit {
		limit = MinLoanLimit
	}
	if limit > MaxLoanLimit {
		limit = MaxLoanLimit
	}
	return limit, nil
}
