package eligibility

import (
	"testing"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		income     domain.IncomeLevel
		employment domain.EmploymentStatus
		expected   int
		expectErr  error
	}{
		{
			name:       "Employed below 20k",
			income:     domain.IncomeBelow20K,
			employment: domain.EmploymentEmployed,
			expected:   9200,
		},
		{
			name:       "Employed above 100k clamps to upper bound",
			income:     domain.IncomeAbove100K,
			employment: domain.EmploymentEmployed,
			expected:   30000,
		},
		{
			name:       "Unemployed below 20k clamps to lower bound",
			income:     domain.IncomeBelow20K,
			employment: domain.EmploymentUnemployed,
			expected:   6200,
		},
		{
			name:       "Self-employed mid income",
			income:     domain.Income20Kto50K,
			employment: domain.EmploymentSelfEmployed,
			expected:   15750,
		},
		{
			name:       "Student 50k-100k",
			income:     domain.Income50Kto100K,
			employment: domain.EmploymentStudent,
			expected:   18700,
		},
		{
			name:       "Unknown income level",
			income:     domain.IncomeLevel("millionaire"),
			employment: domain.EmploymentEmployed,
			expectErr:  ErrUnknownIncomeLevel,
		},
		{
			name:       "Unknown employment status",
			income:     domain.IncomeBelow20K,
			employment: domain.EmploymentStatus("retired"),
			expectErr:  ErrUnknownEmploymentStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, err := Calculate(tt.income, tt.employment)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, limit)
			assert.GreaterOrEqual(t, limit, MinLoanLimit)
			assert.LessOrEqual(t, limit, MaxLoanLimit)
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	for _, income := range []domain.IncomeLevel{domain.IncomeBelow20K, domain.Income20Kto50K, domain.Income50Kto100K, domain.IncomeAbove100K} {
		for _, employment := range []domain.EmploymentStatus{domain.EmploymentEmployed, domain.EmploymentSelfEmployed, domain.EmploymentStudent, domain.EmploymentUnemployed} {
			first, err := Calculate(income, employment)
			assert.NoError(t, err)
			second, err := Calculate(income, employment)
			assert.NoError(t, err)
			assert.Equal(t, first, second)
			assert.GreaterOrEqual(t, first, MinLoanLimit)
			assert.LessOrEqual(t, first, MaxLoanLimit)
		}
	}
}
