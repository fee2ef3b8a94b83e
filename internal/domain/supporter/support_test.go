package supporter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupport(t *testing.T, outstanding int64) *Support {
	t.Helper()
	s, err := ReconstructSupport(SupportReconstructParams{
		SupporterID:              1,
		CreatorID:                2,
		WantToPay:                true,
		PaymentAmountOutstanding: outstanding,
	})
	require.NoError(t, err)
	return s
}

func TestNewSupport(t *testing.T) {
	s, err := NewSupport(1, 2, true, 500)
	require.NoError(t, err)
	assert.True(t, s.WantToPay())
	assert.Equal(t, int64(500), s.MinimumPaymentPerMonth())
	assert.Zero(t, s.PaymentAmountOutstanding())

	_, err = NewSupport(0, 2, true, 0)
	assert.Error(t, err)

	_, err = NewSupport(1, 2, true, -1)
	assert.ErrorIs(t, err, ErrNegativeMinimumPayment)
}

func TestSupport_Credit(t *testing.T) {
	s := newTestSupport(t, 10)

	require.NoError(t, s.Credit(200))
	assert.Equal(t, int64(210), s.PaymentAmountOutstanding())

	assert.ErrorIs(t, s.Credit(0), ErrNonPositiveAmount)
	assert.ErrorIs(t, s.Credit(-5), ErrNonPositiveAmount)
	assert.Equal(t, int64(210), s.PaymentAmountOutstanding())
}

func TestSupport_CreditRefusesOverflow(t *testing.T) {
	s := newTestSupport(t, math.MaxInt64-10)

	require.NoError(t, s.CanCredit(10))
	assert.ErrorIs(t, s.CanCredit(11), ErrOutstandingOverflow)
	assert.ErrorIs(t, s.Credit(math.MaxInt64), ErrOutstandingOverflow)
	assert.Equal(t, int64(math.MaxInt64-10), s.PaymentAmountOutstanding())

	require.NoError(t, s.Credit(10))
	assert.Equal(t, int64(math.MaxInt64), s.PaymentAmountOutstanding())
}

func TestSupport_Settle(t *testing.T) {
	tests := []struct {
		name            string
		outstanding     int64
		payment         int64
		wantApplied     int64
		wantOutstanding int64
	}{
		{name: "partial payment", outstanding: 500, payment: 200, wantApplied: 200, wantOutstanding: 300},
		{name: "exact payment", outstanding: 500, payment: 500, wantApplied: 500, wantOutstanding: 0},
		{name: "overpayment floors at zero", outstanding: 500, payment: 800, wantApplied: 500, wantOutstanding: 0},
		{name: "nothing owed", outstanding: 0, payment: 100, wantApplied: 0, wantOutstanding: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSupport(t, tt.outstanding)
			applied, err := s.Settle(tt.payment)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantOutstanding, s.PaymentAmountOutstanding())
		})
	}
}

func TestSupporter_Budget(t *testing.T) {
	_, err := NewSupporter(-1)
	assert.ErrorIs(t, err, ErrNegativeBudget)

	s, err := NewSupporter(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), s.BudgetPerMonth())

	assert.ErrorIs(t, s.SetBudgetPerMonth(-10), ErrNegativeBudget)
	require.NoError(t, s.SetBudgetPerMonth(0))
	assert.Zero(t, s.BudgetPerMonth())

	_, err = NewSupporter(MaxBudgetPerMonth + 1)
	assert.ErrorIs(t, err, ErrBudgetTooLarge)
	assert.ErrorIs(t, s.SetBudgetPerMonth(math.MaxInt64), ErrBudgetTooLarge)
	require.NoError(t, s.SetBudgetPerMonth(MaxBudgetPerMonth))
	assert.Equal(t, MaxBudgetPerMonth, s.BudgetPerMonth())
}
