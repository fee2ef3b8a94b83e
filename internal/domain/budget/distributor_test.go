package budget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/domain/supporter"
)

func newSupports(t *testing.T, n int, wantToPay bool) []*supporter.Support {
	t.Helper()
	supports := make([]*supporter.Support, 0, n)
	for i := 1; i <= n; i++ {
		s, err := supporter.NewSupport(1, uint(i), wantToPay, 0)
		require.NoError(t, err)
		supports = append(supports, s)
	}
	return supports
}

func totalOutstanding(supports []*supporter.Support) int64 {
	var total int64
	for _, s := range supports {
		total += s.PaymentAmountOutstanding()
	}
	return total
}

func TestDistributor_Distribute(t *testing.T) {
	tests := []struct {
		name              string
		amount            int64
		creators          int
		wantPer           int64
		wantUndistributed int64
	}{
		{name: "five creators", amount: 1000, creators: 5, wantPer: 200, wantUndistributed: 0},
		{name: "one creator", amount: 1000, creators: 1, wantPer: 1000, wantUndistributed: 0},
		{name: "999 creators", amount: 1000, creators: 999, wantPer: 1, wantUndistributed: 1},
		{name: "1000 creators", amount: 1000, creators: 1000, wantPer: 1, wantUndistributed: 0},
		{name: "uneven split", amount: 1250, creators: 3, wantPer: 416, wantUndistributed: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := NewAllocation(1, tt.amount)
			require.NoError(t, err)
			supports := newSupports(t, tt.creators, true)

			result, err := NewDistributor().Distribute(alloc, supports)
			require.NoError(t, err)

			assert.True(t, result.Distributed())
			assert.Equal(t, tt.wantPer, result.PerCreator)
			assert.Len(t, result.Credited, tt.creators)
			for _, s := range supports {
				assert.Equal(t, tt.wantPer, s.PaymentAmountOutstanding())
			}
			assert.Equal(t, tt.wantUndistributed, alloc.UndistributedAmount())
			assert.Equal(t, tt.wantPer*int64(tt.creators), alloc.AllocationAmount())
			assert.Equal(t, tt.amount, totalOutstanding(supports)+alloc.UndistributedAmount())
			assert.True(t, alloc.IsSettled())
		})
	}
}

func TestDistributor_OnlyPayingCreatorsAreCredited(t *testing.T) {
	paying := newSupports(t, 2, true)
	notPaying, err := supporter.NewSupport(1, 99, false, 0)
	require.NoError(t, err)

	alloc, err := NewAllocation(1, 101)
	require.NoError(t, err)

	result, err := NewDistributor().Distribute(alloc, append(paying, notPaying))
	require.NoError(t, err)

	assert.Equal(t, int64(50), result.PerCreator)
	assert.Zero(t, notPaying.PaymentAmountOutstanding())
	assert.Equal(t, int64(1), alloc.UndistributedAmount())
}

func TestDistributor_Noops(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		supports    func(t *testing.T) []*supporter.Support
		wantOutcome Outcome
	}{
		{
			name:        "no supports",
			amount:      1000,
			supports:    func(t *testing.T) []*supporter.Support { return nil },
			wantOutcome: OutcomeNoEligibleCreators,
		},
		{
			name:        "nobody wants to pay",
			amount:      1000,
			supports:    func(t *testing.T) []*supporter.Support { return newSupports(t, 3, false) },
			wantOutcome: OutcomeNoEligibleCreators,
		},
		{
			name:        "share below one unit",
			amount:      4,
			supports:    func(t *testing.T) []*supporter.Support { return newSupports(t, 5, true) },
			wantOutcome: OutcomeSubMinimumPerCreator,
		},
		{
			name:        "zero amount",
			amount:      0,
			supports:    func(t *testing.T) []*supporter.Support { return newSupports(t, 1, true) },
			wantOutcome: OutcomeSubMinimumPerCreator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := NewAllocation(1, tt.amount)
			require.NoError(t, err)
			supports := tt.supports(t)

			result, err := NewDistributor().Distribute(alloc, supports)
			require.NoError(t, err)

			assert.False(t, result.Distributed())
			assert.True(t, result.Outcome.IsNoop())
			assert.Equal(t, tt.wantOutcome, result.Outcome)
			assert.Zero(t, totalOutstanding(supports))
			assert.Equal(t, tt.amount, alloc.AllocationAmount())
			assert.Zero(t, alloc.UndistributedAmount())
			assert.False(t, alloc.IsSettled())
		})
	}
}

func TestDistributor_RefusesSettledAllocation(t *testing.T) {
	alloc, err := NewAllocation(1, 1000)
	require.NoError(t, err)
	supports := newSupports(t, 999, true)
	distributor := NewDistributor()

	_, err = distributor.Distribute(alloc, supports)
	require.NoError(t, err)
	require.Equal(t, int64(999), totalOutstanding(supports))

	_, err = distributor.Distribute(alloc, supports)
	assert.ErrorIs(t, err, ErrAllocationSettled)
	assert.Equal(t, int64(999), totalOutstanding(supports))
	assert.Equal(t, int64(999), alloc.AllocationAmount())
	assert.Equal(t, int64(1), alloc.UndistributedAmount())
}

func TestDistributor_OverflowLeavesEverythingUntouched(t *testing.T) {
	alloc, err := NewAllocation(1, 100)
	require.NoError(t, err)

	fresh, err := supporter.NewSupport(1, 1, true, 0)
	require.NoError(t, err)
	full, err := supporter.ReconstructSupport(supporter.SupportReconstructParams{
		SupporterID:              1,
		CreatorID:                2,
		WantToPay:                true,
		PaymentAmountOutstanding: math.MaxInt64 - 10,
	})
	require.NoError(t, err)

	_, err = NewDistributor().Distribute(alloc, []*supporter.Support{fresh, full})
	assert.ErrorIs(t, err, supporter.ErrOutstandingOverflow)
	assert.Zero(t, fresh.PaymentAmountOutstanding())
	assert.Equal(t, int64(math.MaxInt64-10), full.PaymentAmountOutstanding())
	assert.False(t, alloc.IsSettled())
	assert.Equal(t, int64(100), alloc.AllocationAmount())
}

func TestAllocation_CheckpointRestore(t *testing.T) {
	alloc, err := NewAllocation(1, 1000)
	require.NoError(t, err)
	cp := alloc.Checkpoint()

	_, err = NewDistributor().Distribute(alloc, newSupports(t, 3, true))
	require.NoError(t, err)
	alloc.SetID(7)
	require.True(t, alloc.IsSettled())

	alloc.Restore(cp)
	assert.False(t, alloc.IsSettled())
	assert.Zero(t, alloc.ID())
	assert.Equal(t, int64(1000), alloc.AllocationAmount())
	assert.Zero(t, alloc.UndistributedAmount())
}

func TestDistributor_RejectsForeignSupport(t *testing.T) {
	alloc, err := NewAllocation(1, 100)
	require.NoError(t, err)
	foreign, err := supporter.NewSupport(2, 1, true, 0)
	require.NoError(t, err)

	_, err = NewDistributor().Distribute(alloc, []*supporter.Support{foreign})
	assert.ErrorIs(t, err, ErrSupporterMismatch)
	assert.Zero(t, foreign.PaymentAmountOutstanding())
}

func TestDistributor_NilAllocation(t *testing.T) {
	_, err := NewDistributor().Distribute(nil, nil)
	assert.ErrorIs(t, err, ErrNilAllocation)
}
