package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/creatorfund/creatorfund/internal/domain/payment/valueobjects"
	"github.com/creatorfund/creatorfund/internal/shared/biztime"
)

func validMoney() vo.Money {
	return vo.MustMoney(1000, "USD")
}

func TestNewPayment_DefaultsPaidAtToNow(t *testing.T) {
	before := biztime.NowUTC()
	p, err := NewPayment(1, 2, 3, validMoney(), nil)
	require.NoError(t, err)

	assert.False(t, p.PaidAt().Before(before))
	assert.Equal(t, time.UTC, p.PaidAt().Location())
	assert.Equal(t, p.CreatedAt(), p.PaidAt())
}

func TestNewPayment_NormalizesPaidAtToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*60*60)
	paidAt := time.Date(2024, 1, 2, 9, 0, 0, 0, zone)

	p, err := NewPayment(1, 2, 3, validMoney(), &paidAt)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), p.PaidAt())
}

func TestNewPayment_InvalidInput(t *testing.T) {
	zero := time.Time{}

	tests := []struct {
		name        string
		supporterID uint
		creatorID   uint
		methodID    uint
		amount      vo.Money
		paidAt      *time.Time
		wantErr     error
	}{
		{name: "missing supporter", creatorID: 2, methodID: 3, amount: validMoney()},
		{name: "missing creator", supporterID: 1, methodID: 3, amount: validMoney()},
		{name: "missing method", supporterID: 1, creatorID: 2, amount: validMoney()},
		{name: "zero amount", supporterID: 1, creatorID: 2, methodID: 3, amount: vo.MustMoney(0, "USD")},
		{name: "naive paid_at", supporterID: 1, creatorID: 2, methodID: 3, amount: validMoney(), paidAt: &zero, wantErr: biztime.ErrNaiveTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPayment(tt.supporterID, tt.creatorID, tt.methodID, tt.amount, tt.paidAt)
			assert.Error(t, err)
			assert.Nil(t, p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
