package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/application/payment/dto"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers/testutil"
	"github.com/creatorfund/creatorfund/internal/shared/errors"
)

type mockRecordPaymentUC struct {
	req    dto.RecordPaymentRequest
	result *dto.RecordPaymentResultDTO
	err    error
}

func (m *mockRecordPaymentUC) Execute(ctx context.Context, supporterID uint, req dto.RecordPaymentRequest) (*dto.RecordPaymentResultDTO, error) {
	m.req = req
	return m.result, m.err
}

type mockListPaymentsUC struct {
	result []*dto.PaymentDTO
	err    error
}

func (m *mockListPaymentsUC) Execute(ctx context.Context, supporterID uint, limit int) ([]*dto.PaymentDTO, error) {
	return m.result, m.err
}

func TestPaymentHandler_RecordPayment(t *testing.T) {
	mockUC := &mockRecordPaymentUC{result: &dto.RecordPaymentResultDTO{Payment: &dto.PaymentDTO{ID: 1}, AppliedAmount: 500}}
	handler := NewPaymentHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/supporters/7/payments", map[string]interface{}{
		"creator_slug":      "ada",
		"payment_method_id": 3,
		"payment_amount":    500,
		"paid_at":           "2024-03-01T10:00:00Z",
	})
	testutil.SetURLParam(c, "id", "7")

	handler.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockUC.req.PaidAt)
	assert.Equal(t, "2024-03-01T10:00:00Z", *mockUC.req.PaidAt)
}

func TestPaymentHandler_RecordPayment_Errors(t *testing.T) {
	valid := map[string]interface{}{
		"creator_slug":      "ada",
		"payment_method_id": 3,
		"payment_amount":    500,
	}

	tests := []struct {
		name       string
		body       interface{}
		uc         *mockRecordPaymentUC
		wantStatus int
	}{
		{"missing amount", map[string]interface{}{"creator_slug": "ada", "payment_method_id": 3}, &mockRecordPaymentUC{}, http.StatusBadRequest},
		{"naive paid_at", valid, &mockRecordPaymentUC{err: errors.NewValidationError("paid_at must include a timezone offset")}, http.StatusBadRequest},
		{"unknown creator", valid, &mockRecordPaymentUC{err: errors.NewNotFoundError("creator not found")}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPaymentHandler(tt.uc, nil, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/supporters/7/payments", tt.body)
			testutil.SetURLParam(c, "id", "7")

			handler.RecordPayment(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	handler := NewPaymentHandler(nil, &mockListPaymentsUC{result: []*dto.PaymentDTO{{ID: 1}}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/supporters/7/payments", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
