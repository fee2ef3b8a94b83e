package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/application/supporter/dto"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers/testutil"
	"github.com/creatorfund/creatorfund/internal/shared/errors"
)

type mockCreateSupporterUC struct {
	result *dto.SupporterDTO
	err    error
}

func (m *mockCreateSupporterUC) Execute(ctx context.Context, req dto.CreateSupporterRequest) (*dto.SupporterDTO, error) {
	return m.result, m.err
}

type mockGetSupporterUC struct {
	id     uint
	result *dto.SupporterDTO
	err    error
}

func (m *mockGetSupporterUC) Execute(ctx context.Context, id uint) (*dto.SupporterDTO, error) {
	m.id = id
	return m.result, m.err
}

type mockUpdateBudgetUC struct {
	req    dto.UpdateBudgetRequest
	result *dto.SupporterDTO
	err    error
}

func (m *mockUpdateBudgetUC) Execute(ctx context.Context, id uint, req dto.UpdateBudgetRequest) (*dto.SupporterDTO, error) {
	m.req = req
	return m.result, m.err
}

type mockUpsertSupportUC struct {
	slug   string
	req    dto.UpsertSupportRequest
	result *dto.SupportDTO
	err    error
}

func (m *mockUpsertSupportUC) Execute(ctx context.Context, supporterID uint, creatorSlug string, req dto.UpsertSupportRequest) (*dto.SupportDTO, error) {
	m.slug = creatorSlug
	m.req = req
	return m.result, m.err
}

type mockListSupportsUC struct {
	result []*dto.SupportDTO
	err    error
}

func (m *mockListSupportsUC) Execute(ctx context.Context, supporterID uint) ([]*dto.SupportDTO, error) {
	return m.result, m.err
}

func TestSupporterHandler_CreateSupporter(t *testing.T) {
	handler := NewSupporterHandler(&mockCreateSupporterUC{result: &dto.SupporterDTO{ID: 1, BudgetPerMonth: 1000}}, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/supporters", map[string]int64{"budget_per_month": 1000})
	handler.CreateSupporter(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSupporterHandler_CreateSupporter_NegativeBudget(t *testing.T) {
	handler := NewSupporterHandler(&mockCreateSupporterUC{}, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/supporters", map[string]int64{"budget_per_month": -1})
	handler.CreateSupporter(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupporterHandler_GetSupporter(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		uc         *mockGetSupporterUC
		wantStatus int
	}{
		{"found", "7", &mockGetSupporterUC{result: &dto.SupporterDTO{ID: 7}}, http.StatusOK},
		{"not found", "8", &mockGetSupporterUC{err: errors.NewNotFoundError("supporter not found")}, http.StatusNotFound},
		{"invalid id", "abc", &mockGetSupporterUC{}, http.StatusBadRequest},
		{"zero id", "0", &mockGetSupporterUC{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSupporterHandler(nil, tt.uc, nil, nil, nil, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/supporters/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)

			handler.GetSupporter(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSupporterHandler_UpdateBudget(t *testing.T) {
	mockUC := &mockUpdateBudgetUC{result: &dto.SupporterDTO{ID: 7, BudgetPerMonth: 2500}}
	handler := NewSupporterHandler(nil, nil, mockUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/supporters/7/budget", map[string]int64{"budget_per_month": 2500})
	testutil.SetURLParam(c, "id", "7")

	handler.UpdateBudget(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2500), mockUC.req.BudgetPerMonth)
}

func TestSupporterHandler_UpsertSupport(t *testing.T) {
	mockUC := &mockUpsertSupportUC{result: &dto.SupportDTO{CreatorSlug: "ada", WantToPay: true}}
	handler := NewSupporterHandler(nil, nil, nil, mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/supporters/7/supports/ada", map[string]interface{}{
		"want_to_pay":               true,
		"minimum_payment_per_month": 500,
	})
	testutil.SetURLParam(c, "id", "7")
	testutil.SetURLParam(c, "slug", "ada")

	handler.UpsertSupport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada", mockUC.slug)
	require.NotNil(t, mockUC.req.WantToPay)
	assert.True(t, *mockUC.req.WantToPay)
}

func TestSupporterHandler_UpsertSupport_MissingWantToPay(t *testing.T) {
	handler := NewSupporterHandler(nil, nil, nil, &mockUpsertSupportUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/supporters/7/supports/ada", map[string]int64{"minimum_payment_per_month": 0})
	testutil.SetURLParam(c, "id", "7")
	testutil.SetURLParam(c, "slug", "ada")

	handler.UpsertSupport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSupporterHandler_ListSupports(t *testing.T) {
	handler := NewSupporterHandler(nil, nil, nil, nil, &mockListSupportsUC{result: []*dto.SupportDTO{{CreatorID: 1}}}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/supporters/7/supports", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.ListSupports(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
