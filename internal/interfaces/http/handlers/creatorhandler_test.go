package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/application/creator/dto"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers/testutil"
	"github.com/creatorfund/creatorfund/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateCreatorUC struct {
	got    dto.CreateCreatorRequest
	result *dto.CreatorDTO
	err    error
}

func (m *mockCreateCreatorUC) Execute(ctx context.Context, req dto.CreateCreatorRequest) (*dto.CreatorDTO, error) {
	m.got = req
	return m.result, m.err
}

type mockGetCreatorUC struct {
	result *dto.CreatorDTO
	err    error
}

func (m *mockGetCreatorUC) Execute(ctx context.Context, slug string) (*dto.CreatorDTO, error) {
	return m.result, m.err
}

type mockListCreatorsUC struct {
	result []*dto.CreatorDTO
	err    error
}

func (m *mockListCreatorsUC) Execute(ctx context.Context) ([]*dto.CreatorDTO, error) {
	return m.result, m.err
}

type mockAddPaymentMethodUC struct {
	slug   string
	result *dto.PaymentMethodDTO
	err    error
}

func (m *mockAddPaymentMethodUC) Execute(ctx context.Context, slug string, req dto.AddPaymentMethodRequest) (*dto.PaymentMethodDTO, error) {
	m.slug = slug
	return m.result, m.err
}

func newTestCreatorHandler(
	createUC createCreatorUseCase,
	getUC getCreatorUseCase,
	listUC listCreatorsUseCase,
	addUC addPaymentMethodUseCase,
) *CreatorHandler {
	return NewCreatorHandler(createUC, getUC, listUC, addUC, testutil.NewMockLogger())
}

// =====================================================================
// Tests
// =====================================================================

func TestCreatorHandler_CreateCreator_Success(t *testing.T) {
	mockUC := &mockCreateCreatorUC{result: &dto.CreatorDTO{ID: 1, Slug: "ada"}}
	handler := newTestCreatorHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/creators", map[string]string{
		"display_name": "Ada",
		"web_url":      "https://ada.example.com",
	})

	handler.CreateCreator(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Ada", mockUC.got.DisplayName)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var got dto.CreatorDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Equal(t, "ada", got.Slug)
}

func TestCreatorHandler_CreateCreator_InvalidRequest(t *testing.T) {
	handler := newTestCreatorHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/creators", map[string]string{"web_url": "https://x.example.com"})

	handler.CreateCreator(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error.Details, "display_name is required")
}

func TestCreatorHandler_CreateCreator_MalformedJSON(t *testing.T) {
	handler := newTestCreatorHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/creators", "{not json")

	handler.CreateCreator(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatorHandler_CreateCreator_Conflict(t *testing.T) {
	mockUC := &mockCreateCreatorUC{err: errors.NewConflictError("creator slug already exists", "ada")}
	handler := newTestCreatorHandler(mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/creators", map[string]string{
		"display_name": "Ada",
		"web_url":      "https://ada.example.com",
	})

	handler.CreateCreator(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatorHandler_GetCreator(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockGetCreatorUC
		wantStatus int
	}{
		{"found", &mockGetCreatorUC{result: &dto.CreatorDTO{Slug: "ada"}}, http.StatusOK},
		{"not found", &mockGetCreatorUC{err: errors.NewNotFoundError("creator not found")}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestCreatorHandler(nil, tt.uc, nil, nil)
			c, w := testutil.NewTestContext(http.MethodGet, "/creators/ada", nil)
			testutil.SetURLParam(c, "slug", "ada")

			handler.GetCreator(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreatorHandler_ListCreators(t *testing.T) {
	handler := newTestCreatorHandler(nil, nil, &mockListCreatorsUC{result: []*dto.CreatorDTO{{Slug: "a"}, {Slug: "b"}}}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/creators", nil)
	handler.ListCreators(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got []dto.CreatorDTO
	require.NoError(t, json.Unmarshal(resp.Data, &got))
	assert.Len(t, got, 2)
}

func TestCreatorHandler_ListCreators_InternalErrorHidesDetails(t *testing.T) {
	handler := newTestCreatorHandler(nil, nil, &mockListCreatorsUC{err: assert.AnError}, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/creators", nil)
	handler.ListCreators(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestCreatorHandler_AddPaymentMethod(t *testing.T) {
	mockUC := &mockAddPaymentMethodUC{result: &dto.PaymentMethodDTO{ID: 3, Type: creator.TypePatreon}}
	handler := newTestCreatorHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/creators/ada/payment-methods", map[string]interface{}{
		"type":        creator.TypePatreon,
		"campaign_id": 9,
		"vanity":      "ada",
	})
	testutil.SetURLParam(c, "slug", "ada")

	handler.AddPaymentMethod(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ada", mockUC.slug)
}

func TestCreatorHandler_AddPaymentMethod_UnknownType(t *testing.T) {
	handler := newTestCreatorHandler(nil, nil, nil, &mockAddPaymentMethodUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/creators/ada/payment-methods", map[string]string{"type": "payment_methods_paypal"})
	testutil.SetURLParam(c, "slug", "ada")

	handler.AddPaymentMethod(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
