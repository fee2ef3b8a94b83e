package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorfund/creatorfund/internal/application/budget/dto"
	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/interfaces/http/handlers/testutil"
	"github.com/creatorfund/creatorfund/internal/shared/errors"
)

type mockRunDistributionUC struct {
	result *dto.DistributionResultDTO
	err    error
}

func (m *mockRunDistributionUC) Execute(ctx context.Context, supporterID uint) (*dto.DistributionResultDTO, error) {
	return m.result, m.err
}

type mockListAllocationsUC struct {
	limit  int
	result []*dto.AllocationDTO
	err    error
}

func (m *mockListAllocationsUC) Execute(ctx context.Context, supporterID uint, limit int) ([]*dto.AllocationDTO, error) {
	m.limit = limit
	return m.result, m.err
}

func TestDistributionHandler_Distribute(t *testing.T) {
	tests := []struct {
		name        string
		uc          *mockRunDistributionUC
		wantStatus  int
		wantMessage string
	}{
		{
			name: "distributed",
			uc: &mockRunDistributionUC{result: &dto.DistributionResultDTO{
				SupporterID: 7, Distributed: true, Outcome: budget.OutcomeDistributed.String(), PerCreator: 200, CreatorCount: 5,
			}},
			wantStatus:  http.StatusOK,
			wantMessage: "Budget distributed",
		},
		{
			name: "no-op is not an error",
			uc: &mockRunDistributionUC{result: &dto.DistributionResultDTO{
				SupporterID: 7, Outcome: budget.OutcomeSubMinimumPerCreator.String(),
			}},
			wantStatus:  http.StatusOK,
			wantMessage: "Nothing to distribute",
		},
		{
			name:       "unknown supporter",
			uc:         &mockRunDistributionUC{err: errors.NewNotFoundError("supporter not found")},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "already settled",
			uc:         &mockRunDistributionUC{err: errors.NewConflictError("allocation already distributed")},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDistributionHandler(tt.uc, nil, testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodPost, "/supporters/7/distributions", nil)
			testutil.SetURLParam(c, "id", "7")

			handler.Distribute(c)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, resp.Message)
				var got dto.DistributionResultDTO
				require.NoError(t, json.Unmarshal(resp.Data, &got))
				assert.Equal(t, tt.uc.result.Outcome, got.Outcome)
			}
		})
	}
}

func TestDistributionHandler_ListAllocations_ClampsLimit(t *testing.T) {
	mockUC := &mockListAllocationsUC{result: []*dto.AllocationDTO{}}
	handler := NewDistributionHandler(nil, mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/supporters/7/allocations", nil)
	testutil.SetURLParam(c, "id", "7")
	testutil.SetQueryParams(c, map[string]string{"limit": "100000"})

	handler.ListAllocations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, maxAllocationLimit, mockUC.limit)
}

func TestDistributionHandler_ListAllocations_DefaultLimit(t *testing.T) {
	mockUC := &mockListAllocationsUC{}
	handler := NewDistributionHandler(nil, mockUC, testutil.NewMockLogger())

	c, _ := testutil.NewTestContext(http.MethodGet, "/supporters/7/allocations", nil)
	testutil.SetURLParam(c, "id", "7")

	handler.ListAllocations(c)

	assert.Equal(t, defaultAllocationLimit, mockUC.limit)
}
