package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

const (
	defaultAllocationLimit = 30
	maxAllocationLimit     = 365
)

type DistributionHandler struct {
	runUC             runDistributionUseCase
	listAllocationsUC listAllocationsUseCase
	logger            logger.Interface
}

func NewDistributionHandler(runUC runDistributionUseCase, listAllocationsUC listAllocationsUseCase, log logger.Interface) *DistributionHandler {
	return &DistributionHandler{
		runUC:             runUC,
		listAllocationsUC: listAllocationsUC,
		logger:            log,
	}
}

// Distribute calculates and distributes the supporter's accrued budget now.
// A cycle with nothing to distribute answers 200 with distributed=false.
func (h *DistributionHandler) Distribute(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.runUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Distributed {
		utils.SuccessResponse(c, http.StatusOK, "Nothing to distribute", result)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Budget distributed", result)
}

func (h *DistributionHandler) ListAllocations(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	limit := utils.ParseLimitQuery(c, defaultAllocationLimit, maxAllocationLimit)

	result, err := h.listAllocationsUC.Execute(c.Request.Context(), id, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
