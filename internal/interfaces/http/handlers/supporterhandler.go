package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorfund/creatorfund/internal/application/supporter/dto"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type SupporterHandler struct {
	createUC        createSupporterUseCase
	getUC           getSupporterUseCase
	updateBudgetUC  updateBudgetUseCase
	upsertSupportUC upsertSupportUseCase
	listSupportsUC  listSupportsUseCase
	logger          logger.Interface
}

func NewSupporterHandler(
	createUC createSupporterUseCase,
	getUC getSupporterUseCase,
	updateBudgetUC updateBudgetUseCase,
	upsertSupportUC upsertSupportUseCase,
	listSupportsUC listSupportsUseCase,
	log logger.Interface,
) *SupporterHandler {
	return &SupporterHandler{
		createUC:        createUC,
		getUC:           getUC,
		updateBudgetUC:  updateBudgetUC,
		upsertSupportUC: upsertSupportUC,
		listSupportsUC:  listSupportsUC,
		logger:          log,
	}
}

func (h *SupporterHandler) CreateSupporter(c *gin.Context) {
	var req dto.CreateSupporterRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Supporter created successfully")
}

func (h *SupporterHandler) GetSupporter(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SupporterHandler) UpdateBudget(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateBudgetRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update budget", "supporter_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateBudgetUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Budget updated successfully", result)
}

func (h *SupporterHandler) UpsertSupport(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpsertSupportRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsertSupportUC.Execute(c.Request.Context(), id, c.Param("slug"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support updated successfully", result)
}

func (h *SupporterHandler) ListSupports(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSupportsUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
