package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorfund/creatorfund/internal/application/payment/dto"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

const (
	defaultPaymentLimit = 50
	maxPaymentLimit     = 500
)

type PaymentHandler struct {
	recordUC recordPaymentUseCase
	listUC   listPaymentsUseCase
	logger   logger.Interface
}

func NewPaymentHandler(recordUC recordPaymentUseCase, listUC listPaymentsUseCase, log logger.Interface) *PaymentHandler {
	return &PaymentHandler{
		recordUC: recordUC,
		listUC:   listUC,
		logger:   log,
	}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RecordPaymentRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for record payment", "supporter_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment recorded successfully")
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "supporter")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), id, utils.ParseLimitQuery(c, defaultPaymentLimit, maxPaymentLimit))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
