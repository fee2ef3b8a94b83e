package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorfund/creatorfund/internal/application/creator/dto"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

type CreatorHandler struct {
	createUC           createCreatorUseCase
	getUC              getCreatorUseCase
	listUC             listCreatorsUseCase
	addPaymentMethodUC addPaymentMethodUseCase
	logger             logger.Interface
}

func NewCreatorHandler(
	createUC createCreatorUseCase,
	getUC getCreatorUseCase,
	listUC listCreatorsUseCase,
	addPaymentMethodUC addPaymentMethodUseCase,
	log logger.Interface,
) *CreatorHandler {
	return &CreatorHandler{
		createUC:           createUC,
		getUC:              getUC,
		listUC:             listUC,
		addPaymentMethodUC: addPaymentMethodUC,
		logger:             log,
	}
}

func (h *CreatorHandler) CreateCreator(c *gin.Context) {
	var req dto.CreateCreatorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create creator", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Creator created successfully")
}

func (h *CreatorHandler) ListCreators(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CreatorHandler) GetCreator(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CreatorHandler) AddPaymentMethod(c *gin.Context) {
	var req dto.AddPaymentMethodRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for add payment method", "slug", c.Param("slug"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addPaymentMethodUC.Execute(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment method added successfully")
}
