package exports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"seatwise/internal/plans"
	"seatwise/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (ctrl *Controller) ExportPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	doc, err := ctrl.service.BuildExport(c.Request.Context(), planID, req)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Plan not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to build export", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Export document built successfully", doc, nil)
}
