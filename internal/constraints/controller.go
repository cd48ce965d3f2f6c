package constraints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatwise/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) CreateConstraint(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var req CreateConstraintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	constraint, err := ctrl.service.CreateConstraint(c.Request.Context(), planID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidConstraintReference), errors.Is(err, ErrTooFewGuests):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid constraint", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create constraint", nil, err.Error())
		}
		return
	}

	message := "Constraint created successfully"
	if len(constraint.ContradictsWith) > 0 {
		message = "Constraint created but contradicts existing rules"
	}
	response.RespondJSON(c, "success", http.StatusCreated, message, constraint, nil)
}

func (ctrl *Controller) GetConstraintsByPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	constraints, err := ctrl.service.GetConstraintsByPlan(c.Request.Context(), planID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get constraints", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Constraints retrieved successfully", constraints, nil)
}

func (ctrl *Controller) SetConstraintActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid constraint ID", nil, err.Error())
		return
	}

	var req SetConstraintActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	constraint, err := ctrl.service.SetConstraintActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		if errors.Is(err, ErrConstraintNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Constraint not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update constraint", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Constraint updated successfully", constraint, nil)
}

func (ctrl *Controller) DeleteConstraint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid constraint ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteConstraint(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrConstraintNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Constraint not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete constraint", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Constraint deleted successfully", nil, nil)
}
