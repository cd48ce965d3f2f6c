package plans

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatwise/internal/guests"
	"seatwise/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (ctrl *Controller) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	plan, err := ctrl.service.CreatePlan(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create plan", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusCreated, "Plan created successfully", plan, nil)
}

func (ctrl *Controller) GetPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	plan, err := ctrl.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		respondPlanError(c, err, "Failed to get plan")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Plan retrieved successfully", plan, nil)
}

func (ctrl *Controller) GetPlansByWedding(c *gin.Context) {
	weddingID, err := uuid.Parse(c.Param("weddingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid wedding ID", nil, err.Error())
		return
	}

	plansList, err := ctrl.service.GetPlansByWedding(c.Request.Context(), weddingID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get plans", nil, err.Error())
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Plans retrieved successfully", plansList, nil)
}

func (ctrl *Controller) UpdatePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	plan, err := ctrl.service.UpdatePlan(c.Request.Context(), id, req)
	if err != nil {
		respondPlanError(c, err, "Failed to update plan")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Plan updated successfully", plan, nil)
}

func (ctrl *Controller) DeletePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeletePlan(c.Request.Context(), id); err != nil {
		respondPlanError(c, err, "Failed to delete plan")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Plan deleted successfully", nil, nil)
}

func (ctrl *Controller) AssignSeat(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}
	seatID, err := uuid.Parse(c.Param("seatId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	var req AssignSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid guest ID", nil, err.Error())
		return
	}

	plan, err := ctrl.service.AssignSeat(c.Request.Context(), planID, seatID, guestID)
	if err != nil {
		respondPlanError(c, err, "Failed to assign seat")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Guest assigned successfully", plan, nil)
}

func (ctrl *Controller) UnassignSeat(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}
	seatID, err := uuid.Parse(c.Param("seatId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid seat ID", nil, err.Error())
		return
	}

	plan, err := ctrl.service.UnassignSeat(c.Request.Context(), planID, seatID)
	if err != nil {
		respondPlanError(c, err, "Failed to unassign seat")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Seat cleared successfully", plan, nil)
}

func (ctrl *Controller) SwapSeats(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var req SwapSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	plan, err := ctrl.service.SwapSeats(c.Request.Context(), planID, req)
	if err != nil {
		respondPlanError(c, err, "Failed to swap seats")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Seats swapped successfully", plan, nil)
}

func (ctrl *Controller) AutoAssign(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	// Body is optional; an empty request runs with solver defaults
	var req AutoAssignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
			return
		}
	}

	result, err := ctrl.service.AutoAssign(c.Request.Context(), planID, req)
	if err != nil {
		respondPlanError(c, err, "Auto-assign failed")
		return
	}

	message := "Auto-assign completed"
	if !result.Success {
		message = "Auto-assign completed with unplaced guests"
	}
	response.RespondJSON(c, "success", http.StatusOK, message, result, nil)
}

func (ctrl *Controller) GetConflicts(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var nearThreshold float64
	if raw := c.Query("near_threshold"); raw != "" {
		nearThreshold, err = strconv.ParseFloat(raw, 64)
		if err != nil || nearThreshold <= 0 {
			response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid near_threshold", nil, "near_threshold must be a positive number")
			return
		}
	}

	report, err := ctrl.service.GetConflicts(c.Request.Context(), planID, nearThreshold)
	if err != nil {
		respondPlanError(c, err, "Failed to evaluate conflicts")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Conflicts evaluated successfully", report, nil)
}

func (ctrl *Controller) GetStats(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("planId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	stats, err := ctrl.service.GetStats(c.Request.Context(), planID)
	if err != nil {
		respondPlanError(c, err, "Failed to compute stats")
		return
	}
	response.RespondJSON(c, "success", http.StatusOK, "Stats computed successfully", stats, nil)
}

// respondPlanError maps the seating error taxonomy onto status codes
func respondPlanError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrPlanNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Plan not found", nil, err.Error())
	case errors.Is(err, ErrSeatNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Seat not found", nil, err.Error())
	case errors.Is(err, guests.ErrGuestNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Guest not found", nil, err.Error())
	case errors.Is(err, ErrSeatOccupied):
		response.RespondJSON(c, "error", http.StatusConflict, "Seat is already occupied", nil, err.Error())
	case errors.Is(err, ErrGuestAlreadySeated):
		response.RespondJSON(c, "error", http.StatusConflict, "Guest is already seated", nil, err.Error())
	case errors.Is(err, ErrStalePlanVersion):
		response.RespondJSON(c, "error", http.StatusConflict, "Plan was modified, reload and retry", nil, err.Error())
	case errors.Is(err, ErrCorruptPlanData):
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Plan data is corrupt", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
