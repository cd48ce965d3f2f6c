package tables

import (
	"errors"
	"net/http"

	"seatwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// TABLES

func (c *Controller) CreateTable(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("planId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var req CreateTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	table, err := c.service.CreateTable(ctx.Request.Context(), planID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create table", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Table created successfully", table.ToResponse(), nil)
}

func (c *Controller) GetTablesByPlan(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("planId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	list, err := c.service.GetTablesByPlan(ctx.Request.Context(), planID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get tables", nil, err.Error())
		return
	}

	resp := make([]TableResponse, 0, len(list))
	for i := range list {
		resp = append(resp, list[i].ToResponse())
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Tables retrieved successfully", resp, nil)
}

func (c *Controller) UpdateTable(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid table ID", nil, err.Error())
		return
	}

	var req UpdateTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	table, err := c.service.UpdateTable(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTableNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update table", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Table updated successfully", table.ToResponse(), nil)
}

func (c *Controller) MoveTable(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid table ID", nil, err.Error())
		return
	}

	var req MoveTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	table, err := c.service.MoveTable(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTableNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to move table", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Table moved successfully", table.ToResponse(), nil)
}

func (c *Controller) DeleteTable(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid table ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteTable(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrTableNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete table", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Table deleted successfully", nil, nil)
}

// CHAIR ROWS

func (c *Controller) CreateChairRow(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("planId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	var req CreateChairRowRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	row, err := c.service.CreateChairRow(ctx.Request.Context(), planID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create chair row", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Chair row created successfully", row.ToResponse(), nil)
}

func (c *Controller) GetChairRowsByPlan(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("planId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid plan ID", nil, err.Error())
		return
	}

	list, err := c.service.GetChairRowsByPlan(ctx.Request.Context(), planID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get chair rows", nil, err.Error())
		return
	}

	resp := make([]ChairRowResponse, 0, len(list))
	for i := range list {
		resp = append(resp, list[i].ToResponse())
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Chair rows retrieved successfully", resp, nil)
}

func (c *Controller) DeleteChairRow(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid chair row ID", nil, err.Error())
		return
	}

	if err := c.service.DeleteChairRow(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrChairRowNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete chair row", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Chair row deleted successfully", nil, nil)
}
