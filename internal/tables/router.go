package tables

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, controller *Controller) {

	// PLAN-SCOPED LAYOUT OPERATIONS

	plans := rg.Group("/plans")
	{
		plans.GET("/:planId/tables", controller.GetTablesByPlan)       // GET /api/v1/plans/:planId/tables
		plans.POST("/:planId/tables", controller.CreateTable)         // POST /api/v1/plans/:planId/tables
		plans.GET("/:planId/chair-rows", controller.GetChairRowsByPlan) // GET /api/v1/plans/:planId/chair-rows
		plans.POST("/:planId/chair-rows", controller.CreateChairRow)  // POST /api/v1/plans/:planId/chair-rows
	}

	// TABLE OPERATIONS

	tables := rg.Group("/tables")
	{
		tables.PUT("/:id", controller.UpdateTable)          // PUT /api/v1/tables/:id
		tables.PATCH("/:id/position", controller.MoveTable) // PATCH /api/v1/tables/:id/position
		tables.DELETE("/:id", controller.DeleteTable)       // DELETE /api/v1/tables/:id
	}

	// CHAIR ROW OPERATIONS

	rows := rg.Group("/chair-rows")
	{
		rows.DELETE("/:id", controller.DeleteChairRow) // DELETE /api/v1/chair-rows/:id
	}
}
