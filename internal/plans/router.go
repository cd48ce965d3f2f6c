package plans

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/weddings/:weddingId/plans", controller.GetPlansByWedding)

	plans := rg.Group("/plans")
	{
		plans.POST("", controller.CreatePlan)
		plans.GET("/:planId", controller.GetPlan)
		plans.PUT("/:planId", controller.UpdatePlan)
		plans.DELETE("/:planId", controller.DeletePlan)

		plans.POST("/:planId/seats/:seatId/assign", controller.AssignSeat)
		plans.DELETE("/:planId/seats/:seatId/assign", controller.UnassignSeat)
		plans.POST("/:planId/swap-seats", controller.SwapSeats)

		plans.POST("/:planId/auto-assign", controller.AutoAssign)
		plans.GET("/:planId/conflicts", controller.GetConflicts)
		plans.GET("/:planId/stats", controller.GetStats)
	}
}
