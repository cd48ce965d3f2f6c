package constraints

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, controller *Controller) {
	plans := rg.Group("/plans/:planId/constraints")
	{
		plans.GET("", controller.GetConstraintsByPlan)
		plans.POST("", controller.CreateConstraint)
	}

	constraints := rg.Group("/constraints")
	{
		constraints.PATCH("/:id/active", controller.SetConstraintActive)
		constraints.DELETE("/:id", controller.DeleteConstraint)
	}
}
