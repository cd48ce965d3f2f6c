package exports

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.POST("/plans/:planId/export", controller.ExportPlan)
}
