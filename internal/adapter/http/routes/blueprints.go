package routes

import (
	"contract_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBlueprints = "/blueprints"
)

func addBlueprintRoutes(rg *gin.RouterGroup, h *handlers.BlueprintHandler) {
	blueprints := rg.Group(PathBlueprints)
	{
		blueprints.GET("", h.ListBlueprints)
		blueprints.POST("", h.CreateBlueprint)
		blueprints.GET("/:id", h.GetBlueprint)
		blueprints.PUT("/:id", h.UpdateBlueprint)
		blueprints.DELETE("/:id", h.DeleteBlueprint)
	}
}
