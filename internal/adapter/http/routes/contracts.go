package routes

import (
	"contract_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathContracts = "/contracts"
)

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler) {
	rg.GET(PathDashboard, h.Dashboard)

	contracts := rg.Group(PathContracts)
	{
		contracts.GET("", h.ListContracts)
		contracts.POST("", h.CreateContract)
		contracts.GET("/new", h.NewContractForm)
		contracts.POST("/preview", h.PreviewContract)
		contracts.GET("/:id", h.GetContract)
		contracts.DELETE("/:id", h.DeleteContract)
		contracts.POST("/:id/advance", h.AdvanceContract)
		contracts.POST("/:id/revoke", h.RevokeContract)
		contracts.GET("/:id/print", h.PrintContract)
	}
}
