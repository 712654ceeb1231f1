package routes

import (
	"budget_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgetRequests = "/budget-requests"
)

func addBudgetRequestRoutes(rg *gin.RouterGroup, h *handlers.BudgetRequestHandler) {
	budgetRequests := rg.Group(PathBudgetRequests)
	{
		budgetRequests.POST("", h.CreateBudgetRequest)
		budgetRequests.GET("", h.FindAllBudgetRequests)
		budgetRequests.PATCH("/approve", h.ApproveBudgetRequest)
		budgetRequests.GET("/:id", h.FindBudgetRequestByID)
		budgetRequests.PATCH("/:id", h.UpdateBudgetRequest)
		budgetRequests.DELETE("/:id", h.DeleteBudgetRequest)
	}
}
