package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/middleware"
	"app/internal/usecase"
)

// /dashboard のHTTP（スタッフのみ）
type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

// DI
func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/dashboard")
	g.Use(middleware.StaffGuard())

	g.GET("/stats", h.stats)
	g.POST("/analysis", h.analyze)
}

func (h *DashboardHandler) stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Stats())
}

func (h *DashboardHandler) analyze(c echo.Context) error {
	return c.JSON(http.StatusOK, AnalysisResponse{
		Analysis: h.uc.Analyze(c.Request().Context()),
	})
}
