package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"
)

// /orders のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type PlaceOrderRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// 注文作成は誰でも。閲覧・進行はスタッフのみ。
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.place)

	g := e.Group("/orders")
	g.Use(middleware.StaffGuard())
	g.GET("", h.list)
	g.PATCH("/:id/status", h.updateStatus)
	g.POST("/:id/seen", h.markSeen)
}

func (h *OrderHandler) place(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), sid, usecase.PlaceOrderInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Payment: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.List())
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) markSeen(c echo.Context) error {
	if err := h.uc.MarkSeen(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
