package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/usecase"
)

// /cart のHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Notes     string `json:"notes"`
}

type ChangeQuantityRequest struct {
	Delta int64 `json:"delta"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.get)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:id", h.changeQuantity)
	g.DELETE("/items/:id", h.removeItem)
	g.DELETE("", h.clear)
}

func (h *CartHandler) get(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}
	return c.JSON(http.StatusOK, h.uc.Get(sid))
}

func (h *CartHandler) addItem(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Add(sid, req.ProductID, req.Notes)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// 数量±。0以下になる変更は無視される（明細は残る）。
func (h *CartHandler) changeQuantity(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	var req ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	return c.JSON(http.StatusOK, h.uc.ChangeQuantity(sid, c.Param("id"), req.Delta))
}

func (h *CartHandler) removeItem(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	return c.JSON(http.StatusOK, h.uc.Remove(sid, c.Param("id")))
}

func (h *CartHandler) clear(c echo.Context) error {
	sid, ok := getSessionID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no session"})
	}

	h.uc.Clear(sid)
	return c.NoContent(http.StatusNoContent)
}
