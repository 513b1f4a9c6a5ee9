package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/middleware"
	"app/internal/usecase"
)

// /products のHTTP
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type AddProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// 一覧は誰でも見られる。追加はスタッフのみ。
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/categories", h.categories)
	e.POST("/products", h.add, middleware.StaffGuard())
}

func (h *ProductHandler) list(c echo.Context) error {
	category := c.QueryParam("category")
	return c.JSON(http.StatusOK, h.uc.List(category))
}

func (h *ProductHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}

func (h *ProductHandler) add(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Add(c.Request().Context(), usecase.AddProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, p)
}
