package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/usecase"
)

// /session のHTTP。入口のロール選択（資格確認なし）をそのままAPIにしたもの。
type SessionHandler struct {
	cart *usecase.CartUsecase
}

// DI
func NewSessionHandler(cart *usecase.CartUsecase) *SessionHandler {
	return &SessionHandler{cart: cart}
}

type SelectRoleRequest struct {
	Role string `json:"role"`
}

type SelectRoleResponse struct {
	Role model.UserRole `json:"role"`
}

func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/session/role", h.selectRole)
}

// ロール選択。切り替えたらそのセッションのカートは捨てる。
func (h *SessionHandler) selectRole(c echo.Context) error {
	var req SelectRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	role := model.UserRole(req.Role)
	if !role.Valid() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid role"})
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.RoleCookieName,
		Value:    string(role),
		Path:     "/",
		HttpOnly: true,
	})

	if sid, ok := getSessionID(c); ok {
		h.cart.Clear(sid)
	}

	return c.JSON(http.StatusOK, SelectRoleResponse{Role: role})
}
