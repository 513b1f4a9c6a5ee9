package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/middleware"
	"app/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getSessionID(c echo.Context) (string, bool) {
	raw := c.Get(middleware.CtxSessionIDKey)
	sid, ok := raw.(string)
	return sid, ok && sid != ""
}
