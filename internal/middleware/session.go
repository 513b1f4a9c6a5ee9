package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"app/internal/domain/model"
)

const (
	SessionCookieName = "session_id"
	RoleCookieName    = "role"

	CtxSessionIDKey = "session_id" // string
	CtxRoleKey      = "user_role"  // model.UserRole
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// Session はセッションIDクッキーを保証してcontextに積む。
// 認証ではない：誰が来てもIDを配るだけ（カートの持ち主を区別する用途のみ）。
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sid = cookie.Value
			} else {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
				})
			}
			c.Set(CtxSessionIDKey, sid)

			//ロールは自己申告のクッキー（資格確認なし）
			if cookie, err := c.Cookie(RoleCookieName); err == nil {
				if role := model.UserRole(cookie.Value); role.Valid() {
					c.Set(CtxRoleKey, role)
				}
			}

			return next(c)
		}
	}
}

// StaffGuard はスタッフロール（CUSTOMER以外）だけ通す。
func StaffGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawRole := c.Get(CtxRoleKey)
			role, ok := rawRole.(model.UserRole)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("role not selected"))
			}

			if !role.IsStaff() {
				return c.JSON(http.StatusForbidden, errorJSON("staff only"))
			}

			return next(c)
		}
	}
}
