package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-api/app/server/middlewares"
)

func (a *App) AuthLogout(c echo.Context) error {
	jwtUser := middlewares.CurrentUser(c)
	if jwtUser == nil {
		return a.er(c, http.StatusUnauthorized)
	}

	// 登出前签发的令牌都不再被接受，直到下一次登录
	if err := a.logout.MarkLoggedOut(c.Request().Context(), jwtUser.ID); err != nil {
		a.l.Error("failed to mark user logged out", zap.Uint("id", jwtUser.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &Message{Message: "Logged out"})
}
