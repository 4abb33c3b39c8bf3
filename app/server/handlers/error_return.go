package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-api/app/server/middlewares"
)

// er 返回错误信息，没有指定 message 时使用状态码的默认描述
func (a *App) er(c echo.Context, statusCode int, message ...string) error {
	msg := http.StatusText(statusCode)
	if len(message) > 0 {
		msg = message[0]
	}
	return c.JSON(statusCode, &middlewares.ErrorMessage{
		Message: msg,
	})
}

// dbEr 把数据库错误映射为状态码，不向调用方暴露原始错误
func (a *App) dbEr(c echo.Context, err error, notFound string, fields ...zap.Field) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return a.er(c, http.StatusNotFound, notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return a.er(c, http.StatusConflict)
	default:
		a.l.Error("database operation failed", append(fields, zap.Error(err))...)
		return a.er(c, http.StatusInternalServerError)
	}
}
