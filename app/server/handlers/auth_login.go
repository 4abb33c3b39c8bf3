package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-api/app/server/constants"
	"portfolio-api/app/server/models"
	"strings"
)

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体（表单或 JSON ）
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Username = strings.TrimSpace(req.Username)

	// 没有写用户名或密码
	if err := req.Validate(); err != nil {
		return a.er(c, http.StatusBadRequest, "Please fill in all fields")
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "email = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, "Invalid credentials")
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 提取密码 hash 并进行校验
	match, needsRehash := a.hasher.Verify(user.Password, req.Password)
	if !match {
		return a.er(c, http.StatusNotFound, "Invalid password")
	}
	if needsRehash {
		a.rehashPassword(c, &user, req.Password)
	}

	// 签出 JWT
	token, _, err := a.jwt.SignToken(user.Email, user.ID, constants.AuthTokenDuration)
	if err != nil {
		a.l.Error("failed to sign token", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 重新登录后，之前的登出记录失效
	if err = a.logout.Clear(rctx, user.ID); err != nil {
		a.l.Error("failed to clear logout record", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &LoginToken{
		AccessToken: token,
		Type:        constants.AuthTokenType,
		UserID:      user.ID,
	})
}

// rehashPassword 把旧格式（ bcrypt 或旧参数）的密码换成当前的 argon2id ，失败不影响登录
func (a *App) rehashPassword(c echo.Context, user *models.User, plaintext string) {
	newPasswordHash, err := a.hasher.Hash(plaintext)
	if err != nil {
		a.l.Warn("failed to rehash password", zap.Uint("id", user.ID), zap.Error(err))
		return
	}

	if err = a.db.WithContext(c.Request().Context()).Model(user).Update("password", newPasswordHash).Error; err != nil {
		a.l.Warn("failed to store rehashed password", zap.Uint("id", user.ID), zap.Error(err))
		return
	}

	a.l.Info("password rehashed", zap.Uint("id", user.ID))
}
