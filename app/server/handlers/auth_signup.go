package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-api/app/server/models"
	"strings"
)

func (a *App) AuthSignup(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	req.Email = strings.TrimSpace(req.Email)

	// 所有字段都需要填写
	if err := req.validatePresence(); err != nil {
		return a.er(c, http.StatusBadRequest, "Please fill in all fields")
	}
	if err := req.validateFormat(); err != nil {
		return a.er(c, http.StatusBadRequest, err.Error())
	}

	// 两次输入的密码需要一致
	if req.Password != req.ConfirmPassword {
		return a.er(c, http.StatusBadRequest, "Passwords do not match")
	}

	// 邮箱是否已经被使用；这里只是提前返回，真正的保证是数据库的唯一约束
	var counter int64
	if err := a.db.WithContext(rctx).Model(&models.User{}).Where("email = ?", req.Email).Count(&counter).Error; err != nil {
		a.l.Error("failed to count users by email", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	} else if counter > 0 {
		return a.er(c, http.StatusConflict, "This email already exists")
	}

	// 处理密码
	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	user := models.User{
		Firstname: req.Firstname,
		Surname:   req.Surname,
		Email:     req.Email,
		Username:  req.Username,
		Password:  passwordHash,
	}

	// 用户和资料在同一个事务里创建
	if err = a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.PersonalInformation{
			UserID:    user.ID,
			Firstname: user.Firstname,
			Lastname:  user.Surname,
			Username:  user.Username,
			Email:     user.Email,
		}).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, http.StatusConflict, "This email already exists")
		}
		a.l.Error("failed to create user", zap.String("email", req.Email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, userInfo(&user))
}
