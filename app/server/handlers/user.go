package handlers

import (
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-api/app/server/middlewares"
	"portfolio-api/app/server/models"
	"portfolio-api/app/server/utils"
	"strconv"
	"strings"
)

func (a *App) userMapFields(req *UpdateUserRequest, user *models.User) {
	if req.Firstname != nil {
		user.Firstname = *req.Firstname
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
}

func (a *App) UserList(c echo.Context) error {
	rctx := c.Request().Context()

	skip, limit, err := a.parsePagination(c.QueryParam("skip"), c.QueryParam("limit"))
	if err != nil {
		return a.er(c, http.StatusBadRequest, "skip and limit should be integers")
	}

	var (
		users      []models.User
		usersCount int64
	)

	if err := a.db.WithContext(rctx).Model(&models.User{}).Order("id ASC").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if err := a.db.WithContext(rctx).Model(&models.User{}).Count(&usersCount).Error; err != nil {
		a.l.Error("failed to count user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resUsers := []*UserInfo{}
	for i := range users {
		resUsers = append(resUsers, userInfo(&users[i]))
	}

	c.Response().Header().Set("X-Total-Count", strconv.FormatInt(usersCount, 10))
	return c.JSON(http.StatusOK, resUsers)
}

func (a *App) UserInfoGet(c echo.Context) error {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid user id")
	}

	rctx := c.Request().Context()

	// 从数据库中获得指定的用户
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", id).Error; err != nil {
		return a.dbEr(c, err, "User not found", zap.Uint("id", id))
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}

// UserInfoUpdate 只能修改当前登录的用户
func (a *App) UserInfoUpdate(c echo.Context) error {
	jwtUser := middlewares.CurrentUser(c)
	if jwtUser == nil {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return a.er(c, http.StatusBadRequest, err.Error())
	}

	// 从数据库中获得当前用户，可能在认证之后已被删除
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", jwtUser.ID).Error; err != nil {
		return a.dbEr(c, err, "User not found", zap.Uint("id", jwtUser.ID))
	}

	oldEmail := user.Email
	a.userMapFields(&req, &user)

	// 新邮箱不能和其他用户重复
	if user.Email != oldEmail {
		var counter int64
		if err := a.db.WithContext(rctx).Model(&models.User{}).Where("email = ? AND id <> ?", user.Email, user.ID).Count(&counter).Error; err != nil {
			a.l.Error("failed to count users by email", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		} else if counter > 0 {
			return a.er(c, http.StatusConflict, "This email already exists")
		}
	}

	// 更新用户信息
	if err := a.db.WithContext(rctx).Updates(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, http.StatusConflict, "This email already exists")
		}
		a.l.Error("failed to update user", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, userInfo(&user))
}

// UserDelete 删除当前登录的用户及其资料
func (a *App) UserDelete(c echo.Context) error {
	jwtUser := middlewares.CurrentUser(c)
	if jwtUser == nil {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "id = ?", jwtUser.ID).Error; err != nil {
		return a.dbEr(c, err, "User not found", zap.Uint("id", jwtUser.ID))
	}

	// 资料随用户一起删除，不留下孤立的记录
	if err := a.db.WithContext(rctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PersonalInformation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, user.ID).Error
	}); err != nil {
		a.l.Error("failed to delete user", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 已签出的令牌在过期前仍然有效，标记为登出使其失效
	if err := a.logout.MarkLoggedOut(rctx, user.ID); err != nil {
		a.l.Warn("failed to mark deleted user logged out", zap.Uint("id", user.ID), zap.Error(err))
	}

	return c.JSON(http.StatusAccepted, &Message{
		Message: fmt.Sprintf("User with id %d deleted successfully", user.ID),
	})
}
