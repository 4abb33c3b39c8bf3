package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"portfolio-api/app/server/middlewares"
)

func (a *App) HealthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (a *App) RegisterHandlers(e *echo.Echo) {
	auth := middlewares.UserAuth(a.jwt, a.l)
	active := middlewares.LogoutCheck(a.logout, a.l)

	e.GET("/healthz", a.HealthCheck)

	// 认证
	e.POST("/signup", a.AuthSignup)
	e.POST("/login", a.AuthLogin)
	e.POST("/logout", a.AuthLogout, auth)

	// 用户，读取对所有已登录用户开放，修改只针对自己
	e.GET("/users", a.UserList, auth, active)
	e.GET("/users/:id", a.UserInfoGet, auth, active)
	e.PUT("/update-users/", a.UserInfoUpdate, auth, active)
	e.DELETE("/delete-users/", a.UserDelete, auth, active)

	// 作品集
	e.POST("/projects", a.ProjectCreate)
	e.GET("/projects", a.ProjectList)
	e.GET("/projects/:id", a.ProjectGet)
	e.PUT("/projects/:id", a.ProjectUpdate)
	e.DELETE("/projects/:id", a.ProjectDelete)

	e.POST("/blogposts", a.BlogPostCreate)
	e.GET("/blogposts", a.BlogPostList)
	e.GET("/blogposts/:id", a.BlogPostGet)
	e.PUT("/blogposts/:id", a.BlogPostUpdate)
	e.DELETE("/blogposts/:id", a.BlogPostDelete)

	e.POST("/contacts", a.ContactCreate)
	e.GET("/contacts", a.ContactList)
	e.GET("/contacts/:id", a.ContactGet)
	e.PUT("/contacts/:id", a.ContactUpdate)
	e.DELETE("/contacts/:id", a.ContactDelete)
}
