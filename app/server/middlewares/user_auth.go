package middlewares

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-api/app/server/constants"
	"portfolio-api/app/server/jwt"
	"portfolio-api/app/server/logout"
)

type ErrorMessage struct {
	Message string `json:"message"`
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, &ErrorMessage{Message: message})
}

// UserAuth 校验 Authorization: Bearer <token> ，成功后把 *jwt.User 放入 context
func UserAuth(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: constants.ContextKeyUser,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseUser(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("rejected bearer token", zap.String("URI", c.Request().RequestURI), zap.Error(err))
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return unauthorized(c, "Could not validate credentials")
		},
	})
}

// LogoutCheck 拒绝已经登出的用户，即使令牌本身仍然有效
func LogoutCheck(reg logout.Registry, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return unauthorized(c, "Could not validate credentials")
			}

			loggedOut, err := reg.IsLoggedOut(c.Request().Context(), user.ID)
			if err != nil {
				l.Error("failed to check logout registry", zap.Uint("id", user.ID), zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &ErrorMessage{Message: http.StatusText(http.StatusInternalServerError)})
			}
			if loggedOut {
				return unauthorized(c, "User is logged out, please login again")
			}

			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) *jwt.User {
	user, _ := c.Get(constants.ContextKeyUser).(*jwt.User)
	return user
}
