package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"portfolio-api/app/server/jwt"
	"portfolio-api/app/server/logout"
	"portfolio-api/app/server/password"
)

type App struct {
	l      *zap.Logger      // 日志
	db     *gorm.DB         // 用户数据库（ Postgres ）
	pdb    *gorm.DB         // 作品集数据库（ SQLite ）
	jwt    *jwt.JWT         // JWT ，用于无状态验证
	hasher *password.Hasher // 密码 hash
	logout logout.Registry  // 登出记录
}

func NewApp(l *zap.Logger, db *gorm.DB, pdb *gorm.DB, j *jwt.JWT, h *password.Hasher, reg logout.Registry) *App {
	return &App{
		l:      l,
		db:     db,
		pdb:    pdb,
		jwt:    j,
		hasher: h,
		logout: reg,
	}
}
