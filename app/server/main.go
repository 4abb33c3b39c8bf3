package main

import (
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"portfolio-api/app/server/apidocs"
	"portfolio-api/app/server/handlers"
	"portfolio-api/app/server/inits"
	"portfolio-api/app/server/jwt"
	"portfolio-api/app/server/logout"
	"portfolio-api/app/server/password"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	l.Debug("logger initialized")

	// 初始化用户数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化作品集数据库
	pdb, err := inits.Portfolio(cfg.System.PortfolioDBPath)
	if err != nil {
		l.Fatal("error initializing portfolio DB", zap.Error(err))
	}

	// 登出记录，配置了 redis 时存放在 redis 中
	var reg logout.Registry
	if cfg.System.RedisConnectionString != "" {
		rdb, err := inits.Redis(cfg.System.RedisConnectionString)
		if err != nil {
			l.Fatal("error initializing Redis connection", zap.Error(err))
		}
		reg = logout.NewRedisRegistry(rdb)
	} else {
		reg = logout.NewDBRegistry(db)
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, pdb, j, password.New(nil), reg)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = cfg.System.IsProd
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogMethod: true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlerApp.RegisterHandlers(e)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if specJSON, err := apidocs.Spec(context.Background()); err != nil {
			l.Error("error initializing api spec", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc("/api", specJSON))
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
