package inits

import (
	"fmt"
	"github.com/joho/godotenv"
	"os"
	"portfolio-api/app/server/config"
	"strings"
)

func Config() (*config.Config, error) {
	// .env 文件可选，已有的环境变量优先
	_ = godotenv.Load()

	var cfg config.Config
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if pdb, exist := os.LookupEnv("PORTFOLIO_DB"); !exist || pdb == "" {
		cfg.System.PortfolioDBPath = "portfolio.db"
	} else {
		cfg.System.PortfolioDBPath = pdb
	}

	// Redis 可选
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist || sigsk == "" {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	return &cfg, nil
}
