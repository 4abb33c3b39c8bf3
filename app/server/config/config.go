package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串（用户、资料、登出记录）
		PortfolioDBPath       string // SQLite 数据库文件路径（项目、博客、联系方式）
		RedisConnectionString string // Redis 连接字符串，可选；设置后登出记录存放在 Redis 中
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于产生签名（例如 JWT ），更新会导致旧有会话失效
	}
}
