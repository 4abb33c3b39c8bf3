package constants

const (
	CacheKeyLoggedOutUser = "portfolio:logout:%d" // %d -> user id
)

const (
	// 登出记录只需要保留到登出前签发的令牌全部过期为止
	CacheExpireLoggedOutUser = AuthTokenDuration
)
