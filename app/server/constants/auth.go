package constants

import "time"

const (
	AuthTokenDuration = 24 * time.Hour
	AuthTokenType     = "bearer"
)

const (
	ContextKeyUser = "user" // echo context 中存放 *jwt.User 的键
)
