package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"time"
)

var ErrInvalidToken = errors.New("invalid token")

type JWT struct {
	key []byte
	now func() time.Time
}

type User struct {
	ID       uint
	Subject  string // 登录标识（邮箱）
	IssuedAt int64  // Unix second
	Expires  int64  // Unix second
}

type claims struct {
	jwt.RegisteredClaims
	ID uint `json:"id"`
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key), now: time.Now}, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, fmt.Errorf("%w: token string is empty", ErrInvalidToken)
	}

	// 映射字段
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || c.ID == 0 || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	user := &User{
		ID:      c.ID,
		Subject: c.Subject,
		Expires: c.ExpiresAt.Unix(),
	}
	if c.IssuedAt != nil {
		user.IssuedAt = c.IssuedAt.Unix()
	}

	return user, nil
}

// SignToken 签出一个从现在起 ttl 内有效的令牌，返回令牌和其中记录的信息
func (j *JWT) SignToken(subject string, id uint, ttl time.Duration) (string, *User, error) {
	now := j.now()
	expires := now.Add(ttl)

	// 创建声明
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		ID: id,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	// 签名并返回
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", nil, fmt.Errorf("sign token for user %d: %w", id, err)
	}

	return signed, &User{
		ID:       id,
		Subject:  subject,
		IssuedAt: now.Unix(),
		Expires:  expires.Unix(),
	}, nil
}
