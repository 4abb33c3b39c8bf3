// Package logout keeps the set of users whose issued tokens are no longer
// honored. An entry is added on logout and removed on the next login.
package logout

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"portfolio-api/app/server/constants"
	"portfolio-api/app/server/models"
	"time"
)

type Registry interface {
	MarkLoggedOut(ctx context.Context, userID uint) error
	IsLoggedOut(ctx context.Context, userID uint) (bool, error)
	Clear(ctx context.Context, userID uint) error
}

var (
	_ Registry = (*DBRegistry)(nil)
	_ Registry = (*RedisRegistry)(nil)
)

// DBRegistry stores entries in the logged_out_users table.
type DBRegistry struct {
	db *gorm.DB
}

func NewDBRegistry(db *gorm.DB) *DBRegistry {
	return &DBRegistry{db: db}
}

func (r *DBRegistry) MarkLoggedOut(ctx context.Context, userID uint) error {
	// 重复登出不报错
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.LoggedOutUser{UserID: userID}).Error; err != nil {
		return fmt.Errorf("mark user %d logged out: %w", userID, err)
	}
	return nil
}

func (r *DBRegistry) IsLoggedOut(ctx context.Context, userID uint) (bool, error) {
	var entry models.LoggedOutUser
	if err := r.db.WithContext(ctx).Take(&entry, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check user %d logged out: %w", userID, err)
	}
	return true, nil
}

func (r *DBRegistry) Clear(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.LoggedOutUser{}).Error; err != nil {
		return fmt.Errorf("clear logout of user %d: %w", userID, err)
	}
	return nil
}

// RedisRegistry stores one key per user. Keys expire once every token issued
// before the logout has expired.
type RedisRegistry struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRegistry(rdb *redis.Client) *RedisRegistry {
	return &RedisRegistry{rdb: rdb, ttl: constants.CacheExpireLoggedOutUser}
}

func (r *RedisRegistry) key(userID uint) string {
	return fmt.Sprintf(constants.CacheKeyLoggedOutUser, userID)
}

func (r *RedisRegistry) MarkLoggedOut(ctx context.Context, userID uint) error {
	if err := r.rdb.Set(ctx, r.key(userID), time.Now().Unix(), r.ttl).Err(); err != nil {
		return fmt.Errorf("mark user %d logged out: %w", userID, err)
	}
	return nil
}

func (r *RedisRegistry) IsLoggedOut(ctx context.Context, userID uint) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("check user %d logged out: %w", userID, err)
	}
	return n > 0, nil
}

func (r *RedisRegistry) Clear(ctx context.Context, userID uint) error {
	if err := r.rdb.Del(ctx, r.key(userID)).Err(); err != nil {
		return fmt.Errorf("clear logout of user %d: %w", userID, err)
	}
	return nil
}
