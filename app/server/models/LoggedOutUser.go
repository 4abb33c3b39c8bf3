package models

import "time"

type LoggedOutUser struct {
	UserID    uint      `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"column:created_at"` // 登出时间
}
