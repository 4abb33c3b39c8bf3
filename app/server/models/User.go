package models

import "time"

type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	// 基础信息
	Firstname string `gorm:"column:firstname;not null"`
	Surname   string `gorm:"column:surname;not null"`
	Email     string `gorm:"column:email;uniqueIndex;not null"` // 邮箱，全局唯一，由数据库约束保证
	Username  string `gorm:"column:username;not null"`

	// 登录与授权认证相关
	Password string `gorm:"column:password;not null"` // 密码，只保存 hash

	PersonalInformation *PersonalInformation `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
