package models

import "time"

// PersonalInformation 在注册时从 User 复制一份展示用的信息
type PersonalInformation struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	UserID uint `gorm:"column:user_id;uniqueIndex;not null"` // 一对一

	Firstname string `gorm:"column:firstname"`
	Lastname  string `gorm:"column:lastname"`
	Username  string `gorm:"column:username"`
	Email     string `gorm:"column:email"`
}

func (PersonalInformation) TableName() string { return "personal_information" }
