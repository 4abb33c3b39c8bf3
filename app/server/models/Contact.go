package models

type Contact struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name"`
	Email   string `gorm:"column:email"`
	Message string `gorm:"column:message"`
}
