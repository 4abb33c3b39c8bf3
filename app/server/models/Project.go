package models

type Project struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	Link        string `gorm:"column:link"`
}
