package models

type BlogPost struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Title   string `gorm:"column:title"`
	Content string `gorm:"column:content"`
}
