package inits

import (
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"portfolio-api/app/server/models"
)

// DB 打开用户相关的 Postgres 数据库
func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true, // 唯一约束冲突转换为 gorm.ErrDuplicatedKey
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = MigrateUsers(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

// Portfolio 打开作品集使用的单文件 SQLite 数据库
func Portfolio(path string) (db *gorm.DB, err error) {
	if db, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to open portfolio database %s: %w", path, err)
	}

	if err = MigratePortfolio(db); err != nil {
		return nil, fmt.Errorf("failed to migrate portfolio database: %w", err)
	}

	return db, nil
}

func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PersonalInformation{},
		&models.LoggedOutUser{},
	)
}

func MigratePortfolio(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.BlogPost{},
		&models.Contact{},
	)
}
