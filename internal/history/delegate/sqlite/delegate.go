package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"termlaunch.dev/launcher/internal/entity"
	"termlaunch.dev/launcher/internal/folder"
)

var errNotOpen = errors.New("database not open")

type SQLiteDelegate struct{ database *gorm.DB }

func (sqliteDelegate *SQLiteDelegate) Open(basePath string) (err error) {
	databasePath := filepath.Join(basePath, folder.Database)
	if err = os.MkdirAll(filepath.Dir(databasePath), 0755); err != nil {
		return
	}
	dialector := sqlite.Open(databasePath)
	if sqliteDelegate.database, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}); err != nil {
		return
	}
	return
}

func (sqliteDelegate *SQLiteDelegate) Migrate() (err error) {
	if sqliteDelegate.database == nil {
		return errNotOpen
	}
	return sqliteDelegate.database.AutoMigrate(&entity.Launch{})
}

func (sqliteDelegate *SQLiteDelegate) Close() (err error) {
	if sqliteDelegate.database == nil {
		return errNotOpen
	}
	var database *sql.DB
	if database, err = sqliteDelegate.database.DB(); err != nil {
		return
	}
	if err = database.Close(); err != nil {
		return
	}
	sqliteDelegate.database = nil
	return
}

func (sqliteDelegate *SQLiteDelegate) Create(launch *entity.Launch) error {
	if sqliteDelegate.database == nil {
		return errNotOpen
	}
	if result := sqliteDelegate.database.Create(launch); result.Error != nil {
		return result.Error
	}
	return nil
}

func (sqliteDelegate *SQLiteDelegate) Latest(limit int) (entities []entity.Launch, err error) {
	if sqliteDelegate.database == nil {
		return nil, errNotOpen
	}
	if result := sqliteDelegate.database.Order("started_at desc, id desc").Limit(limit).Find(&entities); result.Error != nil {
		err = result.Error
		return
	}
	return
}
