package database

import (
	"github.com/brainfeed/brainfeed-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Book{},
		&entity.Video{},
		&entity.Question{},
		&entity.Flashcard{},
	)
	return err
}
