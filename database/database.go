package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// StorageMode menandai backend yang dipakai; diputuskan SEKALI saat startup
// lewat capability probe, tidak pernah berganti diam-diam di tengah request.
type StorageMode string

const (
	StoragePersistent StorageMode = "persistent"
	StorageInMemory   StorageMode = "in_memory"
)

// New membuka koneksi database. Postgres dicoba dulu; jika tidak tersedia,
// fallback ke SQLite in-memory untuk sisa umur proses. Data yang masuk selama
// fallback tidak dimigrasikan balik.
func New(config *viper.Viper, log *logrus.Logger) (*gorm.DB, StorageMode) {
	username := config.GetString("database.username")
	password := config.GetString("database.password")
	host := config.GetString("database.host")
	port := config.GetInt("database.port")
	dbname := config.GetString("database.dbname")
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		host,
		username,
		password,
		dbname,
		port,
		sslmode,
		timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err == nil {
		sqlDB, pingErr := db.DB()
		if pingErr == nil && sqlDB.Ping() == nil {
			log.Info("Database available, using persistent storage")
			return db, StoragePersistent
		}
		err = fmt.Errorf("postgres ping failed")
	}

	log.Warnf("Database not available, using in-memory storage: %v", err)

	db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic(fmt.Errorf("failed to open in-memory database: %w", err))
	}

	return db, StorageInMemory
}
