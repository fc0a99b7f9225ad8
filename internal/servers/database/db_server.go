package database

import (
	"fmt"
	"sync"

	"socketBoard/configs"
	"socketBoard/internal/logger"
	"socketBoard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
)

func GetDB(config *configs.Config, log *logger.Logger) *gorm.DB {
	once.Do(func() {
		initialize(config, log)
	})
	return db
}

func initialize(config *configs.Config, log *logger.Logger) {
	v := config.Viper
	dsn := fmt.Sprintf(
		"host=%v user=%v password=%v dbname=%v port=%v sslmode=%v TimeZone=%v",
		v.GetString("database.host"),
		v.GetString("database.user"),
		v.GetString("database.password"),
		v.GetString("database.name"),
		v.GetInt("database.port"),
		v.GetString("database.ssl"),
		v.GetString("database.timezone"),
	)
	var err error
	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalw("failed to connect to database", "err", err)
	}

	migrate(log)
}

// migrate is idempotent create-if-absent; the schema has no further
// migrations.
func migrate(log *logger.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Image{},
	)
	if err != nil {
		log.Fatalw("failed to migrate database", "err", err)
	}
	log.Infow("database migrated successfully")
}
