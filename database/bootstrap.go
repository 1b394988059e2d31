package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agrismart/entities"
)

// Open connects the record store. The default DSN is an in-memory database,
// so the crop collection lives exactly as long as the process.
func Open(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entities.CropRecord{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}
