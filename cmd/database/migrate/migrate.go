package migration

import (
	"fmt"
	"log"

	"Trattoria-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Settings{}); err != nil {
		log.Fatalf("Error migrating settings database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GalleryImage{}); err != nil {
		log.Fatalf("Error migrating gallery image database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
