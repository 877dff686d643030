package migration

import (
	"fmt"
	"log"

	"dispensa-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingEntry{}); err != nil {
		log.Fatalf("Error migrating shopping entry database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
