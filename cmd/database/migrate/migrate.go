package migration

import (
	"fmt"

	"Recetas-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate brings every table of the schema up to date, parents first.
func Migrate(db *gorm.DB) error {
	models := entities.Models()
	ordered := make([]interface{}, 0, len(models))
	for _, table := range entities.Schema.DependencyOrder() {
		ordered = append(ordered, models[table])
	}

	if err := db.AutoMigrate(ordered...); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	log.Info("database migration complete")
	return nil
}
