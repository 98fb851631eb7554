package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
	"github.com/ledgerline/ledgerline/internal/shared/logger"
)

// AutoMigrateModels returns the models managed by auto-migration.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SubscriptionModel{},
		&models.AccountProfileModel{},
		&models.TenantMembershipModel{},
		&models.TransactionModel{},
		&models.SalesConfigModel{},
	}
}

// Run applies the schema for all managed models.
func Run(db *gorm.DB) error {
	log := logger.NewLogger().With("component", "migration")

	migrateModels := AutoMigrateModels()
	log.Infow("running auto-migration", "models", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	log.Infow("auto-migration completed")
	return nil
}
