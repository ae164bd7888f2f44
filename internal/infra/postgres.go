package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lottopay/internal/models/db_models"
)

// InitPostgresql opens the store connection. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey, which the repositories
// rely on for atomic check-and-create semantics.
func InitPostgresql(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.Subscription{},
		&db_models.Entry{},
		&db_models.Ticket{},
		&db_models.Winner{},
		&db_models.DrawState{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Seed the singleton epoch row on first boot.
	state := db_models.DrawState{ID: db_models.DrawStateID, CurrentEpoch: 1}
	if err := db.Where(db_models.DrawState{ID: db_models.DrawStateID}).
		FirstOrCreate(&state).Error; err != nil {
		log.Fatalf("Error seeding draw state: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
