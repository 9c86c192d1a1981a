package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"redeemedstrength/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	// pgvector must exist before coaching_docs migrates its embedding column.
	if err := connectionPool.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Error creating vector extension: %v", err)
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Transaction{},
		&db_models.Product{},
		&db_models.ChatMessage{},
		&db_models.CheckIn{},
		&db_models.CoachingDoc{},
		&db_models.AssistantMessage{},
		&db_models.Feedback{},
	); err != nil {
		log.Printf("Error running migrations: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
