package db

import (
	"fmt"
	"log"

	"github.com/jobtrackhq/jobtrack-go/internal/config"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/job"
	"github.com/jobtrackhq/jobtrack-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := DB.AutoMigrate(&user.User{}, &job.Job{}); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB injects an already-open connection (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
