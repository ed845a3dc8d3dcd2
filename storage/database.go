package storage

import (
	"apartment-booking-server/models"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	// TranslateError maps driver duplicate-key and FK failures onto
	// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated so route handlers
	// can map them to 409 / 422.
	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.EmailVerification{},
		&models.PhoneVerification{},
		&models.SocialIDVerification{},
		&models.Amenity{},
		&models.Apartment{},
		&models.Photo{},
		&models.Booking{},
		&models.Review{},
		&models.Payment{},
		&models.WishList{},
	)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}
