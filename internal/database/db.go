package database

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prorab-finance/internal/models"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max", maxAttempts).Msg("connecting to DB")

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info().Msg("connected to DB")
			break
		}

		log.Warn().Err(err).Msg("failed to connect to DB")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatal().Err(err).Int("attempts", maxAttempts).Msg("giving up connecting to DB")
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.AdditionalWork{},
		&models.ClientPayment{},
		&models.Expense{},
		&models.Category{},
		&models.PaymentMethod{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	createDefaultAdmin()
}

// админ только из кода/конфига
func createDefaultAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@prorab.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Warn().Err(err).Msg("failed to check admin user")
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Warn().Err(err).Msg("failed to hash default admin password")
		return
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Warn().Err(err).Msg("failed to create default admin")
		return
	}

	log.Info().Str("email", email).Msg("created default admin user")
}
