package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/config"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/models"
)

func NewDB(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.TutorProfile{},
		&models.Availability{},
		&models.Booking{},
		&models.Review{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	// The repository's conflict pre-check can race under read committed;
	// this range exclusion is what actually refuses a double booking, as
	// SQLSTATE 23P01 at commit.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		logger.Fatal("failed to create btree_gist extension", zap.Error(err))
	}

	if err := db.Exec(bookingSlotConstraint).Error; err != nil {
		logger.Fatal("failed to ensure booking slot constraint", zap.Error(err))
	}

	return db
}

const bookingSlotConstraint = `
DO $$
BEGIN
	ALTER TABLE bookings
		ADD CONSTRAINT bookings_tutor_slot_excl
		EXCLUDE USING gist (
			tutor_id WITH =,
			tstzrange(start_at, end_at) WITH &&
		)
		WHERE (status IN ('pending', 'confirmed'));
EXCEPTION
	WHEN duplicate_object THEN NULL;
	WHEN duplicate_table THEN NULL;
END
$$`
