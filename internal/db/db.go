package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/config"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

// overlapConstraintSQL keeps two non-cancelled appointments from ever holding
// overlapping [date, end_time) windows, regardless of what the
// application-level scan observed. Zero-duration rows are exempt. The columns
// are timestamptz (GORM's mapping for time.Time), so the range constructor
// must be tstzrange.
const overlapConstraintSQL = `
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (tstzrange(date, end_time, '[)') WITH &&)
        WHERE (status <> 'cancelled' AND end_time > date)
    `

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Cancelation{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`ALTER TABLE appointments DROP CONSTRAINT IF EXISTS appointments_no_overlap`)
	if err := db.Exec(overlapConstraintSQL).Error; err != nil {
		log.Fatalf("failed to install overlap constraint: %v", err)
	}

	return db
}
