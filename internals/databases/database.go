package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	courseModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/courses/model"
	enrollmentModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/enrollments/model"
	notificationModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/notifications/model"
	roomModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	timetableModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/timetable/model"
	userModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=timetable&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the models.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&roomModel.RoomModel{},
		&roomModel.RoomBookingModel{},
		&timetableModel.TimetableModel{},
		&enrollmentModel.EnrollmentModel{},
		&notificationModel.NotificationOutboxModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
