package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/constants"
	roomModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	userModel "github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/model"
	userService "github.com/JaninduMunasinghe/university-timetable-management/internals/features/users/service"
)

// RunAllSeeds inserts a default admin and a few rooms on an empty database.
// Safe to run repeatedly; existing rows are left alone.
func RunAllSeeds(db *gorm.DB) {
	seedAdmin(db)
	seedRooms(db)
}

func seedAdmin(db *gorm.DB) {
	var existing userModel.UserModel
	err := db.Where("role = ?", constants.RoleAdmin).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] admin lookup: %v", err)
		return
	}

	hash, err := userService.HashPassword("admin123")
	if err != nil {
		log.Printf("[SEED ERROR] hash admin password: %v", err)
		return
	}

	admin := userModel.UserModel{
		Name:     "Administrator",
		Email:    "admin@university.local",
		Password: hash,
		Phone:    "0000000000",
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED ERROR] create admin: %v", err)
		return
	}
	log.Println("[SEED] Default admin created (admin@university.local)")
}

func seedRooms(db *gorm.DB) {
	var count int64
	if err := db.Model(&roomModel.RoomModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	rooms := []roomModel.RoomModel{
		{Type: "Lecture Hall", Location: "Main Building L1", Capacity: 120, Availability: true},
		{Type: "Lab", Location: "Science Wing B2", Capacity: 40, Availability: true},
		{Type: "Seminar Room", Location: "Library Annex S3", Capacity: 25, Availability: true},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("[SEED ERROR] create rooms: %v", err)
		return
	}
	log.Printf("[SEED] %d sample rooms created", len(rooms))
}
