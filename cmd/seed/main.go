package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"equiprent/internal/database"
	"equiprent/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "equiprent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	users := []domain.User{
		{Name: "Admin", Email: "admin@equiprent.local", Role: domain.RoleAdmin},
		{Name: "Meera Pillai", Email: "manager@equiprent.local", Role: domain.RoleEquipmentManager},
		{Name: "Arjun Rao", Email: "arjun@example.com", Role: domain.RoleUser},
		{Name: "Divya Nair", Email: "divya@example.com", Role: domain.RoleUser},
	}
	passwords := []string{"admin123", "manager123", "password1", "password1"}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(passwords[i]), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("user seed failed:", err)
		}
	}

	log.Println("Creating equipment...")
	equipment := []domain.Equipment{
		{Name: "Excavator JCB 3DX", Description: "Backhoe loader, 76 HP", RentalPrice: 8500, Category: "Earthmoving", PenaltyPerDay: 1200, IsAvailable: true, Condition: domain.ConditionGood},
		{Name: "Concrete Mixer 10/7", Description: "Diesel drum mixer", RentalPrice: 900, Category: "Concrete", PenaltyPerDay: 150, IsAvailable: true, Condition: domain.ConditionGood},
		{Name: "Scaffolding Set (50 frames)", RentalPrice: 500, Category: "Access", PenaltyPerDay: 100, IsAvailable: true, Condition: domain.ConditionGood},
		{Name: "Tower Crane Potain", Description: "Awaiting inspection", RentalPrice: 25000, Category: "Lifting", PenaltyPerDay: 4000, IsAvailable: true, Condition: domain.ConditionDamaged, ConditionNotes: "Slew ring wear reported"},
		{Name: "Diesel Generator 62kVA", RentalPrice: 3200, Category: "Power", PenaltyPerDay: 500, IsAvailable: true, Condition: domain.ConditionGood},
	}
	for i := range equipment {
		if err := db.Create(&equipment[i]).Error; err != nil {
			log.Fatal("equipment seed failed:", err)
		}
	}

	log.Println("Creating a sample booking...")
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	end := start.Add(3 * 24 * time.Hour)
	booking := domain.Booking{
		UserID:         users[2].ID,
		EquipmentID:    equipment[1].ID,
		RentalType:     domain.RentalDays,
		StartDate:      start,
		EndDate:        &end,
		RentalDuration: 3,
		TotalAmount:    equipment[1].RentalPrice * 3,
		PenaltyPerDay:  equipment[1].PenaltyPerDay,
		Status:         domain.BookingBooked,
		PaymentStatus:  domain.PaymentPending,
	}
	if err := db.Create(&booking).Error; err != nil {
		log.Fatal("booking seed failed:", err)
	}
	db.Model(&domain.Equipment{}).Where("id = ?", equipment[1].ID).Update("is_available", false)

	log.Println("Seed complete.")
	log.Println("  admin@equiprent.local / admin123")
	log.Println("  manager@equiprent.local / manager123")
	log.Println("  arjun@example.com / password1")
}
