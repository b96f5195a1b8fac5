package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"localfix/internal/database"
	"localfix/internal/domain"
	"localfix/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "localfix.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM providers")
	db.Exec("DELETE FROM service_categories")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	categories := repository.NewCategoryRepository(db)
	providers := repository.NewProviderRepository(db)

	// ================== CATEGORIES ==================
	log.Println("Creating service categories...")

	defaultCategories := []domain.ServiceCategory{
		{Name: "Electrical", Description: "Wiring, repairs, installations", Icon: "zap", Color: "blue"},
		{Name: "Plumbing", Description: "Pipes, fixtures, emergency repairs", Icon: "wrench", Color: "green"},
		{Name: "Carpentry", Description: "Custom work, repairs, installations", Icon: "hammer", Color: "amber"},
		{Name: "HVAC", Description: "Heating, cooling, ventilation", Icon: "thermometer", Color: "purple"},
		{Name: "General Contracting", Description: "Home improvements, renovations", Icon: "building", Color: "red"},
		{Name: "Landscaping", Description: "Garden design, lawn care", Icon: "leaf", Color: "teal"},
		{Name: "Painting", Description: "Interior, exterior, touch-ups", Icon: "paintbrush", Color: "orange"},
		{Name: "Cleaning Services", Description: "House cleaning, deep cleaning", Icon: "spray", Color: "gray"},
	}

	byName := map[string]string{}
	for i := range defaultCategories {
		if err := categories.Create(ctx, &defaultCategories[i]); err != nil {
			log.Fatal("category seed failed:", err)
		}
		byName[defaultCategories[i].Name] = defaultCategories[i].ID
	}

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@localfix.com",
		PasswordHash: string(adminHash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil {
		log.Fatal("admin seed failed:", err)
	}
	log.Println("Admin created: admin@localfix.com / admin123")

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Email:        "jane@example.com",
		PasswordHash: string(customerHash),
		FirstName:    "Jane",
		LastName:     "Doe",
		Phone:        "555-0101",
		Role:         domain.RoleCustomer,
	}
	if err := users.Create(ctx, &customer); err != nil {
		log.Fatal("customer seed failed:", err)
	}

	// ================== PROVIDERS ==================
	log.Println("Creating demo providers...")

	demoProviders := []struct {
		email, first, last, specialty, location string
		rate                                    float64
		years                                   int
		category                                string
		approved                                bool
	}{
		{"mike@sparkpro.com", "Mike", "Reilly", "Electrician", "Springfield", 85, 12, "Electrical", true},
		{"sam@drainright.com", "Sam", "Ortiz", "Plumber", "Springfield", 75, 8, "Plumbing", false},
	}

	providerHash, _ := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
	for _, d := range demoProviders {
		owner := domain.User{
			Email:        d.email,
			PasswordHash: string(providerHash),
			FirstName:    d.first,
			LastName:     d.last,
			Role:         domain.RoleProvider,
		}
		if err := users.Create(ctx, &owner); err != nil {
			log.Fatal("provider user seed failed:", err)
		}

		p := domain.Provider{
			UserID:          owner.ID,
			Specialty:       d.specialty,
			Location:        d.location,
			ServiceRadius:   25,
			HourlyRate:      d.rate,
			YearsExperience: d.years,
			IsAvailable:     true,
			Categories:      []string{byName[d.category]},
		}
		if err := providers.Create(ctx, &p); err != nil {
			log.Fatal("provider seed failed:", err)
		}
		if d.approved {
			if _, err := providers.UpdateApproval(ctx, p.ID, true); err != nil {
				log.Fatal("provider approval seed failed:", err)
			}
		}
	}

	log.Println("Seed complete")
}
