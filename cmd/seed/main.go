package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"asiadrive/internal/config"
	"asiadrive/internal/db"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

const (
	adminEmail     = "demo@asiadrive.com"
	moderatorEmail = "moderator@asiadrive.com"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	carRepo := repository.NewCarRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	trackingRepo := repository.NewTrackingRepository(gormDB)

	cars, err := seedCars(ctx, carRepo)
	if err != nil {
		log.Fatalf("Failed to seed cars: %v", err)
	}
	log.Printf("Demo cars created: %d", len(cars))

	if err := ensureAdmin(ctx, userRepo); err != nil {
		log.Fatalf("Failed to ensure admin account: %v", err)
	}
	log.Printf("Admin account ready: %s", adminEmail)

	if err := ensureModerator(ctx, userRepo); err != nil {
		log.Fatalf("Failed to ensure moderator account: %v", err)
	}
	log.Printf("Moderator account ready: %s", moderatorEmail)

	events, err := seedTrackingEvents(ctx, trackingRepo, cars)
	if err != nil {
		log.Fatalf("Failed to seed tracking events: %v", err)
	}
	log.Printf("Demo tracking events created: %d", events)

	log.Println("Seed completed successfully!")
}

// seedCars inserts the demo catalog when the cars table is empty. It
// returns the created cars so dependent seed data can reference real IDs.
func seedCars(ctx context.Context, repo repository.CarRepository) ([]model.Car, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting cars: %w", err)
	}
	if count > 0 {
		log.Printf("Cars table already has %d rows, skipping demo catalog", count)
		return nil, nil
	}

	cars := []model.Car{
		{
			Brand:       "Hyundai",
			Model:       "Sonata",
			Year:        2021,
			Price:       25000,
			Mileage:     42000,
			FuelType:    "petrol",
			Country:     "Korea",
			Description: "Well-kept business sedan, single owner, full service history.",
		},
		{
			Brand:       "Kia",
			Model:       "Sorento",
			Year:        2022,
			Price:       42000,
			Mileage:     18000,
			FuelType:    "diesel",
			Country:     "Korea",
			Description: "Seven-seat family SUV with all-wheel drive and panoramic roof.",
		},
		{
			Brand:       "BYD",
			Model:       "Han",
			Year:        2023,
			Price:       45000,
			Mileage:     5000,
			FuelType:    "electric",
			Country:     "China",
			Description: "Flagship electric sedan, 600 km range, nearly new.",
		},
		{
			Brand:       "Geely",
			Model:       "Monjaro",
			Year:        2022,
			Price:       36000,
			Mileage:     22000,
			FuelType:    "petrol",
			Country:     "China",
			Description: "Mid-size crossover in top trim with adaptive cruise.",
		},
	}

	for i := range cars {
		if err := repo.Create(ctx, &cars[i]); err != nil {
			return nil, fmt.Errorf("creating car %s %s: %w", cars[i].Brand, cars[i].Model, err)
		}
	}
	return cars, nil
}

// ensureAdmin creates the demo admin account, or promotes the existing
// account with that email to admin.
func ensureAdmin(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.FindByEmail(ctx, adminEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up %s: %w", adminEmail, err)
	}

	if existing != nil {
		if existing.Role == model.RoleAdmin {
			return nil
		}
		return repo.UpdateRole(ctx, existing.ID, model.RoleAdmin)
	}

	hash, err := hashSeedPassword("SEED_ADMIN_PASSWORD", "demo1234")
	if err != nil {
		return err
	}
	return repo.Create(ctx, &model.User{
		Name:         "Demo Admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
}

// ensureModerator creates the demo moderator account if it is missing.
// An existing account with that email is left untouched.
func ensureModerator(ctx context.Context, repo repository.UserRepository) error {
	existing, err := repo.FindByEmail(ctx, moderatorEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("looking up %s: %w", moderatorEmail, err)
	}
	if existing != nil {
		return nil
	}

	hash, err := hashSeedPassword("SEED_MODERATOR_PASSWORD", "mod1234")
	if err != nil {
		return err
	}
	return repo.Create(ctx, &model.User{
		Name:         "Demo Moderator",
		Email:        moderatorEmail,
		PasswordHash: hash,
		Role:         model.RoleModerator,
	})
}

// seedTrackingEvents inserts one event per freshly created demo car.
func seedTrackingEvents(ctx context.Context, repo repository.TrackingRepository, cars []model.Car) (int, error) {
	if len(cars) == 0 {
		return 0, nil
	}
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting tracking events: %w", err)
	}
	if count > 0 {
		log.Printf("Tracking table already has %d rows, skipping demo events", count)
		return 0, nil
	}

	now := time.Now()
	statuses := []model.TrackingEvent{
		{Status: "At customs", Location: "Vladivostok", ETA: now.AddDate(0, 0, 14).Format("2006-01-02"), Comment: "Awaiting customs clearance."},
		{Status: "In transit", Location: "Busan port", ETA: now.AddDate(0, 0, 21).Format("2006-01-02"), Comment: "Loaded onto the vessel."},
		{Status: "Preparing shipment", Location: "Shanghai", ETA: now.AddDate(0, 1, 0).Format("2006-01-02"), Comment: "Export paperwork in progress."},
		{Status: "Delivered", Location: "Moscow warehouse", ETA: "", Comment: "Ready for pickup."},
	}

	created := 0
	for i := range cars {
		event := statuses[i%len(statuses)]
		event.CarID = cars[i].ID
		if err := repo.Create(ctx, &event); err != nil {
			return created, fmt.Errorf("creating tracking event for car %d: %w", cars[i].ID, err)
		}
		created++
	}
	return created, nil
}

// hashSeedPassword hashes the password from the named environment
// variable, falling back to the given default for local demos.
func hashSeedPassword(envName, fallback string) (string, error) {
	password := os.Getenv(envName)
	if password == "" {
		password = fallback
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing seed password: %w", err)
	}
	return string(hash), nil
}
