package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/sahadan/halisaha/internal/database"
	"github.com/sahadan/halisaha/internal/entity"
	"github.com/sahadan/halisaha/internal/fields"
	"github.com/sahadan/halisaha/internal/matches"
	"github.com/sahadan/halisaha/internal/users"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	if value, ok := os.LookupEnv("DB_NAME"); ok {
		config["DB_NAME"] = value
	} else {
		log.Fatalf("Error: Required environment variable DB_NAME is not set.")
	}
	config["TURSO_PRIMARY_URL"] = os.Getenv("TURSO_PRIMARY_URL")
	config["TURSO_AUTH_TOKEN"] = os.Getenv("TURSO_AUTH_TOKEN")
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := entity.NewSQLite(db)
	userStore := users.New(store)
	fieldStore := fields.New(store)
	matchStore := matches.New(store)

	if err := userStore.EnsureSeed(); err != nil {
		log.Fatalf("Failed to seed admin account: %s", err)
	}
	log.Info("Ensured admin account exists.")

	seedFields := []struct{ name, city, district string }{
		{"Maltepe Arena", "Istanbul", "Maltepe"},
		{"Beytepe Halı Saha", "Ankara", "Cankaya"},
		{"Göztepe Spor Tesisi", "Izmir", "Konak"},
	}
	createdFields := make([]fields.Field, 0, len(seedFields))
	for _, f := range seedFields {
		field, err := fieldStore.Create(f.name, f.city, f.district)
		if err != nil {
			log.Fatalf("Failed to seed field %s: %s", f.name, err)
		}
		createdFields = append(createdFields, *field)
	}
	log.Info("Seeded fields.", "count", len(createdFields))

	const numPlayers = 12
	playerIDs := make([]string, 0, numPlayers)
	for i := 1; i <= numPlayers; i++ {
		user, err := userStore.Register(users.RegisterInput{
			Username:     fmt.Sprintf("oyuncu%02d", i),
			Password:     "deneme.123",
			Phone:        fmt.Sprintf("555-100-%04d", i),
			BirthDate:    "1995-06-15T00:00:00.000Z",
			FavoriteTeam: "Galatasaray",
			City:         "Istanbul",
			District:     "Kadikoy",
		})
		if errors.Is(err, users.ErrUsernameTaken) {
			log.Warn("Player already exists, skipping", "username", fmt.Sprintf("oyuncu%02d", i))
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed player: %s", err)
		}
		playerIDs = append(playerIDs, user.ID)
	}
	log.Info("Seeded players.", "count", len(playerIDs))

	if len(playerIDs) == 0 {
		log.Info("No new players, skipping sample match.")
		return
	}

	coach, err := userStore.Promote(playerIDs[0])
	if err != nil {
		log.Fatalf("Failed to promote seed coach: %s", err)
	}

	match, err := matchStore.Create(matches.CreateInput{
		Date:         "2026-09-05",
		Time:         "20:00",
		FieldID:      createdFields[0].ID,
		CoachID:      coach.ID,
		MainTeamSize: 6,
	})
	if err != nil {
		log.Fatalf("Failed to seed match: %s", err)
	}

	for i, playerID := range playerIDs {
		status := matches.RegistrationComing
		if i%4 == 3 {
			status = matches.RegistrationMaybe
		}
		if _, err := matchStore.Register(match.ID, playerID, status); err != nil {
			log.Fatalf("Failed to seed registration: %s", err)
		}
	}

	// Split the first confirmed players over the two teams.
	for i, playerID := range playerIDs {
		if i >= 2*match.MainTeamSize {
			break
		}
		team := matches.TeamA
		if i%2 == 1 {
			team = matches.TeamB
		}
		if _, err := matchStore.Assign(match.ID, playerID, team); err != nil {
			log.Fatalf("Failed to seed team assignment: %s", err)
		}
	}

	log.Info("Seeded sample match.", "matchID", match.ID, "shortCode", match.ShortCode)
}
