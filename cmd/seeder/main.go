package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/amanijl/courtside/internal/roster"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		config[key] = os.Getenv(key)
	}
	if config["DB_NAME"] == "" && config["TURSO_PRIMARY_URL"] == "" {
		log.Fatal("Error: Set DB_NAME or TURSO_PRIMARY_URL to locate the database.")
	}
	return config
}

func main() {
	reset := flag.Bool("reset", false, "Delete all players and reinsert the default roster with zeroed records")
	flag.Parse()

	log.Info("Starting roster seeder...")
	cfg := loadConfig()

	var dbURL string
	if cfg["TURSO_PRIMARY_URL"] != "" {
		// Connect directly to the primary database
		dbURL = fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	} else {
		dbURL = "file:" + cfg["DB_NAME"]
	}
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %s", err)
	}
	log.Info("Successfully connected to the database.")

	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	if *reset {
		log.Warn("Reset requested, deleting all existing players")
		if _, err := tx.Exec("DELETE FROM players"); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to delete players: %s", err)
		}
	}

	inserted := 0
	for _, p := range roster.DefaultRoster() {
		var exists int
		err := tx.QueryRow("SELECT COUNT(*) FROM players WHERE name = ?", p.Name).Scan(&exists)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to check for player %s: %s", p.Name, err)
		}
		if exists > 0 {
			continue
		}
		_, err = tx.Exec(`
			INSERT INTO players (id, name, position, height_weight, college, birthplace, status, experience, awards, wins, losses)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), p.Name, p.Position, p.HeightWeight, p.College, p.Birthplace, p.Status, p.Experience, p.Awards, p.Wins, p.Losses)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to insert player %s: %s", p.Name, err)
		}
		inserted++
	}

	// Bump the version counter so running instances pick up the change.
	if _, err := tx.Exec("UPDATE roster_version SET version = version + 1 WHERE id = 1"); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to bump roster version: %s", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	log.Info("Roster seed complete.", "inserted", inserted, "reset", *reset, "duration", time.Since(startTime))
}
