package main

import (
	"flag"
	"log"
	"strings"

	"github.com/agentforge/agentforge-be/internal/shared/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var command string
	var forceVersion int

	flag.StringVar(&command, "cmd", "up", "Migration command (up, down, version, force)")
	flag.IntVar(&forceVersion, "version", 0, "Version for the force command")
	flag.Parse()

	// Load config
	cfg := config.LoadConfig()

	migrationPath := "file://migrations"

	log.Printf("🔄 Running migrations")
	log.Printf("📂 Migration path: %s", migrationPath)
	log.Printf("💾 Database: %s", maskDatabaseURL(cfg.DatabaseURL))

	m, err := migrate.New(migrationPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to create migrate instance: %v", err)
	}
	defer m.Close()

	switch command {
	case "up":
		log.Println("⬆️  Running UP migrations...")
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("❌ Migration UP failed: %v", err)
		}
		log.Println("✅ Migrations UP completed!")

	case "down":
		log.Println("⬇️  Running DOWN migrations...")
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("❌ Migration DOWN failed: %v", err)
		}
		log.Println("✅ Migrations DOWN completed!")

	case "version":
		version, dirty, err := m.Version()
		if err != nil && err != migrate.ErrNilVersion {
			log.Fatalf("❌ Failed to get version: %v", err)
		}
		log.Printf("📌 Current version: %d (dirty: %t)", version, dirty)

	case "force":
		if forceVersion == 0 {
			log.Fatal("❌ force requires -version")
		}
		if err := m.Force(forceVersion); err != nil {
			log.Fatalf("❌ Force failed: %v", err)
		}
		log.Printf("✅ Forced version to %d", forceVersion)

	default:
		log.Fatalf("❌ Unknown command: %s", command)
	}
}

// maskDatabaseURL hides credentials when logging the connection string
func maskDatabaseURL(url string) string {
	atIdx := strings.LastIndex(url, "@")
	schemeIdx := strings.Index(url, "://")
	if atIdx == -1 || schemeIdx == -1 {
		return url
	}
	return url[:schemeIdx+3] + "***:***" + url[atIdx:]
}
