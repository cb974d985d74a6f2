package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"resource-manager-backend/internal/config"
	"resource-manager-backend/internal/database"
	"resource-manager-backend/internal/repository"
	"resource-manager-backend/internal/repository/filestore"
	"resource-manager-backend/internal/service"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// seedFile is one YAML or JSON file under the data directory. Either
// collection may be missing.
type seedFile struct {
	TeamMembers []map[string]interface{} `yaml:"teamMembers"`
	Projects    []map[string]interface{} `yaml:"projects"`
}

func main() {
	dataDir := flag.String("dir", "scripts/data", "directory holding YAML or JSON seed files")
	replace := flag.Bool("replace", false, "replace all existing data instead of merging")
	flag.Parse()

	log.Println("🚀 Loading initial data from seed files...")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	snap, err := loadSnapshot(*dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}
	log.Printf("📋 Read %d team members and %d projects from %s", len(snap.TeamMembers), len(snap.Projects), *dataDir)

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	backup := service.NewBackupService(store, service.NewValidator())

	if *replace {
		result, err := backup.ApplyReplace(snap)
		if err != nil {
			log.Fatalf("Failed to replace data: %v", err)
		}
		log.Printf("👥 Team members: %d, 📁 Projects: %d", result.TeamMembers, result.Projects)
	} else {
		result, err := backup.ApplyMerge(snap)
		if err != nil {
			log.Fatalf("Failed to merge data: %v", err)
		}
		log.Printf("👥 Team members: %d created, %d updated", result.MembersCreated, result.MembersUpdated)
		log.Printf("📁 Projects: %d created, %d updated", result.ProjectsCreated, result.ProjectsUpdated)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// loadSnapshot collects every seed file under dataDir, in name order, into
// one snapshot. A collection stays nil when no file mentions it, so a merge
// leaves it alone.
func loadSnapshot(dataDir string) (*service.Snapshot, error) {
	var paths []string
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
			if !d.IsDir() {
				paths = append(paths, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	doc := map[string][]map[string]interface{}{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		// YAML is a superset of JSON, so one decoder covers both
		var file seedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if file.TeamMembers != nil {
			doc["teamMembers"] = append(doc["teamMembers"], file.TeamMembers...)
		}
		if file.Projects != nil {
			doc["projects"] = append(doc["projects"], file.Projects...)
		}
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("no seed data found in %s", dataDir)
	}

	// Round-trip through JSON so seed files follow the same wire rules as
	// uploaded backups
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return service.ParseSnapshot(raw)
}

func openStore(cfg *config.Config) (repository.Store, error) {
	if cfg.StorageBackend == config.StorageFile {
		return filestore.Open(cfg.DataFile)
	}
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DSN(), 60, time.Second)
	if err != nil {
		return nil, err
	}
	return repository.NewGormStore(db), nil
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
