package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"resource-manager-backend/internal/config"
	"resource-manager-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "rm_test"
	pgPassword = "rm_test"
	pgDatabase = "resource_manager_test"
)

// resetTables lists every table, children before parents
var resetTables = []string{
	"subtasks",
	"tasks",
	"project_images",
	"project_links",
	"project_members",
	"projects",
	"team_members",
}

// pgContainer is the single postgres container shared by every integration
// test in the process
type pgContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var shared pgContainer

// PostgresFixture hands a migrated postgres database to one test
type PostgresFixture struct {
	DB     *gorm.DB
	Config *config.Config
}

// StartPostgres boots the shared container on first use and returns an
// emptied database
func StartPostgres(t *testing.T) *PostgresFixture {
	t.Helper()
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("postgres test container unavailable: %v", shared.err)
	}

	fixture := &PostgresFixture{DB: shared.db, Config: shared.cfg}
	fixture.Reset()
	t.Cleanup(fixture.Reset)
	return fixture
}

// Reset truncates the domain tables and restarts their id sequences
func (f *PostgresFixture) Reset() {
	migrator := f.DB.Migrator()
	for _, table := range resetTables {
		if migrator.HasTable(table) {
			f.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q RESTART IDENTITY CASCADE`, table))
		}
	}
}

// StopPostgres purges the shared container. Call it once from TestMain.
func StopPostgres() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge postgres container %s: %v", shared.resource.Container.Name, err)
		return
	}
	log.Printf("Purged postgres container %s", shared.resource.Container.Name)
	shared.pool, shared.resource = nil, nil
}

func (c *pgContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	c.resource, err = pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}

	c.cfg = &config.Config{
		Environment:    "test",
		StorageBackend: config.StorageDatabase,
		DatabaseDriver: database.DriverPostgres,
		DatabaseURL: fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
			pgUser, pgPassword, c.resource.GetPort("5432/tcp"), pgDatabase),
	}

	err = pool.Retry(func() error {
		probe, err := sql.Open("pgx", c.cfg.DSN())
		if err != nil {
			return err
		}
		defer probe.Close()
		return probe.Ping()
	})
	if err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	c.db, err = database.Initialize(c.cfg.DatabaseDriver, c.cfg.DSN(), nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	log.Printf("Postgres test container ready at %s", c.cfg.DatabaseURL)
	return nil
}
