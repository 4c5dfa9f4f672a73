package testutils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"goalquest/utils"
)

var envMutex sync.Mutex

// SetupTestEnvironment points the repositories at the test database and
// installs deterministic JWT settings.
func SetupTestEnvironment() {
	rootDir := findProjectRoot()
	if envPath := filepath.Join(rootDir, ".env"); rootDir != "" {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("Warning: Could not load .env file: %v", err)
		}
	}

	envMutex.Lock()
	defer envMutex.Unlock()

	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "goalquest_test")
	os.Setenv("USERS_COLLECTION", "users")
	os.Setenv("SESSIONS_COLLECTION", "sessions")
	os.Setenv("GOALS_COLLECTION", "goals")
	os.Setenv("TASKS_COLLECTION", "tasks")
	os.Setenv("BLUEPRINTS_COLLECTION", "blueprints")

	if os.Getenv("MONGO_URI") == "" {
		os.Setenv("MONGO_URI", "mongodb://localhost:27017")
	}

	utils.InitJWT()
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// SetupTestDB connects to the test MongoDB instance and returns a
// cleanup function that drops the test database. Tests are skipped when
// no instance is reachable.
func SetupTestDB(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	if os.Getenv("GO_ENV") != "test" {
		SetupTestEnvironment()
	}

	uri := os.Getenv("MONGO_URI")
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100)).
		SetMinPoolSize(utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		t.Skipf("Skipping: could not connect to MongoDB at %s: %v", uri, err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		t.Skipf("Skipping: could not ping MongoDB at %s: %v", uri, err)
	}

	cleanup := func() {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if dbName := os.Getenv("MONGO_DB"); dbName != "" {
			if err := client.Database(dbName).Drop(ctx); err != nil {
				t.Logf("Warning: Failed to drop test database %s: %v", dbName, err)
			}
		}
		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: Failed to disconnect: %v", err)
		}
	}

	return client, cleanup
}
