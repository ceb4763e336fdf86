// Package dbtest khởi động PostgreSQL thật trong Docker cho integration test.
// Chỉ chạy khi TEST_INTEGRATION được set, ngược lại test bị skip.
package dbtest

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"multimedia-api/internal/infrastructure/database"
)

const (
	image    = "docker.io/postgres:17-alpine"
	dbName   = "multimedia_test"
	user     = "multimedia"
	password = "test-password"
)

// NewDB trả về PostgresDB đã connect tới một container riêng, chưa có schema.
// Container bị terminate khi test kết thúc.
func NewDB(t *testing.T) *database.PostgresDB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	port, err := strconv.Atoi(mapped.Port())
	if err != nil {
		t.Fatalf("invalid mapped port %q: %v", mapped.Port(), err)
	}

	db := database.NewPostgresDB(&database.DBConfig{
		Host:              host,
		Port:              port,
		Username:          user,
		Password:          password,
		DBName:            dbName,
		SSLMode:           "disable",
		MaxConns:          5,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   10 * time.Minute,
		HealthCheckPeriod: time.Minute,
		MaxRetries:        3,
		RetryDelay:        500 * time.Millisecond,
		ConnectTimeout:    5 * time.Second,
	})
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(db.Close)

	return db
}

// NewPool là NewDB + EnsureSchema, dùng cho repository test.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	db := NewDB(t)
	if err := db.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	return db.Pool
}

// Truncate xoá dữ liệu của mọi bảng, dùng giữa các subtest chung container.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), `TRUNCATE authors, books, cds, dvds`); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
