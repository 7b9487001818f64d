// Package pgtestutil поднимает отдельную БД с миграциями для тестов репозиториев.
// Адрес сервера берётся из PG_TEST_DSN, без него тесты пропускаются.
package pgtestutil

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"crypto_luck/internal/repository/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const dsnEnvName = "PG_TEST_DSN"

// NewTestPool создаёт чистую БД, накатывает миграции и возвращает пул к ней
func NewTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	baseDSN := os.Getenv(dsnEnvName)
	if baseDSN == "" {
		t.Skipf("%s not set", dsnEnvName)
	}

	admin, err := sql.Open("pgx", baseDSN)
	if err != nil {
		t.Fatalf("open admin: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbName := sanitizeForPgIdent(uniqueDBName("testdb", t.Name()))
	if _, err = admin.ExecContext(ctx,
		fmt.Sprintf(`CREATE DATABASE "%s" WITH TEMPLATE template0 ENCODING 'UTF8'`, dbName)); err != nil {
		_ = admin.Close()
		t.Fatalf("create database: %v", err)
	}

	testDSN, err := ReplaceDBInDSN(baseDSN, dbName)
	if err != nil {
		_ = admin.Close()
		t.Fatalf("test dsn: %v", err)
	}

	if err := migrations.Up(testDSN); err != nil {
		_ = admin.Close()
		t.Fatalf("migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		_ = admin.Close()
		t.Fatalf("open pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()

		dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dcancel()

		_, _ = admin.ExecContext(dctx,
			fmt.Sprintf(`DROP DATABASE IF EXISTS "%s" WITH (FORCE)`, dbName))
		_ = admin.Close()
	})

	return pool
}

// ReplaceDBInDSN меняет имя базы в DSN формата URL
func ReplaceDBInDSN(dsn, newDB string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}

	u.Path = "/" + newDB
	return u.String(), nil
}

func uniqueDBName(prefix, testName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(testName))
	var rnd [6]byte
	_, _ = rand.Read(rnd[:])
	return fmt.Sprintf("%s_%08x_%s", prefix, h.Sum32(), hex.EncodeToString(rnd[:]))
}

func sanitizeForPgIdent(s string) string {
	s = strings.ToLower(s)
	repl := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")
	s = repl.Replace(s)
	if len(s) <= 63 {
		return s
	}
	return s[:31] + "_" + s[len(s)-31:]
}
