package database

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"

	txutil "multimedia-api/pkg/database"
)

//go:embed schema.sql
var schemaSQL string

// schemaStatements bỏ dòng comment "--" rồi tách theo ";"
// (schema.sql không chứa ";" trong literal)
func schemaStatements() []string {
	var body strings.Builder
	for _, line := range strings.Split(schemaSQL, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}

	var out []string
	for _, stmt := range strings.Split(body.String(), ";") {
		if s := strings.TrimSpace(stmt); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// EnsureSchema tạo các bảng nếu chưa tồn tại. Không phải migration:
// chạy lại nhiều lần không đổi gì. Toàn bộ chạy trong một transaction.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	err := txutil.WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements() {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Println("[DATABASE] Schema ready")
	return nil
}
