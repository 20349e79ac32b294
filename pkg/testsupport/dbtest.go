package testsupport

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var dbCounter atomic.Int64

// NewSQLiteMemoryDB opens a private in-memory sqlite database. Every call gets
// its own database name so parallel tests never share rows.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	name := fmt.Sprintf("file:sitecms_test_%d?mode=memory&cache=shared&_fk=1", dbCounter.Add(1))
	return sql.Open("sqlite3", name)
}

// NewBunDB returns a bun handle over NewSQLiteMemoryDB with tables created for
// models. The database is closed when the test ends.
func NewBunDB(tb testing.TB, models ...any) *bun.DB {
	tb.Helper()

	sqlDB, err := NewSQLiteMemoryDB()
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			tb.Fatalf("create table for %T: %v", model, err)
		}
	}
	return db
}
