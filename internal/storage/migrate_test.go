package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.SetItem(context.Background(), "myTasks", "[]"); err != nil {
		t.Fatalf("set after roundtrip failed: %v", err)
	}
	got, ok, err := store.GetItem(context.Background(), "myTasks")
	if err != nil || !ok {
		t.Fatalf("get after roundtrip failed: ok=%v err=%v", ok, err)
	}
	if got != "[]" {
		t.Fatalf("unexpected value after roundtrip: %q", got)
	}
}

func TestMigrateDownDropsData(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "down.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	store, _ := NewSQLiteStore(db)
	if err := store.SetItem(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if _, _, err := store.GetItem(context.Background(), "k"); err == nil {
		t.Fatal("expected error reading a dropped table")
	}
}
