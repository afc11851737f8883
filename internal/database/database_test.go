package database

import (
	"io"
	"testing"

	"github.com/outlierSlug/dubhacks2025/internal/config"
	"github.com/outlierSlug/dubhacks2025/internal/model"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestOpenSQLiteMigratesSchema(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"}, quietLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for _, table := range []string{"players", "events", "users", "event_players"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}
	if !db.Migrator().HasIndex(&model.EventPlayer{}, "uk_event_player") {
		t.Fatal("expected unique index on (event_id, player_id)")
	}

	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("expected foreign keys enabled, got %d", fk)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, quietLogger()); err == nil {
		t.Fatal("expected error")
	}
}

func TestAdminTarget(t *testing.T) {
	name, admin, err := adminTarget("postgres://u:p@localhost:5432/tennis?sslmode=disable")
	if err != nil {
		t.Fatalf("admin target: %v", err)
	}
	if name != "tennis" {
		t.Fatalf("expected tennis, got %q", name)
	}
	if admin != "postgres://u:p@localhost:5432/postgres?sslmode=disable" {
		t.Fatalf("unexpected admin dsn %q", admin)
	}

	name, _, err = adminTarget("postgres://u:p@localhost:5432/postgres")
	if err != nil || name != "" {
		t.Fatalf("expected nothing to create, got %q %v", name, err)
	}
}
