package database

import (
	"context"
	"strings"
	"testing"
)

func TestNewPoolRejectsBadURL(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://localhost:notaport/emotebot")
	if err == nil || !strings.Contains(err.Error(), "parse database url") {
		t.Fatalf("error = %v, want a parse error", err)
	}
}

func TestRollbackMigrationsNeedsSteps(t *testing.T) {
	if err := RollbackMigrations("postgres://localhost/emotebot", "migrations", 0); err == nil {
		t.Fatal("RollbackMigrations accepted 0 steps")
	}
}
