package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/merseybathrooms/jobtracker/internal/models"
)

func TestOpenSQLiteMigratesAndCloses(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "jobs.db")

	gdb, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	for _, m := range []any{&models.User{}, &models.Job{}, &models.Report{}, &models.AuditLog{}} {
		if !gdb.Migrator().HasTable(m) {
			t.Fatalf("expected table for %T", m)
		}
	}

	if err := Close(gdb); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestUniqueEmailIsTranslated(t *testing.T) {
	gdb, err := Open("sqlite://" + filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gdb) })

	first := models.User{Email: "a@example.com", Name: "A", PasswordHash: "x", Role: models.RoleWorker}
	if err := gdb.Create(&first).Error; err != nil {
		t.Fatalf("create first: %v", err)
	}

	second := models.User{Email: "a@example.com", Name: "B", PasswordHash: "y", Role: models.RoleWorker}
	err = gdb.Create(&second).Error
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Fatalf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
