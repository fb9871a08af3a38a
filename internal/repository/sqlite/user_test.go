package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bsak/authsvc/internal/domain"
	"github.com/bsak/authsvc/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository_Create(t *testing.T) {
	repo := newTestDB(t).Users()
	ctx := context.Background()

	user := &domain.User{
		Name:         "Test",
		Surname:      "User",
		Email:        "test@example.com",
		PasswordHash: "hashedpw",
		Role:         domain.RoleUser,
	}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID == 0 {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := newTestDB(t).Users()
	ctx := context.Background()

	user1 := &domain.User{Name: "A", Surname: "A", Email: "dup@example.com", PasswordHash: "h1", Role: domain.RoleUser}
	if err := repo.Create(ctx, user1); err != nil {
		t.Fatalf("Create user1: %v", err)
	}

	user2 := &domain.User{Name: "B", Surname: "B", Email: "dup@example.com", PasswordHash: "h2", Role: domain.RoleUser}
	if err := repo.Create(ctx, user2); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := newTestDB(t).Users()
	ctx := context.Background()

	user := &domain.User{Name: "By", Surname: "Email", Email: "byemail@example.com", PasswordHash: "hash", Role: domain.RoleUser}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := repo.GetByEmail(ctx, "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}

	if found.ID != user.ID {
		t.Fatalf("expected id %d, got %d", user.ID, found.ID)
	}
	if found.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, found.Role)
	}
	if found.PasswordHash != "hash" {
		t.Fatalf("expected stored hash, got %q", found.PasswordHash)
	}
}

func TestUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	repo := newTestDB(t).Users()
	ctx := context.Background()

	user := &domain.User{Name: "Case", Surname: "Key", Email: "Case@Example.com", PasswordHash: "hash", Role: domain.RoleUser}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Email is a case-sensitive key.
	if _, err := repo.GetByEmail(ctx, "case@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for differently-cased email, got %v", err)
	}
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	repo := newTestDB(t).Users()

	_, err := repo.GetByEmail(context.Background(), "nonexistent@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := newTestDB(t).Users()
	ctx := context.Background()

	exists, err := repo.ExistsByEmail(ctx, "exists@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if exists {
		t.Fatal("expected false before create")
	}

	user := &domain.User{Name: "E", Surname: "X", Email: "exists@example.com", PasswordHash: "h", Role: domain.RoleUser}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err = repo.ExistsByEmail(ctx, "exists@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Fatal("expected true after create")
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo := newTestDB(t).Users()
	ctx := context.Background()

	user := &domain.User{Name: "U", Surname: "P", Email: "update@example.com", PasswordHash: "old-hash", Role: domain.RoleUser}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdatePassword(ctx, "update@example.com", "new-hash"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	found, err := repo.GetByEmail(ctx, "update@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.PasswordHash != "new-hash" {
		t.Fatalf("expected new-hash, got %q", found.PasswordHash)
	}
	if !found.UpdatedAt.After(found.CreatedAt) && !found.UpdatedAt.Equal(found.CreatedAt) {
		t.Fatal("expected UpdatedAt to be at or after CreatedAt")
	}
}

func TestUserRepository_UpdatePassword_NotFound(t *testing.T) {
	repo := newTestDB(t).Users()

	err := repo.UpdatePassword(context.Background(), "ghost@example.com", "hash")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
