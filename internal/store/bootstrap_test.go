package store

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ativahospitalar/galinheiro/internal/db"
	"github.com/ativahospitalar/galinheiro/internal/model"
)

func TestBootstrapSeedsAdminOnce(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	snap, err := Bootstrap(ctx, database)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(snap.Users) != 1 {
		t.Fatalf("expected exactly one bootstrap user, got %d", len(snap.Users))
	}

	admin := snap.Users[0]
	if admin.Username != BootstrapAdminUsername || admin.Role != model.RoleAdmin || admin.Status != model.UserStatusActive {
		t.Errorf("unexpected bootstrap admin: %+v", admin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(BootstrapAdminPassword)); err != nil {
		t.Error("expected bootstrap admin password to verify")
	}

	// A second bootstrap must not duplicate the account.
	snap, err = Bootstrap(ctx, database)
	if err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}
	if len(snap.Users) != 1 {
		t.Errorf("expected one user after second bootstrap, got %d", len(snap.Users))
	}
}

func TestBootstrapKeepsExistingUsers(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "Maria", "maria", "hash", model.RoleUser, model.UserStatusActive)

	snap, err := Bootstrap(ctx, database)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if len(snap.Users) != 1 || snap.Users[0].Username != "maria" {
		t.Errorf("expected existing users untouched, got %+v", snap.Users)
	}
}
