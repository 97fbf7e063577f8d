package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

// Fixed first-run administrator credentials. The account is only synthesized
// when the user collection is empty, so the system is never unusable on a
// fresh install.
const (
	BootstrapAdminName     = "Administrador"
	BootstrapAdminUsername = "admin"
	BootstrapAdminPassword = "123"
)

// Snapshot holds the result of loading all four collections.
type Snapshot struct {
	Products     []model.Product
	Users        []model.User
	Requisitions []model.Requisition
	Movements    []model.StockMovement
}

// Bootstrap loads the four collections concurrently and, when no users
// exist, synthesizes the fixed administrator account. It also serves as a
// startup sanity check: malformed stored collections fail here rather than
// on the first request.
func Bootstrap(ctx context.Context, db *sql.DB) (*Snapshot, error) {
	var snap Snapshot

	var g errgroup.Group
	g.Go(func() error {
		var err error
		snap.Products, err = Products(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Users, err = Users(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Requisitions, err = Requisitions(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Movements, err = Movements(ctx, db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading collections: %w", err)
	}

	if len(snap.Users) == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(BootstrapAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing bootstrap admin password: %w", err)
		}

		admin, err := CreateUser(ctx, db,
			BootstrapAdminName, BootstrapAdminUsername, string(hash),
			model.RoleAdmin, model.UserStatusActive,
		)
		if err != nil {
			return nil, fmt.Errorf("creating bootstrap admin: %w", err)
		}

		snap.Users = []model.User{*admin}
		slog.Info("bootstrap admin account created", "username", admin.Username)
	}

	return &snap, nil
}
