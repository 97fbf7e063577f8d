package auth

import (
	"testing"

	"github.com/ativahospitalar/galinheiro/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &model.User{
		ID:       "u1",
		Name:     "João Silva",
		Username: "joao",
		Role:     model.RoleUser,
		Status:   model.UserStatusActive,
	}

	token, err := GenerateToken("secret", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Name != "João Silva" || claims.Username != "joao" || claims.Role != model.RoleUser {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a JTI")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	user := &model.User{ID: "u1", Username: "joao", Role: model.RoleUser}

	token, err := GenerateToken("secret", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}
