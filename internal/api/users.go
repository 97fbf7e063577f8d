package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

// UsersHandler handles admin account management endpoints.
type UsersHandler struct {
	DB *sql.DB
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := store.Users(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, viewUser(u))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Update handles PUT /api/users/{id}: activation, promotion, renames and
// password resets, all through one explicit field-command request.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Role != nil && *req.Role != model.RoleAdmin && *req.Role != model.RoleUser {
		jsonError(w, http.StatusBadRequest, "invalid role")
		return
	}
	if req.Status != nil && *req.Status != model.UserStatusPending && *req.Status != model.UserStatusActive {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	upd := store.UserUpdate{Name: req.Name, Role: req.Role, Status: req.Status}
	if req.Password != nil {
		if *req.Password == "" {
			jsonError(w, http.StatusBadRequest, "password must not be empty")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		hashStr := string(hash)
		upd.PasswordHash = &hashStr
	}

	user, err := store.UpdateUser(r.Context(), h.DB, id, upd)
	if errors.Is(err, store.ErrUserNotFound) {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	slog.Info("user updated", "user", user.Username)
	jsonResponse(w, http.StatusOK, viewUser(*user))
}

// Delete handles DELETE /api/users/{id}.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	claims := GetClaims(r.Context())
	if claims.UserID == id {
		jsonError(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	err := store.DeleteUser(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrUserNotFound) {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
