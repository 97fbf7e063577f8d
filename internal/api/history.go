package api

import (
	"database/sql"
	"net/http"

	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

// HistoryHandler serves the requisition and movement history.
type HistoryHandler struct {
	DB *sql.DB
}

// ListRequisitions handles GET /api/requisitions. Admins see everything;
// standard users only their own requisitions. History is most recent first.
func (h *HistoryHandler) ListRequisitions(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	reqs, err := store.Requisitions(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list requisitions")
		return
	}

	if claims.Role != model.RoleAdmin {
		own := reqs[:0]
		for _, req := range reqs {
			if req.UserID == claims.UserID {
				own = append(own, req)
			}
		}
		reqs = own
	}
	if reqs == nil {
		reqs = []model.Requisition{}
	}
	jsonResponse(w, http.StatusOK, reqs)
}

// ListMovements handles GET /api/movements (admin only).
func (h *HistoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := store.Movements(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list movements")
		return
	}
	if movements == nil {
		movements = []model.StockMovement{}
	}
	jsonResponse(w, http.StatusOK, movements)
}
