package api

import (
	"database/sql"
	"net/http"

	"github.com/ativahospitalar/galinheiro/internal/catalog"
	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

// CatalogHandler serves the filtered product catalog.
type CatalogHandler struct {
	DB         *sql.DB
	Categories []string
}

// List handles GET /api/catalog?search=&category=. Only active products are
// returned; stock is not checked (disabling the add affordance at stock <= 0
// is a client concern).
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := store.Products(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list catalog")
		return
	}

	filtered := catalog.Filter(products,
		r.URL.Query().Get("search"),
		r.URL.Query().Get("category"),
	)
	if filtered == nil {
		filtered = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, filtered)
}

// ListCategories handles GET /api/categories. The "Tudo" filter value is
// prepended so clients render the tabs in order.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]string, 0, len(h.Categories)+1)
	categories = append(categories, catalog.All)
	categories = append(categories, h.Categories...)
	jsonResponse(w, http.StatusOK, categories)
}
