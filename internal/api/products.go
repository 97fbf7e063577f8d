package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/ativahospitalar/galinheiro/internal/imaging"
	"github.com/ativahospitalar/galinheiro/internal/model"
	"github.com/ativahospitalar/galinheiro/internal/store"
)

// ProductsHandler handles admin product CRUD endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

type createProductRequest struct {
	SKU              string   `json:"sku"`
	InternalCode     string   `json:"internal_code"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Stock            int      `json:"stock"`
	Unit             string   `json:"unit"`
	ConversionFactor *float64 `json:"conversion_factor"`
	Status           string   `json:"status"`
	ImageURL         string   `json:"image_url"`
}

type updateProductRequest struct {
	SKU              *string  `json:"sku"`
	InternalCode     *string  `json:"internal_code"`
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Category         *string  `json:"category"`
	Stock            *int     `json:"stock"`
	Unit             *string  `json:"unit"`
	ConversionFactor *float64 `json:"conversion_factor"`
	Status           *string  `json:"status"`
	ImageURL         *string  `json:"image_url"`
}

func validProductStatus(status string) bool {
	return status == model.ProductStatusActive || status == model.ProductStatusInactive
}

// List handles GET /api/products: the full collection, inactive included.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := store.Products(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if !model.ValidUnit(req.Unit) {
		jsonError(w, http.StatusBadRequest, "invalid unit")
		return
	}
	if req.Status == "" {
		req.Status = model.ProductStatusActive
	}
	if !validProductStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	product, err := store.CreateProduct(r.Context(), h.DB, model.Product{
		SKU:              req.SKU,
		InternalCode:     req.InternalCode,
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Stock:            req.Stock,
		Unit:             req.Unit,
		ConversionFactor: req.ConversionFactor,
		Status:           req.Status,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	jsonResponse(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}. Only fields present in the request
// are touched.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil && *req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Unit != nil && !model.ValidUnit(*req.Unit) {
		jsonError(w, http.StatusBadRequest, "invalid unit")
		return
	}
	if req.Status != nil && !validProductStatus(*req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}

	product, err := store.UpdateProduct(r.Context(), h.DB, id, store.ProductUpdate{
		SKU:              req.SKU,
		InternalCode:     req.InternalCode,
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Stock:            req.Stock,
		Unit:             req.Unit,
		ConversionFactor: req.ConversionFactor,
		Status:           req.Status,
		ImageURL:         req.ImageURL,
	})
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}. Confirmation happens in the
// client; existing requisition and movement history is never rewritten.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := store.DeleteProduct(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadImage handles PUT /api/products/{id}/image. The upload is processed
// into a small JPEG thumbnail stored as a data URI on the product.
func (h *ProductsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	dataURI, err := imaging.ProcessToDataURI(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "unsupported or corrupt image")
		return
	}

	product, err := store.UpdateProduct(r.Context(), h.DB, id, store.ProductUpdate{ImageURL: &dataURI})
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, product)
}
