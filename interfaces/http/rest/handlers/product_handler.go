package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/domain/catalog"
	"catalog-admin/pkg/common"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	products ports.ProductService
	logger   *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products ports.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{products: products, logger: logger}
}

// List handles GET /api/products and GET /api/simple-dynamodb/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ProductFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
		MinPrice: common.ParseFloat(r, "minPrice"),
		MaxPrice: common.ParseFloat(r, "maxPrice"),
		Limit:    common.ParseLimit(r),
	}

	result, err := h.products.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(result))
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(product))
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ports.CreateProductInput
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	product, err := h.products.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusCreated, common.OK(product).WithMessage("Product created"))
}

// CreateSimple handles POST /api/simple-dynamodb/products
func (h *ProductHandler) CreateSimple(w http.ResponseWriter, r *http.Request) {
	var req ports.CreateSimpleProductInput
	if err := decode(w, r, &req); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	product, err := h.products.CreateSimple(r.Context(), req)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusCreated, common.OK(product))
}

// Update handles PUT and PATCH /api/products/{id}. Both apply only the fields present.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch catalog.ProductPatch
	if err := decodeLenient(w, r, &patch); err != nil {
		respondError(w, r, h.logger, err)
		return
	}

	product, err := h.products.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(product).WithMessage("Product updated"))
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, h.logger, err)
		return
	}
	respond(w, r, h.logger, http.StatusOK, common.OK(nil).WithMessage("Product deleted"))
}
