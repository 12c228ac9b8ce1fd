package http

import (
	"net/http"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

type extraRequest struct {
	Name       string            `json:"name"`
	UnitPrice  int64             `json:"unit_price"`
	ChargeType domain.ChargeType `json:"charge_type"`
}

func (h *CatalogHandler) CreateExtra(w http.ResponseWriter, r *http.Request) {
	var req extraRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	extra := &domain.Extra{
		Name:       req.Name,
		UnitPrice:  req.UnitPrice,
		ChargeType: req.ChargeType,
	}
	if err := h.catalogSvc.CreateExtra(r.Context(), extra); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, extra)
}

func (h *CatalogHandler) ListExtras(w http.ResponseWriter, r *http.Request) {
	extras, err := h.catalogSvc.ListExtras(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, extras)
}

type customerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDCardNo string `json:"id_card_no"`
}

func (h *CatalogHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer := &domain.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IDCardNo: req.IDCardNo,
	}
	if err := h.catalogSvc.CreateCustomer(r.Context(), customer); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CatalogHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.catalogSvc.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}
