package http

import (
	"net/http"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/service"
)

type InvoiceHandler struct {
	invoiceSvc service.InvoiceService
}

func NewInvoiceHandler(invoiceSvc service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc}
}

type createInvoiceRequest struct {
	RentalID      int32 `json:"rental_id"`
	WaterUnits    int64 `json:"water_units"`
	ElectricUnits int64 `json:"electric_units"`
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	invoice, err := h.invoiceSvc.CreateInvoice(r.Context(), req.RentalID, req.WaterUnits, req.ElectricUnits)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceSvc.ListInvoices(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrInvoiceNotFound)
		return
	}

	invoice, err := h.invoiceSvc.GetInvoice(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	claims := ClaimsFrom(r.Context())
	if !canAccessCustomer(claims, invoice.CustomerID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: errorBody{Kind: "FORBIDDEN", Message: "access denied"}})
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(r, "customerId")
	if !ok {
		respondError(w, domain.ErrCustomerNotFound)
		return
	}

	claims := ClaimsFrom(r.Context())
	if !canAccessCustomer(claims, customerID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: errorBody{Kind: "FORBIDDEN", Message: "access denied"}})
		return
	}

	invoices, err := h.invoiceSvc.ListByCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrInvoiceNotFound)
		return
	}

	// Customers may pay their own invoices; admins may pay any.
	invoice, err := h.invoiceSvc.GetInvoice(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	claims := ClaimsFrom(r.Context())
	if !canAccessCustomer(claims, invoice.CustomerID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: errorBody{Kind: "FORBIDDEN", Message: "access denied"}})
		return
	}

	invoice, err = h.invoiceSvc.MarkPaid(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}
