package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListUninvoiced(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListUninvoiced(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) GetByRoom(w http.ResponseWriter, r *http.Request) {
	roomID, ok := pathID(r, "roomId")
	if !ok {
		respondError(w, domain.ErrRentalNotFound)
		return
	}
	rental, err := h.rentalSvc.GetRentalByRoom(r.Context(), roomID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

type rentRequest struct {
	RoomID     int32                    `json:"room_id"`
	CustomerID int32                    `json:"customer_id"`
	RentType   domain.RentType          `json:"rent_type"`
	CheckIn    string                   `json:"check_in"`
	CheckOut   string                   `json:"check_out"`
	Extras     []service.ExtraSelection `json:"extras,omitempty"`
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	var req rentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rental, err := h.rentalSvc.OpenRental(r.Context(), req.RoomID, req.CustomerID, req.RentType, req.CheckIn, req.CheckOut, req.Extras)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

type closeRequest struct {
	CheckOut string `json:"check_out,omitempty"`
}

func (h *RentalHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrRentalNotFound)
		return
	}
	// The body is optional; an empty one closes at the recorded check-out.
	var req closeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, errorResponse{errorBody{Kind: domain.KindValidation, Message: "invalid request body"}})
		return
	}

	rental, err := h.rentalSvc.CloseRental(r.Context(), id, req.CheckOut)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}
