package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/service"
)

type RoomHandler struct {
	roomSvc service.RoomService
}

func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomSvc.ListRooms(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rooms)
}

type roomRequest struct {
	RoomNo      string            `json:"room_no"`
	Floor       int32             `json:"floor"`
	HasAC       bool              `json:"has_ac"`
	ACFee       int64             `json:"ac_fee"`
	DailyRate   int64             `json:"daily_rate"`
	MonthlyRate int64             `json:"monthly_rate"`
	Status      domain.RoomStatus `json:"status,omitempty"`
}

func (h *RoomHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req roomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room := &domain.Room{
		RoomNo:      req.RoomNo,
		Floor:       req.Floor,
		HasAC:       req.HasAC,
		ACFee:       req.ACFee,
		DailyRate:   req.DailyRate,
		MonthlyRate: req.MonthlyRate,
		Status:      req.Status,
	}
	if err := h.roomSvc.AddRoom(r.Context(), room); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrRoomNotFound)
		return
	}
	var req roomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room := &domain.Room{
		ID:          id,
		RoomNo:      req.RoomNo,
		Floor:       req.Floor,
		HasAC:       req.HasAC,
		ACFee:       req.ACFee,
		DailyRate:   req.DailyRate,
		MonthlyRate: req.MonthlyRate,
		Status:      req.Status,
	}
	if err := h.roomSvc.UpdateRoom(r.Context(), room); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, room)
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrRoomNotFound)
		return
	}
	if err := h.roomSvc.DeleteRoom(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
