package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/booking"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/service"
)

// Handler contains HTTP handlers for the API.
type Handler struct {
	svc      service.ReservationService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new Handler instance.
func NewHandler(svc service.ReservationService, logger *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		logger:   logger,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}

// respondServiceError maps service-layer failures onto HTTP statuses.
// Booking field errors and unknown catalog references are client errors;
// everything else is a 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	if fe := booking.AsFieldError(err); fe != nil {
		respondFieldErrors(w, fe.Fields())
		return
	}

	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if errors.Is(err, service.ErrUnknownRoomType) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Error("request failed", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
}

// validationFields flattens validator tag failures into the same
// field -> messages shape the booking core produces.
func validationFields(err validator.ValidationErrors) map[string][]string {
	fields := make(map[string][]string, len(err))
	for _, fe := range err {
		fields[fe.Field()] = append(fields[fe.Field()], "failed on "+fe.Tag())
	}
	return fields
}

// GetRoomTypes handles GET /api/room-types.
func (h *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.RoomTypes(r.Context()))
}

// GetServices handles GET /api/services.
func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.AddOnServices(r.Context()))
}

// CreateReservation handles POST /api/reservations.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req service.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			respondFieldErrors(w, validationFields(verr))
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	res, err := h.svc.CreateReservation(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, res)
}

// GetReservation handles GET /api/reservations/{id}.
func (h *Handler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := h.svc.GetReservation(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// ListReservations handles GET /api/admin/reservations.
func (h *Handler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.svc.ListReservations(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, reservations)
}

// ListGuests handles GET /api/admin/guests.
func (h *Handler) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.svc.ListGuests(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, guests)
}

// RoomRequest is the admin payload for room inventory changes.
type RoomRequest struct {
	RoomTypeID    string  `json:"roomTypeId" validate:"required"`
	PerNightPrice float64 `json:"perNightPrice" validate:"required,gt=0"`
	Available     bool    `json:"available"`
}

// ListRooms handles GET /api/admin/rooms.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.ListRooms(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rooms)
}

// CreateRoom handles POST /api/admin/rooms.
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoomNo int `json:"roomNo" validate:"required,gt=0"`
		RoomRequest
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			respondFieldErrors(w, validationFields(verr))
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	room := &database.Room{
		RoomNo:        req.RoomNo,
		RoomTypeID:    req.RoomTypeID,
		PerNightPrice: req.PerNightPrice,
		Available:     req.Available,
	}
	if err := h.svc.CreateRoom(r.Context(), room); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/admin/rooms/{roomNo}.
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomNo, err := strconv.Atoi(mux.Vars(r)["roomNo"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid room number")
		return
	}

	var req RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	room := &database.Room{
		RoomNo:        roomNo,
		RoomTypeID:    req.RoomTypeID,
		PerNightPrice: req.PerNightPrice,
		Available:     req.Available,
	}
	if err := h.svc.UpdateRoom(r.Context(), room); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{roomNo}.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomNo, err := strconv.Atoi(mux.Vars(r)["roomNo"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid room number")
		return
	}

	if err := h.svc.DeleteRoom(r.Context(), roomNo); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Room deleted"})
}

// ServiceRecordRequest is the admin payload for catalog add-on changes.
type ServiceRecordRequest struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// ListServiceRecords handles GET /api/admin/services.
func (h *Handler) ListServiceRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListServiceRecords(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// CreateServiceRecord handles POST /api/admin/services.
func (h *Handler) CreateServiceRecord(w http.ResponseWriter, r *http.Request) {
	var req ServiceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			respondFieldErrors(w, validationFields(verr))
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	rec := &database.ServiceRecord{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.svc.CreateServiceRecord(r.Context(), rec); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, rec)
}

// UpdateServiceRecord handles PUT /api/admin/services/{id}.
func (h *Handler) UpdateServiceRecord(w http.ResponseWriter, r *http.Request) {
	var req ServiceRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = mux.Vars(r)["id"]

	rec := &database.ServiceRecord{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.svc.UpdateServiceRecord(r.Context(), rec); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

// DeleteServiceRecord handles DELETE /api/admin/services/{id}.
func (h *Handler) DeleteServiceRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.svc.DeleteServiceRecord(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Service deleted"})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
