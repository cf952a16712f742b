package http

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
	v   *validator.Validate
}

func NewBookingHandler(svc service.BookingService, v *validator.Validate) *BookingHandler {
	return &BookingHandler{svc: svc, v: v}
}

// POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	bookerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req BookingCreateRequest
	if err := decode(r, h.v, &req); err != nil {
		writeError(w, r, err)
		return
	}
	booking, err := h.svc.CreateBooking(r.Context(), bookerID, req.ItemID, req.Start.Time(), req.End.Time())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapBookingToDTO(booking))
}

// GET /bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	booking, err := h.svc.GetBooking(r.Context(), id, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapBookingToDTO(booking))
}

// PATCH /bookings/{id}?approved={bool}
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	approved, err := queryBool(r, "approved")
	if err != nil {
		writeError(w, r, err)
		return
	}
	booking, err := h.svc.ApproveBooking(r.Context(), id, ownerID, approved)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapBookingToDTO(booking))
}

// GET /bookings?state=
func (h *BookingHandler) ListForBooker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListForBooker)
}

// GET /bookings/owner?state=
func (h *BookingHandler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListForOwner)
}

type listFunc func(ctx context.Context, userID int64, state domain.BookingState) ([]domain.Booking, error)

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, fn listFunc) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	state, err := domain.ParseBookingState(r.URL.Query().Get("state"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	bookings, err := fn(r.Context(), userID, state)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapBookingsToDTO(bookings))
}
