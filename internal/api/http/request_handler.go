package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"shareit-backend/internal/service"
)

type RequestHandler struct {
	svc service.RequestService
	v   *validator.Validate
}

func NewRequestHandler(svc service.RequestService, v *validator.Validate) *RequestHandler {
	return &RequestHandler{svc: svc, v: v}
}

// POST /requests
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req ItemRequestCreateRequest
	if err := decode(r, h.v, &req); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.svc.CreateRequest(r.Context(), authorID, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapItemRequestToDTO(created))
}

// GET /requests
func (h *RequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	authorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	views, err := h.svc.ListOwnRequests(r.Context(), authorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRequestViewsToDTO(views))
}

// GET /requests/all
func (h *RequestHandler) ListOther(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	reqs, err := h.svc.ListOtherRequests(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapItemRequestsToDTO(reqs))
}

// GET /requests/{id}
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.GetRequest(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapRequestViewToDTO(view))
}
