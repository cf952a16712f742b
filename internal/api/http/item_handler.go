package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"
)

type ItemHandler struct {
	svc service.ItemService
	v   *validator.Validate
}

func NewItemHandler(svc service.ItemService, v *validator.Validate) *ItemHandler {
	return &ItemHandler{svc: svc, v: v}
}

// POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req ItemCreateRequest
	if err := decode(r, h.v, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.svc.CreateItem(r.Context(), ownerID, &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapItemToDTO(item))
}

// GET /items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	view, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapItemViewToDTO(view))
}

// PATCH /items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req ItemUpdateRequest
	if err := decode(r, h.v, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.svc.UpdateItem(r.Context(), id, ownerID, domain.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapItemToDTO(item))
}

// DELETE /items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.svc.DeleteItem(r.Context(), id, ownerID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /items
func (h *ItemHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	views, err := h.svc.ListOwnerItems(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapItemViewsToDTO(views))
}

// GET /items/search?text=
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Search(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MapItemsToDTO(items))
}

// POST /items/{id}/comment
func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	authorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req CommentCreateRequest
	if err := decode(r, h.v, &req); err != nil {
		writeError(w, r, err)
		return
	}
	comment, err := h.svc.AddComment(r.Context(), id, authorID, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MapCommentToDTO(comment))
}
