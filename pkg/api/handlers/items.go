package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shelf-labs/shelf/internal/logger"
	"github.com/shelf-labs/shelf/pkg/shelf/models"
	"github.com/shelf-labs/shelf/pkg/shelf/service"
)

// ItemHandler handles item lifecycle API endpoints.
type ItemHandler struct {
	service *service.Service
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

// CreateItemRequest is the request body for POST /api/items.
//
// Name is decoded untyped on purpose: the boundary does no coercion, so a
// missing field, null, or non-string value all fail validation rather than
// being silently converted.
type CreateItemRequest struct {
	Name any `json:"name"`
}

// ItemResponse is the response body for item endpoints.
type ItemResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /api/items.
// Returns all items, newest first.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("Failed to list items", "error", err)
		InternalServerError(w, "Failed to fetch items")
		return
	}

	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = itemToResponse(item)
	}

	WriteJSONOK(w, response)
}

// Create handles POST /api/items.
// Creates a new item from the supplied name.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	name, ok := req.Name.(string)
	if !ok {
		BadRequest(w, "Item name is required")
		return
	}

	item, err := h.service.Create(r.Context(), name)
	if err != nil {
		if errors.Is(err, models.ErrNameRequired) {
			BadRequest(w, "Item name is required")
			return
		}
		logger.Error("Failed to create item", "error", err)
		InternalServerError(w, "Failed to create item")
		return
	}

	WriteJSONCreated(w, itemToResponse(item))
}

// Delete handles DELETE /api/items/{id}.
// Deletes an item once it has aged past the retention hold.
//
// Tokens that do not parse to a positive integer are reported as not found:
// at this boundary a malformed id is indistinguishable from an absent one.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(chi.URLParam(r, "id"))
	if err != nil {
		NotFound(w, "Item not found")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDeleteError(w, err)
		return
	}

	WriteJSONOK(w, MessageResponse{Message: "Item deleted successfully"})
}

// writeDeleteError maps lifecycle errors to HTTP failure responses.
// Every delete route failure goes through here so the status mapping stays
// in one place.
func writeDeleteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		NotFound(w, "Item not found")
	case errors.Is(err, models.ErrItemRetained):
		Forbidden(w, "Item is too recent to delete")
	default:
		logger.Error("Failed to delete item", "error", err)
		InternalServerError(w, "Failed to delete item")
	}
}

// parseItemID parses an item id token into a positive integer.
func parseItemID(token string) (uint, error) {
	id, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}

// itemToResponse converts a models.Item to ItemResponse.
func itemToResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}
}
