package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/vaughan-dsouza/posts-api/internal/store"
	"github.com/vaughan-dsouza/posts-api/internal/utils"
)

type Handler struct {
	Store store.Store
	Posts *PostHandler
}

func NewHandler(s store.Store) *Handler {
	return &Handler{
		Store: s,
		Posts: NewPostHandler(s),
	}
}

// Health reports whether the store is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
