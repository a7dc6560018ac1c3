package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vaughan-dsouza/posts-api/internal/models"
	"github.com/vaughan-dsouza/posts-api/internal/store"
	"github.com/vaughan-dsouza/posts-api/internal/utils"
)

type PostHandler struct {
	Store store.Store
}

func NewPostHandler(s store.Store) *PostHandler {
	return &PostHandler{Store: s}
}

// RegisterPostRoutes mounts the post endpoints under basePath.
func RegisterPostRoutes(r chi.Router, basePath string, h *PostHandler) {
	r.Route(basePath, func(r chi.Router) {
		r.Get("/", h.GetPosts)
		r.Post("/", h.CreatePost)
		r.Get("/{id}", h.GetPostByID)
		r.Put("/{id}", h.UpdatePost)
		r.Delete("/{id}", h.DeletePost)
	})
}

type postWriteReq struct {
	Title   string `json:"title" validate:"notblank,min=2,max=100"`
	Content string `json:"content" validate:"notblank,min=2,max=100"`
}

type postModifyReq struct {
	Title   string `json:"title" validate:"notblank,min=2,max=100"`
	Content string `json:"content" validate:"notblank,min=2,max=100"`
}

type postWriteRes struct {
	TotalCount int64           `json:"totalCount"`
	Post       models.PostView `json:"post"`
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// ---------------------- LIST ----------------------

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.ListAll(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.NewPostViews(posts))
}

// ---------------------- GET ONE ----------------------

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	post, err := h.Store.FindByID(r.Context(), id)
	if err != nil {
		handleError(w, r, notFound(id, err))
		return
	}

	utils.JSON(w, http.StatusOK, models.NewPostView(post))
}

// ---------------------- CREATE ----------------------

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body postWriteReq
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}
	if err := validateStruct(body); err != nil {
		handleError(w, r, err)
		return
	}

	var (
		post  models.Post
		total int64
	)
	err := h.Store.InTx(r.Context(), func(tx store.PostStore) error {
		var err error
		if post, err = tx.Create(r.Context(), body.Title, body.Content); err != nil {
			return err
		}
		// counted after the write; concurrent writers may already have moved it
		total, err = tx.Count(r.Context())
		return err
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.Respond(w, utils.NewResult(
		"201-1",
		fmt.Sprintf("Post %d has been created.", post.ID),
		postWriteRes{TotalCount: total, Post: models.NewPostView(post)},
	))
}

// ---------------------- UPDATE ----------------------

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var body postModifyReq
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}
	if err := validateStruct(body); err != nil {
		handleError(w, r, err)
		return
	}

	err = h.Store.InTx(r.Context(), func(tx store.PostStore) error {
		post, err := tx.FindByID(r.Context(), id)
		if err != nil {
			return notFound(id, err)
		}
		return notFound(id, tx.Modify(r.Context(), &post, body.Title, body.Content))
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.Respond(w, utils.NewResult("200-1", fmt.Sprintf("Post %d has been modified.", id), nil))
}

// ---------------------- DELETE ----------------------

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	err = h.Store.InTx(r.Context(), func(tx store.PostStore) error {
		post, err := tx.FindByID(r.Context(), id)
		if err != nil {
			return notFound(id, err)
		}
		return notFound(id, tx.Delete(r.Context(), post))
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	utils.Respond(w, utils.NewResult("200-1", fmt.Sprintf("Post %d has been deleted.", id), nil))
}
