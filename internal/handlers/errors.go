package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/vaughan-dsouza/posts-api/internal/store"
	"github.com/vaughan-dsouza/posts-api/internal/utils"
)

var errInvalidID = errors.New("invalid post id")

// NotFoundError carries the id of the missing post so the response can name it.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Post %d not found.", e.ID)
}

func (e *NotFoundError) Unwrap() error { return store.ErrNotFound }

// notFound attaches id to a store.ErrNotFound and passes other errors through.
func notFound(id int64, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

// handleError maps handler errors to envelope responses.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verrs ValidationErrors
		nf    *NotFoundError
	)

	switch {
	case errors.As(err, &verrs):
		utils.Respond(w, utils.Fail(http.StatusBadRequest, verrs.Error(), verrs))

	case errors.Is(err, errInvalidID):
		utils.JSONError(w, http.StatusBadRequest, err.Error())

	case errors.As(err, &nf):
		utils.JSONError(w, http.StatusNotFound, nf.Error())

	case errors.Is(err, store.ErrNotFound):
		utils.JSONError(w, http.StatusNotFound, "Post not found.")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler (%s %s): %v", r.Method, r.URL.Path, err)
		utils.JSONError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
