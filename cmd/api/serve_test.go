package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/posts-api/internal/config"
	"github.com/vaughan-dsouza/posts-api/internal/handlers"
	"github.com/vaughan-dsouza/posts-api/internal/store"
)

func TestRouterServesPostsUnderBasePath(t *testing.T) {
	cfg := config.Config{BasePath: "/api/v1/posts"}
	srv := httptest.NewServer(newRouter(cfg, handlers.NewHandler(store.NewMemoryStore())))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Post(srv.URL+"/api/v1/posts", "application/json",
		strings.NewReader(`{"title":"Hello","content":"World"}`))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var env struct {
		Code string `json:"code"`
		Data struct {
			Post struct {
				ID int64 `json:"id"`
			} `json:"post"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))
	assert.Equal(t, "201-1", env.Code)

	res, err = http.Get(fmt.Sprintf("%s/api/v1/posts/%d", srv.URL, env.Data.Post.ID))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/posts")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestOpenStoreWithoutDatabaseURL(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s, closeStore, err := openStore(ctx, config.Config{})
	require.NoError(t, err)
	defer closeStore()

	_, ok := s.(*store.MemoryStore)
	assert.True(t, ok)
}
