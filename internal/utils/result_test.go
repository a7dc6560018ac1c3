package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStatusCode(t *testing.T) {
	cases := map[string]int{
		"200-1": http.StatusOK,
		"201-1": http.StatusCreated,
		"404-1": http.StatusNotFound,
		"abc":   http.StatusInternalServerError,
		"":      http.StatusInternalServerError,
		"999-1": http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, Result{Code: code}.StatusCode(), code)
	}
}

func TestRespondOmitsEmptyData(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, NewResult("200-1", "ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "200-1", body["code"])
	assert.Equal(t, "ok", body["message"])
	assert.NotContains(t, body, "data")
}

func TestFail(t *testing.T) {
	res := Fail(http.StatusNotFound, "gone", nil)
	assert.Equal(t, "404-1", res.Code)
	assert.Equal(t, http.StatusNotFound, res.StatusCode())
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Title string `json:"title"`
	}

	t.Run("valid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"hi"}`))

		var b body
		require.NoError(t, DecodeJSON(rec, req, &b))
		assert.Equal(t, "hi", b.Title)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"hi"}`))

		var b body
		assert.Error(t, DecodeJSON(rec, req, &b))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"400-1"`)
	})

	t.Run("empty", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

		var b body
		assert.Error(t, DecodeJSON(rec, req, &b))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "empty request body")
	})
}
