package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondNotFound(w, "сессия не найдена")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"сессия не найдена"}`, w.Body.String())
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), msgInternalError)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Offset float64 `json:"offset"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"offset":12.5}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, 12.5, v.Offset)

	r = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"offset":`))
	assert.Error(t, DecodeJSON(r, &v))
}
