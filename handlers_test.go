package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwv/roomtrace/rooms"
)

func testApp(t *testing.T) *App {
	t.Helper()
	return &App{Tunable: rooms.DefaultConfig()}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newHTTPServer(testApp(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestIdentifyEndpoint_RejectsNonPost(t *testing.T) {
	srv := newHTTPServer(testApp(t))

	req := httptest.NewRequest(http.MethodGet, "/identify", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestIdentifyEndpoint_ParsesAndIdentifies(t *testing.T) {
	srv := newHTTPServer(testApp(t))

	doc := []byte(`<svg><polygon stroke-width="2" points="0,0 100,0 100,60 0,60"/></svg>`)
	req := httptest.NewRequest(http.MethodPost, "/identify", bytes.NewReader(doc))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp identifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rooms, 1)
	assert.InDelta(t, 100, resp.Rooms[0].BBox[2], 1)
	assert.InDelta(t, 60, resp.Rooms[0].BBox[3], 1)
}

func TestIdentifyEndpoint_BadBodyRejected(t *testing.T) {
	srv := newHTTPServer(testApp(t))

	req := httptest.NewRequest(http.MethodPost, "/identify", bytes.NewReader([]byte("not xml at all <<<")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
