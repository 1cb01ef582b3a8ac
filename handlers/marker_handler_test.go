package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinataFumi123/college-tour-website/models"
)

func TestMarkersFilterByCollege(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewMarkerHandler()
	added := h.Add(models.Marker{CollegeID: "c1", Label: "Library", Location: []float64{1, 2}})
	h.Add(models.Marker{CollegeID: "c2", Label: "Gym", Location: []float64{3, 4}})
	assert.NotEmpty(t, added.ID, "Add assigns an id when none is given")

	r := gin.New()
	r.GET("/api/markers/college/:collegeId", h.ListByCollege)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/markers/college/c1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var markers []models.Marker
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markers))
	require.Len(t, markers, 1)
	assert.Equal(t, "Library", markers[0].Label)
}

func TestMarkersEmptyByDefault(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/markers/college/c1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeList(t, w))
}

func TestDebugStatus(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/debug", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "API is working", body["message"])
	assert.Equal(t, "test", body["environment"])
	assert.Equal(t, false, body["mongoConnected"])
	assert.NotEmpty(t, body["timestamp"])
}
