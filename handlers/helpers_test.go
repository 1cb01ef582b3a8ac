package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           3000,
		MongoURI:       "mongodb://unused",
		DatabaseName:   "collegetours_test",
		JWTSecret:      []byte("test-secret"),
		TokenValidity:  time.Hour,
		AdminEmails:    []string{"kesav@admin.com"},
		Environment:    "test",
		AllowedOrigins: []string{"*"},
	}
}

type testEnv struct {
	cfg     *config.Config
	router  *gin.Engine
	users   *store.InMemoryUserStore
	tours   *store.InMemoryTourStore
	courses *store.InMemoryCourseStore
	events  *store.InMemoryEventStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		cfg:     testConfig(),
		users:   store.NewInMemoryUserStore(),
		tours:   store.NewInMemoryTourStore(),
		courses: store.NewInMemoryCourseStore(),
		events:  store.NewInMemoryEventStore(),
	}
	env.router = NewRouter(Deps{
		Cfg:     env.cfg,
		Log:     log,
		Users:   env.users,
		Tours:   env.tours,
		Courses: env.courses,
		Events:  env.events,
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates a user through the API and returns the issued token.
func (e *testEnv) register(t *testing.T, username, email, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// createTour creates a tour through the API and returns its generated id.
func (e *testEnv) createTour(t *testing.T, token string, fields gin.H) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/tours", fields, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}
