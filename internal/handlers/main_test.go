package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saswattulo/Note-App-VueJs/internal/config"
	"github.com/saswattulo/Note-App-VueJs/internal/handlers"
	"github.com/saswattulo/Note-App-VueJs/internal/router"
	"github.com/saswattulo/Note-App-VueJs/internal/store"
	"github.com/saswattulo/Note-App-VueJs/internal/testutil"
)

type testServer struct {
	router    *gin.Engine
	db        *gorm.DB
	uploadDir string
}

func newTestServer(t *testing.T, name string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb := testutil.OpenTestDB(t, name)
	uploadDir := t.TempDir()

	cfg := &config.Config{
		Upload: config.UploadConfig{Dir: uploadDir},
	}

	h := handlers.New(store.New(gdb), cfg)
	r := router.New(h, []string{"http://localhost:5173"})

	return &testServer{router: r, db: gdb, uploadDir: uploadDir}
}

func (ts *testServer) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func dataObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, rr)
	require.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "expected data object, got %T", body["data"])
	return data
}

func (ts *testServer) createUser(t *testing.T, email, password string) uint {
	t.Helper()

	rr := ts.doJSON(t, http.MethodPost, "/users", map[string]string{
		"f_name":   "Test",
		"l_name":   "User",
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	return uint(dataObject(t, rr)["id"].(float64))
}

func (ts *testServer) createNote(t *testing.T, userID uint) uint {
	t.Helper()

	rr := ts.doJSON(t, http.MethodPost, "/notes", map[string]interface{}{
		"title":   "Title",
		"content": "Content",
		"user_id": userID,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	return uint(dataObject(t, rr)["id"].(float64))
}

func (ts *testServer) createTag(t *testing.T, noteID uint, name string) uint {
	t.Helper()

	rr := ts.doJSON(t, http.MethodPost, "/tags", map[string]interface{}{
		"name":    name,
		"note_id": noteID,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	return uint(dataObject(t, rr)["id"].(float64))
}
