package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/auth"
	"bookshelf/internal/books"
	"bookshelf/internal/database"
	bookstore "bookshelf/internal/database/books"
	"bookshelf/internal/database/users"
)

// setupTestRouter builds the full router against a throwaway database, the
// same wiring the entrypoint does.
func setupTestRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authService := auth.NewService(users.NewRepository(db.DB), tokens, 4)
	bookService := books.NewService(bookstore.NewRepository(db.DB))

	router := NewRouter(RouterConfig{
		AuthService:    authService,
		AuthMiddleware: auth.NewMiddleware(tokens),
		BookService:    bookService,
		Database:       db,
		AllowedOrigins: "*",
		Version:        "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, cleanup
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func jsonID(t *testing.T, body map[string]any) string {
	t.Helper()
	id, ok := body["id"].(float64)
	require.True(t, ok)
	return strconv.FormatUint(uint64(id), 10)
}

// registerUser registers a fresh user and returns their token.
func registerUser(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()
	w := doJSON(t, router, "POST", "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	return token
}
