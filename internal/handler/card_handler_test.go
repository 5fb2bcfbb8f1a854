package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cardfolio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) (*API, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.BusinessCard{}, &db.SocialLink{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	api := NewAPI(gdb, t.TempDir(), "/static/uploads", "https://cards.example.com")
	return api, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

// newTestRouter wires the handler set behind the session middleware. When
// userID is non-empty every request runs with that account signed in.
func newTestRouter(api *API, userID, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("cardfolio_test", cookie.NewStore([]byte("test-secret"))))
	if userID != "" {
		r.Use(func(c *gin.Context) {
			session := sessions.Default(c)
			session.Set(sessionKeyUserID, userID)
			session.Set(sessionKeyEmail, email)
			c.Next()
		})
	}

	r.POST("/auth/register", api.Register)
	r.POST("/auth/login", api.Login)
	r.POST("/auth/logout", api.Logout)
	r.GET("/c/:cardId", api.PublicCard)

	editor := r.Group("/api")
	editor.Use(AuthRequired())
	{
		editor.GET("/dashboard", api.Dashboard)
		editor.GET("/card", api.GetCard)
		editor.PATCH("/card", api.UpdateCard)
		editor.POST("/card/publish", api.SetPublished)
		editor.POST("/card/save", api.SaveCard)
		editor.POST("/card/avatar", api.UploadAvatar)
		editor.GET("/card/link-preview", api.PreviewLink)
		editor.POST("/card/links", api.AddLink)
		editor.DELETE("/card/links/:id", api.RemoveLink)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestGetCardDefaultsForNewUser(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/card", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	cardBody := body["card"].(map[string]any)

	if cardBody["id"] != "" {
		t.Fatalf("new user must have no card identifier, got %v", cardBody["id"])
	}
	if cardBody["is_published"] != false {
		t.Fatal("new draft must not be published")
	}
	if cardBody["email"] != "alice@example.com" {
		t.Fatalf("draft email not seeded from account: %v", cardBody["email"])
	}

	theme := cardBody["theme"].(map[string]any)
	if theme["primary"] != "#3B82F6" || theme["secondary"] != "#1E40AF" || theme["background"] != "#FFFFFF" || theme["text"] != "#1F2937" {
		t.Fatalf("unexpected default theme: %v", theme)
	}
	if cardBody["shape"] != "rectangle" {
		t.Fatalf("expected rectangle default, got %v", cardBody["shape"])
	}
	if links := cardBody["links"].([]any); len(links) != 0 {
		t.Fatalf("expected no links, got %d", len(links))
	}
	if body["public_url"] != "" {
		t.Fatalf("unsaved draft must have no public URL, got %v", body["public_url"])
	}
}

func TestGetCardRequiresSession(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "", "")

	w := doJSON(t, r, http.MethodGet, "/api/card", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestUpdateCardUnknownFieldRejected(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/card", map[string]any{"field": "nickname", "value": "Al"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestUpdateCardThemeMergesSubstructure(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/card", map[string]any{"field": "theme.primary", "value": "#000000"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	theme := decodeBody(t, w)["card"].(map[string]any)["theme"].(map[string]any)
	if theme["primary"] != "#000000" {
		t.Fatalf("primary not updated: %v", theme["primary"])
	}
	if theme["secondary"] != "#1E40AF" {
		t.Fatalf("sibling theme key changed: %v", theme["secondary"])
	}
}

func TestUpdateCardRejectsBadEnumValues(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	cases := []map[string]any{
		{"field": "shape", "value": "triangle"},
		{"field": "theme.primary", "value": "blue"},
		{"field": "layout.style", "value": "brutalist"},
		{"field": "layout.font", "value": "Comic Sans"},
	}
	for _, payload := range cases {
		w := doJSON(t, r, http.MethodPatch, "/api/card", payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", payload, w.Code)
		}
	}
}

func TestSaveAssignsIdentifierOnceAndUpdatesAfter(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	if w := doJSON(t, r, http.MethodPatch, "/api/card", map[string]any{"field": "title", "value": "Alice"}); w.Code != http.StatusOK {
		t.Fatalf("field update failed: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/card/save", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first save failed: %d %s", w.Code, w.Body.String())
	}
	firstID := decodeBody(t, w)["card"].(map[string]any)["id"].(string)
	if firstID == "" {
		t.Fatal("first save must assign an identifier")
	}

	w = doJSON(t, r, http.MethodPost, "/api/card/save", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second save failed: %d", w.Code)
	}
	if secondID := decodeBody(t, w)["card"].(map[string]any)["id"].(string); secondID != firstID {
		t.Fatalf("identifier changed across saves: %q vs %q", firstID, secondID)
	}

	var count int64
	if err := api.DB().Model(&db.BusinessCard{}).Where("user_id = ?", "u1").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row, got %d", count)
	}
}

func TestPublishFlowExposesPublicURL(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	if w := doJSON(t, r, http.MethodPost, "/api/card/save", nil); w.Code != http.StatusOK {
		t.Fatalf("save failed: %d", w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/card/publish", map[string]any{"published": true})
	if w.Code != http.StatusOK {
		t.Fatalf("publish toggle failed: %d", w.Code)
	}
	// The toggle alone is not enough, the flag takes effect on save.
	w = doJSON(t, r, http.MethodPost, "/api/card/save", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("publish save failed: %d", w.Code)
	}

	body := decodeBody(t, w)
	cardID := body["card"].(map[string]any)["id"].(string)
	publicURL := body["public_url"].(string)
	if publicURL != "https://cards.example.com/c/"+cardID {
		t.Fatalf("unexpected public URL: %q", publicURL)
	}
}

func TestDashboardCounts(t *testing.T) {
	api, cleanup := setupTestAPI(t)
	defer cleanup()
	r := newTestRouter(api, "u1", "alice@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["cards"].(float64) != 0 || body["published"].(float64) != 0 {
		t.Fatalf("expected zero counters, got %v", body)
	}

	doJSON(t, r, http.MethodPost, "/api/card/save", nil)
	doJSON(t, r, http.MethodPost, "/api/card/publish", map[string]any{"published": true})
	doJSON(t, r, http.MethodPost, "/api/card/save", nil)

	w = doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	body = decodeBody(t, w)
	if body["cards"].(float64) != 1 || body["published"].(float64) != 1 {
		t.Fatalf("expected one published card, got %v", body)
	}
}
