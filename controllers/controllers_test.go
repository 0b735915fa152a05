package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"goblog/config"
	"goblog/controllers"
	"goblog/database"
	"goblog/middleware"
	"goblog/routes"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "test.db"),
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		RememberTTL:   24 * time.Hour,
	}

	db := database.Connect(cfg)
	database.Migrate(db)

	r := gin.New()
	r.Use(middleware.CurrentUser(db, cfg))
	r.LoadHTMLGlob("../templates/*.html")

	routes.SetupRoutes(r, controllers.NewAuthController(db, cfg), controllers.NewPostController(db))
	return r, db
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r http.Handler, username, email, password string) {
	t.Helper()
	w := postForm(r, "/register", url.Values{
		"username":         {username},
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func loginUser(t *testing.T, r http.Handler, email, password string) *http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookie {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}
