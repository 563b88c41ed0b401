package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"omahaestates/internal/config"
	"omahaestates/internal/db"
	"omahaestates/internal/middleware"
	"omahaestates/internal/models"
	"omahaestates/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingRender stands in for the template set in handler tests: the
// response body is the template name, and the last render's data stays
// inspectable through the recorder.
type recordingRender struct {
	name string
	data gin.H
}

func (r *recordingRender) Instance(name string, data any) render.Render {
	r.name = name
	if h, ok := data.(gin.H); ok {
		r.data = h
	}
	return stubPage{name: name}
}

type stubPage struct{ name string }

func (p stubPage) Render(w http.ResponseWriter) error {
	_, err := w.Write([]byte(p.name))
	return err
}

func (p stubPage) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func setupTestDB(t *testing.T) {
	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Migrate(g))
	db.DB = g
}

// newTestEngine builds a bare engine with the session and user-loading
// middleware the real server runs.
func newTestEngine(t *testing.T) (*gin.Engine, *recordingRender) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rec := &recordingRender{}
	r.HTMLRender = rec
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("omahaestates_session", store))
	r.Use(middleware.LoadUser())
	return r, rec
}

func testConfig() *config.Config {
	return &config.Config{
		SiteURL:          "http://example.test",
		ContactRecipient: "agent@example.test",
		SessionSecret:    "test-secret",
	}
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func createUser(t *testing.T, username, password string, staff bool) models.User {
	hash, err := utils.HashPassword(password)
	assert.NoError(t, err)
	u := models.User{Username: username, Password: hash, IsStaff: staff}
	assert.NoError(t, db.DB.Create(&u).Error)
	return u
}

func createTestListing(t *testing.T, l models.Listing) models.Listing {
	if l.Status == "" {
		l.Status = models.StatusActive
	}
	if l.Visibility == "" {
		l.Visibility = models.VisibilityVisible
	}
	if l.Street == "" {
		l.Street = "123 Pine St"
	}
	if l.City == "" {
		l.City = "Omaha"
	}
	if l.State == "" {
		l.State = "NE"
	}
	if l.Zipcode == "" {
		l.Zipcode = "68102"
	}
	if l.Price == 0 {
		l.Price = 250000
	}
	assert.NoError(t, db.DB.Create(&l).Error)
	return l
}

func doGet(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPostForm(r http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "omahaestates_session" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}
