package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StephenRJohns/5JKitchens/middleware"
	"github.com/StephenRJohns/5JKitchens/models"
	"github.com/StephenRJohns/5JKitchens/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory services.IUserRepository sufficient for
// login tests.
type fakeUserRepo struct {
	byUsername map[string]*models.User
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error)     { return nil, nil }
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func newLoginRouter(t *testing.T) (*gin.Engine, *services.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adminHash, err := bcrypt.GenerateFromPassword([]byte("qw12QW!@"), 10)
	assert.NoError(t, err)
	userHash, err := bcrypt.GenerateFromPassword([]byte("userpass1"), 10)
	assert.NoError(t, err)

	repo := &fakeUserRepo{byUsername: map[string]*models.User{
		"butterchef": {ID: uuid.New(), Username: "butterchef", PasswordHash: string(adminHash), Role: models.RoleAdmin},
		"shopper":    {ID: uuid.New(), Username: "shopper", PasswordHash: string(userHash), Role: models.RoleUser},
	}}

	tokens := services.NewTokenService([]byte("test-secret"), 7*24*time.Hour)
	controller := NewAuthController(services.NewAuthService(repo), tokens, false)

	r := gin.New()
	r.POST("/api/admin/login", controller.Login)
	r.POST("/api/admin/logout", controller.Logout)
	return r, tokens
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestLoginController(t *testing.T) {
	t.Run("Success - 200 and a 7 day session cookie", func(t *testing.T) {
		router, tokens := newLoginRouter(t)

		recorder := postJSON(router, "/api/admin/login", `{"username": "butterchef", "password": "qw12QW!@"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)

		cookies := recorder.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			cookie := cookies[0]
			assert.Equal(t, middleware.CookieName, cookie.Name)
			assert.Equal(t, 60*60*24*7, cookie.MaxAge)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, "/", cookie.Path)

			claims, err := tokens.Verify(cookie.Value)
			assert.NoError(t, err)
			assert.Equal(t, "admin", claims["role"])
		}
	})

	t.Run("Wrong password and unknown username return the same 401", func(t *testing.T) {
		router, _ := newLoginRouter(t)

		wrongPass := postJSON(router, "/api/admin/login", `{"username": "butterchef", "password": "wrong"}`)
		unknown := postJSON(router, "/api/admin/login", `{"username": "nobody", "password": "qw12QW!@"}`)

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
	})

	t.Run("Valid non-admin credentials - 403", func(t *testing.T) {
		router, _ := newLoginRouter(t)

		recorder := postJSON(router, "/api/admin/login", `{"username": "shopper", "password": "userpass1"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Access denied")
	})

	t.Run("Missing fields - 400", func(t *testing.T) {
		router, _ := newLoginRouter(t)

		recorder := postJSON(router, "/api/admin/login", `{"username": "butterchef"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestLogoutController(t *testing.T) {
	router, _ := newLoginRouter(t)

	recorder := postJSON(router, "/api/admin/logout", ``)

	assert.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, middleware.CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	}
}
