package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coppercraft/shop/internal/config"
	"github.com/coppercraft/shop/internal/hash"
	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/repo"
	"github.com/coppercraft/shop/internal/seed"
	"github.com/coppercraft/shop/internal/service"
	"github.com/coppercraft/shop/internal/token"
)

var dbSeq atomic.Int64

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	signer := &token.Signer{Secret: []byte("test-jwt-secret")}

	users := &repo.UserRepo{DB: db}
	products := &repo.ProductRepo{DB: db}
	carts := &repo.CartRepo{DB: db}
	orders := &repo.OrderRepo{DB: db}

	authSvc := &service.AuthService{
		Users:    users,
		Signer:   signer,
		TokenTTL: 30 * time.Minute,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	Register(e, &Deps{
		AuthSvc:        authSvc,
		AuthHandler:    &AuthHTTP{Svc: authSvc},
		ProductHandler: &ProductHTTP{Svc: &service.CatalogService{Products: products}},
		CartHandler:    &CartHTTP{Svc: &service.CartService{Carts: carts, Products: products}},
		OrderHandler:   &OrderHTTP{Svc: &service.OrderService{Orders: orders}},
		SeedHandler:    &SeedHTTP{Seeder: &seed.Seeder{DB: db}},
	})

	return &testEnv{T: t, E: e, DB: db}
}

func (env *testEnv) doJSON(method, path string, body interface{}, bearer string) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doForm(path string, form url.Values) *httptest.ResponseRecorder {
	env.T.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// createUser writes a user straight to the DB, bypassing the register
// endpoint, so tests can mint admins.
func (env *testEnv) createUser(email, password string, admin bool) *models.User {
	env.T.Helper()

	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)

	user := &models.User{
		Email:        email,
		FullName:     "Test User",
		PasswordHash: pwHash,
		IsAdmin:      admin,
	}
	require.NoError(env.T, env.DB.Create(user).Error)
	return user
}

func (env *testEnv) loginToken(email, password string) string {
	env.T.Helper()

	rec := env.doForm("/token", url.Values{
		"username": {email},
		"password": {password},
	})
	require.Equal(env.T, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeJSON[map[string]string](env.T, rec)
	require.NotEmpty(env.T, resp["access_token"])
	require.Equal(env.T, "bearer", resp["token_type"])
	return resp["access_token"]
}

func (env *testEnv) createProduct(name string, price float64, category string) *models.Product {
	env.T.Helper()

	product := &models.Product{
		Name:        name,
		Description: "test product",
		Price:       price,
		Category:    category,
		Inventory:   10,
	}
	require.NoError(env.T, env.DB.Create(product).Error)
	return product
}
