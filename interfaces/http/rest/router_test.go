package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-admin/application/ports"
	"catalog-admin/application/ports/mocks"
	"catalog-admin/domain/catalog"
	"catalog-admin/pkg/auth"
	pkgerrors "catalog-admin/pkg/errors"
	"catalog-admin/pkg/observability"
)

type fixture struct {
	auth        *mocks.MockAuthService
	products    *mocks.MockProductService
	providers   *mocks.MockProviderService
	users       *mocks.MockUserService
	logos       *mocks.MockLogoService
	stats       *mocks.MockStatsService
	tags        *mocks.MockTagService
	diagnostics *mocks.MockDiagnosticsService
	handler     http.Handler
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	f := &fixture{
		auth:        new(mocks.MockAuthService),
		products:    new(mocks.MockProductService),
		providers:   new(mocks.MockProviderService),
		users:       new(mocks.MockUserService),
		logos:       new(mocks.MockLogoService),
		stats:       new(mocks.MockStatsService),
		tags:        new(mocks.MockTagService),
		diagnostics: new(mocks.MockDiagnosticsService),
	}

	f.auth.On("VerifyToken", mock.Anything, "admin-token").
		Return(&auth.Claims{UserID: "u-admin", Email: "admin@example.com", Roles: []string{"admin"}}, nil).Maybe()
	f.auth.On("VerifyToken", mock.Anything, "client-token").
		Return(&auth.Claims{UserID: "u-client", Email: "client@example.com", Roles: []string{"cliente"}}, nil).Maybe()
	f.auth.On("VerifyToken", mock.Anything, "forged").
		Return(nil, pkgerrors.NewUnauthorizedError("invalid token").WithCode("INVALID_TOKEN")).Maybe()

	opts := Options{
		EnableMetrics: true,
		StoreTimeout:  5 * time.Second,
		SessionCookie: "catalog_session",
		LoginWindow:   time.Minute,
	}
	if mutate != nil {
		mutate(&opts)
	}

	services := Services{
		Auth:        f.auth,
		Products:    f.products,
		Providers:   f.providers,
		Users:       f.users,
		Logos:       f.logos,
		Stats:       f.stats,
		Tags:        f.tags,
		Diagnostics: f.diagnostics,
	}
	limiter := auth.NewSlidingWindowLimiter(2, time.Minute)
	f.handler = NewRouter(services, limiter, observability.NewMetrics("catalog"), opts, zap.NewNop()).Setup()
	return f
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSimpleProductCreate(t *testing.T) {
	f := newFixture(t, nil)
	f.products.On("CreateSimple", mock.Anything, ports.CreateSimpleProductInput{Name: "Widget"}).Return(&catalog.Product{
		ID:        "0b6f3c1e-2f43-4b8e-9a57-2d0c0d7f5a10",
		Name:      "Widget",
		CreatedAt: "2024-05-01T12:00:00.000Z",
		UpdatedAt: "2024-05-01T12:00:00.000Z",
	}, nil)

	rec := f.do(http.MethodPost, "/api/simple-dynamodb/products", "admin-token", `{"name":"Widget"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Len(t, data, 4)
	assert.Equal(t, "Widget", data["name"])
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, data["createdAt"], data["updatedAt"])
}

func TestTagsEmpty(t *testing.T) {
	f := newFixture(t, nil)
	f.tags.On("List", mock.Anything, "").Return([]string{}, nil)

	rec := f.do(http.MethodGet, "/api/tags", "client-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"tags":[]}`, rec.Body.String())
}

func TestTagsSource(t *testing.T) {
	f := newFixture(t, nil)
	f.tags.On("List", mock.Anything, "products").Return([]string{"cafe", "tech"}, nil)

	rec := f.do(http.MethodGet, "/api/tags?source=products", "client-token", "")

	assert.JSONEq(t, `{"success":true,"tags":["cafe","tech"]}`, rec.Body.String())
}

func TestLoginEmptyFields(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.On("Login", mock.Anything, ports.LoginInput{Email: "", Password: ""}).
		Return(nil, pkgerrors.NewValidationError("email and password are required"))

	rec := f.do(http.MethodPost, "/api/auth/login", "", `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, "email and password are required", body["error"])
}

func TestLoginMalformedBody(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/api/auth/login", "", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginSetsCookie(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.On("Login", mock.Anything, ports.LoginInput{Email: "ana@example.com", Password: "pw"}).Return(&ports.Session{
		Token:     "signed",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &catalog.User{ID: "u-1", Email: "ana@example.com", Password: "$2a$hash"},
	}, nil)

	rec := f.do(http.MethodPost, "/api/auth/login", "", `{"email":"ana@example.com","password":"pw"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "catalog_session", cookies[0].Name)
	assert.Equal(t, "signed", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginIgnoresExtraFormFields(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.On("Login", mock.Anything, ports.LoginInput{Email: "ana@example.com", Password: "pw"}).Return(&ports.Session{
		Token:     "signed",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &catalog.User{ID: "u-1", Email: "ana@example.com"},
	}, nil)

	rec := f.do(http.MethodPost, "/api/auth/login", "",
		`{"email":"ana@example.com","password":"pw","csrfToken":"abc","callbackUrl":"/dashboard","json":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	f.auth.AssertExpectations(t)
}

func TestLogoutClearsCookie(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/api/auth/logout", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestLoginRateLimited(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.On("Login", mock.Anything, mock.Anything).
		Return(nil, pkgerrors.NewUnauthorizedError("invalid credentials"))

	for i := 0; i < 2; i++ {
		rec := f.do(http.MethodPost, "/api/auth/login", "", `{"email":"a@b.co","password":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := f.do(http.MethodPost, "/api/auth/login", "", `{"email":"a@b.co","password":"x"}`)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeBody(t, rec)["code"])
}

func TestVerifyTokenFromCookie(t *testing.T) {
	f := newFixture(t, nil)
	f.auth.On("VerifyToken", mock.Anything, "cookie-token").
		Return(&auth.Claims{UserID: "u-1", Roles: []string{"ejecutivo"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-token", nil)
	req.AddCookie(&http.Cookie{Name: "catalog_session", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "ejecutivo", data["role"])
}

func TestAuthRequired(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/api/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodGet, "/api/stats", "forged", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeBody(t, rec)["code"])
}

func TestRoleChecks(t *testing.T) {
	f := newFixture(t, nil)
	f.products.On("List", mock.Anything, mock.Anything).
		Return(catalog.ListResult[catalog.Product]{Items: []catalog.Product{}}, nil)

	rec := f.do(http.MethodGet, "/api/products", "client-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/products", "client-token", `{"name":"X"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/users", "client-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListFiltersFromQuery(t *testing.T) {
	f := newFixture(t, nil)
	minPrice := 10.0
	f.products.On("List", mock.Anything, catalog.ProductFilter{
		Status:   "active",
		Tag:      "tech",
		MinPrice: &minPrice,
		Limit:    5,
	}).Return(catalog.ListResult[catalog.Product]{Items: []catalog.Product{}, TotalCount: 12}, nil)

	rec := f.do(http.MethodGet, "/api/products?status=active&tag=tech&minPrice=10&limit=5", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"items":[],"totalCount":12}}`, rec.Body.String())
}

func TestErrorMapping(t *testing.T) {
	f := newFixture(t, nil)
	f.products.On("Get", mock.Anything, "missing").Return(nil, pkgerrors.NewNotFoundError("product"))
	f.products.On("Get", mock.Anything, "down").Return(nil, pkgerrors.NewUnavailableError("dynamodb").WithCode("CIRCUIT_OPEN"))
	f.products.On("Get", mock.Anything, "broken").
		Return(nil, pkgerrors.NewDatabaseError("GetItem", errors.New("secret table arn")))
	f.products.On("Get", mock.Anything, "raw").Return(nil, errors.New("boom"))
	f.users.On("Create", mock.Anything, mock.Anything).
		Return(nil, pkgerrors.NewConflictError("a user with this email already exists").WithCode("EMAIL_TAKEN"))

	rec := f.do(http.MethodGet, "/api/products/missing", "admin-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, rec)["code"])

	rec = f.do(http.MethodGet, "/api/products/down", "admin-token", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = f.do(http.MethodGet, "/api/products/broken", "admin-token", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret table arn")
	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])

	rec = f.do(http.MethodGet, "/api/products/raw", "admin-token", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")

	rec = f.do(http.MethodPost, "/api/users", "admin-token", `{"email":"a@b.co","password":"longenough","name":"A"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMAIL_TAKEN", decodeBody(t, rec)["code"])
}

func TestPatchIgnoresReadOnlyFields(t *testing.T) {
	f := newFixture(t, nil)
	name := "Renamed"
	f.products.On("Update", mock.Anything, "p-1", catalog.ProductPatch{Name: &name}).
		Return(&catalog.Product{ID: "p-1", Name: name}, nil)

	rec := f.do(http.MethodPut, "/api/products/p-1", "admin-token", `{"id":"p-1","name":"Renamed","createdAt":"x"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserStatsAndSummary(t *testing.T) {
	f := newFixture(t, nil)
	us := catalog.NewUserStats()
	us.Add("active", "admin")
	f.users.On("Stats", mock.Anything).Return(us, nil)

	sc := catalog.NewStatusCounts(catalog.ProductStatuses)
	sc.Add("draft")
	f.stats.On("Summary", mock.Anything).Return(catalog.Summary{Products: sc}, nil)

	rec := f.do(http.MethodGet, "/api/users/stats", "client-token", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/stats", "client-token", "")
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeBody(t, rec)["data"].(map[string]interface{})["products"].(map[string]interface{})
	assert.EqualValues(t, 1, products["total"])
}

func TestLogoSetPrimary(t *testing.T) {
	f := newFixture(t, nil)
	f.logos.On("SetPrimary", mock.Anything, "l-1").Return(&catalog.Logo{ID: "l-1", IsPrimary: true}, nil)

	rec := f.do(http.MethodPost, "/api/logos/l-1/primary", "admin-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	f.logos.AssertExpectations(t)
}

func TestDebugRoutes(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.do(http.MethodGet, "/api/debug/connection", "admin-token", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	f = newFixture(t, func(o *Options) {
		o.EnableDebugRoutes = true
		o.ConfigSummary = map[string]interface{}{"environment": "test"}
	})
	f.diagnostics.On("Connections", mock.Anything).Return(map[string]bool{"users": true})

	rec = f.do(http.MethodGet, "/api/debug/connection", "client-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(http.MethodGet, "/api/debug/connection", "admin-token", "")
	assert.JSONEq(t, `{"success":true,"data":{"users":true}}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/debug/config", "admin-token", "")
	assert.JSONEq(t, `{"success":true,"data":{"environment":"test"}}`, rec.Body.String())
}

func TestHealthReadyMetrics(t *testing.T) {
	f := newFixture(t, nil)
	f.diagnostics.On("Ready", mock.Anything).Return(false).Once()
	f.diagnostics.On("Ready", mock.Anything).Return(true).Once()

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.JSONEq(t, `{"success":true,"status":"healthy"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = f.do(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_http_requests_total")
}
