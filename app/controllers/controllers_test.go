package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/app/controllers"
	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/routes"
	"github.com/shashiranjanraj/catalog/pkg/app"
	"github.com/shashiranjanraj/catalog/pkg/ctx"
	"github.com/shashiranjanraj/catalog/pkg/database"
	"github.com/shashiranjanraj/catalog/pkg/testkit"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.Options{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "products.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func handlerFor(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()
	a := app.New().
		WithDB(db).
		AutoMigrate(&models.Product{}).
		Routes(routes.Register)
	require.NoError(t, a.Boot(context.Background()))
	return a.Handler()
}

func newHandler(t *testing.T) http.Handler {
	return handlerFor(t, openDB(t))
}

func do(h http.Handler, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestScenarios(t *testing.T) {
	testkit.RunDir(t, newHandler, "testdata")
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	h := newHandler(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		rec := do(h, method, "/api/products/abc", `{"name":"x","price":1,"stock":1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, method)
		assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String(), method)
	}
}

func TestUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	h := newHandler(t)
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/products", `{"name":"Widget","price":1.5,"stock":2}`).Code)
	before := do(h, http.MethodGet, "/api/products", "").Body.String()

	rec := do(h, http.MethodPut, "/api/products/42", `{"name":"Other","price":1,"stock":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())

	assert.JSONEq(t, before, do(h, http.MethodGet, "/api/products", "").Body.String())
}

func TestMalformedJSON(t *testing.T) {
	h := newHandler(t)

	rec := do(h, http.MethodPost, "/api/products", `{"name":"Widget",`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"invalid JSON:`)

	assert.JSONEq(t, `{"res":[]}`, do(h, http.MethodGet, "/api/products", "").Body.String())
}

func TestMalformedUpdateRejected(t *testing.T) {
	h := newHandler(t)
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/products", `{"name":"Widget","price":9.99,"stock":5}`).Code)
	before := do(h, http.MethodGet, "/api/products", "").Body.String()

	rec := do(h, http.MethodPut, "/api/products/1", `{"name":"Widget","price":"a","stock":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"invalid JSON:`)

	rec = do(h, http.MethodPut, "/api/products/1", `{"price":1`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.JSONEq(t, before, do(h, http.MethodGet, "/api/products", "").Body.String())
}

func TestZeroPriceAndStockAccepted(t *testing.T) {
	h := newHandler(t)

	rec := do(h, http.MethodPost, "/api/products", `{"name":"Freebie","price":0,"stock":0}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"res":"Product Freebie added successfully"}`, rec.Body.String())
}

func TestIndexPage(t *testing.T) {
	h := newHandler(t)
	require.Equal(t, http.StatusCreated, do(h, http.MethodPost, "/api/products", `{"name":"<Widget>","price":9.99,"stock":3}`).Code)

	rec := do(h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "&lt;Widget&gt;")
	assert.Contains(t, rec.Body.String(), `data-id="1"`)

	rec = do(h, http.MethodGet, "/static/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStoreFailureIsGeneric500(t *testing.T) {
	db := openDB(t)
	h := handlerFor(t, db)
	require.NoError(t, database.Close(db))

	rec := do(h, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())

	rec = do(h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := do(newHandler(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"res":"ok"}`, rec.Body.String())

	hc := controllers.NewHealthController(func(context.Context) error { return errors.New("down") })
	rec = httptest.NewRecorder()
	ctx.Wrap(hc.Check)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"database unavailable"}`, rec.Body.String())
}

func TestResponsesCarryRequestID(t *testing.T) {
	rec := do(newHandler(t), http.MethodGet, "/api/products", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
