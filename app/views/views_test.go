package views_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/views"
)

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, views.Render(&buf, nil))

	html := buf.String()
	assert.Contains(t, html, "<h1>Products</h1>")
	assert.Contains(t, html, `id="create-form"`)
	assert.Contains(t, html, "No products yet.")
	assert.NotContains(t, html, `class="product-form"`)
}

func TestRenderProductsWithEditForms(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, views.Render(&buf, []models.Product{
		{ID: 1, Name: "Widget", Price: 9.99, Stock: 3, ImgURL: "http://x/w.png"},
		{ID: 2, Name: "Gadget", Price: 0, Stock: 0},
	}))

	html := buf.String()
	assert.Equal(t, 2, strings.Count(html, `class="product-form"`))
	assert.Contains(t, html, `data-id="1"`)
	assert.Contains(t, html, "<h3>Product ID: 1</h3>")
	assert.Contains(t, html, "<h3>Product ID: 2</h3>")
	assert.Contains(t, html, `value="Widget"`)
	assert.Contains(t, html, `value="9.99"`)
	assert.Contains(t, html, `value="http://x/w.png"`)
	assert.Equal(t, 2, strings.Count(html, `data-action="delete"`))
}

func TestRenderEscapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, views.Render(&buf, []models.Product{
		{ID: 1, Name: `"><script>alert(1)</script>`, Description: "<b>bold</b>"},
	}))

	html := buf.String()
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, "<b>bold</b>")
	assert.Contains(t, html, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestStaticServesScript(t *testing.T) {
	rec := httptest.NewRecorder()
	views.Static().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, rec.Body.String(), `confirm(`)
	assert.Contains(t, rec.Body.String(), "location.reload()")
}
