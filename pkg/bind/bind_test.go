package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/pkg/bind"
)

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
}

func TestJSONDecodesAndValidates(t *testing.T) {
	var in models.ProductInput
	errs, err := bind.JSON(post(`{"name":"Widget","price":9.99,"stock":5,"brand":"Acme"}`), &in)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "Widget", in.Name)
	require.NotNil(t, in.Price)
	assert.Equal(t, 9.99, *in.Price)
}

func TestJSONReportsMissingFields(t *testing.T) {
	var in models.ProductInput
	errs, err := bind.JSON(post(`{"name":"Widget"}`), &in)

	require.NoError(t, err)
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stock")
}

func TestJSONMalformed(t *testing.T) {
	cases := map[string]string{
		"syntax":     `{"name":`,
		"wrong type": `{"name":"Widget","price":"cheap","stock":1}`,
		"empty":      ``,
		"trailing":   `{"name":"a","price":1,"stock":1} {}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var in models.ProductInput
			_, err := bind.JSON(post(body), &in)
			assert.ErrorIs(t, err, bind.ErrMalformed)
		})
	}
}
