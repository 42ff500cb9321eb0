package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/catalog/pkg/response"
)

func TestShapes(t *testing.T) {
	cases := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{"created", func(w http.ResponseWriter) { response.Created(w, "Product Widget added successfully") },
			http.StatusCreated, `{"res":"Product Widget added successfully"}`},
		{"empty list", func(w http.ResponseWriter) { response.Success(w, []string{}) },
			http.StatusOK, `{"res":[]}`},
		{"not found", func(w http.ResponseWriter) { response.NotFound(w, "Product not found") },
			http.StatusNotFound, `{"error":"Product not found"}`},
		{"validation", func(w http.ResponseWriter) { response.ValidationError(w, map[string]string{"name": "required"}) },
			http.StatusBadRequest, `{"error":"Validation failed","fields":{"name":"required"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}
