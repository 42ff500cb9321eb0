// Package ctx gives handlers a single request context instead of the
// (http.ResponseWriter, *http.Request) pair:
//
//	func (pc *ProductController) Destroy(c *ctx.Context) {
//	    id, ok := c.ParamUint("id")
//	    ...
//	    c.Success("Product 1 deleted successfully")
//	}
//
//	router.Delete("/api/products/{id}", "products.destroy", ctx.Wrap(pc.Destroy))
package ctx

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/catalog/pkg/bind"
	"github.com/shashiranjanraj/catalog/pkg/logger"
	"github.com/shashiranjanraj/catalog/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc into an http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// ParamUint parses a path parameter as an unsigned id. ok is false for
// anything that is not a base-10 integer.
func (c *Context) ParamUint(key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// Context returns the request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Logger returns the request-scoped logger.
func (c *Context) Logger() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// BindJSON decodes and validates the body into dest. When it returns false
// a 400 has already been written:
//
//	{"error": "invalid JSON: ..."}                     malformed body
//	{"error": "Validation failed", "fields": {...}}    rule failures
func (c *Context) BindJSON(dest any) bool {
	errs, err := bind.JSON(c.R, dest)
	if err != nil {
		c.Error(http.StatusBadRequest, strings.TrimPrefix(err.Error(), bind.ErrMalformed.Error()+": "))
		return false
	}
	if len(errs) > 0 {
		response.ValidationError(c.W, errs)
		return false
	}
	return true
}

// Success sends 200 {"res": data}.
func (c *Context) Success(data any) {
	response.Success(c.W, data)
}

// Created sends 201 {"res": data}.
func (c *Context) Created(data any) {
	response.Created(c.W, data)
}

// Error sends {"error": message}.
func (c *Context) Error(code int, message string) {
	response.Error(c.W, code, message)
}

// NotFound sends 404.
func (c *Context) NotFound(message string) {
	response.NotFound(c.W, message)
}

// InternalError sends the generic 500 body.
func (c *Context) InternalError() {
	response.InternalError(c.W)
}

// HTML writes an already rendered page.
func (c *Context) HTML(code int, page []byte) {
	c.W.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.W.WriteHeader(code)
	c.W.Write(page) //nolint:errcheck
}
