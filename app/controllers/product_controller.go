package controllers

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/catalog/app/models"
	"github.com/shashiranjanraj/catalog/app/repositories"
	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/pkg/ctx"
)

const msgNotFound = "Product not found"

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// List handles GET /api/products.
func (pc *ProductController) List(c *ctx.Context) {
	products, err := pc.service.List(c.Context())
	if err != nil {
		pc.fail(c, err)
		return
	}
	c.Success(products)
}

// Store handles POST /api/products.
func (pc *ProductController) Store(c *ctx.Context) {
	var in models.ProductInput
	if !c.BindJSON(&in) {
		return
	}

	p, err := pc.service.Create(c.Context(), in.Fields())
	if err != nil {
		pc.fail(c, err)
		return
	}
	c.Created(fmt.Sprintf("Product %s added successfully", p.Name))
}

// Update handles PUT /api/products/{id}.
func (pc *ProductController) Update(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		c.NotFound(msgNotFound)
		return
	}

	var in models.ProductInput
	if !c.BindJSON(&in) {
		return
	}

	if _, err := pc.service.Update(c.Context(), id, in.Fields()); err != nil {
		pc.fail(c, err)
		return
	}
	c.Success(fmt.Sprintf("Product %d updated successfully", id))
}

// Destroy handles DELETE /api/products/{id}.
func (pc *ProductController) Destroy(c *ctx.Context) {
	id, ok := c.ParamUint("id")
	if !ok {
		c.NotFound(msgNotFound)
		return
	}

	if err := pc.service.Delete(c.Context(), id); err != nil {
		pc.fail(c, err)
		return
	}
	c.Success(fmt.Sprintf("Product %d deleted successfully", id))
}

func (pc *ProductController) fail(c *ctx.Context, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		c.NotFound(msgNotFound)
		return
	}
	c.Logger().Error("product request failed", "error", err, "method", c.R.Method, "path", c.R.URL.Path)
	c.InternalError()
}
