package controllers

import (
	"bytes"
	"net/http"

	"github.com/shashiranjanraj/catalog/app/services"
	"github.com/shashiranjanraj/catalog/app/views"
	"github.com/shashiranjanraj/catalog/pkg/ctx"
)

type PageController struct {
	service *services.ProductService
}

func NewPageController(service *services.ProductService) *PageController {
	return &PageController{service: service}
}

// Index handles GET / with the full catalog page.
func (pc *PageController) Index(c *ctx.Context) {
	products, err := pc.service.List(c.Context())
	if err != nil {
		c.Logger().Error("list products for page", "error", err)
		c.InternalError()
		return
	}

	var buf bytes.Buffer
	if err := views.Render(&buf, products); err != nil {
		c.Logger().Error("render page", "error", err)
		c.InternalError()
		return
	}
	c.HTML(http.StatusOK, buf.Bytes())
}
