// Catalog HTTP handlers.
//
// This file exposes REST endpoints for the product catalog:
//   - GET /products          (list, with category/featured filters, ETag support)
//   - GET /products/{id}     (fetch one)
//
// The catalog is immutable after seeding, which makes the list endpoint an
// ideal candidate for conditional requests: the weak ETag is derived from the
// filter and the result set, so unchanged catalogs answer with 304.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tilevista/go-store-backend/internal/services"
)

// ListProducts godoc
// @ID          listProducts
// @Summary     List catalog products
// @Description Returns catalog entries, optionally filtered by category and featured flag. Filters intersect. Supports weak ETag via If-None-Match.
// @Tags        Products
// @Produce     json
//
// @Param       category  query  string  false  "Category filter"  Enums(tile, sanitary)
// @Param       featured  query  bool    false  "Only featured entries"
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
//
// @Success     200  {array}   domain.Product
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	filter := services.ProductFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Featured: parseBoolParam(c.Query("featured")),
	}

	items, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	// Products never change after seeding, so count plus max ID pins the
	// result for a given filter.
	maxID := 0
	for _, p := range items {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	etag := fmt.Sprintf(`W/"products:%s:%t:%d:%d"`, filter.Category, filter.Featured, len(items), maxID)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return
	}

	ok(c, http.StatusOK, items)
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Fetch one product
// @Description Returns a single catalog entry by its numeric ID.
// @Tags        Products
// @Produce     json
//
// @Param       id  path  int  true  "Product ID"  minimum(1)
//
// @Success     200  {object}  domain.Product
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Product not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "product id must be a positive integer")
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "product not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// parseBoolParam treats "true", "1", "yes" (case-insensitive) as true and
// everything else, including absence, as false.
func parseBoolParam(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
