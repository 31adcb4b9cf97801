// Quote order HTTP handlers.
//
// This file exposes the quote intake endpoints:
//   - POST /orders        (submit a quote request, idempotent via Idempotency-Key)
//   - GET  /orders/{id}   (fetch one)
//
// A retry carrying the Idempotency-Key of an already-created order is served
// that order with 200 instead of creating a duplicate with 201.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/http/middleware"
	"github.com/tilevista/go-store-backend/internal/services"
)

// CreateOrder godoc
// @ID          createOrder
// @Summary     Submit a quote request
// @Description Validates and stores a quote request. Status is always "pending" at creation. Supports Idempotency-Key for safe retries.
// @Tags        Orders
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Deduplication key for retries"
// @Param       body  body  domain.NewOrder  true  "Quote request payload"
//
// @Success     201  {object}  domain.Order
// @Success     200  {object}  domain.Order "Replay of a previous submission"
// @Failure     400  {object}  handlers.ErrorResponse "Validation failure"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /orders [post]
func (h *Handlers) CreateOrder(c *gin.Context) {
	// Serve replays before touching the body, so a retry succeeds even with
	// a mangled payload.
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && h.replays != nil {
		if orderID, seen := h.replays.Get(key); seen {
			o, err := h.orders.Get(c.Request.Context(), orderID)
			if err == nil {
				ok(c, http.StatusOK, o)
				return
			}
			// Cached order vanished (e.g. memory backend restart): fall
			// through and create anew.
		}
	}

	var req domain.NewOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	o, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidOrder) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}

	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey && h.replays != nil {
		h.replays.Put(key, o.ID)
	}
	ok(c, http.StatusCreated, o)
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Fetch one order
// @Description Returns a single quote request by its numeric ID.
// @Tags        Orders
// @Produce     json
//
// @Param       id  path  int  true  "Order ID"  minimum(1)
//
// @Success     200  {object}  domain.Order
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Order not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /orders/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "order id must be a positive integer")
		return
	}

	o, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "order not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, o)
}
