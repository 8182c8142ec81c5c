package order

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeeshop/internal/httpx"
)

type Handler struct {
	repo Repository
	log  *slog.Logger
}

func NewHandler(repo Repository, log *slog.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/api/orders", h.list)
	r.POST("/api/orders", h.create)
}

// list godoc
// @Summary List past orders, newest first
// @Produce json
// @Success 200 {array} order.Order
// @Router /api/orders [get]
func (h *Handler) list(c *gin.Context) {
	orders, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list orders", "error", err)
		httpx.Error(c, http.StatusInternalServerError, httpx.CodeInternal, "list orders")
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// create godoc
// @Summary Place an order
// @Accept json
// @Produce json
// @Param order body order.CreateOrderRequest true "customer name and item ids, one per unit"
// @Success 201 {object} order.Order
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /api/orders [post]
func (h *Handler) create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "invalid json")
		return
	}

	o := &Order{CustomerName: req.CustomerName, Items: req.Items}
	if err := h.repo.Place(c.Request.Context(), o); err != nil {
		var notFound *NotFoundError
		var insufficient *InsufficientInventoryError
		switch {
		case errors.Is(err, ErrEmptyOrder):
			httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, err.Error())
		case errors.As(err, &notFound):
			httpx.Error(c, http.StatusNotFound, httpx.CodeNotFound, err.Error())
		case errors.As(err, &insufficient):
			httpx.Error(c, http.StatusConflict, httpx.CodeInsufficientInventory, err.Error())
		default:
			h.log.Error("place order", "error", err)
			httpx.Error(c, http.StatusInternalServerError, httpx.CodeInternal, "place order")
		}
		return
	}

	h.log.Info("order placed",
		"order_id", o.ID,
		"customer", o.CustomerName,
		"units", len(o.Items),
		"total", o.Total)
	c.JSON(http.StatusCreated, o)
}
