package menu

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

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
	r.GET("/api/menu", h.list)
	r.POST("/api/menu", h.create)
	r.PUT("/api/menu/:id", h.update)
	r.DELETE("/api/menu/:id", h.delete)
}

// list godoc
// @Summary List menu items
// @Produce json
// @Success 200 {array} menu.MenuItem
// @Router /api/menu [get]
func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list menu items", "error", err)
		httpx.Error(c, http.StatusInternalServerError, httpx.CodeInternal, "list menu items")
		return
	}
	if items == nil {
		items = []MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// create godoc
// @Summary Add a menu item
// @Accept json
// @Produce json
// @Param item body menu.CreateItemRequest true "menu item"
// @Success 201 {object} menu.MenuItem
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/menu [post]
func (h *Handler) create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "invalid json")
		return
	}

	if req.Name == "" {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "name is required")
		return
	}
	price, err := normalizePrice(req.Price)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, err.Error())
		return
	}
	if req.Inventory < 0 {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "inventory must be non-negative")
		return
	}

	m := &MenuItem{Name: req.Name, Price: price, Inventory: req.Inventory}
	if err := h.repo.Create(c.Request.Context(), m); err != nil {
		h.log.Error("create menu item", "error", err)
		httpx.Error(c, http.StatusInternalServerError, httpx.CodeInternal, "create menu item")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// update godoc
// @Summary Edit a menu item (partial)
// @Accept json
// @Produce json
// @Param id path int true "menu item id"
// @Param item body menu.UpdateItemRequest true "fields to update"
// @Success 200 {object} menu.MenuItem
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/menu/{id} [put]
func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "invalid id")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "invalid json")
		return
	}
	if req.Name == nil && req.Price == nil && req.Inventory == nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "no fields to update")
		return
	}
	if req.Name != nil && *req.Name == "" {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "name is required")
		return
	}
	if req.Price != nil {
		price, err := normalizePrice(*req.Price)
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, err.Error())
			return
		}
		req.Price = &price
	}
	if req.Inventory != nil && *req.Inventory < 0 {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "inventory must be non-negative")
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.Error(c, http.StatusNotFound, httpx.CodeNotFound, ErrNotFound.Error())
			return
		}
		h.log.Error("update menu item", "id", id, "error", err)
		httpx.Error(c, http.StatusInternalServerError, httpx.CodeInternal, "update menu item")
		return
	}

	m, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, http.StatusNotFound, httpx.CodeNotFound, ErrNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, m)
}

// delete godoc
// @Summary Remove a menu item
// @Param id path int true "menu item id"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/menu/{id} [delete]
func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, httpx.CodeValidation, "invalid id")
		return
	}
	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete menu item", "id", id, "error", err)
		httpx.Error(c, http.StatusInternalServerError, httpx.CodeInternal, "delete menu item")
		return
	}
	if !ok {
		httpx.Error(c, http.StatusNotFound, httpx.CodeNotFound, ErrNotFound.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// normalizePrice parses a price string and renders it with two decimal
// places so stored values match what Postgres returns for NUMERIC(10,2).
func normalizePrice(s string) (string, error) {
	if s == "" {
		return "", &ValidationError{Reason: "price is required"}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", &ValidationError{Reason: "price must be a decimal number"}
	}
	if d.IsNegative() {
		return "", &ValidationError{Reason: "price must be non-negative"}
	}
	return d.StringFixed(2), nil
}
