package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/qr"
	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	orders *services.OrderService
	stock  *services.StockService
	rdb    *redis.Client
}

func NewHandler(orders *services.OrderService, stock *services.StockService, rdb *redis.Client) *Handler {
	return &Handler{orders: orders, stock: stock, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/buyer/:buyerId", h.GetOrdersByBuyer)
	r.POST("/orders/:id/confirm-payment", h.ConfirmPayment)
	r.POST("/orders/:id/deliver", h.DeliverToBranch)
	r.POST("/orders/scan", h.ScanForPickupReady)
	r.POST("/orders/:id/pickup", h.ConfirmPickup)
	r.PATCH("/orders/:id/status", h.SetStatus)
	r.PATCH("/products/:id/stock", h.SetStock)
	r.GET("/products/:id", h.GetProduct)
}

// actorID comes from the auth layer in front of this service.
func actorID(c *gin.Context) string {
	return c.GetHeader("X-User-Id")
}

// statusFromError maps the error taxonomy onto stable HTTP categories so
// clients can branch on kind without parsing messages.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrBranchNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, qr.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrProductInactive),
		errors.Is(err, domain.ErrBranchInactive),
		errors.Is(err, domain.ErrInvalidCode),
		errors.Is(err, qr.ErrExpired),
		errors.Is(err, qr.ErrSecretMismatch):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func buyerOrdersKey(buyerID string) string {
	return "orders:buyer:" + buyerID
}

func (h *Handler) invalidateBuyerCache(buyerID string) {
	h.rdb.Del(context.Background(), buyerOrdersKey(buyerID))
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		BuyerID:         actorID(c),
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		DeliveryMode:    domain.DeliveryMode(req.DeliveryMode),
		BranchID:        req.BranchID,
		DeliveryAddress: req.DeliveryAddress,
		Note:            req.Note,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateBuyerCache(order.BuyerID)
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrderByID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrdersByBuyer(c *gin.Context) {
	buyerID := c.Param("buyerId")
	ctx := c.Request.Context()

	key := buyerOrdersKey(buyerID)
	if b, err := h.rdb.Get(ctx, key).Result(); err == nil {
		var orders []domain.Order
		if json.Unmarshal([]byte(b), &orders) == nil {
			c.JSON(http.StatusOK, orders)
			return
		}
	}

	orders, err := h.orders.GetOrdersByBuyer(buyerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if data, err := json.Marshal(orders); err == nil {
		h.rdb.Set(ctx, key, data, 10*time.Second)
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.ConfirmPayment(c.Request.Context(), c.Param("id"), actorID(c), req.Method)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateBuyerCache(order.BuyerID)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeliverToBranch(c *gin.Context) {
	order, err := h.orders.DeliverToBranch(c.Request.Context(), c.Param("id"), actorID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateBuyerCache(order.BuyerID)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ScanForPickupReady(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.ScanForPickupReady(c.Request.Context(), req.QRCode, actorID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateBuyerCache(order.BuyerID)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ConfirmPickup(c *gin.Context) {
	var req ConfirmPickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.ConfirmPickup(c.Request.Context(), c.Param("id"), req.PickupCode, actorID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateBuyerCache(order.BuyerID)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.SetStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status), actorID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.invalidateBuyerCache(order.BuyerID)
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.stock.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) SetStock(c *gin.Context) {
	var req SetStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.stock.ManualSet(c.Request.Context(), c.Param("id"), *req.Stock, actorID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": *req.Stock})
}
