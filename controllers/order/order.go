package orderControllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// TrackingID builds the customer-facing tracking reference: prefix, order id,
// and a random 4-digit suffix. Uniqueness is best-effort; the order id keeps
// collisions harmless.
func TrackingID(orderID uint) string {
	return fmt.Sprintf("TRK%d%d", orderID, rand.Intn(9000)+1000)
}

// Checkpoint is one step of the delivery timeline.
type Checkpoint struct {
	Step string    `json:"step"`
	Time time.Time `json:"time"`
}

// Timeline derives the four delivery checkpoints from the order date. It is
// recomputed on every read and never persisted.
func Timeline(orderDate time.Time) []Checkpoint {
	return []Checkpoint{
		{Step: "PLACE YOUR ORDER", Time: orderDate},
		{Step: "BILLING YOUR ORDER", Time: orderDate.Add(1 * time.Hour)},
		{Step: "LOADING YOUR ORDER", Time: orderDate.Add(3*time.Hour + 30*time.Minute)},
		{Step: "DELIVERY EXPECTED", Time: orderDate.Add(24 * time.Hour)},
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending, models.OrderStatusProcessing,
		models.OrderStatusShipped, models.OrderStatusDelivered,
		models.OrderStatusCancelled:
		return models.OrderStatus(status), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(status) {
	case models.PaymentStatusPending, models.PaymentStatusCompleted,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(status), nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// -------- Core Logic --------

// UpdateStatus moves an order along pending -> processing -> shipped ->
// delivered, or cancels it before shipping.
func UpdateStatus(db *gorm.DB, orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if !order.CanTransitionTo(next) {
			return ErrInvalidTransition
		}
		order.Status = next
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// GET /orders/:orderID
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var order models.Order
		if err := db.Preload("Items").Preload("Items.Product").Preload("Payment").
			First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/:orderID/delivery
func DeliveryDetailsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var order models.Order
		if err := db.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"order_id":          order.ID,
			"status":            order.Status,
			"order_date":        order.OrderDate,
			"expected_delivery": order.OrderDate.Add(24 * time.Hour),
			"timeline":          Timeline(order.OrderDate),
		})
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Preload("Items.Product").Preload("Payment").
			Order("order_date DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := UpdateStatus(db, id, status)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var payment models.Payment
			if err := tx.Where("order_id = ?", id).First(&payment).Error; err != nil {
				return err
			}
			payment.Status = status
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}
			return tx.Model(&models.Order{}).Where("id = ?", id).
				Update("payment_completed", status == models.PaymentStatusCompleted).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
