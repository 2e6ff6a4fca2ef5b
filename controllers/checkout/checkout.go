// Package checkoutControllers implements the single-item direct-checkout
// pipeline: quoting a priced breakdown for a product, validating the
// customer and payment fields, and atomically persisting the resulting
// Order, OrderItem and Payment.
package checkoutControllers

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	orderControllers "github.com/sunitha-d63/cherriBakery/controllers/order"
	"github.com/sunitha-d63/cherriBakery/models"
	"github.com/sunitha-d63/cherriBakery/pricing"
	"github.com/sunitha-d63/cherriBakery/validators"
)

var (
	ErrProductNotFound = errors.New("product not found")

	pincodeRe = regexp.MustCompile(`^\d{6}$`)
)

// -------- Quote --------

type QuoteRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Weight    string `json:"weight" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
}

// POST /checkout/quote
// Prices a single product for direct checkout and echoes back the breakdown
// the client must submit unchanged with the order.
func QuoteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		errs := validators.Errors{}
		if !pincodeRe.MatchString(req.Pincode) {
			errs["pincode"] = "enter a valid 6-digit pincode"
		}

		var product models.Product
		if err := db.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if !pricing.WeightAllowed(req.Weight, product.WeightList()) {
			errs["weight"] = "select one of the offered weights"
		}
		if len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
			return
		}

		quote, err := pricing.NewQuote(product.BasePrice, req.Quantity)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validators.Errors{"quantity": err.Error()}})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"product": gin.H{
				"id":          product.ID,
				"title":       product.Title,
				"description": product.Description,
				"image":       product.Image,
				"base_price":  product.BasePrice,
				"weight":      pricing.NormalizeWeight(req.Weight),
				"quantity":    req.Quantity,
			},
			"prices": quote,
		})
	}
}

// -------- Submission --------

// CheckoutRequest keeps the field names of the storefront's payment form.
// Money fields arrive as strings and are parsed strictly.
type CheckoutRequest struct {
	Name          string `json:"name"`
	Location      string `json:"location"`
	Mobile        string `json:"mobile"`
	Notes         string `json:"notes"`
	Address       string `json:"address"`
	PaymentOption string `json:"paymentOption"`

	UPIID      string `json:"upi_id"`
	WalletID   string `json:"wallet_id"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`

	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Weight    string `json:"weight" binding:"required"`

	Subtotal    string `json:"subtotal"`
	Discount    string `json:"discount"`
	DeliveryFee string `json:"delivery_fee"`
	GST         string `json:"gst"`
	Total       string `json:"total"`
	BasePrice   string `json:"base_price"`
}

// Confirmation is the derived tracking data returned with a new order; the
// timeline is never stored.
type Confirmation struct {
	TrackingID       string                        `json:"tracking_id"`
	ExpectedDelivery time.Time                     `json:"expected_delivery"`
	Timeline         []orderControllers.Checkpoint `json:"timeline"`
}

// prices holds the parsed money fields of a checkout submission.
type prices struct {
	subtotal, discount, deliveryFee, gst, total, basePrice decimal.Decimal
}

// parsePrices parses every submitted money field, reporting each malformed
// one under its own key instead of stopping at the first.
func parsePrices(req CheckoutRequest, errs validators.Errors) prices {
	parse := func(field, value string) decimal.Decimal {
		d, err := pricing.ParseAmount(value)
		if err != nil {
			errs[field] = err.Error()
		}
		return d
	}
	return prices{
		subtotal:    parse("subtotal", req.Subtotal),
		discount:    parse("discount", req.Discount),
		deliveryFee: parse("delivery_fee", req.DeliveryFee),
		gst:         parse("gst", req.GST),
		total:       parse("total", req.Total),
		basePrice:   parse("base_price", req.BasePrice),
	}
}

// Validate runs every checkout validator and returns the accumulated
// field-error map; an empty map means the submission may proceed.
func Validate(req CheckoutRequest) validators.Errors {
	errs := validators.Checkout(
		validators.CheckoutInput{
			Name:     req.Name,
			Location: req.Location,
			Mobile:   req.Mobile,
			Notes:    req.Notes,
			Address:  req.Address,
		},
		validators.PaymentInput{
			Method:     req.PaymentOption,
			UPIID:      req.UPIID,
			WalletID:   req.WalletID,
			CardNumber: req.CardNumber,
			Expiry:     req.Expiry,
			CVV:        req.CVV,
		},
	)
	parsePrices(req, errs)
	return errs
}

// SubmitOrder persists the order, its single item and the payment record in
// one transaction. The caller must have validated req first; malformed money
// fields still fail here rather than being coerced.
func SubmitOrder(db *gorm.DB, req CheckoutRequest) (*models.Order, error) {
	errs := validators.Errors{}
	p := parsePrices(req, errs)
	if len(errs) > 0 {
		return nil, errors.New("unvalidated checkout submission")
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		order = models.Order{
			CustomerName:     req.Name,
			CustomerMobile:   req.Mobile,
			DeliveryLocation: req.Location,
			DeliveryAddress:  req.Address,
			SpecialNotes:     req.Notes,
			PaymentMethod:    models.PaymentMethod(req.PaymentOption),
			Subtotal:         pricing.Round2(p.subtotal),
			Discount:         pricing.Round2(p.discount),
			DeliveryFee:      pricing.Round2(p.deliveryFee),
			TaxAmount:        pricing.Round2(p.gst),
			TotalAmount:      pricing.Round2(p.total),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
			UnitPrice: pricing.Round2(p.basePrice),
			Weight:    pricing.NormalizeWeight(req.Weight),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		order.Items = []models.OrderItem{item}

		payment := models.Payment{
			OrderID:       order.ID,
			Amount:        order.TotalAmount,
			Status:        models.PaymentStatusPending,
			TransactionID: uuid.NewString(),
		}
		switch order.PaymentMethod {
		case models.PaymentMethodUPI:
			payment.UPIID = req.UPIID
		case models.PaymentMethodWallet:
			payment.WalletID = req.WalletID
		case models.PaymentMethodCredit:
			if n := len(req.CardNumber); n >= 4 {
				payment.CardLast4 = req.CardNumber[n-4:]
			}
			payment.CardExpiry = req.Expiry
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		order.Payment = &payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /checkout
func ProcessCheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := Validate(req); len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs, "form_data": req})
			return
		}

		order, err := SubmitOrder(db, req)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		go orderControllers.BroadcastNewOrder(order)

		timeline := orderControllers.Timeline(order.OrderDate)
		c.JSON(http.StatusCreated, gin.H{
			"order": order,
			"confirmation": Confirmation{
				TrackingID:       orderControllers.TrackingID(order.ID),
				ExpectedDelivery: timeline[len(timeline)-1].Time,
				Timeline:         timeline,
			},
		})
	}
}
