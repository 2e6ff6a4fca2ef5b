package orderControllers

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sunitha-d63/cherriBakery/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.Payment{}))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, status models.OrderStatus) *models.Order {
	t.Helper()
	order := models.Order{
		CustomerName:     "Anita Kumar",
		CustomerMobile:   "9876543210",
		DeliveryLocation: "Chennai",
		DeliveryAddress:  "12, Anna Salai, T Nagar, Chennai",
		Status:           status,
		PaymentMethod:    models.PaymentMethodCOD,
		Subtotal:         decimal.RequireFromString("400.00"),
		DeliveryFee:      decimal.RequireFromString("40.00"),
		TaxAmount:        decimal.RequireFromString("17.00"),
		TotalAmount:      decimal.RequireFromString("397.00"),
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func TestTrackingIDShape(t *testing.T) {
	re := regexp.MustCompile(`^TRK42\d{4}$`)
	for i := 0; i < 20; i++ {
		id := TrackingID(42)
		assert.Regexp(t, re, id)
	}
}

func TestTimelineCheckpoints(t *testing.T) {
	placed := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	timeline := Timeline(placed)
	require.Len(t, timeline, 4)

	assert.Equal(t, "PLACE YOUR ORDER", timeline[0].Step)
	assert.Equal(t, placed, timeline[0].Time)
	assert.Equal(t, "BILLING YOUR ORDER", timeline[1].Step)
	assert.Equal(t, placed.Add(1*time.Hour), timeline[1].Time)
	assert.Equal(t, "LOADING YOUR ORDER", timeline[2].Step)
	assert.Equal(t, placed.Add(3*time.Hour+30*time.Minute), timeline[2].Time)
	assert.Equal(t, "DELIVERY EXPECTED", timeline[3].Step)
	assert.Equal(t, placed.Add(24*time.Hour), timeline[3].Time)
}

func TestUpdateStatusFollowsLinearFlow(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, models.OrderStatusPending)

	for _, next := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := UpdateStatus(db, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestUpdateStatusRejectsSkips(t *testing.T) {
	db := testDB(t)
	order := seedOrder(t, db, models.OrderStatusPending)

	_, err := UpdateStatus(db, order.ID, models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestUpdateStatusCancellation(t *testing.T) {
	db := testDB(t)

	pending := seedOrder(t, db, models.OrderStatusPending)
	_, err := UpdateStatus(db, pending.ID, models.OrderStatusCancelled)
	assert.NoError(t, err)

	shipped := seedOrder(t, db, models.OrderStatusShipped)
	_, err = UpdateStatus(db, shipped.ID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	db := testDB(t)
	_, err := UpdateStatus(db, 999, models.OrderStatusProcessing)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
