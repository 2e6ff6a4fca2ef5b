package cartControllers

import (
	"fmt"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, title, price string) *models.Product {
	t.Helper()
	category := models.Category{Name: "Cakes", Slug: "cakes-" + strings.ToLower(title)}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Title:         title,
		Slug:          strings.ToLower(title),
		CategoryID:    category.ID,
		BasePrice:     decimal.RequireFromString(price),
		WeightOptions: "500G,1KG,2KG",
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestGetOrCreateUserCartIsSingleton(t *testing.T) {
	db := testDB(t)

	first, err := GetOrCreateUserCart(db, 7)
	require.NoError(t, err)
	second, err := GetOrCreateUserCart(db, 7)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestGuestCartKeyedByToken(t *testing.T) {
	db := testDB(t)

	a, err := GetOrCreateGuestCart(db, "guest_aaa")
	require.NoError(t, err)
	b, err := GetOrCreateGuestCart(db, "guest_bbb")
	require.NoError(t, err)
	again, err := GetOrCreateGuestCart(db, "guest_aaa")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.ID, again.ID)
}

func TestAddItemMergesSameProductAndWeight(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Sourdough", "120.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	_, err = AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "1KG", Quantity: 2})
	require.NoError(t, err)
	merged, err := AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "1 kg", Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 5, merged.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddItemMergeKeepsLineOrder(t *testing.T) {
	db := testDB(t)
	first := seedProduct(t, db, "Sourdough", "120.00")
	second := seedProduct(t, db, "Croissant", "80.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	firstLine, err := AddItem(db, cart, AddItemInput{ProductID: first.ID, Weight: "1KG", Quantity: 1})
	require.NoError(t, err)
	_, err = AddItem(db, cart, AddItemInput{ProductID: second.ID, Weight: "500G", Quantity: 1})
	require.NoError(t, err)

	// Merging more of the first product must not move it to the end of
	// the listing.
	merged, err := AddItem(db, cart, AddItemInput{ProductID: first.ID, Weight: "1KG", Quantity: 2})
	require.NoError(t, err)
	assert.True(t, merged.AddedAt.Equal(firstLine.AddedAt))

	items, _, err := CartView(db, cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ProductID)
	assert.Equal(t, second.ID, items[1].ProductID)
}

func TestAddItemDifferentWeightIsSeparateLine(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Croissant", "80.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	_, err = AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "500G", Quantity: 1})
	require.NoError(t, err)
	_, err = AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "1KG", Quantity: 1})
	require.NoError(t, err)

	var count int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestAddItemRejectsUnofferedWeight(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Brioche", "95.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	_, err = AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "5KG", Quantity: 1})
	assert.ErrorIs(t, err, ErrWeightNotOffered)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := testDB(t)
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	_, err = AddItem(db, cart, AddItemInput{ProductID: 999, Weight: "1KG", Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Baguette", "60.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	item, err := AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "500G", Quantity: 1})
	require.NoError(t, err)

	// Price change after adding must not touch the captured line price.
	require.NoError(t, db.Model(product).Update("base_price", decimal.RequireFromString("75.00")).Error)

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.True(t, reloaded.Price.Equal(decimal.RequireFromString("60.00")))
}

func TestUpdateItemQuantity(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Focaccia", "150.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	item, err := AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "1KG", Quantity: 1})
	require.NoError(t, err)

	updated, err := UpdateItemQuantity(db, cart.ID, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = UpdateItemQuantity(db, cart.ID, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = UpdateItemQuantity(db, cart.ID, 9999, 2)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemRequiresExistingLine(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Pretzel", "45.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	item, err := AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "500G", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, RemoveItem(db, cart.ID, item.ID))
	// Removing the same line again is an error, not a no-op.
	assert.ErrorIs(t, RemoveItem(db, cart.ID, item.ID), ErrItemNotFound)
}

func TestClearIsIdempotent(t *testing.T) {
	db := testDB(t)
	product := seedProduct(t, db, "Muffin", "35.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	_, err = AddItem(db, cart, AddItemInput{ProductID: product.ID, Weight: "500G", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, Clear(db, cart.ID))
	require.NoError(t, Clear(db, cart.ID)) // already empty

	var count int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCartViewTotals(t *testing.T) {
	db := testDB(t)
	bread := seedProduct(t, db, "Rye", "100.00")
	cake := seedProduct(t, db, "Gateau", "250.00")
	cart, err := GetOrCreateUserCart(db, 1)
	require.NoError(t, err)

	_, err = AddItem(db, cart, AddItemInput{ProductID: bread.ID, Weight: "1KG", Quantity: 2})
	require.NoError(t, err)
	_, err = AddItem(db, cart, AddItemInput{ProductID: cake.ID, Weight: "500G", Quantity: 1})
	require.NoError(t, err)

	items, totals, err := CartView(db, cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// subtotal 450, 18% tax 81, flat 50 delivery.
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("450.00")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(decimal.RequireFromString("81.00")))
	assert.True(t, totals.DeliveryCharge.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("581.00")))
}
