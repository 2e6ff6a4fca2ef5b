package productController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func testRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/products", CreateProduct(db))
	r.PUT("/admin/products/:id", UpdateProduct(db))
	r.DELETE("/admin/products/:id", DeleteProduct(db))
	return r
}

func seedCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	category := models.Category{Name: "Breads", Slug: "breads"}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db)
	r := testRouter(db)

	w := doJSON(r, http.MethodPost, "/admin/products", ProductInput{
		Title:         "Stone Oven Sourdough",
		CategoryID:    category.ID,
		BasePrice:     "180.00",
		WeightOptions: "500G, 1KG",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.Where("slug = ?", "stone-oven-sourdough").First(&product).Error)
	assert.True(t, product.BasePrice.Equal(decimal.RequireFromString("180.00")))
	assert.Equal(t, "500G,1KG", product.WeightOptions)
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db)
	r := testRouter(db)

	for _, price := range []string{"free", "-10.00", "0"} {
		w := doJSON(r, http.MethodPost, "/admin/products", ProductInput{
			Title:      "Bad Priced Loaf",
			CategoryID: category.ID,
			BasePrice:  price,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "price %q", price)
	}
}

func TestCreateProductRejectsBadWeightTokens(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db)
	r := testRouter(db)

	w := doJSON(r, http.MethodPost, "/admin/products", ProductInput{
		Title:         "Odd Weights",
		CategoryID:    category.ID,
		BasePrice:     "90.00",
		WeightOptions: "500G,HEAVY,1TON",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "HEAVY")
	assert.Contains(t, w.Body.String(), "1TON")
}

func TestDeleteProductBlockedByOrders(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db)
	r := testRouter(db)

	product := models.Product{
		Title:      "Celebration Cake",
		Slug:       "celebration-cake",
		CategoryID: category.ID,
		BasePrice:  decimal.RequireFromString("600.00"),
	}
	require.NoError(t, db.Create(&product).Error)

	order := models.Order{
		CustomerName:     "Anita Kumar",
		CustomerMobile:   "9876543210",
		DeliveryLocation: "Chennai",
		DeliveryAddress:  "12, Anna Salai, T Nagar, Chennai",
		PaymentMethod:    models.PaymentMethodCOD,
		Subtotal:         decimal.RequireFromString("600.00"),
		DeliveryFee:      decimal.Zero,
		TaxAmount:        decimal.RequireFromString("25.50"),
		TotalAmount:      decimal.RequireFromString("535.50"),
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: product.BasePrice,
	}).Error)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteProduct(t *testing.T) {
	db := testDB(t)
	category := seedCategory(t, db)
	r := testRouter(db)

	product := models.Product{
		Title:      "Day Old Bun",
		Slug:       "day-old-bun",
		CategoryID: category.ID,
		BasePrice:  decimal.RequireFromString("20.00"),
	}
	require.NoError(t, db.Create(&product).Error)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/admin/products/%d", product.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
