package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
)

// GET /admin/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Payment").Order("order_date DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Customer", "Mobile", "Location", "Status",
			"PaymentMethod", "PaymentStatus", "Subtotal", "Discount",
			"DeliveryFee", "Tax", "Total", "OrderDate",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerMobile)
			row.AddCell().SetValue(o.DeliveryLocation)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentMethod))
			if o.Payment != nil {
				row.AddCell().SetValue(string(o.Payment.Status))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(o.Subtotal.StringFixed(2))
			row.AddCell().SetValue(o.Discount.StringFixed(2))
			row.AddCell().SetValue(o.DeliveryFee.StringFixed(2))
			row.AddCell().SetValue(o.TaxAmount.StringFixed(2))
			row.AddCell().SetValue(o.TotalAmount.StringFixed(2))
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
