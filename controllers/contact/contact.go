package contactControllers

import (
	"fmt"
	"log"
	"net/http"
	"net/smtp"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunitha-d63/cherriBakery/models"
	"github.com/sunitha-d63/cherriBakery/validators"
)

// Branch locations shown on the contact page.
var branchLocations = []gin.H{
	{"city": "Chennai", "addr": "No. 45, Anna Salai, T. Nagar, Chennai - 600017"},
	{"city": "Coimbatore", "addr": "12, DB Road, RS Puram, Coimbatore - 641002"},
	{"city": "Madurai", "addr": "28, KK Nagar Main Road, Madurai - 625020"},
	{"city": "Tiruchirappalli", "addr": "7, Salai Road, Thillai Nagar, Trichy - 620018"},
	{"city": "Salem", "addr": "15, Five Roads, Fairlands, Salem - 636016"},
	{"city": "Tirunelveli", "addr": "11, South Bypass Road, Palayamkottai, Tirunelveli - 627002"},
	{"city": "Erode", "addr": "9, Brough Road, Erode - 638001"},
	{"city": "Vellore", "addr": "14, Katpadi Road, Gandhi Nagar, Vellore - 632006"},
	{"city": "Thoothukudi", "addr": "6, Beach Road, Tuticorin - 628001"},
	{"city": "Thanjavur", "addr": "10, Medical College Road, Thanjavur - 613004"},
	{"city": "Dindigul", "addr": "4, GTN Road, Dindigul - 624005"},
	{"city": "Kanchipuram", "addr": "3, Ekambaranathar Sannathi Street, Kanchipuram - 631502"},
	{"city": "Karur", "addr": "22, Kovai Road, Karur - 639002"},
	{"city": "Nagercoil", "addr": "16, Cape Road, Vadasery, Nagercoil - 629001"},
	{"city": "Cuddalore", "addr": "8, Beach Road, Cuddalore - 607001"},
	{"city": "Villupuram", "addr": "19, Tindivanam Road, Villupuram - 605602"},
	{"city": "Namakkal", "addr": "5, Salem Road, Namakkal - 637001"},
	{"city": "Tiruppur", "addr": "20, Avinashi Road, Tiruppur - 641603"},
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// GET /contact/locations
func GetLocations() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"locations": branchLocations})
	}
}

// POST /contact
func SubmitContactMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		errs := validators.Contact(validators.ContactInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		})
		if len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs, "form_data": req})
			return
		}

		msg := models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		}
		if userIDVal, exists := c.Get("user_id"); exists {
			id := userIDVal.(uint)
			msg.UserID = &id
		}

		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save your message. Please try again."})
			return
		}

		// Fire-and-forget: the request does not wait on mail delivery.
		go notifyByMail(msg)

		c.JSON(http.StatusCreated, gin.H{"message": "Thanks for reaching out! We'll get back to you soon."})
	}
}

// notifyByMail forwards the contact message to the store inbox. Missing SMTP
// configuration disables mail without affecting the request.
func notifyByMail(msg models.ContactMessage) {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	to := os.Getenv("CONTACT_EMAIL")
	if host == "" || from == "" || to == "" {
		return
	}
	if port == "" {
		port = "587"
	}

	var auth smtp.Auth
	if user := os.Getenv("SMTP_USER"); user != "" {
		auth = smtp.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host)
	}

	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: New Contact Message: %s\r\n\r\nFrom: %s <%s>\r\nPhone: %s\r\n\r\n%s\r\n",
		from, to, msg.Subject, msg.Name, msg.Email, msg.Phone, msg.Message,
	)
	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, []byte(body)); err != nil {
		log.Printf("contact mail failed: %v", err)
	}
}
