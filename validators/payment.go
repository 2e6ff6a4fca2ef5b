package validators

import (
	"errors"
	"regexp"
)

var (
	upiRe    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
	digitsRe = regexp.MustCompile(`^\d+$`)
)

// UPIID checks the handle@provider shape.
func UPIID(value string) error {
	if !upiRe.MatchString(value) {
		return errors.New("invalid UPI ID format, example: username@upi")
	}
	return nil
}

// CardNumber requires 15 or 16 digits passing the Luhn checksum.
func CardNumber(value string) error {
	if !digitsRe.MatchString(value) || (len(value) != 15 && len(value) != 16) {
		return errors.New("invalid card number")
	}
	if !luhnValid(value) {
		return errors.New("invalid card number")
	}
	return nil
}

// luhnValid runs the standard mod-10 checksum over a digit string.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// Expiry requires MM/YY.
func Expiry(value string) error {
	if !expiryRe.MatchString(value) {
		return errors.New("enter valid expiry (MM/YY)")
	}
	return nil
}

// CVV requires 3 or 4 digits.
func CVV(value string) error {
	if !cvvRe.MatchString(value) {
		return errors.New("enter valid CVV")
	}
	return nil
}

// PaymentInput carries the method selector plus whichever method-specific
// fields the client submitted.
type PaymentInput struct {
	Method     string
	UPIID      string
	WalletID   string
	CardNumber string
	Expiry     string
	CVV        string
}

// Payment validates the method-specific fields for the selected payment
// method. Every failing field is reported; nothing short-circuits.
//
//	upi    -> upi_id matching handle@provider
//	wallet -> non-empty wallet_id
//	credit -> Luhn card number, MM/YY expiry, 3-4 digit cvv
//	cod    -> always valid
func Payment(in PaymentInput) Errors {
	errs := Errors{}
	switch in.Method {
	case "upi":
		errs.Add("upi", UPIID(in.UPIID))
	case "wallet":
		if in.WalletID == "" {
			errs["wallet"] = "wallet ID is required"
		}
	case "credit":
		errs.Add("card", CardNumber(in.CardNumber))
		errs.Add("expiry", Expiry(in.Expiry))
		errs.Add("cvv", CVV(in.CVV))
	case "cod":
		// nothing to verify for cash on delivery
	default:
		errs["payment"] = "select a payment method"
	}
	return errs
}

// CheckoutInput carries the customer-supplied delivery fields.
type CheckoutInput struct {
	Name     string
	Location string
	Mobile   string
	Notes    string
	Address  string
}

// Checkout runs every customer-field validator independently and merges in
// the payment-method validation, returning the combined error map.
func Checkout(in CheckoutInput, pay PaymentInput) Errors {
	errs := Errors{}
	errs.Add("name", Name(in.Name))
	errs.Add("location", Location(in.Location))
	errs.Add("mobile", Mobile(in.Mobile))
	errs.Add("notes", Notes(in.Notes))
	errs.Add("address", Address(in.Address))
	for field, msg := range Payment(pay) {
		errs[field] = msg
	}
	return errs
}
