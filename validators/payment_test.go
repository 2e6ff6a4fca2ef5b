package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUPIID(t *testing.T) {
	assert.NoError(t, UPIID("priya.raman@upi"))
	assert.NoError(t, UPIID("user_01@okbank"))
	assert.Error(t, UPIID("no-at-sign"))
	assert.Error(t, UPIID("bad@pro vider"))
	assert.Error(t, UPIID("@bank"))
}

func TestCardNumber(t *testing.T) {
	// 16 digits, valid Luhn.
	assert.NoError(t, CardNumber("4539578763621486"))
	// 15 digits, valid Luhn (Amex-style).
	assert.NoError(t, CardNumber("378282246310005"))

	// Valid Luhn but wrong length is rejected.
	assert.Error(t, CardNumber("79927398713"))
	// Right length, failing checksum, always rejected.
	assert.Error(t, CardNumber("4539578763621487"))
	assert.Error(t, CardNumber("1234567890123456"))
	// Non-digits.
	assert.Error(t, CardNumber("4539 5787 6362 1486"))
}

func TestExpiryAndCVV(t *testing.T) {
	assert.NoError(t, Expiry("12/27"))
	// Shape check only; the month digits are not range-checked.
	assert.NoError(t, Expiry("13/25"))
	assert.Error(t, Expiry("13-27"))
	assert.Error(t, Expiry("1/27"))

	assert.NoError(t, CVV("123"))
	assert.NoError(t, CVV("1234"))
	assert.Error(t, CVV("12"))
	assert.Error(t, CVV("12345"))
	assert.Error(t, CVV("12a"))
}

func TestPaymentMethodMatrix(t *testing.T) {
	tests := []struct {
		name   string
		in     PaymentInput
		fields []string
	}{
		{"cod needs nothing", PaymentInput{Method: "cod"}, nil},
		{"upi with valid id", PaymentInput{Method: "upi", UPIID: "a@b"}, nil},
		{"upi with bad id", PaymentInput{Method: "upi", UPIID: "bad"}, []string{"upi"}},
		{"wallet empty id", PaymentInput{Method: "wallet"}, []string{"wallet"}},
		{"wallet with id", PaymentInput{Method: "wallet", WalletID: "w-1"}, nil},
		{
			"credit all bad",
			PaymentInput{Method: "credit", CardNumber: "1", Expiry: "x", CVV: "y"},
			[]string{"card", "expiry", "cvv"},
		},
		{
			"credit all good",
			PaymentInput{Method: "credit", CardNumber: "4539578763621486", Expiry: "09/28", CVV: "123"},
			nil,
		},
		{"missing method", PaymentInput{}, []string{"payment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Payment(tt.in)
			assert.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}
