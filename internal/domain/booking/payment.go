package booking

import "github.com/YuliaRizki/nailBook/internal/httperr"

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentQRIS     PaymentMethod = "QRIS"
	PaymentTransfer PaymentMethod = "Transfer"
)

func DefaultPaymentMethod() PaymentMethod {
	return PaymentCash
}

// ValidatePaymentMethod accepts an empty method (the default applies) or one
// of the three methods the salon takes.
func ValidatePaymentMethod(m string) error {
	switch PaymentMethod(m) {
	case "", PaymentCash, PaymentQRIS, PaymentTransfer:
		return nil
	}
	return httperr.ErrBusiness("invalid_payment_method")
}
