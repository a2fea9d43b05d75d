package booking

import (
	"testing"

	"github.com/YuliaRizki/nailBook/internal/httperr"
)

func TestValidatePaymentMethod(t *testing.T) {
	for _, ok := range []string{"", "Cash", "QRIS", "Transfer"} {
		if err := ValidatePaymentMethod(ok); err != nil {
			t.Errorf("ValidatePaymentMethod(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"cash", "qris", "Barter", "Credit"} {
		if err := ValidatePaymentMethod(bad); !httperr.IsBusiness(err, "invalid_payment_method") {
			t.Errorf("ValidatePaymentMethod(%q) = %v, want invalid_payment_method", bad, err)
		}
	}
}

func TestDefaultPaymentMethod(t *testing.T) {
	if DefaultPaymentMethod() != PaymentCash {
		t.Errorf("default = %s, want Cash", DefaultPaymentMethod())
	}
}
