package model

// Payment methods accepted by the backend.
const (
	PayCard         = "CARD"
	PayBankTransfer = "BANK_TRANSFER"
	PayCash         = "CASH"
	PaySimplePay    = "SIMPLE_PAY"
)

// ValidPaymentMethod reports whether m is one of the enumerated
// payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PayCard, PayBankTransfer, PayCash, PaySimplePay:
		return true
	}
	return false
}

// Payment is created server-side upon payment submission and listed on
// the account view.
type Payment struct {
	ID            uint64 `json:"id"`
	BookingID     uint64 `json:"bookingId"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	PaymentDate   string `json:"paymentDate"`
}
