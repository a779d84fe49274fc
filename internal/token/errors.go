package token

// ErrorCode is the stable error taxonomy shared with every transport
// layer. Codes are part of the external contract and must not be renamed.
type ErrorCode string

const (
	CodeInvalidCardNumber ErrorCode = "invalid_card_number"
	CodeInvalidExpiry     ErrorCode = "invalid_expiry"
	CodeExpiredCard       ErrorCode = "expired_card"
	CodeInvalidCVC        ErrorCode = "invalid_cvc"
	CodeInvalidPostal     ErrorCode = "invalid_postal"

	// Reserved for the layers around the core; tokenization itself never
	// emits these.
	CodeIncompleteForm ErrorCode = "incomplete_form"
	CodeNetworkError   ErrorCode = "network_error"
	CodeTokenExpired   ErrorCode = "token_expired"
	CodeCardDeclined   ErrorCode = "card_declined"
)

// PaymentError carries one primary user-facing message plus the field it
// belongs to, so a UI can attach the message to the right input without
// re-deriving it.
type PaymentError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *PaymentError) Error() string {
	return string(e.Code) + ": " + e.Message
}
