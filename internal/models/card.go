package models

// CardData is one submission attempt's worth of raw field values. It is
// owned by the caller, lives only for the duration of the tokenize call
// and is never persisted anywhere.
type CardData struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc"`
	PostalCode  string `json:"postal_code"`
}

// TokenPayload is the decoded shape of an issued token. The card number
// only ever appears inside EncryptedData's encoded form; Fingerprint
// covers no more than the first six digits. The wire field names match
// the token format consumed by existing clients.
type TokenPayload struct {
	EncryptedData string `json:"encryptedData"`
	Nonce         string `json:"nonce"`
	Timestamp     int64  `json:"timestamp"`
	Fingerprint   string `json:"fingerprint"`
}
