// Package charge redeems payment tokens. The default gateway is a
// simulator with the usual sandbox card outcomes; live mode hands the
// charge to Stripe instead.
package charge

import (
	"context"
	"log"
	"time"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/token"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	stripecharge "github.com/stripe/stripe-go/v72/charge"
)

// Sandbox card numbers with deterministic outcomes, mirroring the usual
// processor test cards.
const (
	cardInsufficientFunds = "4000000000000002"
	cardDeclined          = "4000000000009995"
	cardExpired           = "4000000000000069"
)

// Codes the gateway emits beyond the shared validation taxonomy.
const (
	codeInvalidToken      token.ErrorCode = "invalid_token"
	codeInsufficientFunds token.ErrorCode = "insufficient_funds"
)

// stripeTestTokens maps sandbox card numbers to the Stripe source tokens
// the live path is allowed to charge. Arbitrary PANs are never sent out.
var stripeTestTokens = map[string]string{
	"4242424242424242": "tok_visa",
	"4000056655665556": "tok_visa_debit",
	"5555555555554444": "tok_mastercard",
	"2223003122003222": "tok_mastercard",
	"378282246310005":  "tok_amex",
	"6011111111111117": "tok_discover",
}

// Outcome is the gateway's answer to a charge attempt.
type Outcome struct {
	Success       bool            `json:"success"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Code          token.ErrorCode `json:"code,omitempty"`
	Message       string          `json:"message,omitempty"`
}

// ConsumedStore remembers redeemed token nonces so one token cannot
// charge twice.
type ConsumedStore interface {
	Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error)
}

type Service struct {
	tokens   *token.Service
	consumed ConsumedStore
	liveMode bool
}

// NewService builds the gateway. A non-empty stripeKey switches it to
// live mode.
func NewService(tokens *token.Service, consumed ConsumedStore, stripeKey string) *Service {
	if stripeKey != "" {
		stripe.Key = stripeKey
	}
	return &Service{
		tokens:   tokens,
		consumed: consumed,
		liveMode: stripeKey != "",
	}
}

// Charge redeems a token for an amount in the currency's minor unit. The
// token is checked for well-formedness, expiry and replay before any
// outcome is computed.
func (s *Service) Charge(ctx context.Context, tok string, amount int64, currency string) Outcome {
	codec := s.tokens.Codec()

	payload := codec.DecodeToken(tok)
	if payload == nil {
		return Outcome{Code: codeInvalidToken, Message: "Invalid payment token"}
	}
	if s.tokens.IsExpired(payload.Timestamp + token.TTL.Milliseconds()) {
		return Outcome{Code: token.CodeTokenExpired, Message: "Payment token has expired"}
	}

	remaining := time.Until(time.UnixMilli(payload.Timestamp + token.TTL.Milliseconds()))
	fresh, err := s.consumed.Consume(ctx, payload.Nonce, remaining)
	if err != nil {
		log.Printf("consumed-token store unavailable: %v", err)
		return Outcome{Code: token.CodeNetworkError, Message: "Charge service unavailable"}
	}
	if !fresh {
		return Outcome{Code: codeInvalidToken, Message: "Payment token already used"}
	}

	number := codec.CardNumber(payload)
	if s.liveMode {
		return s.chargeLive(number, amount, currency)
	}
	return simulate(number)
}

// simulate reproduces the sandbox gateway outcomes.
func simulate(number string) Outcome {
	switch {
	case number == cardInsufficientFunds:
		return Outcome{Code: codeInsufficientFunds, Message: "Insufficient funds"}
	case number == cardDeclined:
		return Outcome{Code: token.CodeCardDeclined, Message: "Your card was declined"}
	case number == cardExpired:
		return Outcome{Code: token.CodeExpiredCard, Message: "Your card has expired"}
	case len(number) >= 13:
		return Outcome{Success: true, TransactionID: "txn_" + uuid.NewString()}
	default:
		return Outcome{Code: codeInvalidToken, Message: "Invalid payment token"}
	}
}

func (s *Service) chargeLive(number string, amount int64, currency string) Outcome {
	src, ok := stripeTestTokens[number]
	if !ok {
		// Direct PAN charges are not supported; only mapped sandbox
		// sources go to Stripe.
		return Outcome{Code: token.CodeCardDeclined, Message: "Card not supported for direct charges"}
	}

	params := &stripe.ChargeParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	if err := params.SetSource(src); err != nil {
		return Outcome{Code: token.CodeNetworkError, Message: "Charge request could not be built"}
	}

	ch, err := stripecharge.New(params)
	if err != nil {
		log.Printf("stripe charge failed: %v", err)
		return Outcome{Code: token.CodeCardDeclined, Message: "Your card was declined"}
	}
	return Outcome{Success: true, TransactionID: ch.ID}
}
