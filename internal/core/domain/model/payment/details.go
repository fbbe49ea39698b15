package payment

import (
	"errors"
	"regexp"
	"strings"
)

// Validation failures carry the exact user-visible message for the first rule
// that failed. Rules are evaluated in a fixed order and evaluation stops at
// the first failure.
var (
	ErrCardNumberInvalid  = errors.New("Card number must be 16 digits")
	ErrCardHolderRequired = errors.New("Card holder name is required")
	ErrExpiryDateInvalid  = errors.New("Expiry date must be in MM/YY format")
	ErrCVVInvalid         = errors.New("CVV must be 3 digits")
)

var expiryDatePattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// Details holds the payment fields captured during one purchase attempt.
//
// Details is ephemeral: it exists only for the duration of a single attempt,
// is never persisted, and is never transmitted beyond local validation. The
// zero value is an empty form; edits accumulate through the With* methods,
// each returning a new value.
type Details struct {
	cardNumber string
	cardHolder string
	expiryDate string
	cvv        string
}

// NewDetails returns an empty payment form.
func NewDetails() Details {
	return Details{}
}

// WithCardNumber returns a copy with the card number replaced.
func (d Details) WithCardNumber(cardNumber string) Details {
	d.cardNumber = cardNumber
	return d
}

// WithCardHolder returns a copy with the card holder replaced.
// The holder name is normalized to upper case on every edit.
func (d Details) WithCardHolder(cardHolder string) Details {
	d.cardHolder = strings.ToUpper(cardHolder)
	return d
}

// WithExpiryDate returns a copy with the expiry date replaced.
func (d Details) WithExpiryDate(expiryDate string) Details {
	d.expiryDate = expiryDate
	return d
}

// WithCVV returns a copy with the CVV replaced.
func (d Details) WithCVV(cvv string) Details {
	d.cvv = cvv
	return d
}

// CardNumber returns the card number as entered.
func (d Details) CardNumber() string {
	return d.cardNumber
}

// CardHolder returns the upper-cased card holder name.
func (d Details) CardHolder() string {
	return d.cardHolder
}

// ExpiryDate returns the expiry date as entered.
func (d Details) ExpiryDate() string {
	return d.expiryDate
}

// CVV returns the CVV as entered.
func (d Details) CVV() string {
	return d.cvv
}

// Validate applies the payment rules in order and returns the error of the
// first rule that fails:
//
//  1. card number must be exactly 16 digits
//  2. card holder, after trimming, must be non-empty
//  3. expiry date must match MM/YY (two digits, slash, two digits)
//  4. CVV must be exactly 3 digits
//
// Validation is resolved locally and never reaches the remote layer.
func (d Details) Validate() error {
	if !isDigits(d.cardNumber) || len(d.cardNumber) != 16 {
		return ErrCardNumberInvalid
	}
	if strings.TrimSpace(d.cardHolder) == "" {
		return ErrCardHolderRequired
	}
	if !expiryDatePattern.MatchString(d.expiryDate) {
		return ErrExpiryDateInvalid
	}
	if !isDigits(d.cvv) || len(d.cvv) != 3 {
		return ErrCVVInvalid
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
