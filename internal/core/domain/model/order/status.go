package order

import (
	"fmt"

	"tourcatalog/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
// It implements a small state machine with a single transition:
//
//	Pending ──> Paid
//
// Paid is final; orders are immutable from the core's perspective once
// created, so no further transitions exist.
type PaymentStatus int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	Unknown PaymentStatus = iota

	// Pending is the initial status of a newly drafted order before the
	// simulated authorization marks it as paid.
	Pending

	// Paid indicates the payment was accepted. Final state.
	Paid
)

// getStatusStrings returns a map of PaymentStatus values to their wire names.
// The names are the exact values exchanged with the backend.
func getStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Paid:    "Paid",
	}
}

// getValidStatusStrings returns only the statuses that are valid on an order.
func getValidStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		Pending: "Pending",
		Paid:    "Paid",
	}
}

// Validate checks if the PaymentStatus value is valid.
// Valid statuses are Pending and Paid; Unknown and out-of-range values fail.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe on any value, including invalid ones.
func (s PaymentStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPaid reports whether the status is Paid.
func (s PaymentStatus) IsPaid() bool {
	return s == Paid
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Returns (0, error) for any other starting status; Paid orders cannot be
// paid again.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}
	return Paid, nil
}

// ParsePaymentStatus converts a wire name back into a PaymentStatus.
// Used when reconstructing orders from backend responses.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus is invalid",
		fmt.Errorf("%q is not a valid payment status", value),
	)
}
