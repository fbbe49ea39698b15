// Package order provides domain entities for order fulfillment.
// It implements the Order aggregate with its payment lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding user, package reference, and a
//     package name snapshot taken at purchase time
//   - PaymentStatus: a state machine with the single transition
//     Pending -> Paid
//
// Key business rules:
//   - Orders reference a user and a package by backend-assigned identifiers
//   - The backend assigns order identifiers; drafts have none until submission
//   - An order cannot be created without payment details that passed local
//     validation; the purchase workflow enforces this
//   - Payment is simulated: validated drafts are marked Paid unconditionally
//   - Orders are immutable after creation from the core's perspective
package order
