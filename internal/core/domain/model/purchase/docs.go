// Package purchase implements the purchase attempt workflow:
// selection -> payment capture -> validation -> order submission.
//
// The package includes:
//   - Workflow: holds the selected package, the accumulated payment fields,
//     and the last failure message for one attempt
//   - State: the explicit state machine the attempt moves through
//
// Payment details live only for the duration of the attempt and are cleared
// on cancellation and on completion. Validation failures and remote failures
// both return the attempt to payment entry with the fields retained.
package purchase
