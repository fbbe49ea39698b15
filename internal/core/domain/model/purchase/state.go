package purchase

import (
	"fmt"

	"tourcatalog/internal/pkg/errs"
)

// State represents the position of a purchase attempt in its workflow.
// It implements a state machine with defined transitions so an attempt always
// moves through selection, payment capture, validation, and submission in a
// legal order.
//
// State transitions:
//
//	Idle ──> Selected ──> EnteringPayment ──> Validating ──> Submitting ──> Completed
//	  ^          │         ^        │  ^          │              │
//	  │          │         │        └──┘ (edits)  │ (rejected)   │ (remote failure)
//	  │          │         └──────────────────────┴──────────────┘
//	  └──────────┴── (cancel)
//
// Completed is equivalent to Idle for starting the next attempt. Validation
// rejection and remote failure both return the attempt to EnteringPayment
// with the captured fields retained.
type State int

const (
	// Unknown represents an invalid or undefined state.
	Unknown State = iota

	// Idle means no package is selected and no attempt is in progress.
	Idle

	// Selected means the user chose a package; payment fields are empty.
	Selected

	// EnteringPayment means payment field edits are accumulating.
	EnteringPayment

	// Validating means a submit was triggered and the rules are being checked.
	Validating

	// Submitting means validation passed and the order is on its way to the
	// backend.
	Submitting

	// Completed means the order was created. Terminal, and a valid starting
	// point for the next selection.
	Completed
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:         "Unknown",
		Idle:            "Idle",
		Selected:        "Selected",
		EnteringPayment: "EnteringPayment",
		Validating:      "Validating",
		Submitting:      "Submitting",
		Completed:       "Completed",
	}
}

// String returns the human-readable name of the state.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s State) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"workflow state is invalid",
		fmt.Errorf("%s is not a valid state to %s", s.String(), action),
	)
}

// Select transitions to Selected when a package is chosen.
// Allowed from Idle and Completed.
func (s State) Select() (State, error) {
	if s != Idle && s != Completed {
		return 0, s.transitionError("select a package")
	}
	return Selected, nil
}

// EditPayment transitions to EnteringPayment on a payment field edit.
// Allowed from Selected and EnteringPayment.
func (s State) EditPayment() (State, error) {
	if s != Selected && s != EnteringPayment {
		return 0, s.transitionError("edit payment details")
	}
	return EnteringPayment, nil
}

// StartValidation transitions to Validating when the user submits.
// Allowed from Selected (submitting an untouched form) and EnteringPayment.
func (s State) StartValidation() (State, error) {
	if s != Selected && s != EnteringPayment {
		return 0, s.transitionError("start validation")
	}
	return Validating, nil
}

// PassValidation transitions to Submitting after all rules passed.
func (s State) PassValidation() (State, error) {
	if s != Validating {
		return 0, s.transitionError("pass validation")
	}
	return Submitting, nil
}

// RejectValidation returns the attempt to EnteringPayment after a rule failed.
// Captured payment fields are retained by the workflow.
func (s State) RejectValidation() (State, error) {
	if s != Validating {
		return 0, s.transitionError("reject validation")
	}
	return EnteringPayment, nil
}

// Complete transitions to Completed after the backend accepted the order.
func (s State) Complete() (State, error) {
	if s != Submitting {
		return 0, s.transitionError("complete")
	}
	return Completed, nil
}

// FailSubmission returns the attempt to EnteringPayment after a remote
// failure, keeping payment fields so the user can retry.
func (s State) FailSubmission() (State, error) {
	if s != Submitting {
		return 0, s.transitionError("fail submission")
	}
	return EnteringPayment, nil
}

// Cancel abandons the attempt and returns to Idle.
// Allowed from Selected and EnteringPayment; never triggers a remote call.
func (s State) Cancel() (State, error) {
	if s != Selected && s != EnteringPayment {
		return 0, s.transitionError("cancel")
	}
	return Idle, nil
}
