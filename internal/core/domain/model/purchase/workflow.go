package purchase

import (
	"errors"

	"github.com/google/uuid"

	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/order"
	"tourcatalog/internal/core/domain/model/payment"
	"tourcatalog/internal/core/domain/model/tour"
)

// ErrNoPackageSelected is returned by Submit when the workflow has no target
// package. Cannot happen through legal transitions; it guards direct misuse.
var ErrNoPackageSelected = errors.New("no package selected for purchase")

// Workflow drives one purchase attempt from package selection through payment
// capture, validation, and order submission.
//
// The selected package and the captured payment fields are held explicitly on
// the workflow and threaded through its operations; there is no ambient
// "currently open dialog" state. Payment details are discarded on cancel and
// on completion, and are retained across validation and remote failures so
// the user can correct and retry.
//
// A Workflow is not safe for concurrent use; each attempt runs on one logical
// thread of control.
type Workflow struct {
	attemptID uuid.UUID
	state     State
	target    *tour.Package
	details   payment.Details
	message   string
}

// NewWorkflow creates an idle workflow. The attempt id is generated locally
// and only used to correlate log lines; it never reaches the backend.
func NewWorkflow() *Workflow {
	return &Workflow{
		attemptID: uuid.New(),
		state:     Idle,
	}
}

// AttemptID returns the log-correlation id of this attempt.
func (w *Workflow) AttemptID() uuid.UUID {
	return w.attemptID
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// Target returns the selected package, or nil when idle.
func (w *Workflow) Target() *tour.Package {
	return w.target
}

// Details returns the payment fields captured so far.
func (w *Workflow) Details() payment.Details {
	return w.details
}

// Message returns the last validation or remote failure message surfaced to
// the user, empty when the attempt has not failed.
func (w *Workflow) Message() string {
	return w.message
}

// Select stores pkg as the purchase target and resets the payment fields.
func (w *Workflow) Select(pkg *tour.Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	newState, err := w.state.Select()
	if err != nil {
		return err
	}

	w.state = newState
	w.target = pkg
	w.details = payment.NewDetails()
	w.message = ""
	return nil
}

// SetCardNumber records a card number edit.
func (w *Workflow) SetCardNumber(cardNumber string) error {
	return w.edit(func(d payment.Details) payment.Details {
		return d.WithCardNumber(cardNumber)
	})
}

// SetCardHolder records a card holder edit. The name is normalized to upper
// case by the payment details on every edit.
func (w *Workflow) SetCardHolder(cardHolder string) error {
	return w.edit(func(d payment.Details) payment.Details {
		return d.WithCardHolder(cardHolder)
	})
}

// SetExpiryDate records an expiry date edit.
func (w *Workflow) SetExpiryDate(expiryDate string) error {
	return w.edit(func(d payment.Details) payment.Details {
		return d.WithExpiryDate(expiryDate)
	})
}

// SetCVV records a CVV edit.
func (w *Workflow) SetCVV(cvv string) error {
	return w.edit(func(d payment.Details) payment.Details {
		return d.WithCVV(cvv)
	})
}

func (w *Workflow) edit(apply func(payment.Details) payment.Details) error {
	newState, err := w.state.EditPayment()
	if err != nil {
		return err
	}

	w.state = newState
	w.details = apply(w.details)
	return nil
}

// Cancel abandons the attempt: the selected package and payment fields are
// discarded without any remote call and the workflow returns to Idle.
func (w *Workflow) Cancel() error {
	newState, err := w.state.Cancel()
	if err != nil {
		return err
	}

	w.state = newState
	w.reset()
	return nil
}

// Submit validates the captured payment details and, when every rule passes,
// yields an order draft for the given user with the payment status already
// set to Paid (the simulated authorization accepts any well-formed card).
//
// On a validation failure the workflow returns to EnteringPayment with the
// fields retained, records the rule's message, and returns the validation
// error; nothing is cleared and no remote call is made.
func (w *Workflow) Submit(userID kernel.ID) (*order.Order, error) {
	// Checked before the transition so a misused workflow stays in a state
	// it can leave.
	if w.target == nil {
		return nil, ErrNoPackageSelected
	}

	validating, err := w.state.StartValidation()
	if err != nil {
		return nil, err
	}
	w.state = validating

	if err := w.details.Validate(); err != nil {
		rejected, stateErr := w.state.RejectValidation()
		if stateErr != nil {
			return nil, stateErr
		}
		w.state = rejected
		w.message = err.Error()
		return nil, err
	}

	submitting, err := w.state.PassValidation()
	if err != nil {
		return nil, err
	}
	w.state = submitting
	w.message = ""

	draft, err := order.NewOrder(userID, w.target.ID(), w.target.Name())
	if err != nil {
		return nil, err
	}
	if err := draft.MarkPaid(); err != nil {
		return nil, err
	}
	return draft, nil
}

// Complete finishes a successful attempt: the target package and payment
// fields are cleared and the workflow is ready for the next selection.
func (w *Workflow) Complete() error {
	newState, err := w.state.Complete()
	if err != nil {
		return err
	}

	w.state = newState
	w.reset()
	return nil
}

// FailSubmission records a remote failure: the message is surfaced, payment
// fields are retained, and the workflow returns to EnteringPayment.
func (w *Workflow) FailSubmission(message string) error {
	newState, err := w.state.FailSubmission()
	if err != nil {
		return err
	}

	w.state = newState
	w.message = message
	return nil
}

func (w *Workflow) reset() {
	w.target = nil
	w.details = payment.NewDetails()
	w.message = ""
}
