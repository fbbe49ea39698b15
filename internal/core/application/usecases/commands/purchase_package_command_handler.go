package commands

import (
	"context"
	"log/slog"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/domain/model/order"
	"tourcatalog/internal/core/domain/model/purchase"
	"tourcatalog/internal/core/ports"
)

// PurchasePackageCommandHandler drives a purchase attempt through the
// workflow state machine: resolve the user, select the target package,
// capture the payment fields, validate, and submit the Paid order draft to
// the backend.
//
// Failure semantics follow the workflow: a validation failure never reaches
// the remote layer and creates no order; a remote failure surfaces to the
// caller while the workflow returns to payment entry with fields retained.
type PurchasePackageCommandHandler struct {
	sessions ports.SessionProvider
	orders   ports.OrderGateway
	catalog  *store.CatalogStore
	logger   *slog.Logger
}

// NewPurchasePackageCommandHandler creates a handler for purchase attempts.
func NewPurchasePackageCommandHandler(
	sessions ports.SessionProvider,
	orders ports.OrderGateway,
	catalog *store.CatalogStore,
	logger *slog.Logger,
) PurchasePackageCommandHandler {
	return PurchasePackageCommandHandler{
		sessions: sessions,
		orders:   orders,
		catalog:  catalog,
		logger:   logger.With("component", "purchase_handler"),
	}
}

// Handle processes one purchase attempt and returns the created order.
//
// Returns AuthRequiredError when no user identity is resolvable, an
// ObjectNotFoundError when the package is not in the working set, a payment
// rule error when validation fails, and RemoteCallFailedError when the
// backend rejects the submission.
func (h *PurchasePackageCommandHandler) Handle(
	ctx context.Context,
	cmd PurchasePackageCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	userID, err := h.sessions.CurrentUser()
	if err != nil {
		return nil, err
	}

	pkg, err := h.catalog.Get(cmd.PackageID())
	if err != nil {
		return nil, err
	}

	wf := purchase.NewWorkflow()
	if err := wf.Select(pkg); err != nil {
		return nil, err
	}

	if err := h.capturePayment(wf, cmd); err != nil {
		return nil, err
	}

	draft, err := wf.Submit(userID)
	if err != nil {
		h.logger.InfoContext(ctx, "purchase attempt rejected",
			"attemptId", wf.AttemptID(), "reason", wf.Message())
		return nil, err
	}

	created, err := h.orders.CreateOrder(ctx, draft)
	if err != nil {
		if failErr := wf.FailSubmission(err.Error()); failErr != nil {
			return nil, failErr
		}
		h.logger.ErrorContext(ctx, "order submission failed",
			"attemptId", wf.AttemptID(), "error", err)
		return nil, err
	}

	if err := wf.Complete(); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "purchase completed",
		"attemptId", wf.AttemptID(), "orderId", created.ID().String())
	return created, nil
}

func (h *PurchasePackageCommandHandler) capturePayment(
	wf *purchase.Workflow,
	cmd PurchasePackageCommand,
) error {
	if err := wf.SetCardNumber(cmd.CardNumber()); err != nil {
		return err
	}
	if err := wf.SetCardHolder(cmd.CardHolder()); err != nil {
		return err
	}
	if err := wf.SetExpiryDate(cmd.ExpiryDate()); err != nil {
		return err
	}
	return wf.SetCVV(cmd.CVV())
}
