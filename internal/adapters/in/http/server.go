package http

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/application/usecases/commands"
	"tourcatalog/internal/core/application/usecases/queries"
	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/payment"
	"tourcatalog/internal/core/domain/model/tour"
	"tourcatalog/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
//
// Catalog reads trigger a fresh full load of the working set, one per view
// activation; mutations operate on the already loaded set and reconcile it
// optimistically after the backend accepted the change.
type Server struct {
	catalog *store.CatalogStore

	// Command handlers
	updatePackageHandler   commands.UpdatePackageCommandHandler
	deletePackageHandler   commands.DeletePackageCommandHandler
	purchasePackageHandler commands.PurchasePackageCommandHandler

	// Query handlers
	searchPackagesHandler queries.SearchPackagesQueryHandler
	getUserOrdersHandler  queries.GetUserOrdersQueryHandler
	exportReportHandler   queries.ExportPackagesReportQueryHandler

	apiSpec *openapi3.T
}

// NewServer creates an HTTP server with the required command and query
// handlers. apiSpec may be nil; the /openapi.json route then answers 404.
func NewServer(
	catalog *store.CatalogStore,
	updatePackageHandler commands.UpdatePackageCommandHandler,
	deletePackageHandler commands.DeletePackageCommandHandler,
	purchasePackageHandler commands.PurchasePackageCommandHandler,
	searchPackagesHandler queries.SearchPackagesQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	exportReportHandler queries.ExportPackagesReportQueryHandler,
	apiSpec *openapi3.T,
) *Server {
	return &Server{
		catalog:                catalog,
		updatePackageHandler:   updatePackageHandler,
		deletePackageHandler:   deletePackageHandler,
		purchasePackageHandler: purchasePackageHandler,
		searchPackagesHandler:  searchPackagesHandler,
		getUserOrdersHandler:   getUserOrdersHandler,
		exportReportHandler:    exportReportHandler,
		apiSpec:                apiSpec,
	}
}

// RegisterRoutes wires the API surface onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/packages", s.GetPackages)
	e.GET("/api/v1/packages/report", s.ExportReport)
	e.PUT("/api/v1/packages/:id", s.UpdatePackage)
	e.DELETE("/api/v1/packages/:id", s.DeletePackage)
	e.POST("/api/v1/purchase", s.PurchasePackage)
	e.GET("/api/v1/orders", s.GetOrders)
	e.GET("/openapi.json", s.GetOpenAPI)
}

// GetPackages handles GET /api/v1/packages - reloads the catalog and returns
// the view filtered by the optional "search" term.
func (s *Server) GetPackages(ctx echo.Context) error {
	if err := s.catalog.Load(ctx.Request().Context()); err != nil {
		return s.errorResponse(ctx, err)
	}

	query := queries.NewSearchPackagesQuery(ctx.QueryParam("search"))
	rows, err := s.searchPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]PackageResponse, len(rows))
	for i, row := range rows {
		response[i] = PackageResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price.Amount(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdatePackage handles PUT /api/v1/packages/:id - partial admin edit.
func (s *Server) UpdatePackage(ctx echo.Context) error {
	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var request UpdatePackageRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	update := tour.Update{
		Name:        request.Name,
		Description: request.Description,
	}
	if request.Price != nil {
		price, priceErr := kernel.NewPrice(*request.Price)
		if priceErr != nil {
			return s.errorResponse(ctx, priceErr)
		}
		update.Price = &price
	}

	cmd, err := commands.NewUpdatePackageCommand(id, update)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.updatePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeletePackage handles DELETE /api/v1/packages/:id.
func (s *Server) DeletePackage(ctx echo.Context) error {
	id, err := kernel.NewID(ctx.Param("id"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeletePackageCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.deletePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PurchasePackage handles POST /api/v1/purchase - one purchase attempt.
func (s *Server) PurchasePackage(ctx echo.Context) error {
	var request PurchaseRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	packageID, err := kernel.NewID(request.PackageID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewPurchasePackageCommand(
		packageID,
		request.CardNumber,
		request.CardHolder,
		request.ExpiryDate,
		request.CVV,
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	created, err := s.purchasePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:            created.ID().String(),
		PackageID:     created.PackageID().String(),
		Name:          created.PackageName(),
		PaymentStatus: created.Status().String(),
		Paid:          created.IsPaid(),
	})
}

// GetOrders handles GET /api/v1/orders - the signed-in user's history.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetUserOrdersQuery()
	rows, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]OrderResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderResponse{
			ID:            row.ID.String(),
			PackageID:     row.PackageID.String(),
			Name:          row.PackageName,
			PaymentStatus: row.PaymentStatus,
			Paid:          row.Paid,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ExportReport handles GET /api/v1/packages/report - renders the current
// filtered view as a downloadable document. The optional "search" term scopes
// the report exactly like the catalog listing.
func (s *Server) ExportReport(ctx echo.Context) error {
	if err := s.catalog.Load(ctx.Request().Context()); err != nil {
		return s.errorResponse(ctx, err)
	}

	query := queries.NewExportPackagesReportQuery(ctx.QueryParam("search"))
	report, err := s.exportReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+report.Filename+`"`)
	return ctx.Blob(http.StatusOK, "application/pdf", report.Content)
}

// GetOpenAPI handles GET /openapi.json - serves the validated API document.
func (s *Server) GetOpenAPI(ctx echo.Context) error {
	if s.apiSpec == nil {
		return ctx.NoContent(http.StatusNotFound)
	}
	return ctx.JSON(http.StatusOK, s.apiSpec)
}

// errorResponse maps the error taxonomy onto HTTP statuses. Validation
// failures answer 400 with the rule's exact message; nothing here is fatal to
// the process.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAuthRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrRemoteCallFailed):
		status = http.StatusBadGateway
	case isValidationError(err):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, commands.ErrUpdateHasNoFields) ||
		errors.Is(err, payment.ErrCardNumberInvalid) ||
		errors.Is(err, payment.ErrCardHolderRequired) ||
		errors.Is(err, payment.ErrExpiryDateInvalid) ||
		errors.Is(err, payment.ErrCVVInvalid)
}
