package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adapter "tourcatalog/internal/adapters/in/http"
	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/application/usecases/commands"
	"tourcatalog/internal/core/application/usecases/queries"
	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/order"
	"tourcatalog/internal/core/domain/model/tour"
	"tourcatalog/internal/pkg/errs"
)

type MockPackageGateway struct{ mock.Mock }

func (m *MockPackageGateway) LoadPackages(ctx context.Context) ([]*tour.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tour.Package), args.Error(1)
}

func (m *MockPackageGateway) UpdatePackage(ctx context.Context, id kernel.ID, update tour.Update) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockPackageGateway) DeletePackage(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) CreateOrder(ctx context.Context, draft *order.Order) (*order.Order, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) GetOrdersForUser(ctx context.Context, userID kernel.ID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSessionProvider struct{ mock.Mock }

func (m *MockSessionProvider) CurrentUser() (kernel.ID, error) {
	args := m.Called()
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockReportRenderer struct{ mock.Mock }

func (m *MockReportRenderer) Render(title string, packages []*tour.Package) ([]byte, error) {
	args := m.Called(title, packages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type fixture struct {
	packages *MockPackageGateway
	orders   *MockOrderGateway
	sessions *MockSessionProvider
	renderer *MockReportRenderer
	echo     *echo.Echo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		packages: new(MockPackageGateway),
		orders:   new(MockOrderGateway),
		sessions: new(MockSessionProvider),
		renderer: new(MockReportRenderer),
		echo:     echo.New(),
	}

	catalog := store.NewCatalogStore(f.packages)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := adapter.NewServer(
		catalog,
		commands.NewUpdatePackageCommandHandler(f.packages, catalog),
		commands.NewDeletePackageCommandHandler(f.packages, catalog),
		commands.NewPurchasePackageCommandHandler(f.sessions, f.orders, catalog, logger),
		queries.NewSearchPackagesQueryHandler(catalog),
		queries.NewGetUserOrdersQueryHandler(f.sessions, f.orders),
		queries.NewExportPackagesReportQueryHandler(catalog, f.renderer),
		nil,
	)
	server.RegisterRoutes(f.echo)
	return f
}

func (f *fixture) request(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func mustNewID(t *testing.T, value string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func makePackage(t *testing.T, id, name, description, price string) *tour.Package {
	t.Helper()
	p, err := kernel.PriceFromString(price)
	require.NoError(t, err)
	pkg, err := tour.NewPackage(mustNewID(t, id), name, description, p)
	require.NoError(t, err)
	return pkg
}

func TestServer_GetPackages(t *testing.T) {
	t.Run("reloads the catalog and returns the full set", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("LoadPackages", mock.Anything).Return([]*tour.Package{
			makePackage(t, "1", "Beach Tour", "Sun and sand", "200"),
			makePackage(t, "2", "Mountain Trek", "High altitude hiking", "349.5"),
		}, nil).Once()

		rec := f.request(http.MethodGet, "/api/v1/packages", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "1", rows[0]["id"])
		assert.Equal(t, "Beach Tour", rows[0]["name"])
		assert.InDelta(t, 200, rows[0]["price"], 0.001)
		f.packages.AssertExpectations(t)
	})

	t.Run("search term filters the view", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("LoadPackages", mock.Anything).Return([]*tour.Package{
			makePackage(t, "1", "Beach Tour", "Sun and sand", "200"),
			makePackage(t, "2", "Mountain Trek", "High altitude hiking", "349.5"),
		}, nil).Once()

		rec := f.request(http.MethodGet, "/api/v1/packages?search=beach", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Beach Tour", rows[0]["name"])
	})

	t.Run("backend failure answers 502", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("LoadPackages", mock.Anything).
			Return(nil, errs.NewRemoteCallFailedError("load packages")).Once()

		rec := f.request(http.MethodGet, "/api/v1/packages", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestServer_UpdatePackage(t *testing.T) {
	t.Run("partial edit answers 204", func(t *testing.T) {
		f := newFixture(t)
		id := mustNewID(t, "pkg-1")
		f.packages.On("UpdatePackage", mock.Anything, id,
			mock.MatchedBy(func(u tour.Update) bool {
				return u.Name != nil && *u.Name == "Renamed Tour" && u.Description == nil && u.Price == nil
			})).Return(nil).Once()

		rec := f.request(http.MethodPut, "/api/v1/packages/pkg-1", `{"name": "Renamed Tour"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.packages.AssertExpectations(t)
	})

	t.Run("missing package answers 404", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("UpdatePackage", mock.Anything, mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("packageId", "pkg-1")).Once()

		rec := f.request(http.MethodPut, "/api/v1/packages/pkg-1", `{"name": "Renamed Tour"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty update answers 400", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodPut, "/api/v1/packages/pkg-1", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.packages.AssertNotCalled(t, "UpdatePackage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative price answers 400", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodPut, "/api/v1/packages/pkg-1", `{"price": -5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_DeletePackage(t *testing.T) {
	t.Run("answers 204", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("DeletePackage", mock.Anything, mustNewID(t, "pkg-1")).Return(nil).Once()

		rec := f.request(http.MethodDelete, "/api/v1/packages/pkg-1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.packages.AssertExpectations(t)
	})

	t.Run("missing package answers 404", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("DeletePackage", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("packageId", "pkg-1")).Once()

		rec := f.request(http.MethodDelete, "/api/v1/packages/pkg-1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_PurchasePackage(t *testing.T) {
	purchaseBody := `{
		"packageId": "pkg-1",
		"cardNumber": "4111111111111111",
		"cardHolder": "Jane Doe",
		"expiryDate": "12/30",
		"cvv": "123"
	}`

	loadCatalog := func(t *testing.T, f *fixture) {
		t.Helper()
		f.packages.On("LoadPackages", mock.Anything).Return([]*tour.Package{
			makePackage(t, "pkg-1", "Beach Tour", "Sun and sand", "200"),
		}, nil).Once()
		rec := f.request(http.MethodGet, "/api/v1/packages", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	t.Run("answers 201 with the created order", func(t *testing.T) {
		f := newFixture(t)
		loadCatalog(t, f)

		f.sessions.On("CurrentUser").Return(mustNewID(t, "user-1"), nil).Once()
		created, err := order.RestoreOrder(
			mustNewID(t, "ord-1"), mustNewID(t, "user-1"), mustNewID(t, "pkg-1"),
			"Beach Tour", order.Paid,
		)
		require.NoError(t, err)
		f.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(created, nil).Once()

		rec := f.request(http.MethodPost, "/api/v1/purchase", purchaseBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ord-1", body["id"])
		assert.Equal(t, "Beach Tour", body["name"])
		assert.Equal(t, "Paid", body["paymentStatus"])
		assert.Equal(t, true, body["paid"])
		f.orders.AssertExpectations(t)
	})

	t.Run("payment rule failure answers 400 with the exact message", func(t *testing.T) {
		f := newFixture(t)
		loadCatalog(t, f)
		f.sessions.On("CurrentUser").Return(mustNewID(t, "user-1"), nil).Once()

		rec := f.request(http.MethodPost, "/api/v1/purchase", `{
			"packageId": "pkg-1",
			"cardNumber": "123",
			"cardHolder": "Jane Doe",
			"expiryDate": "12/30",
			"cvv": "123"
		}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Card number must be 16 digits", body["message"])
		f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("no session answers 401", func(t *testing.T) {
		f := newFixture(t)
		loadCatalog(t, f)
		f.sessions.On("CurrentUser").
			Return(mustNewID(t, "ignored"), errs.NewAuthRequiredError()).Once()

		rec := f.request(http.MethodPost, "/api/v1/purchase", purchaseBody)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown package answers 404", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.On("CurrentUser").Return(mustNewID(t, "user-1"), nil).Once()

		rec := f.request(http.MethodPost, "/api/v1/purchase", purchaseBody)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("backend rejection answers 502", func(t *testing.T) {
		f := newFixture(t)
		loadCatalog(t, f)
		f.sessions.On("CurrentUser").Return(mustNewID(t, "user-1"), nil).Once()
		f.orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(nil, errs.NewRemoteCallFailedError("create order")).Once()

		rec := f.request(http.MethodPost, "/api/v1/purchase", purchaseBody)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestServer_GetOrders(t *testing.T) {
	t.Run("returns the signed-in user's history", func(t *testing.T) {
		f := newFixture(t)
		userID := mustNewID(t, "user-1")
		f.sessions.On("CurrentUser").Return(userID, nil).Once()

		paid, err := order.RestoreOrder(
			mustNewID(t, "ord-1"), userID, mustNewID(t, "pkg-1"), "Beach Tour", order.Paid,
		)
		require.NoError(t, err)
		f.orders.On("GetOrdersForUser", mock.Anything, userID).
			Return([]*order.Order{paid}, nil).Once()

		rec := f.request(http.MethodGet, "/api/v1/orders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "ord-1", rows[0]["id"])
		assert.Equal(t, "pkg-1", rows[0]["packageId"])
		assert.Equal(t, "Beach Tour", rows[0]["name"])
		assert.Equal(t, true, rows[0]["paid"])
	})

	t.Run("no session answers 401", func(t *testing.T) {
		f := newFixture(t)
		f.sessions.On("CurrentUser").
			Return(mustNewID(t, "ignored"), errs.NewAuthRequiredError()).Once()

		rec := f.request(http.MethodGet, "/api/v1/orders", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_ExportReport(t *testing.T) {
	t.Run("renders the filtered view as a download", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("LoadPackages", mock.Anything).Return([]*tour.Package{
			makePackage(t, "1", "Beach Tour", "Sun and sand", "200"),
			makePackage(t, "2", "Mountain Trek", "High altitude hiking", "349.5"),
		}, nil).Once()
		f.renderer.On("Render", "Tour Packages",
			mock.MatchedBy(func(view []*tour.Package) bool {
				return len(view) == 1 && view[0].Name() == "Beach Tour"
			})).Return([]byte("%PDF-stub"), nil).Once()

		rec := f.request(http.MethodGet, "/api/v1/packages/report?search=beach", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, `attachment; filename="packages.pdf"`,
			rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "%PDF-stub", rec.Body.String())
		f.renderer.AssertExpectations(t)
	})

	t.Run("backend failure answers 502", func(t *testing.T) {
		f := newFixture(t)
		f.packages.On("LoadPackages", mock.Anything).
			Return(nil, errs.NewRemoteCallFailedError("load packages")).Once()

		rec := f.request(http.MethodGet, "/api/v1/packages/report", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestServer_GetOpenAPI(t *testing.T) {
	t.Run("answers 404 without a loaded document", func(t *testing.T) {
		f := newFixture(t)

		rec := f.request(http.MethodGet, "/openapi.json", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
