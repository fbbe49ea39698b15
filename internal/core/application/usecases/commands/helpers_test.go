package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tourcatalog/internal/core/application/store"
	"tourcatalog/internal/core/domain/model/kernel"
	"tourcatalog/internal/core/domain/model/order"
	"tourcatalog/internal/core/domain/model/tour"
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

func mustNewID(t *testing.T, value string) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func makePackage(t *testing.T, id, name string) *tour.Package {
	t.Helper()
	price, err := kernel.PriceFromString("200")
	require.NoError(t, err)
	pkg, err := tour.NewPackage(mustNewID(t, id), name, "Sun and sand", price)
	require.NoError(t, err)
	return pkg
}

// loadedCatalog builds a store whose working set holds the given packages.
func loadedCatalog(t *testing.T, packages ...*tour.Package) *store.CatalogStore {
	t.Helper()
	gateway := new(MockPackageGateway)
	gateway.On("LoadPackages", mock.Anything).Return(packages, nil).Once()

	catalog := store.NewCatalogStore(gateway)
	require.NoError(t, catalog.Load(t.Context()))
	return catalog
}
