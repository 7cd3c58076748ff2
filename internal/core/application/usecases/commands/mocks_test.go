package commands_test

import (
	"context"

	"dinepos/internal/core/application/usecases/commands"
	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the repository ports and unit of work variants
// used across the handler tests in this package.

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.ID) (*table.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.TableOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.TableOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByTableID(ctx context.Context, tableID kernel.ID) (*order.TableOrder, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.TableOrder), args.Error(1)
}

func (m *MockOrderRepository) DeleteByTableID(ctx context.Context, tableID kernel.ID) error {
	args := m.Called(ctx, tableID)
	return args.Error(0)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) FetchOrCreateKOT(ctx context.Context) (*settings.KOTConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.KOTConfig), args.Error(1)
}

func (m *MockSettingsRepository) UpdateKOT(ctx context.Context, cfg *settings.KOTConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockSettingsRepository) FetchOrCreateBill(ctx context.Context) (*settings.BillConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settings.BillConfig), args.Error(1)
}

func (m *MockSettingsRepository) UpdateBill(ctx context.Context, cfg *settings.BillConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTableUoW struct{ mockTx }

func (m *MockTableUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

type MockDiningUoW struct{ mockTx }

func (m *MockDiningUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockDiningUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDiningUoWFactory struct{ mock.Mock }

func (m *MockDiningUoWFactory) Create() commands.DiningUoW {
	args := m.Called()
	return args.Get(0).(commands.DiningUoW)
}

type MockInvoiceUoW struct{ mockTx }

func (m *MockInvoiceUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

type MockCheckoutUoW struct{ mockTx }

func (m *MockCheckoutUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCheckoutUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockSettingsUoW struct{ mockTx }

func (m *MockSettingsUoW) SettingsRepository() ports.SettingsRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingsRepository)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingsUoW)
}
