package cmd

import (
	"log/slog"

	httpin "dinepos/internal/adapters/in/http"
	"dinepos/internal/adapters/out/postgres"
	"dinepos/internal/core/application/usecases/commands"
	"dinepos/internal/core/application/usecases/queries"
	"dinepos/internal/jobs"
	"dinepos/internal/pkg/locks"

	"gorm.io/gorm"
)

// CompositionRoot wires the use case handlers over shared infrastructure.
// The keyed mutexes are shared across every handler so all operations on one
// table, and all accesses to one configuration singleton, serialize on the
// same lock regardless of which endpoint they arrive through.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	tableLocks  *locks.KeyedMutex
	configLocks *locks.KeyedMutex
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		tableLocks:  locks.NewKeyedMutex(),
		configLocks: locks.NewKeyedMutex(),
	}
}

func (c *CompositionRoot) CreateCreateTableCommandHandler() commands.CreateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTableCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTableCommandHandler() commands.UpdateTableCommandHandler {
	var f commands.TableUoWFactory = FuncTableUoWFactory(func() commands.TableUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTableCommandHandler(f, c.tableLocks)
}

func (c *CompositionRoot) CreateDeleteTableCommandHandler() commands.DeleteTableCommandHandler {
	var f commands.DiningUoWFactory = FuncDiningUoWFactory(func() commands.DiningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteTableCommandHandler(f, c.tableLocks)
}

func (c *CompositionRoot) CreateSubmitItemsCommandHandler() commands.SubmitItemsCommandHandler {
	var f commands.DiningUoWFactory = FuncDiningUoWFactory(func() commands.DiningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitItemsCommandHandler(f, c.tableLocks)
}

func (c *CompositionRoot) CreateMarkItemsSentCommandHandler() commands.MarkItemsSentCommandHandler {
	var f commands.DiningUoWFactory = FuncDiningUoWFactory(func() commands.DiningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkItemsSentCommandHandler(f, c.tableLocks)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.DiningUoWFactory = FuncDiningUoWFactory(func() commands.DiningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f, c.tableLocks)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeTableCommandHandler() commands.FinalizeTableCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeTableCommandHandler(f, c.tableLocks)
}

func (c *CompositionRoot) CreateUpdateKOTConfigCommandHandler() commands.UpdateKOTConfigCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateKOTConfigCommandHandler(f, c.configLocks)
}

func (c *CompositionRoot) CreateUpdateBillConfigCommandHandler() commands.UpdateBillConfigCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateBillConfigCommandHandler(f, c.configLocks)
}

func (c *CompositionRoot) CreateGetAllTablesQueryHandler() queries.GetAllTablesQueryHandler {
	return queries.NewGetAllTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTableOrderQueryHandler() queries.GetTableOrderQueryHandler {
	return queries.NewGetTableOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllInvoicesQueryHandler() queries.GetAllInvoicesQueryHandler {
	return queries.NewGetAllInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetKOTConfigQueryHandler() queries.GetKOTConfigQueryHandler {
	var f queries.SettingsUoWFactory = FuncQuerySettingsUoWFactory(func() queries.SettingsUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetKOTConfigQueryHandler(f, c.configLocks)
}

func (c *CompositionRoot) CreateGetBillConfigQueryHandler() queries.GetBillConfigQueryHandler {
	var f queries.SettingsUoWFactory = FuncQuerySettingsUoWFactory(func() queries.SettingsUoW {
		return c.uowFactory.Create()
	})
	return queries.NewGetBillConfigQueryHandler(f, c.configLocks)
}

// CreateHTTPServer assembles the REST API over every use case handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createTable := c.CreateCreateTableCommandHandler()
	updateTable := c.CreateUpdateTableCommandHandler()
	deleteTable := c.CreateDeleteTableCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateTable:   &createTable,
		UpdateTable:   &updateTable,
		DeleteTable:   &deleteTable,
		SubmitItems:   c.CreateSubmitItemsCommandHandler(),
		MarkItemsSent: c.CreateMarkItemsSentCommandHandler(),
		CompleteOrder: c.CreateCompleteOrderCommandHandler(),
		CreateInvoice: c.CreateCreateInvoiceCommandHandler(),
		FinalizeTable: c.CreateFinalizeTableCommandHandler(),
		UpdateKOT:     c.CreateUpdateKOTConfigCommandHandler(),
		UpdateBill:    c.CreateUpdateBillConfigCommandHandler(),

		GetAllTables:   c.CreateGetAllTablesQueryHandler(),
		GetAllOrders:   c.CreateGetAllOrdersQueryHandler(),
		GetTableOrder:  c.CreateGetTableOrderQueryHandler(),
		GetAllInvoices: c.CreateGetAllInvoicesQueryHandler(),
		GetKOTConfig:   c.CreateGetKOTConfigQueryHandler(),
		GetBillConfig:  c.CreateGetBillConfigQueryHandler(),
	})
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, logger)
}

type FuncTableUoWFactory func() commands.TableUoW

func (f FuncTableUoWFactory) Create() commands.TableUoW {
	return f()
}

type FuncDiningUoWFactory func() commands.DiningUoW

func (f FuncDiningUoWFactory) Create() commands.DiningUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncQuerySettingsUoWFactory func() queries.SettingsUoW

func (f FuncQuerySettingsUoWFactory) Create() queries.SettingsUoW {
	return f()
}
