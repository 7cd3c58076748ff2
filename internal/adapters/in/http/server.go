// Package http exposes the dine-in engine over a JSON REST API.
// It binds requests into commands and queries, maps domain errors onto
// status codes, and serializes results using the wire field names the
// front end expects.
package http

import (
	"context"
	"errors"
	"net/http"

	"dinepos/internal/core/application/usecases/commands"
	"dinepos/internal/core/application/usecases/queries"
	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handler interfaces are declared on the consumer side so the server can be
// exercised with stubs in tests. The concrete command and query handlers
// satisfy them directly.
type (
	createTableHandler interface {
		Handle(ctx context.Context, cmd commands.CreateTableCommand) (*table.Table, error)
	}
	updateTableHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateTableCommand) (*table.Table, error)
	}
	deleteTableHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteTableCommand) error
	}
	submitItemsHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitItemsCommand) (*order.TableOrder, error)
	}
	markItemsSentHandler interface {
		Handle(ctx context.Context, cmd commands.MarkItemsSentCommand) (*order.TableOrder, error)
	}
	completeOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
	}
	createInvoiceHandler interface {
		Handle(ctx context.Context, cmd commands.CreateInvoiceCommand) (*invoice.Invoice, error)
	}
	finalizeTableHandler interface {
		Handle(ctx context.Context, cmd commands.FinalizeTableCommand) (*invoice.Invoice, error)
	}
	updateKOTConfigHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateKOTConfigCommand) (*settings.KOTConfig, error)
	}
	updateBillConfigHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateBillConfigCommand) (*settings.BillConfig, error)
	}

	getAllTablesHandler interface {
		Handle(ctx context.Context, query queries.GetAllTablesQuery) ([]queries.GetAllTablesQueryResponse, error)
	}
	getAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]queries.GetAllOrdersQueryResponse, error)
	}
	getTableOrderHandler interface {
		Handle(ctx context.Context, query queries.GetTableOrderQuery) (*queries.GetAllOrdersQueryResponse, error)
	}
	getAllInvoicesHandler interface {
		Handle(ctx context.Context, query queries.GetAllInvoicesQuery) ([]queries.GetAllInvoicesQueryResponse, error)
	}
	getKOTConfigHandler interface {
		Handle(ctx context.Context, query queries.GetKOTConfigQuery) (*settings.KOTConfig, error)
	}
	getBillConfigHandler interface {
		Handle(ctx context.Context, query queries.GetBillConfigQuery) (*settings.BillConfig, error)
	}
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateTable   createTableHandler
	UpdateTable   updateTableHandler
	DeleteTable   deleteTableHandler
	SubmitItems   submitItemsHandler
	MarkItemsSent markItemsSentHandler
	CompleteOrder completeOrderHandler
	CreateInvoice createInvoiceHandler
	FinalizeTable finalizeTableHandler
	UpdateKOT     updateKOTConfigHandler
	UpdateBill    updateBillConfigHandler

	GetAllTables   getAllTablesHandler
	GetAllOrders   getAllOrdersHandler
	GetTableOrder  getTableOrderHandler
	GetAllInvoices getAllInvoicesHandler
	GetKOTConfig   getKOTConfigHandler
	GetBillConfig  getBillConfigHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates the HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/api/tables", s.GetTables)
	e.POST("/api/tables", s.CreateTable)
	e.PUT("/api/tables/:id", s.UpdateTable)
	e.DELETE("/api/tables/:id", s.DeleteTable)
	e.POST("/api/tables/:id/finalize", s.FinalizeTable)

	e.GET("/api/orders", s.GetOrders)
	e.GET("/api/orders/table/:id", s.GetTableOrder)
	e.POST("/api/orders/table/:id", s.SubmitItems)
	e.POST("/api/orders/table/:id/sent", s.MarkItemsSent)
	e.POST("/api/orders/table/:id/complete", s.CompleteOrder)

	e.GET("/api/invoices", s.GetInvoices)
	e.POST("/api/invoices", s.CreateInvoice)

	e.GET("/api/config/kot", s.GetKOTConfig)
	e.PUT("/api/config/kot", s.UpdateKOTConfig)
	e.GET("/api/config/bill", s.GetBillConfig)
	e.PUT("/api/config/bill", s.UpdateBillConfig)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetTables handles GET /api/tables - retrieves the table registry.
func (s *Server) GetTables(ctx echo.Context) error {
	tables, err := s.handlers.GetAllTables.Handle(ctx.Request().Context(), queries.NewGetAllTablesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]TableResponse, len(tables))
	for i, row := range tables {
		response[i] = tableQueryToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateTable handles POST /api/tables - registers a new table.
func (s *Server) CreateTable(ctx echo.Context) error {
	var req CreateTableRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewID()
	if req.ID != "" {
		var err error
		if id, err = kernel.IDFromString(req.ID); err != nil {
			return s.respondError(ctx, err)
		}
	}

	status := table.Available
	if req.Status != "" {
		var err error
		if status, err = table.StatusFromString(req.Status); err != nil {
			return s.respondError(ctx, err)
		}
	}

	cmd, err := commands.NewCreateTableCommand(id, req.Name, req.Seats, req.Category, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	tbl, err := s.handlers.CreateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, tableToResponse(tbl))
}

// UpdateTable handles PUT /api/tables/:id - partially updates a table.
func (s *Server) UpdateTable(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req UpdateTableRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var status *table.Status
	if req.Status != nil {
		parsed, statusErr := table.StatusFromString(*req.Status)
		if statusErr != nil {
			return s.respondError(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateTableCommand(id, req.Name, req.Seats, req.Category, status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	tbl, err := s.handlers.UpdateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tableToResponse(tbl))
}

// DeleteTable handles DELETE /api/tables/:id - removes a table.
// Deletion is rejected while the table still has an active order.
func (s *Server) DeleteTable(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteTableCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrders handles GET /api/orders - retrieves all active orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, row := range orders {
		response[i] = orderQueryToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTableOrder handles GET /api/orders/table/:id - retrieves one table's
// active order. A table without an order yields an empty object.
func (s *Server) GetTableOrder(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetTableOrderQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.GetTableOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if result == nil {
		return ctx.JSON(http.StatusOK, map[string]any{})
	}

	return ctx.JSON(http.StatusOK, orderQueryToResponse(*result))
}

// SubmitItems handles POST /api/orders/table/:id - opens or extends the
// table's order with a batch of items.
func (s *Server) SubmitItems(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req SubmitItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	items, err := parseLineItems(req.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitItemsCommand(id, req.TableName, items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	tableOrder, err := s.handlers.SubmitItems.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := orderToResponse(tableOrder)
	if err != nil {
		return s.respondError(ctx, err)
	}

	// The handler creates or merges transparently; the reply is 200 either way.
	return ctx.JSON(http.StatusOK, response)
}

// MarkItemsSent handles POST /api/orders/table/:id/sent - flags every line
// of the table's order as dispatched to the kitchen.
func (s *Server) MarkItemsSent(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkItemsSentCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	tableOrder, err := s.handlers.MarkItemsSent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := orderToResponse(tableOrder)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CompleteOrder handles POST /api/orders/table/:id/complete - closes the
// table's order and frees the table.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetInvoices handles GET /api/invoices - retrieves the invoice archive.
func (s *Server) GetInvoices(ctx echo.Context) error {
	invoices, err := s.handlers.GetAllInvoices.Handle(ctx.Request().Context(), queries.NewGetAllInvoicesQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]InvoiceResponse, len(invoices))
	for i, row := range invoices {
		response[i] = invoiceQueryToResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateInvoice handles POST /api/invoices - records a settled bill.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req CreateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderType, err := invoice.OrderTypeFromString(req.OrderType)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateInvoiceCommand(req.BillNumber, orderType, req.TableName,
		req.Items, req.Subtotal, req.Tax, req.Total, req.Timestamp)
	if err != nil {
		return s.respondError(ctx, err)
	}

	inv, err := s.handlers.CreateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := invoiceToResponse(inv)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// FinalizeTable handles POST /api/tables/:id/finalize - atomically closes
// the table's order, frees the table, and records the invoice.
func (s *Server) FinalizeTable(ctx echo.Context) error {
	id, err := kernel.IDFromString(ctx.Param("id"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var req FinalizeTableRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinalizeTableCommand(id, req.BillNumber,
		req.Items, req.Subtotal, req.Tax, req.Total, req.Timestamp)
	if err != nil {
		return s.respondError(ctx, err)
	}

	inv, err := s.handlers.FinalizeTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := invoiceToResponse(inv)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetKOTConfig handles GET /api/config/kot.
func (s *Server) GetKOTConfig(ctx echo.Context) error {
	cfg, err := s.handlers.GetKOTConfig.Handle(ctx.Request().Context(), queries.NewGetKOTConfigQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, kotConfigToResponse(cfg))
}

// UpdateKOTConfig handles PUT /api/config/kot.
func (s *Server) UpdateKOTConfig(ctx echo.Context) error {
	var req UpdateKOTConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateKOTConfigCommand(req.PrintByDepartment, req.NumberOfCopies)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cfg, err := s.handlers.UpdateKOT.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, kotConfigToResponse(cfg))
}

// GetBillConfig handles GET /api/config/bill.
func (s *Server) GetBillConfig(ctx echo.Context) error {
	cfg, err := s.handlers.GetBillConfig.Handle(ctx.Request().Context(), queries.NewGetBillConfigQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, billConfigToResponse(cfg))
}

// UpdateBillConfig handles PUT /api/config/bill.
func (s *Server) UpdateBillConfig(ctx echo.Context) error {
	var req UpdateBillConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateBillConfigCommand(req.AutoPrintDineIn, req.AutoPrintTakeaway)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cfg, err := s.handlers.UpdateBill.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, billConfigToResponse(cfg))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError translates domain errors into HTTP status codes: absent
// objects map to 404, creation and deletion conflicts to 409, rejected
// input to 400, and anything else to 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrTableHasActiveOrder):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
