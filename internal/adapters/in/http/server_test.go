package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dinepos/internal/core/application/usecases/commands"
	"dinepos/internal/core/application/usecases/queries"
	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCreateTable struct {
	tbl *table.Table
	err error
}

func (s stubCreateTable) Handle(_ context.Context, _ commands.CreateTableCommand) (*table.Table, error) {
	return s.tbl, s.err
}

type stubUpdateTable struct {
	tbl *table.Table
	err error
}

func (s stubUpdateTable) Handle(_ context.Context, _ commands.UpdateTableCommand) (*table.Table, error) {
	return s.tbl, s.err
}

type stubDeleteTable struct {
	err error
}

func (s stubDeleteTable) Handle(_ context.Context, _ commands.DeleteTableCommand) error {
	return s.err
}

type stubSubmitItems struct {
	tableOrder *order.TableOrder
	err        error
}

func (s stubSubmitItems) Handle(_ context.Context, _ commands.SubmitItemsCommand) (*order.TableOrder, error) {
	return s.tableOrder, s.err
}

type stubMarkItemsSent struct {
	tableOrder *order.TableOrder
	err        error
}

func (s stubMarkItemsSent) Handle(_ context.Context, _ commands.MarkItemsSentCommand) (*order.TableOrder, error) {
	return s.tableOrder, s.err
}

type stubCompleteOrder struct {
	err error
}

func (s stubCompleteOrder) Handle(_ context.Context, _ commands.CompleteOrderCommand) error {
	return s.err
}

type stubCreateInvoice struct {
	inv *invoice.Invoice
	err error
}

func (s stubCreateInvoice) Handle(_ context.Context, _ commands.CreateInvoiceCommand) (*invoice.Invoice, error) {
	return s.inv, s.err
}

type stubFinalizeTable struct {
	inv *invoice.Invoice
	err error
}

func (s stubFinalizeTable) Handle(_ context.Context, _ commands.FinalizeTableCommand) (*invoice.Invoice, error) {
	return s.inv, s.err
}

type stubGetAllTables struct {
	rows []queries.GetAllTablesQueryResponse
	err  error
}

func (s stubGetAllTables) Handle(_ context.Context, _ queries.GetAllTablesQuery) ([]queries.GetAllTablesQueryResponse, error) {
	return s.rows, s.err
}

type stubGetTableOrder struct {
	row *queries.GetAllOrdersQueryResponse
	err error
}

func (s stubGetTableOrder) Handle(_ context.Context, _ queries.GetTableOrderQuery) (*queries.GetAllOrdersQueryResponse, error) {
	return s.row, s.err
}

type stubGetKOTConfig struct {
	cfg *settings.KOTConfig
	err error
}

func (s stubGetKOTConfig) Handle(_ context.Context, _ queries.GetKOTConfigQuery) (*settings.KOTConfig, error) {
	return s.cfg, s.err
}

func mustID(t *testing.T, s string) kernel.ID {
	t.Helper()
	id, err := kernel.IDFromString(s)
	require.NoError(t, err)
	return id
}

func mustTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewTable(mustID(t, "t-1"), "Window 1", 4, "Main Hall", table.Available)
	require.NoError(t, err)
	return tbl
}

func mustOrder(t *testing.T) *order.TableOrder {
	t.Helper()
	item, err := order.NewLineItem("espresso", 2, map[string]any{"price": 3.5})
	require.NoError(t, err)
	tableOrder, err := order.NewTableOrder(mustID(t, "t-1"), "Window 1",
		[]order.LineItem{item}, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return tableOrder
}

func mustInvoice(t *testing.T) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(mustID(t, "i-1"), "B-001", invoice.DineIn, "Window 1",
		[]map[string]any{{"id": "espresso", "quantity": float64(2)}},
		7.0, 0.35, 7.35, time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return inv
}

func newContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestCreateTable_Success_Returns201(t *testing.T) {
	server := NewServer(Handlers{CreateTable: stubCreateTable{tbl: mustTable(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/tables",
		`{"id":"t-1","name":"Window 1","seats":4,"category":"Main Hall"}`)

	err := server.CreateTable(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "t-1", resp.ID)
	assert.Equal(t, "available", resp.Status)
}

func TestCreateTable_DuplicateID_Returns409(t *testing.T) {
	server := NewServer(Handlers{
		CreateTable: stubCreateTable{err: errs.NewObjectAlreadyExistsError("table", "t-1")},
	})
	ctx, rec := newContext(t, http.MethodPost, "/api/tables",
		`{"id":"t-1","name":"Window 1","seats":4}`)

	require.NoError(t, server.CreateTable(ctx))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateTable_InvalidStatus_Returns400(t *testing.T) {
	server := NewServer(Handlers{CreateTable: stubCreateTable{tbl: mustTable(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/tables",
		`{"id":"t-1","name":"Window 1","seats":4,"status":"reserved"}`)

	require.NoError(t, server.CreateTable(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTable_InvalidSeats_Returns400(t *testing.T) {
	server := NewServer(Handlers{
		CreateTable: stubCreateTable{err: errs.NewValueIsOutOfRangeError("seats", 0, 1, 100)},
	})
	ctx, rec := newContext(t, http.MethodPost, "/api/tables",
		`{"id":"t-1","name":"Window 1","seats":0}`)

	require.NoError(t, server.CreateTable(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTable_NotFound_Returns404(t *testing.T) {
	server := NewServer(Handlers{
		UpdateTable: stubUpdateTable{err: errs.NewObjectNotFoundError("table", "t-9")},
	})
	ctx, rec := newContext(t, http.MethodPut, "/api/tables/t-9", `{"name":"New"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-9")

	require.NoError(t, server.UpdateTable(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTable_ActiveOrder_Returns409(t *testing.T) {
	server := NewServer(Handlers{
		DeleteTable: stubDeleteTable{err: commands.ErrTableHasActiveOrder},
	})
	ctx, rec := newContext(t, http.MethodDelete, "/api/tables/t-1", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.DeleteTable(ctx))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteTable_Success_Returns200(t *testing.T) {
	server := NewServer(Handlers{DeleteTable: stubDeleteTable{}})
	ctx, rec := newContext(t, http.MethodDelete, "/api/tables/t-1", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.DeleteTable(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetTables_Success_ReturnsRegistry(t *testing.T) {
	server := NewServer(Handlers{
		GetAllTables: stubGetAllTables{rows: []queries.GetAllTablesQueryResponse{
			{ID: mustID(t, "t-1"), Name: "Window 1", Seats: 4, Category: "Main Hall", Status: table.Occupied},
		}},
	})
	ctx, rec := newContext(t, http.MethodGet, "/api/tables", "")

	require.NoError(t, server.GetTables(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []TableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "occupied", resp[0].Status)
}

func TestGetTables_HandlerFailure_Returns500(t *testing.T) {
	server := NewServer(Handlers{
		GetAllTables: stubGetAllTables{err: errors.New("connection reset")},
	})
	ctx, rec := newContext(t, http.MethodGet, "/api/tables", "")

	require.NoError(t, server.GetTables(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSubmitItems_Success_Returns200WithOrder(t *testing.T) {
	server := NewServer(Handlers{SubmitItems: stubSubmitItems{tableOrder: mustOrder(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/orders/table/t-1",
		`{"table_name":"Window 1","items":[{"id":"espresso","quantity":2,"price":3.5}]}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.SubmitItems(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "t-1", resp.TableID)
	assert.Equal(t, "Window 1", resp.TableName)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(resp.Items, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "espresso", items[0]["id"])
	assert.Equal(t, float64(2), items[0]["quantity"])
	assert.Equal(t, false, items[0]["sentToKitchen"])
	assert.Equal(t, 3.5, items[0]["price"])
}

func TestSubmitItems_MissingItemID_Returns400(t *testing.T) {
	server := NewServer(Handlers{SubmitItems: stubSubmitItems{tableOrder: mustOrder(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/orders/table/t-1",
		`{"table_name":"Window 1","items":[{"quantity":2}]}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.SubmitItems(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitItems_MissingQuantity_Returns400(t *testing.T) {
	server := NewServer(Handlers{SubmitItems: stubSubmitItems{tableOrder: mustOrder(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/orders/table/t-1",
		`{"table_name":"Window 1","items":[{"id":"espresso"}]}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.SubmitItems(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTableOrder_NoOrder_ReturnsEmptyObject(t *testing.T) {
	server := NewServer(Handlers{GetTableOrder: stubGetTableOrder{}})
	ctx, rec := newContext(t, http.MethodGet, "/api/orders/table/t-1", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.GetTableOrder(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestMarkItemsSent_NoActiveOrder_Returns404(t *testing.T) {
	server := NewServer(Handlers{
		MarkItemsSent: stubMarkItemsSent{err: errs.NewObjectNotFoundError("tableID", "t-1")},
	})
	ctx, rec := newContext(t, http.MethodPost, "/api/orders/table/t-1/sent", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.MarkItemsSent(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteOrder_Success_Returns200(t *testing.T) {
	server := NewServer(Handlers{CompleteOrder: stubCompleteOrder{}})
	ctx, rec := newContext(t, http.MethodPost, "/api/orders/table/t-1/complete", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.CompleteOrder(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateInvoice_Success_Returns201(t *testing.T) {
	server := NewServer(Handlers{CreateInvoice: stubCreateInvoice{inv: mustInvoice(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/invoices",
		`{"billNumber":"B-001","orderType":"dine-in","tableName":"Window 1","items":[],"subtotal":7,"tax":0.35,"total":7.35,"timestamp":"2026-03-01T18:00:00Z"}`)

	require.NoError(t, server.CreateInvoice(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp InvoiceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "B-001", resp.BillNumber)
	assert.Equal(t, "dine-in", resp.OrderType)
	assert.Equal(t, "2026-03-01T18:00:00Z", resp.Timestamp)
}

func TestCreateInvoice_MalformedTimestamp_Returns400(t *testing.T) {
	server := NewServer(Handlers{CreateInvoice: stubCreateInvoice{inv: mustInvoice(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/invoices",
		`{"billNumber":"B-001","orderType":"dine-in","timestamp":"yesterday"}`)

	require.NoError(t, server.CreateInvoice(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInvoice_UnknownOrderType_Returns400(t *testing.T) {
	server := NewServer(Handlers{CreateInvoice: stubCreateInvoice{inv: mustInvoice(t)}})
	ctx, rec := newContext(t, http.MethodPost, "/api/invoices",
		`{"billNumber":"B-001","orderType":"delivery","timestamp":"2026-03-01T18:00:00Z"}`)

	require.NoError(t, server.CreateInvoice(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFinalizeTable_NoActiveOrder_Returns404(t *testing.T) {
	server := NewServer(Handlers{
		FinalizeTable: stubFinalizeTable{err: errs.NewObjectNotFoundError("tableID", "t-1")},
	})
	ctx, rec := newContext(t, http.MethodPost, "/api/tables/t-1/finalize",
		`{"billNumber":"B-001","items":[],"subtotal":0,"tax":0,"total":0,"timestamp":"2026-03-01T18:00:00Z"}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("t-1")

	require.NoError(t, server.FinalizeTable(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetKOTConfig_Success_ReturnsConfig(t *testing.T) {
	cfg, err := settings.NewKOTConfig(true, 2)
	require.NoError(t, err)
	server := NewServer(Handlers{GetKOTConfig: stubGetKOTConfig{cfg: cfg}})
	ctx, rec := newContext(t, http.MethodGet, "/api/config/kot", "")

	require.NoError(t, server.GetKOTConfig(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"printByDepartment":true,"numberOfCopies":2}`, rec.Body.String())
}

func TestHealth_Returns200(t *testing.T) {
	server := NewServer(Handlers{})
	ctx, rec := newContext(t, http.MethodGet, "/health", "")

	require.NoError(t, server.Health(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
}
