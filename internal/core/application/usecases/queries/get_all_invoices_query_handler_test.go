package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dinepos/internal/adapters/out/postgres/invoicerepo"
	"dinepos/internal/core/application/usecases/queries"
	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllInvoicesQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetAllInvoicesQueryHandler
	invoiceRepo *invoicerepo.GormInvoiceRepository
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&invoicerepo.InvoiceDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllInvoicesQueryHandler(db)
	suite.invoiceRepo = invoicerepo.NewGormInvoiceRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE invoices").Error
	suite.Require().NoError(err)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) seedInvoice(
	id, billNumber string,
	orderType invoice.OrderType,
	tableName string,
	issuedAt time.Time,
) *invoice.Invoice {
	invoiceID, err := kernel.IDFromString(id)
	suite.Require().NoError(err)
	inv, err := invoice.NewInvoice(invoiceID, billNumber, orderType, tableName,
		[]map[string]any{{"id": "espresso", "quantity": float64(2), "price": 3.5}},
		7.0, 0.35, 7.35, issuedAt)
	suite.Require().NoError(err)
	err = suite.invoiceRepo.Add(context.Background(), inv)
	suite.Require().NoError(err)
	return inv
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllInvoicesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_ReturnsInvoicesNewestFirst() {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.seedInvoice("i-1", "B-001", invoice.DineIn, "Window 1", base)
	suite.seedInvoice("i-2", "B-002", invoice.TakeAway, "", base.Add(time.Hour))
	suite.seedInvoice("i-3", "B-003", invoice.DineIn, "Window 2", base.Add(2*time.Hour))

	query := queries.NewGetAllInvoicesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("B-003", result[0].BillNumber)
	suite.Equal("B-002", result[1].BillNumber)
	suite.Equal("B-001", result[2].BillNumber)
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	issuedAt := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	seeded := suite.seedInvoice("i-1", "B-042", invoice.TakeAway, "", issuedAt)

	query := queries.NewGetAllInvoicesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(seeded.ID()))
	suite.Equal("B-042", result[0].BillNumber)
	suite.Equal(invoice.TakeAway, result[0].OrderType)
	suite.Equal("", result[0].TableName)
	suite.Equal(7.0, result[0].Subtotal)
	suite.Equal(0.35, result[0].Tax)
	suite.Equal(7.35, result[0].Total)
	suite.Equal(issuedAt, result[0].Timestamp)

	var items []map[string]any
	suite.Require().NoError(json.Unmarshal(result[0].Items, &items))
	suite.Require().Len(items, 1)
	suite.Equal("espresso", items[0]["id"])
	suite.Equal(3.5, items[0]["price"])
}

func (suite *GetAllInvoicesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllInvoicesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllInvoicesQuery constructor")
}

func TestGetAllInvoicesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllInvoicesQueryHandlerTestSuite))
}
