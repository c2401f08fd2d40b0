package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	"github.com/homebase-labs/seller-marketplace/internal/repositories/mocks"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddManualSale(t *testing.T) {
	ctx := context.Background()

	t.Run("Computes totals and defaults", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		var captured *models.SaleRecord

		mockRepo.On("CreateSaleRecord", mock.Anything, mock.MatchedBy(func(s *models.SaleRecord) bool {
			captured = s

			return true
		})).Return(nil).Once()

		req := &models.AddManualSaleRequest{
			ProductName:  "Basmati Rice",
			Quantity:     2.5,
			SellingPrice: 80,
			CostPrice:    60,
			Category:     "Grocery",
		}

		// Act
		sale, err := shopService.AddManualSale(ctx, "seller-1", req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, captured)
		assert.Equal(t, models.SaleTypeManual, sale.SaleType)
		assert.Equal(t, "piece", sale.Unit)
		assert.True(t, strings.HasPrefix(sale.OrderID, "manual_"))
		assert.InDelta(t, 200.0, sale.TotalAmount, 1e-9)
		assert.InDelta(t, 150.0, sale.TotalCost, 1e-9)
		assert.InDelta(t, 50.0, sale.Profit, 1e-9)
		assert.False(t, sale.SaleDate.IsZero())
		mockRepo.AssertExpectations(t)
	})
}

func TestRecordOrderSale(t *testing.T) {
	ctx := context.Background()

	t.Run("Stamps order type and computes totals", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		mockRepo.On("CreateSaleRecord", mock.Anything, mock.AnythingOfType("*models.SaleRecord")).Return(nil).Once()

		sale := &models.SaleRecord{
			SellerID:     "seller-1",
			OrderID:      "order-42",
			ProductName:  "Amul Butter",
			Quantity:     3,
			SellingPrice: 60,
			CostPrice:    45,
		}

		// Act
		recorded, err := shopService.RecordOrderSale(ctx, sale)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.SaleTypeOrder, recorded.SaleType)
		assert.NotEqual(t, uuid.Nil, recorded.ID)
		assert.Equal(t, "piece", recorded.Unit)
		assert.False(t, recorded.SaleDate.IsZero())
		assert.InDelta(t, 180.0, recorded.TotalAmount, 1e-9)
		assert.InDelta(t, 135.0, recorded.TotalCost, 1e-9)
		assert.InDelta(t, 45.0, recorded.Profit, 1e-9)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Keeps a provided sale date and strips markup", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		mockRepo.On("CreateSaleRecord", mock.Anything, mock.AnythingOfType("*models.SaleRecord")).Return(nil).Once()

		saleDate := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
		sale := &models.SaleRecord{
			SellerID:     "seller-1",
			OrderID:      "order-43",
			ProductName:  "<b>Butter</b>",
			Quantity:     1,
			SellingPrice: 60,
			SaleDate:     saleDate,
		}

		// Act
		recorded, err := shopService.RecordOrderSale(ctx, sale)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, saleDate, recorded.SaleDate)
		assert.Equal(t, "Butter", recorded.ProductName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repo failure surfaces as a database error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		mockRepo.On("CreateSaleRecord", mock.Anything, mock.AnythingOfType("*models.SaleRecord")).
			Return(errors.New("connection reset")).Once()

		sale := &models.SaleRecord{SellerID: "seller-1", OrderID: "order-44", ProductName: "Butter", Quantity: 1}

		// Act
		recorded, err := shopService.RecordOrderSale(ctx, sale)

		// Assert
		require.Error(t, err)
		assert.Nil(t, recorded)

		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestExpenseLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Update of another seller's expense is not found", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		id := uuid.New()
		mockRepo.On("GetExpenseByIDAndSeller", mock.Anything, id, "intruder").Return(nil, sql.ErrNoRows).Once()

		// Act
		expense, err := shopService.UpdateExpense(ctx, "intruder", id, &models.UpdateExpenseRequest{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, expense)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateExpenseRecord", mock.Anything, mock.Anything)
	})

	t.Run("Update applies only provided fields", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		existing := &models.ExpenseRecord{
			ID:       uuid.New(),
			SellerID: "seller-1",
			Title:    "Rent",
			Amount:   5000,
			Category: "Fixed",
			Type:     "recurring",
		}

		newAmount := 5500.0
		mockRepo.On("GetExpenseByIDAndSeller", mock.Anything, existing.ID, "seller-1").Return(existing, nil).Once()
		mockRepo.On("UpdateExpenseRecord", mock.Anything, mock.MatchedBy(func(e *models.ExpenseRecord) bool {
			return e.Amount == newAmount && e.Title == "Rent"
		})).Return(nil).Once()

		// Act
		expense, err := shopService.UpdateExpense(ctx, "seller-1", existing.ID, &models.UpdateExpenseRequest{Amount: &newAmount})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newAmount, expense.Amount)
		mockRepo.AssertExpectations(t)
	})
}

func TestBuildProfitLossReport(t *testing.T) {
	ctx := context.Background()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	t.Run("Computes totals, margins and day count", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		catalogID := uuid.New()

		sales := []*models.SaleRecord{
			{CatalogEntryID: &catalogID, ProductName: "Butter", Category: "Dairy", Quantity: 1,
				TotalAmount: 100, TotalCost: 60, Profit: 40, SaleType: models.SaleTypeOrder},
			{ProductName: "Loose Sugar", Category: "Grocery", Quantity: 2,
				TotalAmount: 50, TotalCost: 50, Profit: 0, SaleType: models.SaleTypeManual},
		}

		expenses := []*models.ExpenseRecord{
			{Category: "Transport", Amount: 20},
		}

		mockRepo.On("ListSalesInWindow", mock.Anything, "seller-1", start, end).Return(sales, nil).Once()
		mockRepo.On("ListExpensesInWindow", mock.Anything, "seller-1", start, end).Return(expenses, nil).Once()

		// Act
		report, err := shopService.BuildProfitLossReport(ctx, "seller-1", "weekly", &start, &end)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 150.0, report.TotalSales)
		assert.Equal(t, 110.0, report.TotalCosts)
		assert.Equal(t, 40.0, report.GrossProfit)
		assert.Equal(t, 20.0, report.TotalExpenses)
		assert.Equal(t, 20.0, report.NetProfit)
		assert.InDelta(t, 13.333333, report.ProfitMargin, 1e-4)
		assert.Equal(t, 3.0, report.TotalItemsSold)
		assert.Equal(t, 2, report.TotalOrdersCount)
		assert.Equal(t, map[string]float64{"Transport": 20}, report.ExpensesByCategory)

		// only the order-type sale counts towards the order average
		assert.Equal(t, 150.0, report.AverageOrderValue)

		// inclusive: seven 24h spans plus one
		assert.Equal(t, 8, report.DaysInPeriod)
		assert.InDelta(t, 2.5, report.DailyAverageProfit, 1e-9)
	})

	t.Run("Groups products by catalog id and by manual name key", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		catalogID := uuid.New()

		sales := []*models.SaleRecord{
			{CatalogEntryID: &catalogID, ProductName: "Butter", Category: "Dairy", Quantity: 1,
				TotalAmount: 100, TotalCost: 60, Profit: 40, SaleType: models.SaleTypeOrder},
			{CatalogEntryID: &catalogID, ProductName: "Butter", Category: "Dairy", Quantity: 2,
				TotalAmount: 200, TotalCost: 120, Profit: 80, SaleType: models.SaleTypeOrder},
			{ProductName: "Butter", CustomName: "Homemade", Category: "Dairy", Quantity: 1,
				TotalAmount: 90, TotalCost: 70, Profit: 20, SaleType: models.SaleTypeManual},
		}

		mockRepo.On("ListSalesInWindow", mock.Anything, "seller-1", start, end).Return(sales, nil).Once()
		mockRepo.On("ListExpensesInWindow", mock.Anything, "seller-1", start, end).Return(nil, nil).Once()

		// Act
		report, err := shopService.BuildProfitLossReport(ctx, "seller-1", "weekly", &start, &end)

		// Assert
		require.NoError(t, err)
		require.Len(t, report.TopProducts, 2)

		// linked sales merge into one row and sort first by profit
		assert.Equal(t, &catalogID, report.TopProducts[0].CatalogEntryID)
		assert.Equal(t, 120.0, report.TopProducts[0].TotalProfit)
		assert.Equal(t, 2, report.TopProducts[0].SalesCount)
		assert.InDelta(t, 40.0, report.TopProducts[0].ProfitMargin, 1e-9)

		assert.Nil(t, report.TopProducts[1].CatalogEntryID)
		assert.Equal(t, "Homemade", report.TopProducts[1].CustomName)

		require.Len(t, report.CategoryPerformance, 1)
		assert.Equal(t, "Dairy", report.CategoryPerformance[0].Category)
		assert.Equal(t, 2, report.CategoryPerformance[0].ProductsCount)
	})

	t.Run("Zero sales produce a zeroed report without dividing by zero", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		mockRepo.On("ListSalesInWindow", mock.Anything, "seller-1", start, end).Return(nil, nil).Once()
		mockRepo.On("ListExpensesInWindow", mock.Anything, "seller-1", start, end).Return(nil, nil).Once()

		// Act
		report, err := shopService.BuildProfitLossReport(ctx, "seller-1", "weekly", &start, &end)

		// Assert
		require.NoError(t, err)
		assert.Zero(t, report.TotalSales)
		assert.Zero(t, report.ProfitMargin)
		assert.Zero(t, report.AverageOrderValue)
		assert.Empty(t, report.TopProducts)
	})

	t.Run("Unknown period is a validation error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		// Act
		report, err := shopService.BuildProfitLossReport(ctx, "seller-1", "fortnightly", nil, nil)

		// Assert
		require.Error(t, err)
		assert.Nil(t, report)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})

	t.Run("Start date after end date is rejected", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ShopRepository)
		shopService := service.NewShopService(mockRepo)

		late := end.Add(time.Hour)

		// Act
		report, err := shopService.BuildProfitLossReport(ctx, "seller-1", "", &late, &end)

		// Assert
		require.Error(t, err)
		assert.Nil(t, report)
	})
}
