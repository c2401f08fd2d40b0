package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	"github.com/homebase-labs/seller-marketplace/internal/repositories/mocks"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type capturingNotifier struct {
	alerts []models.LowStockAlert
	err    error
}

func (n *capturingNotifier) NotifyLowStock(_ context.Context, alerts []models.LowStockAlert) error {
	n.alerts = append(n.alerts, alerts...)

	return n.err
}

func flatWithName(listing *models.Listing, name string) *models.FlatListing {
	return &models.FlatListing{
		ID:       listing.ID,
		SellerID: listing.SellerID,
		Name:     &name,
	}
}

func TestApplyStockDecrements(t *testing.T) {
	ctx := context.Background()

	t.Run("Clamps stock at zero and flips status", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		notifier := &capturingNotifier{}
		stockService := service.NewStockService(mockRepo, notifier)

		listing := &models.Listing{
			ID:       uuid.New(),
			SellerID: "seller-1",
			Stock:    2,
			Status:   models.ListingStatusActive,
		}

		mockRepo.On("GetListingByID", mock.Anything, listing.ID).Return(listing, nil).Once()
		mockRepo.On("GetFlatListingByID", mock.Anything, listing.ID).Return(flatWithName(listing, "Butter"), nil).Once()
		mockRepo.On("UpdateListingStock", mock.Anything, listing.ID, 0, models.ListingStatusOutOfStock).Return(nil).Once()

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingID: listing.ID.String(), SellerID: "seller-1", QuantityToReduce: 5},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Updates, 1)
		assert.Equal(t, 2, result.Updates[0].PreviousStock)
		assert.Equal(t, 0, result.Updates[0].NewStock)
		assert.Equal(t, 2, result.Updates[0].QuantityReduced)
		assert.Equal(t, models.ListingStatusOutOfStock, result.Updates[0].Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Alert raised only below threshold", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		notifier := &capturingNotifier{}
		stockService := service.NewStockService(mockRepo, notifier)

		atThreshold := &models.Listing{ID: uuid.New(), SellerID: "s", Stock: 10, Status: models.ListingStatusActive}
		belowThreshold := &models.Listing{ID: uuid.New(), SellerID: "s", Stock: 10, Status: models.ListingStatusActive}

		for _, l := range []*models.Listing{atThreshold, belowThreshold} {
			mockRepo.On("GetListingByID", mock.Anything, l.ID).Return(l, nil).Once()
			mockRepo.On("GetFlatListingByID", mock.Anything, l.ID).Return(flatWithName(l, "Milk"), nil).Once()
		}

		mockRepo.On("UpdateListingStock", mock.Anything, atThreshold.ID, 5, models.ListingStatusActive).Return(nil).Once()
		mockRepo.On("UpdateListingStock", mock.Anything, belowThreshold.ID, 4, models.ListingStatusActive).Return(nil).Once()

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingID: atThreshold.ID.String(), SellerID: "s", QuantityToReduce: 5},
			{ListingID: belowThreshold.ID.String(), SellerID: "s", QuantityToReduce: 6},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, result.LowStockAlerts, 1)
		assert.Equal(t, belowThreshold.ID, result.LowStockAlerts[0].ListingID)
		assert.Equal(t, "Milk", result.LowStockAlerts[0].ProductName)
		assert.Equal(t, 4, result.LowStockAlerts[0].Stock)
		assert.Len(t, notifier.alerts, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Flat lookup failure falls back to the listing name", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		notifier := &capturingNotifier{}
		stockService := service.NewStockService(mockRepo, notifier)

		listing := &models.Listing{
			ID:         uuid.New(),
			SellerID:   "seller-1",
			CustomName: "My Butter",
			Stock:      5,
			Status:     models.ListingStatusActive,
		}

		mockRepo.On("GetListingByID", mock.Anything, listing.ID).Return(listing, nil).Once()
		mockRepo.On("GetFlatListingByID", mock.Anything, listing.ID).
			Return(nil, errors.New("connection reset")).Once()
		mockRepo.On("UpdateListingStock", mock.Anything, listing.ID, 3, models.ListingStatusActive).Return(nil).Once()

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingID: listing.ID.String(), SellerID: "seller-1", QuantityToReduce: 2},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, result.LowStockAlerts, 1)
		assert.Equal(t, "My Butter", result.LowStockAlerts[0].ProductName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Legacy ref resolves catalog id before listing id", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		stockService := service.NewStockService(mockRepo, nil)

		catalogID := uuid.New()
		listing := &models.Listing{ID: uuid.New(), SellerID: "seller-2", CatalogEntryID: catalogID, Stock: 8, Status: models.ListingStatusActive}

		mockRepo.On("GetListingBySellerAndCatalog", mock.Anything, "seller-2", catalogID).Return(listing, nil).Once()
		mockRepo.On("GetFlatListingByID", mock.Anything, listing.ID).Return(flatWithName(listing, "Rice"), nil).Once()
		mockRepo.On("UpdateListingStock", mock.Anything, listing.ID, 7, models.ListingStatusActive).Return(nil).Once()

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingRef: catalogID.String(), SellerID: "seller-2", QuantityToReduce: 1},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Updates, 1)
		mockRepo.AssertNotCalled(t, "GetListingByIDAndSeller", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Legacy ref falls back to listing id", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		stockService := service.NewStockService(mockRepo, nil)

		listing := &models.Listing{ID: uuid.New(), SellerID: "seller-3", Stock: 3, Status: models.ListingStatusActive}

		mockRepo.On("GetListingBySellerAndCatalog", mock.Anything, "seller-3", listing.ID).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("GetListingByIDAndSeller", mock.Anything, listing.ID, "seller-3").Return(listing, nil).Once()
		mockRepo.On("GetFlatListingByID", mock.Anything, listing.ID).Return(flatWithName(listing, "Tea"), nil).Once()
		mockRepo.On("UpdateListingStock", mock.Anything, listing.ID, 1, models.ListingStatusActive).Return(nil).Once()

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingRef: listing.ID.String(), SellerID: "seller-3", QuantityToReduce: 2},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Updates, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unresolvable item rejects whole batch before any write", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		stockService := service.NewStockService(mockRepo, nil)

		good := &models.Listing{ID: uuid.New(), SellerID: "s", Stock: 10, Status: models.ListingStatusActive}
		badRef := uuid.New()

		mockRepo.On("GetListingByID", mock.Anything, good.ID).Return(good, nil).Once()
		mockRepo.On("GetFlatListingByID", mock.Anything, good.ID).Return(flatWithName(good, "Soap"), nil).Once()
		mockRepo.On("GetListingBySellerAndCatalog", mock.Anything, "s", badRef).Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("GetListingByIDAndSeller", mock.Anything, badRef, "s").Return(nil, sql.ErrNoRows).Once()

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingID: good.ID.String(), SellerID: "s", QuantityToReduce: 1},
			{ListingRef: badRef.String(), SellerID: "s", QuantityToReduce: 1},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)

		mockRepo.AssertNotCalled(t, "UpdateListingStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid uuid in explicit id is a validation error", func(t *testing.T) {
		// Arrange
		mockRepo := new(mocks.ListingRepository)
		stockService := service.NewStockService(mockRepo, nil)

		req := &models.StockDecrementRequest{Items: []models.StockDecrementItem{
			{ListingID: "not-a-uuid", SellerID: "s", QuantityToReduce: 1},
		}}

		// Act
		result, err := stockService.ApplyStockDecrements(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, result)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}
