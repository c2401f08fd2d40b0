package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/api/handlers"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/homebase-labs/seller-marketplace/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateListingHandler(t *testing.T) {
	mockListingService := new(mocks.ListingService)
	listingHandler := handlers.NewListingHandler(mockListingService)

	t.Run("Success - Listing Created", func(t *testing.T) {
		// Arrange
		catalogID := uuid.New()
		reqBody := models.CreateListingRequest{
			CatalogEntryID: catalogID,
			Price:          100,
			Stock:          10,
			Address:        "Sector 12",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		name := "Amul Butter"
		flat := &models.FlatListing{ID: uuid.New(), SellerID: "seller-1", CatalogEntryID: catalogID, Name: &name}

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/listings", reqBodyBytes, "seller-1")

		mockListingService.On("CreateListing", mock.Anything, "seller-1", &reqBody).Return(flat, nil).Once()

		// Act
		listingHandler.CreateListing().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), flat.ID.String())
		mockListingService.AssertExpectations(t)
	})

	t.Run("Fail - Duplicate Listing", func(t *testing.T) {
		// Arrange
		reqBody := models.CreateListingRequest{
			CatalogEntryID: uuid.New(),
			Price:          100,
			Address:        "Sector 12",
		}
		reqBodyBytes, _ := json.Marshal(reqBody)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/listings", reqBodyBytes, "seller-1")

		mockListingService.On("CreateListing", mock.Anything, "seller-1", &reqBody).
			Return(nil, appErrors.ConflictError("You already have this product in your inventory")).Once()

		// Act
		listingHandler.CreateListing().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), appErrors.ErrCodeConflict)
		mockListingService.AssertExpectations(t)
	})

	t.Run("Fail - No Claims", func(t *testing.T) {
		// Arrange
		mockListingService := new(mocks.ListingService)
		listingHandler := handlers.NewListingHandler(mockListingService)

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/listings", []byte(`{}`), "")

		// Act
		listingHandler.CreateListing().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockListingService.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteListingHandler(t *testing.T) {
	mockListingService := new(mocks.ListingService)
	listingHandler := handlers.NewListingHandler(mockListingService)

	t.Run("Returns the released image path", func(t *testing.T) {
		// Arrange
		id := uuid.New()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodDelete, "/listings/"+id.String(), nil, "seller-1")
		req.SetPathValue("id", id.String())

		mockListingService.On("DeleteListing", mock.Anything, "seller-1", id).
			Return("sellers/seller-1/butter.jpg", nil).Once()

		// Act
		listingHandler.DeleteListing().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "sellers/seller-1/butter.jpg")
		mockListingService.AssertExpectations(t)
	})

	t.Run("Someone else's listing is not found", func(t *testing.T) {
		// Arrange
		id := uuid.New()

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodDelete, "/listings/"+id.String(), nil, "intruder")
		req.SetPathValue("id", id.String())

		mockListingService.On("DeleteListing", mock.Anything, "intruder", id).
			Return("", appErrors.NotFoundError("Listing not found")).Once()

		// Act
		listingHandler.DeleteListing().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockListingService.AssertExpectations(t)
	})
}

func TestListPublicListingsHandler(t *testing.T) {
	mockListingService := new(mocks.ListingService)
	listingHandler := handlers.NewListingHandler(mockListingService)

	t.Run("Maps query parameters to the listing query", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/listings?category=Dairy&search=butter&onlyOffers=true&page=2", nil, "")

		mockListingService.On("QueryListings", mock.Anything, mock.MatchedBy(func(q models.ListingQuery) bool {
			return q.Category == "Dairy" && q.Search == "butter" && q.OnlyOffers && q.Page == 2 &&
				q.AvailableOnly == nil && q.SellerID == ""
		})).Return([]*models.FlatListing{}, models.NewPagination(2, 20, 0), nil).Once()

		// Act
		listingHandler.ListPublicListings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockListingService.AssertExpectations(t)
	})
}

func TestSearchByAddressHandler(t *testing.T) {
	mockListingService := new(mocks.ListingService)
	listingHandler := handlers.NewListingHandler(mockListingService)

	t.Run("Address is required", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/listings/search", nil, "")

		// Act
		listingHandler.SearchByAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockListingService.AssertNotCalled(t, "QueryListings", mock.Anything, mock.Anything)
	})
}

func TestMyListingsHandler(t *testing.T) {
	mockListingService := new(mocks.ListingService)
	listingHandler := handlers.NewListingHandler(mockListingService)

	t.Run("Sellers see their whole inventory by default", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/seller/listings", nil, "seller-1")

		mockListingService.On("QueryListings", mock.Anything, mock.MatchedBy(func(q models.ListingQuery) bool {
			return q.SellerID == "seller-1" && q.AvailableOnly != nil && !*q.AvailableOnly
		})).Return([]*models.FlatListing{}, models.NewPagination(1, service.DefaultSellerPageSize, 0), nil).Once()

		// Act
		listingHandler.MyListings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockListingService.AssertExpectations(t)
	})

	t.Run("Explicit stock threshold is honored", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/seller/listings?stockLt=3", nil, "seller-1")

		mockListingService.On("QueryListings", mock.Anything, mock.MatchedBy(func(q models.ListingQuery) bool {
			return q.StockBelow != nil && *q.StockBelow == 3
		})).Return([]*models.FlatListing{}, models.NewPagination(1, service.DefaultSellerPageSize, 0), nil).Once()

		// Act
		listingHandler.MyListings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockListingService.AssertExpectations(t)
	})

	t.Run("Low stock flag wins over an explicit threshold", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/seller/listings?lowStock=true&stockLt=3", nil, "seller-1")

		mockListingService.On("QueryListings", mock.Anything, mock.MatchedBy(func(q models.ListingQuery) bool {
			return q.StockBelow != nil && *q.StockBelow == models.LowStockThreshold
		})).Return([]*models.FlatListing{}, models.NewPagination(1, service.DefaultSellerPageSize, 0), nil).Once()

		// Act
		listingHandler.MyListings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockListingService.AssertExpectations(t)
	})

	t.Run("Low stock filter sets the threshold", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodGet, "/seller/listings?lowStock=true", nil, "seller-1")

		mockListingService.On("QueryListings", mock.Anything, mock.MatchedBy(func(q models.ListingQuery) bool {
			return q.StockBelow != nil && *q.StockBelow == models.LowStockThreshold
		})).Return([]*models.FlatListing{}, models.NewPagination(1, service.DefaultSellerPageSize, 0), nil).Once()

		// Act
		listingHandler.MyListings().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockListingService.AssertExpectations(t)
	})
}
