package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/api/middleware"
	"github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
	"github.com/homebase-labs/seller-marketplace/internal/utils/response"
)

type ListingHandler struct {
	listingService service.ListingService
	validator      *validator.Validate
}

func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService, validator: validator.New()}
}

func (h *ListingHandler) CreateListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.CreateListingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		listing, err := h.listingService.CreateListing(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create listing", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Listing created",
			slog.String("listingId", listing.ID.String()),
			slog.String("catalogEntryId", listing.CatalogEntryID.String()))
		response.Success(w, http.StatusCreated, listing)
	}
}

func (h *ListingHandler) UpdateListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid listing id"))

			return
		}

		var req models.UpdateListingRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		listing, err := h.listingService.UpdateListing(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Error("Failed to update listing", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Listing updated", slog.String("listingId", id.String()))
		response.Success(w, http.StatusOK, listing)
	}
}

func (h *ListingHandler) DeleteListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid listing id"))

			return
		}

		imagePath, err := h.listingService.DeleteListing(r.Context(), claims.UserID, id)
		if err != nil {
			logger.Error("Failed to delete listing", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Listing deleted", slog.String("listingId", id.String()))
		response.Success(w, http.StatusOK, map[string]any{
			"deleted":           true,
			"releasedImagePath": imagePath,
		})
	}
}

func (h *ListingHandler) GetListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid listing id"))

			return
		}

		listing, err := h.listingService.GetListing(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, listing)
	}
}

// for eg: GET /listings?category=Furniture&search=chair&onlyOffers=true&page=2
func (h *ListingHandler) ListPublicListings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		onlyOffers := utils.QueryBool(r, "onlyOffers")

		q := models.ListingQuery{
			AvailableOnly: utils.QueryBool(r, "availableOnly"),
			SellerID:      r.URL.Query().Get("sellerId"),
			Category:      r.URL.Query().Get("category"),
			Address:       r.URL.Query().Get("address"),
			Search:        r.URL.Query().Get("search"),
			OnlyOffers:    onlyOffers != nil && *onlyOffers,
			Page:          utils.QueryInt(r, "page", 1),
			PageSize:      utils.QueryInt(r, "pageSize", 0),
		}

		listings, pagination, err := h.listingService.QueryListings(r.Context(), q)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to fetch listings", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"listings":   listings,
			"pagination": pagination,
		})
	}
}

// SearchByAddress requires an address filter; everything else is the public
// listing query.
func (h *ListingHandler) SearchByAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		address := r.URL.Query().Get("address")
		if address == "" {
			response.Error(w, errors.BadRequestError("address query parameter is required"))

			return
		}

		q := models.ListingQuery{
			Address:  address,
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
			Page:     utils.QueryInt(r, "page", 1),
			PageSize: utils.QueryInt(r, "pageSize", 0),
		}

		listings, pagination, err := h.listingService.QueryListings(r.Context(), q)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"listings":   listings,
			"pagination": pagination,
		})
	}
}

// MyListings is the seller-facing inventory view: no availability default,
// plus status and low-stock filters.
func (h *ListingHandler) MyListings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		all := false
		availableOnly := utils.QueryBool(r, "availableOnly")
		if availableOnly == nil {
			// sellers see their whole inventory by default
			availableOnly = &all
		}

		q := models.ListingQuery{
			AvailableOnly: availableOnly,
			SellerID:      claims.UserID,
			Category:      r.URL.Query().Get("category"),
			Search:        r.URL.Query().Get("search"),
			Status:        r.URL.Query().Get("status"),
			Page:          utils.QueryInt(r, "page", 1),
			PageSize:      utils.QueryInt(r, "pageSize", 0),
		}

		// lowStock wins over an explicit stockLt threshold
		if lowStock := utils.QueryBool(r, "lowStock"); lowStock != nil && *lowStock {
			threshold := models.LowStockThreshold
			q.StockBelow = &threshold
		} else if stockLt := utils.QueryInt(r, "stockLt", 0); stockLt > 0 {
			q.StockBelow = &stockLt
		}

		listings, pagination, err := h.listingService.QueryListings(r.Context(), q)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"listings":   listings,
			"pagination": pagination,
		})
	}
}

func (h *ListingHandler) GetProfitability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		listings, err := h.listingService.GetProfitability(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"listings": listings})
	}
}
