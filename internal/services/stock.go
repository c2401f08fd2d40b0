package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/metrics"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
)

// AlertNotifier delivers low-stock alerts out of band. Best effort.
type AlertNotifier interface {
	NotifyLowStock(ctx context.Context, alerts []models.LowStockAlert) error
}

type StockService interface {
	ApplyStockDecrements(ctx context.Context, req *models.StockDecrementRequest) (*models.StockDecrementResult, error)
}

type stockService struct {
	repo     repository.ListingRepository
	notifier AlertNotifier
}

func NewStockService(repo repository.ListingRepository, notifier AlertNotifier) StockService {
	return &stockService{repo: repo, notifier: notifier}
}

// resolvedItem pairs a decrement with the listing it targets, captured before
// any write happens.
type resolvedItem struct {
	listing  *models.Listing
	display  string
	quantity int
}

// ApplyStockDecrements reconciles stock after an order. Every item is
// resolved to a listing first; only when all of them resolve does any stock
// change, so a bad reference rejects the batch without partial writes.
func (s *stockService) ApplyStockDecrements(ctx context.Context, req *models.StockDecrementRequest) (*models.StockDecrementResult, error) {

	resolved := make([]resolvedItem, 0, len(req.Items))

	for _, item := range req.Items {

		listing, err := s.resolveListing(ctx, item)
		if err != nil {
			return nil, err
		}

		flat, err := s.repo.GetFlatListingByID(ctx, listing.ID)

		display := listing.CustomName
		if err != nil {
			slog.Warn("Falling back to the listing's own name for alerts",
				slog.String("listingId", listing.ID.String()),
				slog.String("error", err.Error()))
		} else {
			display = flat.DisplayName()
		}

		resolved = append(resolved, resolvedItem{
			listing:  listing,
			display:  display,
			quantity: item.QuantityToReduce,
		})
	}

	result := &models.StockDecrementResult{
		Updates:        make([]models.StockUpdate, 0, len(resolved)),
		LowStockAlerts: []models.LowStockAlert{},
	}

	for _, item := range resolved {

		listing := item.listing
		previous := listing.Stock

		// clamp at zero, an oversell never drives stock negative
		newStock := previous - item.quantity
		if newStock < 0 {
			newStock = 0
		}

		status := models.DeriveListingStatus(newStock, listing.Status)

		if err := s.repo.UpdateListingStock(ctx, listing.ID, newStock, status); err != nil {

			metrics.StockDecrementsTotal.WithLabelValues("error").Inc()

			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError(fmt.Sprintf("Listing %s no longer exists", listing.ID))
			}

			return nil, appErrors.DatabaseError("Failed to update stock").WithError(err)
		}

		metrics.StockDecrementsTotal.WithLabelValues("applied").Inc()

		result.Updates = append(result.Updates, models.StockUpdate{
			ListingID:       listing.ID,
			SellerID:        listing.SellerID,
			PreviousStock:   previous,
			NewStock:        newStock,
			QuantityReduced: previous - newStock,
			Status:          status,
		})

		if newStock < models.LowStockThreshold {
			result.LowStockAlerts = append(result.LowStockAlerts, models.LowStockAlert{
				ListingID:   listing.ID,
				SellerID:    listing.SellerID,
				ProductName: item.display,
				Stock:       newStock,
			})
		}
	}

	if len(result.LowStockAlerts) > 0 && s.notifier != nil {
		if err := s.notifier.NotifyLowStock(ctx, result.LowStockAlerts); err != nil {
			slog.Warn("Low-stock notification failed", slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// resolveListing turns a decrement item into a concrete listing row. The
// explicit listingId wins; the legacy listingRef is tried first as a catalog
// entry id scoped to the seller, then as a listing id scoped to the seller.
func (s *stockService) resolveListing(ctx context.Context, item models.StockDecrementItem) (*models.Listing, error) {

	if item.ListingID != "" {

		id, err := uuid.Parse(item.ListingID)
		if err != nil {
			return nil, appErrors.ValidationError(fmt.Sprintf("Invalid listing id %q", item.ListingID))
		}

		listing, err := s.repo.GetListingByID(ctx, id)
		if err != nil {

			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.NotFoundError(fmt.Sprintf("Listing %s not found", item.ListingID))
			}

			return nil, appErrors.DatabaseError("Failed to resolve listing").WithError(err)
		}

		return listing, nil
	}

	if item.ListingRef == "" {
		return nil, appErrors.ValidationError("Each item needs a listingId or listingRef")
	}

	ref, err := uuid.Parse(item.ListingRef)
	if err != nil {
		return nil, appErrors.ValidationError(fmt.Sprintf("Invalid listing reference %q", item.ListingRef))
	}

	listing, err := s.repo.GetListingBySellerAndCatalog(ctx, item.SellerID, ref)
	if err == nil {
		return listing, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to resolve listing").WithError(err)
	}

	listing, err = s.repo.GetListingByIDAndSeller(ctx, ref, item.SellerID)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError(
				fmt.Sprintf("No listing for reference %s and seller %s", item.ListingRef, item.SellerID))
		}

		return nil, appErrors.DatabaseError("Failed to resolve listing").WithError(err)
	}

	return listing, nil
}
