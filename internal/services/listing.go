package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
)

const (
	DefaultPublicPageSize = 20
	DefaultSellerPageSize = 10
)

// ImageReleaser frees an orphaned custom image in the external blob store.
// Best effort, see DeleteListing.
type ImageReleaser interface {
	DeleteByPath(ctx context.Context, path string) error
}

type ListingService interface {
	CreateListing(ctx context.Context, sellerID string, req *models.CreateListingRequest) (*models.FlatListing, error)
	UpdateListing(ctx context.Context, sellerID string, id uuid.UUID, req *models.UpdateListingRequest) (*models.FlatListing, error)
	DeleteListing(ctx context.Context, sellerID string, id uuid.UUID) (string, error)
	GetListing(ctx context.Context, id uuid.UUID) (*models.FlatListing, error)
	QueryListings(ctx context.Context, q models.ListingQuery) ([]*models.FlatListing, models.Pagination, error)
	GetProfitability(ctx context.Context, sellerID string) ([]*models.ListingProfitability, error)
}

type listingService struct {
	repo    repository.ListingRepository
	catalog CatalogService
	images  ImageReleaser
}

func NewListingService(repo repository.ListingRepository, catalog CatalogService, images ImageReleaser) ListingService {
	return &listingService{repo: repo, catalog: catalog, images: images}
}

func (s *listingService) CreateListing(ctx context.Context, sellerID string, req *models.CreateListingRequest) (*models.FlatListing, error) {

	entry, err := s.catalog.GetCatalogEntryByID(ctx, req.CatalogEntryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != models.CatalogStatusApproved {
		return nil, appErrors.InvalidStateError("Cannot create a listing from an unapproved catalog entry")
	}

	if req.OfferPrice > req.Price {
		return nil, appErrors.InvalidStateError("Offer price must not exceed the regular price")
	}

	existing, err := s.repo.GetListingBySellerAndCatalog(ctx, sellerID, req.CatalogEntryID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.DatabaseError("Failed to check existing listings").WithError(err)
	}

	if existing != nil {
		return nil, appErrors.ConflictError("You already have this product in your inventory")
	}

	listing := &models.Listing{
		ID:              uuid.New(),
		SellerID:        sellerID,
		CatalogEntryID:  req.CatalogEntryID,
		Price:           req.Price,
		OfferPrice:      req.OfferPrice,
		Stock:           req.Stock,
		CostPrice:       req.CostPrice,
		Address:         req.Address,
		CustomNote:      sanitizer.Sanitize(req.CustomNote),
		CustomName:      sanitizer.Sanitize(req.CustomName),
		CustomCategory:  sanitizer.Sanitize(req.CustomCategory),
		CustomImageURL:  req.CustomImageURL,
		CustomImagePath: req.CustomImagePath,
		IsAvailable:     true,
		IsPreOwned:      req.IsPreOwned,
		Status:          models.DeriveListingStatus(req.Stock, models.ListingStatusActive),
	}

	if err := s.repo.CreateListing(ctx, listing); err != nil {

		// two concurrent creates can slip past the read above
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.ConflictError("You already have this product in your inventory")
		}

		return nil, appErrors.DatabaseError("Failed to create listing").WithError(err)
	}

	// sync before responding, so the custom name is searchable immediately
	if listing.CustomName != "" {
		s.catalog.IndexCustomName(ctx, listing.CatalogEntryID, listing.CustomName)
	}

	return s.GetListing(ctx, listing.ID)
}

func (s *listingService) UpdateListing(ctx context.Context, sellerID string, id uuid.UUID, req *models.UpdateListingRequest) (*models.FlatListing, error) {

	listing, err := s.repo.GetListingByIDAndSeller(ctx, id, sellerID)
	if err != nil {

		// "not yours" and "does not exist" look the same to the caller
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Listing not found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch listing").WithError(err)
	}

	previousImagePath := listing.CustomImagePath

	if req.Price != nil {
		listing.Price = *req.Price
	}
	if req.OfferPrice != nil {
		listing.OfferPrice = *req.OfferPrice
	}
	if req.CostPrice != nil {
		listing.CostPrice = *req.CostPrice
	}
	if req.Address != nil {
		listing.Address = *req.Address
	}
	if req.CustomNote != nil {
		listing.CustomNote = sanitizer.Sanitize(*req.CustomNote)
	}
	if req.CustomName != nil {
		listing.CustomName = sanitizer.Sanitize(*req.CustomName)
	}
	if req.CustomCategory != nil {
		listing.CustomCategory = sanitizer.Sanitize(*req.CustomCategory)
	}
	if req.CustomImageURL != nil {
		listing.CustomImageURL = *req.CustomImageURL
	}
	if req.CustomImagePath != nil {
		listing.CustomImagePath = *req.CustomImagePath
	}
	if req.IsAvailable != nil {
		listing.IsAvailable = *req.IsAvailable
	}
	if req.IsPreOwned != nil {
		listing.IsPreOwned = *req.IsPreOwned
	}
	if req.Status != nil {
		listing.Status = *req.Status
	}

	if req.Stock != nil {
		listing.Stock = *req.Stock
		listing.Status = models.DeriveListingStatus(listing.Stock, listing.Status)
	}

	if listing.OfferPrice > listing.Price {
		return nil, appErrors.InvalidStateError("Offer price must not exceed the regular price")
	}

	if err := s.repo.UpdateListing(ctx, listing); err != nil {
		return nil, appErrors.DatabaseError("Failed to update listing").WithError(err)
	}

	if req.CustomName != nil && listing.CustomName != "" {
		s.catalog.IndexCustomName(ctx, listing.CatalogEntryID, listing.CustomName)
	}

	// the replaced image is orphaned now
	if req.CustomImagePath != nil && previousImagePath != "" && previousImagePath != listing.CustomImagePath {
		s.releaseImage(ctx, previousImagePath)
	}

	return s.GetListing(ctx, listing.ID)
}

// DeleteListing removes the listing and reports the released custom image
// path so the client can confirm cleanup. The blob-store delete itself is
// best effort and never fails the request.
func (s *listingService) DeleteListing(ctx context.Context, sellerID string, id uuid.UUID) (string, error) {

	listing, err := s.repo.GetListingByIDAndSeller(ctx, id, sellerID)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.NotFoundError("Listing not found")
		}

		return "", appErrors.DatabaseError("Failed to fetch listing").WithError(err)
	}

	if err := s.repo.DeleteListing(ctx, id); err != nil {
		return "", appErrors.DatabaseError("Failed to delete listing").WithError(err)
	}

	if listing.CustomImagePath != "" {
		s.releaseImage(ctx, listing.CustomImagePath)
	}

	return listing.CustomImagePath, nil
}

func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*models.FlatListing, error) {

	flat, err := s.repo.GetFlatListingByID(ctx, id)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Listing not found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch listing").WithError(err)
	}

	return flat, nil
}

func (s *listingService) QueryListings(ctx context.Context, q models.ListingQuery) ([]*models.FlatListing, models.Pagination, error) {

	defaultSize := DefaultPublicPageSize
	if q.SellerID != "" {
		defaultSize = DefaultSellerPageSize
	}

	q.Page, q.PageSize = models.NormalizePage(q.Page, q.PageSize, defaultSize)

	listings, total, err := s.repo.QueryListings(ctx, q)
	if err != nil {
		return nil, models.Pagination{}, appErrors.DatabaseError("Failed to fetch listings").WithError(err)
	}

	return listings, models.NewPagination(q.Page, q.PageSize, total), nil
}

func (s *listingService) GetProfitability(ctx context.Context, sellerID string) ([]*models.ListingProfitability, error) {

	listings, err := s.repo.ListSellerListings(ctx, sellerID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch listings").WithError(err)
	}

	result := make([]*models.ListingProfitability, 0, len(listings))

	for _, listing := range listings {

		profitPerUnit := listing.Price - listing.CostPrice

		margin := 0.0
		if listing.Price > 0 {
			margin = profitPerUnit / listing.Price * 100
		}

		effectivePrice := listing.Price
		if listing.OfferPrice > 0 {
			effectivePrice = listing.OfferPrice
		}

		status := "Loss"
		switch {
		case profitPerUnit > 0:
			status = "Profitable"
		case profitPerUnit == 0:
			status = "Break-even"
		}

		result = append(result, &models.ListingProfitability{
			FlatListing:            *listing,
			ProfitPerUnit:          profitPerUnit,
			ProfitMarginPercentage: margin,
			EffectivePrice:         effectivePrice,
			ProfitStatus:           status,
		})
	}

	return result, nil
}

func (s *listingService) releaseImage(ctx context.Context, path string) {

	if s.images == nil {
		return
	}

	if err := s.images.DeleteByPath(ctx, path); err != nil {
		slog.Warn("Failed to release custom image",
			slog.String("path", path),
			slog.String("error", err.Error()))
	}
}
