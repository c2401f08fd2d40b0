package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/cache"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/metrics"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

const categoriesCacheKey = "catalog:categories"

const defaultCatalogPageSize = 20

// free-text fields never carry markup
var sanitizer = bluemonday.StrictPolicy()

type CatalogService interface {
	CreateCatalogEntry(ctx context.Context, createdBy string, req *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error)
	GetCatalogEntryByID(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, error)
	SearchCatalog(ctx context.Context, q models.CatalogQuery) ([]*models.CatalogEntry, models.Pagination, error)
	ListPending(ctx context.Context, page, pageSize int) ([]*models.CatalogEntry, models.Pagination, error)
	ApproveCatalogEntry(ctx context.Context, id uuid.UUID, adminID string) (*models.CatalogEntry, error)
	RejectCatalogEntry(ctx context.Context, id uuid.UUID, adminID, reason string) (*models.CatalogEntry, error)
	GetCategories(ctx context.Context) ([]string, error)
	IndexCustomName(ctx context.Context, catalogEntryID uuid.UUID, customName string)
}

type catalogService struct {
	repo  repository.CatalogRepository
	cache cache.Cache
}

func NewCatalogService(repo repository.CatalogRepository, cache cache.Cache) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

func (s *catalogService) CreateCatalogEntry(ctx context.Context, createdBy string, req *models.CreateCatalogEntryRequest) (*models.CatalogEntry, error) {

	name := sanitizer.Sanitize(req.Name)
	brand := sanitizer.Sanitize(req.Brand)
	category := sanitizer.Sanitize(req.Category)

	unit := req.Unit
	if unit == "" {
		unit = "piece"
	}

	entry := &models.CatalogEntry{
		ID:             uuid.New(),
		Name:           name,
		Brand:          brand,
		Category:       category,
		Description:    sanitizer.Sanitize(req.Description),
		Unit:           unit,
		ImageURL:       req.ImageURL,
		Status:         models.CatalogStatusPending,
		CreatedBy:      createdBy,
		SearchKeywords: SeedCatalogKeywords(name, brand, category),
	}

	if err := s.repo.CreateCatalogEntry(ctx, entry); err != nil {
		return nil, appErrors.DatabaseError("Failed to create catalog entry").WithError(err)
	}

	return entry, nil
}

func (s *catalogService) GetCatalogEntryByID(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, error) {

	entry, err := s.repo.GetCatalogEntryByID(ctx, id)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Catalog entry not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch catalog entry").WithError(err)
	}

	return entry, nil
}

func (s *catalogService) SearchCatalog(ctx context.Context, q models.CatalogQuery) ([]*models.CatalogEntry, models.Pagination, error) {

	q.Page, q.PageSize = models.NormalizePage(q.Page, q.PageSize, defaultCatalogPageSize)

	entries, total, err := s.repo.SearchCatalog(ctx, q)
	if err != nil {
		return nil, models.Pagination{}, appErrors.DatabaseError("Failed to search catalog").WithError(err)
	}

	return entries, models.NewPagination(q.Page, q.PageSize, total), nil
}

func (s *catalogService) ListPending(ctx context.Context, page, pageSize int) ([]*models.CatalogEntry, models.Pagination, error) {

	return s.SearchCatalog(ctx, models.CatalogQuery{
		Status:   models.CatalogStatusPending,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *catalogService) ApproveCatalogEntry(ctx context.Context, id uuid.UUID, adminID string) (*models.CatalogEntry, error) {

	entry, err := s.GetCatalogEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// approved/rejected are terminal
	if entry.Status != models.CatalogStatusPending {
		return nil, appErrors.InvalidStateError("Catalog entry has already been reviewed")
	}

	updated, err := s.repo.SetCatalogStatus(ctx, id, models.CatalogStatusApproved, adminID, nil)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to approve catalog entry").WithError(err)
	}

	// a new approved entry may introduce a category
	s.invalidateCategories(ctx)

	return updated, nil
}

func (s *catalogService) RejectCatalogEntry(ctx context.Context, id uuid.UUID, adminID, reason string) (*models.CatalogEntry, error) {

	entry, err := s.GetCatalogEntryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if entry.Status != models.CatalogStatusPending {
		return nil, appErrors.InvalidStateError("Catalog entry has already been reviewed")
	}

	if reason == "" {
		reason = "No reason provided"
	}

	updated, err := s.repo.SetCatalogStatus(ctx, id, models.CatalogStatusRejected, adminID, &reason)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to reject catalog entry").WithError(err)
	}

	return updated, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]string, error) {

	if s.cache != nil {

		var cached []string

		hit, err := s.cache.Get(ctx, categoriesCacheKey, &cached)
		if err != nil {
			slog.Warn("Category cache read failed", slog.String("error", err.Error()))
		}

		if hit {
			return cached, nil
		}
	}

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categoriesCacheKey, categories, 0); err != nil {
			slog.Warn("Category cache write failed", slog.String("error", err.Error()))
		}
	}

	return categories, nil
}

func (s *catalogService) invalidateCategories(ctx context.Context) {

	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		slog.Warn("Category cache invalidation failed", slog.String("error", err.Error()))
	}
}

// IndexCustomName merges the tokens of a seller's custom name into the
// catalog entry's keyword set, so every seller of that product becomes
// searchable by the name. Best effort: a failure here must never abort the
// listing write that triggered it.
func (s *catalogService) IndexCustomName(ctx context.Context, catalogEntryID uuid.UUID, customName string) {

	keywords := ExtractKeywords(customName)
	if len(keywords) == 0 {
		return
	}

	if err := s.repo.MergeSearchKeywords(ctx, catalogEntryID, keywords); err != nil {
		slog.Warn("Keyword indexing failed",
			slog.String("catalogEntryId", catalogEntryID.String()),
			slog.String("error", err.Error()))

		return
	}

	metrics.KeywordMergesTotal.Inc()
}
