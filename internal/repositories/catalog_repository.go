package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
	"github.com/lib/pq"
)

type CatalogRepository interface {
	CreateCatalogEntry(ctx context.Context, entry *models.CatalogEntry) error
	GetCatalogEntryByID(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, error)
	SearchCatalog(ctx context.Context, q models.CatalogQuery) ([]*models.CatalogEntry, int, error)
	SetCatalogStatus(ctx context.Context, id uuid.UUID, status, reviewedBy string, reason *string) (*models.CatalogEntry, error)
	MergeSearchKeywords(ctx context.Context, id uuid.UUID, keywords []string) error
	GetCategories(ctx context.Context) ([]string, error)
}

type catalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepo(db *sql.DB) CatalogRepository {
	return &catalogRepository{DB: db}
}

const catalogColumns = `id, name, brand, category, description, unit, image_url, status,
	created_by, approved_by, approved_at, rejection_reason, search_keywords, created_at, updated_at`

func scanCatalogEntry(row interface{ Scan(...any) error }) (*models.CatalogEntry, error) {

	entry := &models.CatalogEntry{}

	var approvedBy, rejectionReason sql.NullString
	var approvedAt sql.NullTime

	err := row.Scan(&entry.ID, &entry.Name, &entry.Brand, &entry.Category, &entry.Description,
		&entry.Unit, &entry.ImageURL, &entry.Status, &entry.CreatedBy,
		&approvedBy, &approvedAt, &rejectionReason,
		pq.Array(&entry.SearchKeywords), &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if approvedBy.Valid {
		entry.ApprovedBy = &approvedBy.String
	}

	if approvedAt.Valid {
		entry.ApprovedAt = &approvedAt.Time
	}

	if rejectionReason.Valid {
		entry.RejectionReason = &rejectionReason.String
	}

	return entry, nil
}

func (r *catalogRepository) CreateCatalogEntry(ctx context.Context, entry *models.CatalogEntry) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO catalog_entries (id, name, brand, category, description, unit, image_url, status, created_by, search_keywords)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		entry.ID, entry.Name, entry.Brand, entry.Category, entry.Description,
		entry.Unit, entry.ImageURL, entry.Status, entry.CreatedBy, pq.Array(entry.SearchKeywords)).
		Scan(&entry.CreatedAt, &entry.UpdatedAt)
}

func (r *catalogRepository) GetCatalogEntryByID(ctx context.Context, id uuid.UUID) (*models.CatalogEntry, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + catalogColumns + ` FROM catalog_entries WHERE id = $1`

	return scanCatalogEntry(r.DB.QueryRowContext(dbCtx, query, id))
}

// SearchCatalog matches approved-by-default entries against a free-text query
// over name, brand, description and the accumulated keyword set.
func (r *catalogRepository) SearchCatalog(ctx context.Context, q models.CatalogQuery) ([]*models.CatalogEntry, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	conds := []string{}
	args := []any{}

	status := q.Status
	if status == "" {
		status = models.CatalogStatusApproved
	}

	args = append(args, status)
	conds = append(conds, fmt.Sprintf("status = $%d", len(args)))

	if q.Category != "" && q.Category != "all" {
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		p := len(args)
		conds = append(conds, fmt.Sprintf(`(name ILIKE $%d OR brand ILIKE $%d OR description ILIKE $%d
			OR EXISTS (SELECT 1 FROM unnest(search_keywords) AS kw WHERE kw ILIKE $%d))`, p, p, p, p))
	}

	where := " WHERE " + strings.Join(conds, " AND ")

	var total int
	if err := r.DB.QueryRowContext(dbCtx, "SELECT COUNT(*) FROM catalog_entries"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	args = append(args, q.PageSize, offset)

	query := fmt.Sprintf("SELECT "+catalogColumns+" FROM catalog_entries"+where+
		" ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var entries []*models.CatalogEntry

	for rows.Next() {
		entry, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, 0, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *catalogRepository) SetCatalogStatus(ctx context.Context, id uuid.UUID, status, reviewedBy string, reason *string) (*models.CatalogEntry, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE catalog_entries
			  SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4, updated_at = NOW()
			  WHERE id = $5
			  RETURNING ` + catalogColumns

	return scanCatalogEntry(r.DB.QueryRowContext(dbCtx, query, status, reviewedBy, time.Now(), reason, id))
}

// MergeSearchKeywords unions the new tokens into the entry's keyword set in a
// single statement, so concurrent listing writes cannot drop each other's
// additions. Keywords only ever grow.
func (r *catalogRepository) MergeSearchKeywords(ctx context.Context, id uuid.UUID, keywords []string) error {

	if len(keywords) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE catalog_entries
			  SET search_keywords = (
				SELECT ARRAY(SELECT DISTINCT kw FROM unnest(search_keywords || $2::text[]) AS kw)
			  ), updated_at = NOW()
			  WHERE id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, id, pq.Array(keywords))
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *catalogRepository) GetCategories(ctx context.Context) ([]string, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT DISTINCT category FROM catalog_entries WHERE status = $1 ORDER BY category ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, models.CatalogStatusApproved)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var categories []string

	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error.
func IsUniqueViolation(err error) bool {

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}
