package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
)

type ListingRepository interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListingByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	GetListingByIDAndSeller(ctx context.Context, id uuid.UUID, sellerID string) (*models.Listing, error)
	GetListingBySellerAndCatalog(ctx context.Context, sellerID string, catalogEntryID uuid.UUID) (*models.Listing, error)
	UpdateListing(ctx context.Context, listing *models.Listing) error
	UpdateListingStock(ctx context.Context, id uuid.UUID, stock int, status string) error
	DeleteListing(ctx context.Context, id uuid.UUID) error
	QueryListings(ctx context.Context, q models.ListingQuery) ([]*models.FlatListing, int, error)
	GetFlatListingByID(ctx context.Context, id uuid.UUID) (*models.FlatListing, error)
	ListSellerListings(ctx context.Context, sellerID string) ([]*models.FlatListing, error)
}

type listingRepository struct {
	DB *sql.DB
}

func NewListingRepo(db *sql.DB) ListingRepository {
	return &listingRepository{DB: db}
}

const listingColumns = `id, seller_id, catalog_entry_id, price, offer_price, stock, cost_price,
	address, custom_note, custom_name, custom_category, custom_image_url, custom_image_path,
	is_available, is_pre_owned, status, created_at, updated_at`

// The flattened projection. Catalog columns come last and may be NULL when
// the catalog reference is orphaned; the listing row is still returned.
const flatSelect = `
	SELECT l.id, l.seller_id, l.catalog_entry_id, l.price, l.offer_price, l.stock, l.cost_price,
	       l.address, l.custom_note, l.custom_name, l.custom_category, l.custom_image_url, l.custom_image_path,
	       l.is_available, l.is_pre_owned, l.status, l.created_at, l.updated_at,
	       c.name, c.brand, c.category, c.description, c.unit, c.image_url, c.status
	FROM listings l
	LEFT JOIN catalog_entries c ON c.id = l.catalog_entry_id`

const flatCount = `
	SELECT COUNT(*)
	FROM listings l
	LEFT JOIN catalog_entries c ON c.id = l.catalog_entry_id`

func scanListing(row interface{ Scan(...any) error }) (*models.Listing, error) {

	l := &models.Listing{}

	err := row.Scan(&l.ID, &l.SellerID, &l.CatalogEntryID, &l.Price, &l.OfferPrice, &l.Stock, &l.CostPrice,
		&l.Address, &l.CustomNote, &l.CustomName, &l.CustomCategory, &l.CustomImageURL, &l.CustomImagePath,
		&l.IsAvailable, &l.IsPreOwned, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func scanFlatListing(row interface{ Scan(...any) error }) (*models.FlatListing, error) {

	f := &models.FlatListing{}

	var name, brand, category, description, unit, imageURL, catalogStatus sql.NullString

	err := row.Scan(&f.ID, &f.SellerID, &f.CatalogEntryID, &f.Price, &f.OfferPrice, &f.Stock, &f.CostPrice,
		&f.Address, &f.CustomNote, &f.CustomName, &f.CustomCategory, &f.CustomImageURL, &f.CustomImagePath,
		&f.IsAvailable, &f.IsPreOwned, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		&name, &brand, &category, &description, &unit, &imageURL, &catalogStatus)
	if err != nil {
		return nil, err
	}

	assign := func(dst **string, src sql.NullString) {
		if src.Valid {
			v := src.String
			*dst = &v
		}
	}

	assign(&f.Name, name)
	assign(&f.Brand, brand)
	assign(&f.Category, category)
	assign(&f.Description, description)
	assign(&f.Unit, unit)
	assign(&f.ImageURL, imageURL)
	assign(&f.CatalogStatus, catalogStatus)

	return f, nil
}

// buildListingFilter translates the query options into WHERE predicates.
// Stage order is fixed: listing-level match first, then the predicates that
// depend on joined catalog columns (category override, search).
func buildListingFilter(q models.ListingQuery) (string, []any) {

	conds := []string{}
	args := []any{}

	if q.AvailableOnly == nil || *q.AvailableOnly {
		conds = append(conds, "l.is_available = TRUE", "l.status = 'active'")
	}

	if q.Status != "" {
		args = append(args, q.Status)
		conds = append(conds, fmt.Sprintf("l.status = $%d", len(args)))
	}

	if q.SellerID != "" {
		args = append(args, q.SellerID)
		conds = append(conds, fmt.Sprintf("l.seller_id = $%d", len(args)))
	}

	if q.Address != "" {
		args = append(args, "%"+q.Address+"%")
		conds = append(conds, fmt.Sprintf("l.address ILIKE $%d", len(args)))
	}

	if q.OnlyOffers {
		// strictly cheaper than the regular price; equal is not a discount
		conds = append(conds, "l.offer_price > 0", "l.offer_price < l.price")
	}

	if q.StockBelow != nil {
		args = append(args, *q.StockBelow)
		conds = append(conds, fmt.Sprintf("l.stock < $%d", len(args)))
	}

	if q.Category != "" && q.Category != "all" {
		// the seller's custom category overrides the catalog category
		args = append(args, q.Category)
		conds = append(conds, fmt.Sprintf("COALESCE(NULLIF(l.custom_category, ''), c.category) = $%d", len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		p := len(args)
		conds = append(conds, fmt.Sprintf(`(c.name ILIKE $%d OR c.brand ILIKE $%d OR c.description ILIKE $%d
			OR l.custom_note ILIKE $%d OR l.custom_name ILIKE $%d
			OR EXISTS (SELECT 1 FROM unnest(c.search_keywords) AS kw WHERE kw ILIKE $%d))`, p, p, p, p, p, p))
	}

	if len(conds) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// QueryListings runs the flattened join with the given filter and returns one
// page plus the total match count. The count re-runs the same filter and join
// without limit/offset: category and search predicates depend on joined
// columns, so counting before the join would be wrong.
func (r *listingRepository) QueryListings(ctx context.Context, q models.ListingQuery) ([]*models.FlatListing, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := buildListingFilter(q)

	var total int
	if err := r.DB.QueryRowContext(dbCtx, flatCount+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.PageSize
	args = append(args, q.PageSize, offset)

	// id ascending breaks creation-time ties so pages never overlap
	query := fmt.Sprintf(flatSelect+where+
		" ORDER BY l.created_at DESC, l.id ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var listings []*models.FlatListing

	for rows.Next() {
		f, err := scanFlatListing(rows)
		if err != nil {
			return nil, 0, err
		}

		listings = append(listings, f)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (r *listingRepository) GetFlatListingByID(ctx context.Context, id uuid.UUID) (*models.FlatListing, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanFlatListing(r.DB.QueryRowContext(dbCtx, flatSelect+" WHERE l.id = $1", id))
}

func (r *listingRepository) ListSellerListings(ctx context.Context, sellerID string) ([]*models.FlatListing, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := flatSelect + " WHERE l.seller_id = $1 ORDER BY l.created_at DESC, l.id ASC"

	rows, err := r.DB.QueryContext(dbCtx, query, sellerID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var listings []*models.FlatListing

	for rows.Next() {
		f, err := scanFlatListing(rows)
		if err != nil {
			return nil, err
		}

		listings = append(listings, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *models.Listing) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO listings (id, seller_id, catalog_entry_id, price, offer_price, stock, cost_price,
			  address, custom_note, custom_name, custom_category, custom_image_url, custom_image_path,
			  is_available, is_pre_owned, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			  RETURNING created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		listing.ID, listing.SellerID, listing.CatalogEntryID, listing.Price, listing.OfferPrice,
		listing.Stock, listing.CostPrice, listing.Address, listing.CustomNote, listing.CustomName,
		listing.CustomCategory, listing.CustomImageURL, listing.CustomImagePath,
		listing.IsAvailable, listing.IsPreOwned, listing.Status).
		Scan(&listing.CreatedAt, &listing.UpdatedAt)
}

func (r *listingRepository) GetListingByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	return scanListing(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *listingRepository) GetListingByIDAndSeller(ctx context.Context, id uuid.UUID, sellerID string) (*models.Listing, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 AND seller_id = $2`

	return scanListing(r.DB.QueryRowContext(dbCtx, query, id, sellerID))
}

func (r *listingRepository) GetListingBySellerAndCatalog(ctx context.Context, sellerID string, catalogEntryID uuid.UUID) (*models.Listing, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + listingColumns + ` FROM listings WHERE seller_id = $1 AND catalog_entry_id = $2`

	return scanListing(r.DB.QueryRowContext(dbCtx, query, sellerID, catalogEntryID))
}

func (r *listingRepository) UpdateListing(ctx context.Context, listing *models.Listing) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE listings
			  SET price = $1, offer_price = $2, stock = $3, cost_price = $4, address = $5,
			      custom_note = $6, custom_name = $7, custom_category = $8,
			      custom_image_url = $9, custom_image_path = $10,
			      is_available = $11, is_pre_owned = $12, status = $13, updated_at = NOW()
			  WHERE id = $14
			  RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		listing.Price, listing.OfferPrice, listing.Stock, listing.CostPrice, listing.Address,
		listing.CustomNote, listing.CustomName, listing.CustomCategory,
		listing.CustomImageURL, listing.CustomImagePath,
		listing.IsAvailable, listing.IsPreOwned, listing.Status, listing.ID).
		Scan(&listing.UpdatedAt)
}

func (r *listingRepository) UpdateListingStock(ctx context.Context, id uuid.UUID, stock int, status string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE listings SET stock = $1, status = $2, updated_at = NOW() WHERE id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, stock, status, id)
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

func (r *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM listings WHERE id = $1`, id)
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
