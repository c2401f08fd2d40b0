package repository_test

import (
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flatRowColumns = []string{
	"id", "seller_id", "catalog_entry_id", "price", "offer_price", "stock", "cost_price",
	"address", "custom_note", "custom_name", "custom_category", "custom_image_url", "custom_image_path",
	"is_available", "is_pre_owned", "status", "created_at", "updated_at",
	"c_name", "c_brand", "c_category", "c_description", "c_unit", "c_image_url", "c_status",
}

// flatRow builds a joined row. Pass nil catalog values to simulate an
// orphaned catalog reference.
func flatRow(id uuid.UUID, sellerID string, catalogID uuid.UUID, stock int, status string, now time.Time, catalog []driver.Value) []driver.Value {
	row := []driver.Value{
		id, sellerID, catalogID, 100.0, 0.0, stock, 60.0,
		"Sector 12", "", "", "", "", "",
		true, false, status, now, now,
	}

	if catalog == nil {
		catalog = []driver.Value{nil, nil, nil, nil, nil, nil, nil}
	}

	return append(row, catalog...)
}

func TestQueryListings(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewListingRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("Counts and pages over the same joined filter", func(t *testing.T) {
		// Arrange
		listingID := uuid.New()
		catalogID := uuid.New()

		mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM listings l\s+LEFT JOIN catalog_entries c ON c\.id = l\.catalog_entry_id WHERE l\.is_available = TRUE AND l\.status = 'active'`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))

		catalog := []driver.Value{"Amul Butter", "Amul", "Dairy", "Salted butter", "piece", "https://img.example.com/b.jpg", "approved"}

		mock.ExpectQuery(`FROM listings l\s+LEFT JOIN catalog_entries c ON c\.id = l\.catalog_entry_id WHERE l\.is_available = TRUE AND l\.status = 'active' ORDER BY l\.created_at DESC, l\.id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(flatRowColumns).
				AddRow(flatRow(listingID, "seller-1", catalogID, 10, models.ListingStatusActive, now, catalog)...))

		// Act
		listings, total, err := repo.QueryListings(ctx, models.ListingQuery{Page: 1, PageSize: 20})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 21, total)
		require.Len(t, listings, 1)
		require.NotNil(t, listings[0].Name)
		assert.Equal(t, "Amul Butter", *listings[0].Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Orphaned catalog reference still returns the listing", func(t *testing.T) {
		// Arrange
		listingID := uuid.New()

		mock.ExpectQuery(`SELECT COUNT\(\*\)`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery(`LEFT JOIN catalog_entries`).
			WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(flatRowColumns).
				AddRow(flatRow(listingID, "seller-1", uuid.New(), 3, models.ListingStatusActive, now, nil)...))

		// Act
		listings, total, err := repo.QueryListings(ctx, models.ListingQuery{Page: 1, PageSize: 10})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, listings, 1)
		assert.Equal(t, listingID, listings[0].ID)
		assert.Nil(t, listings[0].Name)
		assert.Nil(t, listings[0].Category)
		assert.Nil(t, listings[0].CatalogStatus)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Category and search predicates use joined columns", func(t *testing.T) {
		// Arrange
		availableOnly := false

		mock.ExpectQuery(`SELECT COUNT\(\*\)(.+)WHERE COALESCE\(NULLIF\(l\.custom_category, ''\), c\.category\) = \$1 AND \(c\.name ILIKE \$2`).
			WithArgs("Dairy", "%butter%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`unnest\(c\.search_keywords\)`).
			WithArgs("Dairy", "%butter%", 10, 0).
			WillReturnRows(sqlmock.NewRows(flatRowColumns))

		// Act
		listings, total, err := repo.QueryListings(ctx, models.ListingQuery{
			AvailableOnly: &availableOnly,
			Category:      "Dairy",
			Search:        "butter",
			Page:          1,
			PageSize:      10,
		})

		// Assert
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, listings)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Offer filter needs no arguments", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`l\.offer_price > 0 AND l\.offer_price < l\.price`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`l\.offer_price > 0 AND l\.offer_price < l\.price(.+)LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(flatRowColumns))

		// Act
		_, _, err := repo.QueryListings(ctx, models.ListingQuery{OnlyOffers: true, Page: 1, PageSize: 20})

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListingRowOperations(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewListingRepo(db)
	ctx := t.Context()

	t.Run("CreateListing returns generated timestamps", func(t *testing.T) {
		// Arrange
		listing := &models.Listing{
			ID:             uuid.New(),
			SellerID:       "seller-1",
			CatalogEntryID: uuid.New(),
			Price:          100,
			Stock:          10,
			IsAvailable:    true,
			Status:         models.ListingStatusActive,
		}
		now := time.Now()

		mock.ExpectQuery(`INSERT INTO listings`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateListing(ctx, listing)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, listing.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetListingByIDAndSeller scopes to the owner", func(t *testing.T) {
		// Arrange
		id := uuid.New()

		mock.ExpectQuery(`FROM listings WHERE id = \$1 AND seller_id = \$2`).
			WithArgs(id, "intruder").
			WillReturnError(sql.ErrNoRows)

		// Act
		listing, err := repo.GetListingByIDAndSeller(ctx, id, "intruder")

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, listing)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetListingBySellerAndCatalog matches the unique pair", func(t *testing.T) {
		// Arrange
		catalogID := uuid.New()
		id := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "seller_id", "catalog_entry_id", "price", "offer_price", "stock", "cost_price",
			"address", "custom_note", "custom_name", "custom_category", "custom_image_url", "custom_image_path",
			"is_available", "is_pre_owned", "status", "created_at", "updated_at",
		}).AddRow(id, "seller-1", catalogID, 100.0, 0.0, 5, 60.0,
			"", "", "", "", "", "", true, false, models.ListingStatusActive, now, now)

		mock.ExpectQuery(`FROM listings WHERE seller_id = \$1 AND catalog_entry_id = \$2`).
			WithArgs("seller-1", catalogID).
			WillReturnRows(rows)

		// Act
		listing, err := repo.GetListingBySellerAndCatalog(ctx, "seller-1", catalogID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, id, listing.ID)
		assert.Equal(t, catalogID, listing.CatalogEntryID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateListingStock reports a vanished row", func(t *testing.T) {
		// Arrange
		id := uuid.New()

		mock.ExpectExec(`UPDATE listings SET stock = \$1, status = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(0, models.ListingStatusOutOfStock, id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateListingStock(ctx, id, 0, models.ListingStatusOutOfStock)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteListing reports a vanished row", func(t *testing.T) {
		// Arrange
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM listings WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.DeleteListing(ctx, id)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
