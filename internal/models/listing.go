package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListingStatusActive     = "active"
	ListingStatusInactive   = "inactive"
	ListingStatusOutOfStock = "out_of_stock"
)

// Listing is one seller's sellable instance of a catalog entry.
type Listing struct {
	ID              uuid.UUID `json:"id"`
	SellerID        string    `json:"sellerId"`
	CatalogEntryID  uuid.UUID `json:"catalogEntryId"`
	Price           float64   `json:"price"`
	OfferPrice      float64   `json:"offerPrice"`
	Stock           int       `json:"stock"`
	CostPrice       float64   `json:"costPrice"`
	Address         string    `json:"address"`
	CustomNote      string    `json:"customNote"`
	CustomName      string    `json:"customName,omitempty"`
	CustomCategory  string    `json:"customCategory,omitempty"`
	CustomImageURL  string    `json:"customImageUrl,omitempty"`
	CustomImagePath string    `json:"customImagePath,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	IsPreOwned      bool      `json:"isPreOwned"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DeriveListingStatus applies the stock-driven status transition: an active
// listing that runs dry flips to out_of_stock, and an out_of_stock listing
// flips back to active once stock is positive. Inactive is left alone.
func DeriveListingStatus(stock int, current string) string {
	switch {
	case stock == 0 && current == ListingStatusActive:
		return ListingStatusOutOfStock
	case stock > 0 && current == ListingStatusOutOfStock:
		return ListingStatusActive
	default:
		return current
	}
}

// FlatListing is a listing with its catalog entry's fields flattened onto the
// top level. Catalog-derived fields are pointers: nil means the listing's
// catalog reference is orphaned (the row is still returned, never dropped).
type FlatListing struct {
	ID              uuid.UUID `json:"id"`
	SellerID        string    `json:"sellerId"`
	CatalogEntryID  uuid.UUID `json:"catalogEntryId"`
	Price           float64   `json:"price"`
	OfferPrice      float64   `json:"offerPrice"`
	Stock           int       `json:"stock"`
	CostPrice       float64   `json:"costPrice"`
	Address         string    `json:"address"`
	CustomNote      string    `json:"customNote"`
	CustomName      string    `json:"customName,omitempty"`
	CustomCategory  string    `json:"customCategory,omitempty"`
	CustomImageURL  string    `json:"customImageUrl,omitempty"`
	CustomImagePath string    `json:"customImagePath,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	IsPreOwned      bool      `json:"isPreOwned"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Flattened catalog data
	Name          *string `json:"name"`
	Brand         *string `json:"brand"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	Unit          *string `json:"unit"`
	ImageURL      *string `json:"imageUrl"`
	CatalogStatus *string `json:"catalogStatus"`
}

// DisplayName resolves the name shown to buyers: the seller's custom name
// wins over the catalog name.
func (f *FlatListing) DisplayName() string {
	if f.CustomName != "" {
		return f.CustomName
	}

	if f.Name != nil {
		return *f.Name
	}

	return ""
}

// IsOffer reports whether the listing carries a real discount. An offer price
// of zero means "no offer", and an offer price equal to the price is not a
// discount.
func (f *FlatListing) IsOffer() bool {
	return f.OfferPrice > 0 && f.OfferPrice < f.Price
}

type CreateListingRequest struct {
	CatalogEntryID  uuid.UUID `json:"catalogEntryId" validate:"required"`
	Price           float64   `json:"price" validate:"required,gt=0"`
	OfferPrice      float64   `json:"offerPrice" validate:"omitempty,gte=0"`
	Stock           int       `json:"stock" validate:"gte=0"`
	CostPrice       float64   `json:"costPrice" validate:"omitempty,gte=0"`
	Address         string    `json:"address" validate:"required,max=200"`
	CustomNote      string    `json:"customNote" validate:"omitempty,max=500"`
	CustomName      string    `json:"customName" validate:"omitempty,max=100"`
	CustomCategory  string    `json:"customCategory" validate:"omitempty,max=50"`
	CustomImageURL  string    `json:"customImageUrl" validate:"omitempty,url"`
	CustomImagePath string    `json:"customImagePath" validate:"omitempty,max=300"`
	IsPreOwned      bool      `json:"isPreOwned"`
}

// Only seller-owned fields are mutable; the catalog reference never changes.
type UpdateListingRequest struct {
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	OfferPrice      *float64 `json:"offerPrice,omitempty" validate:"omitempty,gte=0"`
	Stock           *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	CostPrice       *float64 `json:"costPrice,omitempty" validate:"omitempty,gte=0"`
	Address         *string  `json:"address,omitempty" validate:"omitempty,max=200"`
	CustomNote      *string  `json:"customNote,omitempty" validate:"omitempty,max=500"`
	CustomName      *string  `json:"customName,omitempty" validate:"omitempty,max=100"`
	CustomCategory  *string  `json:"customCategory,omitempty" validate:"omitempty,max=50"`
	CustomImageURL  *string  `json:"customImageUrl,omitempty" validate:"omitempty,url"`
	CustomImagePath *string  `json:"customImagePath,omitempty" validate:"omitempty,max=300"`
	IsAvailable     *bool    `json:"isAvailable,omitempty"`
	IsPreOwned      *bool    `json:"isPreOwned,omitempty"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive out_of_stock"`
}

// ListingQuery is the filter set understood by the join/projection engine.
// Each optional field appends a predicate; stages apply in a fixed order
// (match, join, post-join match, project, sort, paginate).
type ListingQuery struct {
	AvailableOnly *bool  // nil defaults to true for public views
	Category      string // "all" or empty means unfiltered
	Address       string // case-insensitive substring
	SellerID      string
	Search        string // OR-match across catalog and custom text fields
	OnlyOffers    bool
	Status        string
	StockBelow    *int // seller-scoped low stock views
	Page          int
	PageSize      int
}
