package models

import "github.com/google/uuid"

// Stock below this threshold raises a low-stock alert. Independent of the
// active/out_of_stock transition at zero.
const LowStockThreshold = 5

// StockDecrementItem identifies one listing to decrement. ListingID is the
// explicit form; ListingRef is the ambiguous legacy form and may carry either
// the catalog entry id or the listing id (clients have sent both).
type StockDecrementItem struct {
	ListingID        string `json:"listingId,omitempty"`
	ListingRef       string `json:"listingRef,omitempty"`
	SellerID         string `json:"sellerId" validate:"required"`
	QuantityToReduce int    `json:"quantityToReduce" validate:"required,gt=0"`
}

type StockDecrementRequest struct {
	Items []StockDecrementItem `json:"items" validate:"required,min=1,dive"`
}

type StockUpdate struct {
	ListingID       uuid.UUID `json:"listingId"`
	SellerID        string    `json:"sellerId"`
	PreviousStock   int       `json:"previousStock"`
	NewStock        int       `json:"newStock"`
	QuantityReduced int       `json:"quantityReduced"`
	Status          string    `json:"status"`
}

type LowStockAlert struct {
	ListingID   uuid.UUID `json:"listingId"`
	SellerID    string    `json:"sellerId"`
	ProductName string    `json:"productName"`
	Stock       int       `json:"stock"`
}

type StockDecrementResult struct {
	Updates        []StockUpdate   `json:"updates"`
	LowStockAlerts []LowStockAlert `json:"lowStockAlerts"`
}
