package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderation lifecycle of a catalog entry. Approved and rejected are terminal.
const (
	CatalogStatusPending  = "pending"
	CatalogStatusApproved = "approved"
	CatalogStatusRejected = "rejected"
)

// CatalogEntry is the canonical, seller-independent product definition.
// Many listings reference one entry; the entry outlives any single listing.
type CatalogEntry struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Brand           string     `json:"brand"`
	Category        string     `json:"category"`
	Description     string     `json:"description"`
	Unit            string     `json:"unit"`
	ImageURL        string     `json:"imageUrl"`
	Status          string     `json:"status"`
	CreatedBy       string     `json:"createdBy"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	SearchKeywords  []string   `json:"searchKeywords"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type CreateCatalogEntryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Brand       string `json:"brand" validate:"omitempty,max=50"`
	Category    string `json:"category" validate:"required,max=50"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Unit        string `json:"unit" validate:"omitempty,max=20"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
}

type RejectCatalogEntryRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// CatalogQuery drives the approved-catalog search used by sellers when
// linking a product. "all" (or empty) category means no category filter.
type CatalogQuery struct {
	Search   string
	Category string
	Status   string
	Page     int
	PageSize int
}
