package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SaleTypeOrder  = "order"
	SaleTypeManual = "manual"
)

// SaleRecord is an append-only ledger entry. Totals are computed once at
// creation and never touched by the join engine.
type SaleRecord struct {
	ID             uuid.UUID  `json:"id"`
	SellerID       string     `json:"sellerId"`
	OrderID        string     `json:"orderId"`
	CatalogEntryID *uuid.UUID `json:"catalogEntryId,omitempty"` // nil for manual, unlinked sales
	ProductName    string     `json:"productName"`
	CustomName     string     `json:"customName,omitempty"`
	Quantity       float64    `json:"quantity"`
	SellingPrice   float64    `json:"sellingPrice"`
	CostPrice      float64    `json:"costPrice"`
	TotalAmount    float64    `json:"totalAmount"`
	TotalCost      float64    `json:"totalCost"`
	Profit         float64    `json:"profit"`
	SaleType       string     `json:"saleType"`
	Category       string     `json:"category"`
	IsWeightBased  bool       `json:"isWeightBased"`
	Unit           string     `json:"unit"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	CustomerName   string     `json:"customerName,omitempty"`
	CustomerPhone  string     `json:"customerPhone,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	SaleDate       time.Time  `json:"saleDate"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type ExpenseRecord struct {
	ID            uuid.UUID `json:"id"`
	SellerID      string    `json:"sellerId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	Reference     string    `json:"reference,omitempty"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
	ExpenseDate   time.Time `json:"expenseDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AddManualSaleRequest struct {
	CatalogEntryID *uuid.UUID `json:"catalogEntryId,omitempty"`
	ProductName    string     `json:"productName" validate:"required,max=100"`
	CustomName     string     `json:"customName" validate:"omitempty,max=100"`
	Quantity       float64    `json:"quantity" validate:"required,gt=0"`
	SellingPrice   float64    `json:"sellingPrice" validate:"required,gte=0"`
	CostPrice      float64    `json:"costPrice" validate:"gte=0"`
	Category       string     `json:"category" validate:"required,max=50"`
	IsWeightBased  bool       `json:"isWeightBased"`
	Unit           string     `json:"unit" validate:"omitempty,max=20"`
	ImageURL       string     `json:"imageUrl" validate:"omitempty,url"`
	CustomerName   string     `json:"customerName" validate:"omitempty,max=100"`
	CustomerPhone  string     `json:"customerPhone" validate:"omitempty,max=20"`
	Notes          string     `json:"notes" validate:"omitempty,max=500"`
	SaleDate       *time.Time `json:"saleDate,omitempty"`
}

// RecordOrderSaleRequest is posted by the order system once an order line is
// fulfilled. The seller comes from the payload, not the caller's token.
type RecordOrderSaleRequest struct {
	SellerID       string     `json:"sellerId" validate:"required,max=100"`
	OrderID        string     `json:"orderId" validate:"required,max=100"`
	CatalogEntryID *uuid.UUID `json:"catalogEntryId,omitempty"`
	ProductName    string     `json:"productName" validate:"required,max=100"`
	CustomName     string     `json:"customName" validate:"omitempty,max=100"`
	Quantity       float64    `json:"quantity" validate:"required,gt=0"`
	SellingPrice   float64    `json:"sellingPrice" validate:"required,gte=0"`
	CostPrice      float64    `json:"costPrice" validate:"gte=0"`
	Category       string     `json:"category" validate:"omitempty,max=50"`
	IsWeightBased  bool       `json:"isWeightBased"`
	Unit           string     `json:"unit" validate:"omitempty,max=20"`
	ImageURL       string     `json:"imageUrl" validate:"omitempty,url"`
	SaleDate       *time.Time `json:"saleDate,omitempty"`
}

type AddExpenseRequest struct {
	Title         string     `json:"title" validate:"required,max=100"`
	Description   string     `json:"description" validate:"omitempty,max=500"`
	Amount        float64    `json:"amount" validate:"required,gt=0"`
	Category      string     `json:"category" validate:"required,max=50"`
	Type          string     `json:"type" validate:"required,max=50"`
	Reference     string     `json:"reference" validate:"omitempty,max=100"`
	AttachmentURL string     `json:"attachmentUrl" validate:"omitempty,url"`
	ExpenseDate   *time.Time `json:"expenseDate,omitempty"`
}

type UpdateExpenseRequest struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Amount        *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category      *string    `json:"category,omitempty" validate:"omitempty,max=50"`
	Type          *string    `json:"type,omitempty" validate:"omitempty,max=50"`
	Reference     *string    `json:"reference,omitempty" validate:"omitempty,max=100"`
	AttachmentURL *string    `json:"attachmentUrl,omitempty" validate:"omitempty,url"`
	ExpenseDate   *time.Time `json:"expenseDate,omitempty"`
}

type SaleQuery struct {
	SellerID       string
	StartDate      *time.Time
	EndDate        *time.Time
	Category       string
	CatalogEntryID *uuid.UUID
	SaleType       string
	Page           int
	PageSize       int
}

type ExpenseQuery struct {
	SellerID  string
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Type      string
	Page      int
	PageSize  int
}

// ProductPerformance is one row of the top-products ranking. Sales with a
// catalog reference group by that id; manual, unlinked sales group by a
// synthetic (productName, customName) key.
type ProductPerformance struct {
	CatalogEntryID *uuid.UUID `json:"catalogEntryId"`
	ProductName    string     `json:"productName"`
	CustomName     string     `json:"customName,omitempty"`
	Category       string     `json:"category"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	TotalQuantity  float64    `json:"totalQuantity"`
	TotalRevenue   float64    `json:"totalRevenue"`
	TotalCost      float64    `json:"totalCost"`
	TotalProfit    float64    `json:"totalProfit"`
	SalesCount     int        `json:"salesCount"`
	ProfitMargin   float64    `json:"profitMargin"`
}

type CategoryPerformance struct {
	Category      string  `json:"category"`
	TotalQuantity float64 `json:"totalQuantity"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalCost     float64 `json:"totalCost"`
	TotalProfit   float64 `json:"totalProfit"`
	ProductsCount int     `json:"productsCount"`
	ProfitMargin  float64 `json:"profitMargin"`
}

type ProfitLossReport struct {
	SellerID  string    `json:"sellerId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Period    string    `json:"period"`

	TotalSales       float64 `json:"totalSales"`
	TotalCosts       float64 `json:"totalCosts"`
	GrossProfit      float64 `json:"grossProfit"`
	TotalOrdersCount int     `json:"totalOrdersCount"`
	TotalItemsSold   float64 `json:"totalItemsSold"`

	TotalExpenses      float64            `json:"totalExpenses"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`

	NetProfit    float64 `json:"netProfit"`
	ProfitMargin float64 `json:"profitMargin"`

	TopProducts         []ProductPerformance  `json:"topProducts"`
	CategoryPerformance []CategoryPerformance `json:"categoryPerformance"`

	AverageOrderValue  float64 `json:"averageOrderValue"`
	DailyAverageProfit float64 `json:"dailyAverageProfit"`
	DaysInPeriod       int     `json:"daysInPeriod"`
}

// ListingProfitability decorates a flattened listing with per-unit margin
// figures for the shop dashboard.
type ListingProfitability struct {
	FlatListing
	ProfitPerUnit          float64 `json:"profitPerUnit"`
	ProfitMarginPercentage float64 `json:"profitMarginPercentage"`
	EffectivePrice         float64 `json:"effectivePrice"`
	ProfitStatus           string  `json:"profitStatus"`
}
