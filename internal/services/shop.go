package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	appErrors "github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
)

const (
	defaultLedgerPageSize = 20
	topProductsLimit      = 10
)

type ShopService interface {
	RecordOrderSale(ctx context.Context, sale *models.SaleRecord) (*models.SaleRecord, error)
	AddManualSale(ctx context.Context, sellerID string, req *models.AddManualSaleRequest) (*models.SaleRecord, error)
	ListSales(ctx context.Context, q models.SaleQuery) ([]*models.SaleRecord, models.Pagination, error)
	AddExpense(ctx context.Context, sellerID string, req *models.AddExpenseRequest) (*models.ExpenseRecord, error)
	UpdateExpense(ctx context.Context, sellerID string, id uuid.UUID, req *models.UpdateExpenseRequest) (*models.ExpenseRecord, error)
	DeleteExpense(ctx context.Context, sellerID string, id uuid.UUID) error
	ListExpenses(ctx context.Context, q models.ExpenseQuery) ([]*models.ExpenseRecord, models.Pagination, error)
	BuildProfitLossReport(ctx context.Context, sellerID, period string, startDate, endDate *time.Time) (*models.ProfitLossReport, error)
}

type shopService struct {
	repo repository.ShopRepository
	now  func() time.Time
}

func NewShopService(repo repository.ShopRepository) ShopService {
	return &shopService{repo: repo, now: time.Now}
}

// RecordOrderSale appends a ledger entry originating from an order. Totals
// are derived here once; the report layer never recomputes them.
func (s *shopService) RecordOrderSale(ctx context.Context, sale *models.SaleRecord) (*models.SaleRecord, error) {

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}

	sale.SaleType = models.SaleTypeOrder
	sale.ProductName = sanitizer.Sanitize(sale.ProductName)
	sale.CustomName = sanitizer.Sanitize(sale.CustomName)
	sale.Category = sanitizer.Sanitize(sale.Category)
	sale.Notes = sanitizer.Sanitize(sale.Notes)

	if sale.Unit == "" {
		sale.Unit = "piece"
	}

	if sale.SaleDate.IsZero() {
		sale.SaleDate = s.now()
	}

	sale.TotalAmount = sale.SellingPrice * sale.Quantity
	sale.TotalCost = sale.CostPrice * sale.Quantity
	sale.Profit = sale.TotalAmount - sale.TotalCost

	if err := s.repo.CreateSaleRecord(ctx, sale); err != nil {
		return nil, appErrors.DatabaseError("Failed to record sale").WithError(err)
	}

	return sale, nil
}

func (s *shopService) AddManualSale(ctx context.Context, sellerID string, req *models.AddManualSaleRequest) (*models.SaleRecord, error) {

	saleDate := s.now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	unit := req.Unit
	if unit == "" {
		unit = "piece"
	}

	sale := &models.SaleRecord{
		ID:             uuid.New(),
		SellerID:       sellerID,
		OrderID:        fmt.Sprintf("manual_%d_%06d", s.now().UnixMilli(), rand.Intn(1000000)),
		CatalogEntryID: req.CatalogEntryID,
		ProductName:    sanitizer.Sanitize(req.ProductName),
		CustomName:     sanitizer.Sanitize(req.CustomName),
		Quantity:       req.Quantity,
		SellingPrice:   req.SellingPrice,
		CostPrice:      req.CostPrice,
		TotalAmount:    req.SellingPrice * req.Quantity,
		TotalCost:      req.CostPrice * req.Quantity,
		Profit:         (req.SellingPrice - req.CostPrice) * req.Quantity,
		SaleType:       models.SaleTypeManual,
		Category:       sanitizer.Sanitize(req.Category),
		IsWeightBased:  req.IsWeightBased,
		Unit:           unit,
		ImageURL:       req.ImageURL,
		CustomerName:   sanitizer.Sanitize(req.CustomerName),
		CustomerPhone:  req.CustomerPhone,
		Notes:          sanitizer.Sanitize(req.Notes),
		SaleDate:       saleDate,
	}

	if err := s.repo.CreateSaleRecord(ctx, sale); err != nil {
		return nil, appErrors.DatabaseError("Failed to record manual sale").WithError(err)
	}

	return sale, nil
}

func (s *shopService) ListSales(ctx context.Context, q models.SaleQuery) ([]*models.SaleRecord, models.Pagination, error) {

	q.Page, q.PageSize = models.NormalizePage(q.Page, q.PageSize, defaultLedgerPageSize)

	sales, total, err := s.repo.ListSales(ctx, q)
	if err != nil {
		return nil, models.Pagination{}, appErrors.DatabaseError("Failed to fetch sales").WithError(err)
	}

	return sales, models.NewPagination(q.Page, q.PageSize, total), nil
}

func (s *shopService) AddExpense(ctx context.Context, sellerID string, req *models.AddExpenseRequest) (*models.ExpenseRecord, error) {

	expenseDate := s.now()
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense := &models.ExpenseRecord{
		ID:            uuid.New(),
		SellerID:      sellerID,
		Title:         sanitizer.Sanitize(req.Title),
		Description:   sanitizer.Sanitize(req.Description),
		Amount:        req.Amount,
		Category:      sanitizer.Sanitize(req.Category),
		Type:          sanitizer.Sanitize(req.Type),
		Reference:     sanitizer.Sanitize(req.Reference),
		AttachmentURL: req.AttachmentURL,
		ExpenseDate:   expenseDate,
	}

	if err := s.repo.CreateExpenseRecord(ctx, expense); err != nil {
		return nil, appErrors.DatabaseError("Failed to record expense").WithError(err)
	}

	return expense, nil
}

func (s *shopService) UpdateExpense(ctx context.Context, sellerID string, id uuid.UUID, req *models.UpdateExpenseRequest) (*models.ExpenseRecord, error) {

	expense, err := s.repo.GetExpenseByIDAndSeller(ctx, id, sellerID)
	if err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Expense not found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch expense").WithError(err)
	}

	if req.Title != nil {
		expense.Title = sanitizer.Sanitize(*req.Title)
	}
	if req.Description != nil {
		expense.Description = sanitizer.Sanitize(*req.Description)
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = sanitizer.Sanitize(*req.Category)
	}
	if req.Type != nil {
		expense.Type = sanitizer.Sanitize(*req.Type)
	}
	if req.Reference != nil {
		expense.Reference = sanitizer.Sanitize(*req.Reference)
	}
	if req.AttachmentURL != nil {
		expense.AttachmentURL = *req.AttachmentURL
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}

	if err := s.repo.UpdateExpenseRecord(ctx, expense); err != nil {
		return nil, appErrors.DatabaseError("Failed to update expense").WithError(err)
	}

	return expense, nil
}

func (s *shopService) DeleteExpense(ctx context.Context, sellerID string, id uuid.UUID) error {

	if _, err := s.repo.GetExpenseByIDAndSeller(ctx, id, sellerID); err != nil {

		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Expense not found")
		}

		return appErrors.DatabaseError("Failed to fetch expense").WithError(err)
	}

	if err := s.repo.DeleteExpenseRecord(ctx, id); err != nil {
		return appErrors.DatabaseError("Failed to delete expense").WithError(err)
	}

	return nil
}

func (s *shopService) ListExpenses(ctx context.Context, q models.ExpenseQuery) ([]*models.ExpenseRecord, models.Pagination, error) {

	q.Page, q.PageSize = models.NormalizePage(q.Page, q.PageSize, defaultLedgerPageSize)

	expenses, total, err := s.repo.ListExpenses(ctx, q)
	if err != nil {
		return nil, models.Pagination{}, appErrors.DatabaseError("Failed to fetch expenses").WithError(err)
	}

	return expenses, models.NewPagination(q.Page, q.PageSize, total), nil
}

// resolveReportWindow maps a named period onto a concrete [start, end] window
// ending now. Explicit dates override the period shorthand.
func (s *shopService) resolveReportWindow(period string, startDate, endDate *time.Time) (time.Time, time.Time, error) {

	end := s.now()
	if endDate != nil {
		end = *endDate
	}

	if startDate != nil {
		if startDate.After(end) {
			return time.Time{}, time.Time{}, appErrors.ValidationError("startDate must not be after endDate")
		}
		return *startDate, end, nil
	}

	var span time.Duration

	switch period {
	case "daily":
		span = 24 * time.Hour
	case "weekly":
		span = 7 * 24 * time.Hour
	case "monthly", "":
		span = 30 * 24 * time.Hour
	case "yearly":
		span = 365 * 24 * time.Hour
	default:
		return time.Time{}, time.Time{}, appErrors.ValidationError(
			fmt.Sprintf("Unknown period %q, expected daily, weekly, monthly or yearly", period))
	}

	return end.Add(-span), end, nil
}

// productKey groups sales for the top-products ranking. Linked sales group by
// catalog entry id; manual, unlinked sales group by their name pair.
func productKey(sale *models.SaleRecord) string {

	if sale.CatalogEntryID != nil {
		return sale.CatalogEntryID.String()
	}

	return "manual:" + sale.ProductName + ":" + sale.CustomName
}

func (s *shopService) BuildProfitLossReport(ctx context.Context, sellerID, period string, startDate, endDate *time.Time) (*models.ProfitLossReport, error) {

	start, end, err := s.resolveReportWindow(period, startDate, endDate)
	if err != nil {
		return nil, err
	}

	sales, err := s.repo.ListSalesInWindow(ctx, sellerID, start, end)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sales for report").WithError(err)
	}

	expenses, err := s.repo.ListExpensesInWindow(ctx, sellerID, start, end)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch expenses for report").WithError(err)
	}

	report := &models.ProfitLossReport{
		SellerID:           sellerID,
		StartDate:          start,
		EndDate:            end,
		Period:             period,
		ExpensesByCategory: map[string]float64{},
	}

	products := map[string]*models.ProductPerformance{}
	categories := map[string]*models.CategoryPerformance{}
	categoryProducts := map[string]map[string]struct{}{}
	orderCount := 0

	for _, sale := range sales {

		report.TotalSales += sale.TotalAmount
		report.TotalCosts += sale.TotalCost
		report.TotalItemsSold += sale.Quantity

		if sale.SaleType == models.SaleTypeOrder {
			orderCount++
		}

		key := productKey(sale)

		perf, ok := products[key]
		if !ok {
			perf = &models.ProductPerformance{
				CatalogEntryID: sale.CatalogEntryID,
				ProductName:    sale.ProductName,
				CustomName:     sale.CustomName,
				Category:       sale.Category,
				ImageURL:       sale.ImageURL,
			}
			products[key] = perf
		}

		perf.TotalQuantity += sale.Quantity
		perf.TotalRevenue += sale.TotalAmount
		perf.TotalCost += sale.TotalCost
		perf.TotalProfit += sale.Profit
		perf.SalesCount++

		cat, ok := categories[sale.Category]
		if !ok {
			cat = &models.CategoryPerformance{Category: sale.Category}
			categories[sale.Category] = cat
			categoryProducts[sale.Category] = map[string]struct{}{}
		}

		cat.TotalQuantity += sale.Quantity
		cat.TotalRevenue += sale.TotalAmount
		cat.TotalCost += sale.TotalCost
		cat.TotalProfit += sale.Profit
		categoryProducts[sale.Category][key] = struct{}{}
	}

	report.GrossProfit = report.TotalSales - report.TotalCosts
	report.TotalOrdersCount = len(sales)

	for _, expense := range expenses {
		report.TotalExpenses += expense.Amount
		report.ExpensesByCategory[expense.Category] += expense.Amount
	}

	report.NetProfit = report.GrossProfit - report.TotalExpenses

	if report.TotalSales > 0 {
		report.ProfitMargin = report.NetProfit / report.TotalSales * 100
	}

	if orderCount > 0 {
		report.AverageOrderValue = report.TotalSales / float64(orderCount)
	}

	topProducts := make([]models.ProductPerformance, 0, len(products))
	for _, perf := range products {

		if perf.TotalRevenue > 0 {
			perf.ProfitMargin = perf.TotalProfit / perf.TotalRevenue * 100
		}

		topProducts = append(topProducts, *perf)
	}

	sort.Slice(topProducts, func(i, j int) bool {
		if topProducts[i].TotalProfit != topProducts[j].TotalProfit {
			return topProducts[i].TotalProfit > topProducts[j].TotalProfit
		}
		return topProducts[i].ProductName < topProducts[j].ProductName
	})

	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	report.TopProducts = topProducts

	categoryPerf := make([]models.CategoryPerformance, 0, len(categories))
	for name, cat := range categories {

		cat.ProductsCount = len(categoryProducts[name])

		if cat.TotalRevenue > 0 {
			cat.ProfitMargin = cat.TotalProfit / cat.TotalRevenue * 100
		}

		categoryPerf = append(categoryPerf, *cat)
	}

	sort.Slice(categoryPerf, func(i, j int) bool {
		if categoryPerf[i].TotalProfit != categoryPerf[j].TotalProfit {
			return categoryPerf[i].TotalProfit > categoryPerf[j].TotalProfit
		}
		return categoryPerf[i].Category < categoryPerf[j].Category
	})

	report.CategoryPerformance = categoryPerf

	// inclusive day count: a window inside one day still counts as a day
	report.DaysInPeriod = int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	report.DailyAverageProfit = report.NetProfit / float64(report.DaysInPeriod)

	return report, nil
}
