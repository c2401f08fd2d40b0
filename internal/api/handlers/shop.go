package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/api/middleware"
	"github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
	"github.com/homebase-labs/seller-marketplace/internal/utils/response"
)

type ShopHandler struct {
	shopService service.ShopService
	validator   *validator.Validate
}

func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService, validator: validator.New()}
}

func (h *ShopHandler) AddManualSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.AddManualSaleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sale, err := h.shopService.AddManualSale(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to record manual sale", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Manual sale recorded", slog.String("saleId", sale.ID.String()))
		response.Success(w, http.StatusCreated, sale)
	}
}

// RecordOrderSale ingests a fulfilled order line from the order system. Like
// stock decrements, the seller is named in the payload rather than taken from
// the caller's token.
func (h *ShopHandler) RecordOrderSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RecordOrderSaleRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sale := &models.SaleRecord{
			SellerID:       req.SellerID,
			OrderID:        req.OrderID,
			CatalogEntryID: req.CatalogEntryID,
			ProductName:    req.ProductName,
			CustomName:     req.CustomName,
			Quantity:       req.Quantity,
			SellingPrice:   req.SellingPrice,
			CostPrice:      req.CostPrice,
			Category:       req.Category,
			IsWeightBased:  req.IsWeightBased,
			Unit:           req.Unit,
			ImageURL:       req.ImageURL,
		}

		if req.SaleDate != nil {
			sale.SaleDate = *req.SaleDate
		}

		recorded, err := h.shopService.RecordOrderSale(r.Context(), sale)
		if err != nil {
			logger.Error("Failed to record order sale", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order sale recorded",
			slog.String("saleId", recorded.ID.String()),
			slog.String("orderId", recorded.OrderID))
		response.Success(w, http.StatusCreated, recorded)
	}
}

// for eg: GET /shop/sales?startDate=2025-01-01T00:00:00Z&saleType=manual
func (h *ShopHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		q := models.SaleQuery{
			SellerID:  claims.UserID,
			StartDate: queryTime(r, "startDate"),
			EndDate:   queryTime(r, "endDate"),
			Category:  r.URL.Query().Get("category"),
			SaleType:  r.URL.Query().Get("saleType"),
			Page:      utils.QueryInt(r, "page", 1),
			PageSize:  utils.QueryInt(r, "pageSize", 0),
		}

		if raw := r.URL.Query().Get("catalogEntryId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid catalog entry id"))

				return
			}

			q.CatalogEntryID = &id
		}

		sales, pagination, err := h.shopService.ListSales(r.Context(), q)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"sales":      sales,
			"pagination": pagination,
		})
	}
}

func (h *ShopHandler) AddExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.AddExpenseRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		expense, err := h.shopService.AddExpense(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Expense recorded", slog.String("expenseId", expense.ID.String()))
		response.Success(w, http.StatusCreated, expense)
	}
}

func (h *ShopHandler) UpdateExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid expense id"))

			return
		}

		var req models.UpdateExpenseRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		expense, err := h.shopService.UpdateExpense(r.Context(), claims.UserID, id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, expense)
	}
}

func (h *ShopHandler) DeleteExpense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid expense id"))

			return
		}

		if err := h.shopService.DeleteExpense(r.Context(), claims.UserID, id); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"deleted": true})
	}
}

func (h *ShopHandler) ListExpenses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		q := models.ExpenseQuery{
			SellerID:  claims.UserID,
			StartDate: queryTime(r, "startDate"),
			EndDate:   queryTime(r, "endDate"),
			Category:  r.URL.Query().Get("category"),
			Type:      r.URL.Query().Get("type"),
			Page:      utils.QueryInt(r, "page", 1),
			PageSize:  utils.QueryInt(r, "pageSize", 0),
		}

		expenses, pagination, err := h.shopService.ListExpenses(r.Context(), q)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"expenses":   expenses,
			"pagination": pagination,
		})
	}
}

// for eg: GET /shop/reports/profit-loss?period=weekly
func (h *ShopHandler) GetProfitLossReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		report, err := h.shopService.BuildProfitLossReport(r.Context(), claims.UserID,
			r.URL.Query().Get("period"), queryTime(r, "startDate"), queryTime(r, "endDate"))
		if err != nil {
			logger.Error("Failed to build profit/loss report", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, report)
	}
}

func queryTime(r *http.Request, key string) *time.Time {

	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {

		// date-only form from the dashboard
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil
		}
	}

	return &t
}
