package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/homebase-labs/seller-marketplace/internal/api/middleware"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
	"github.com/homebase-labs/seller-marketplace/internal/utils/response"
)

type StockHandler struct {
	stockService service.StockService
	validator    *validator.Validate
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService, validator: validator.New()}
}

// DecrementStock is called by the order system after checkout to reconcile
// inventory. The whole batch applies or none of it does.
func (h *StockHandler) DecrementStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.StockDecrementRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.stockService.ApplyStockDecrements(r.Context(), &req)
		if err != nil {
			logger.Error("Stock decrement failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Stock decrements applied",
			slog.Int("updates", len(result.Updates)),
			slog.Int("lowStockAlerts", len(result.LowStockAlerts)))
		response.Success(w, http.StatusOK, result)
	}
}
