package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/homebase-labs/seller-marketplace/internal/api/middleware"
	"github.com/homebase-labs/seller-marketplace/internal/errors"
	"github.com/homebase-labs/seller-marketplace/internal/models"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/homebase-labs/seller-marketplace/internal/utils"
	"github.com/homebase-labs/seller-marketplace/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

func (h *CatalogHandler) CreateCatalogEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		var req models.CreateCatalogEntryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		entry, err := h.catalogService.CreateCatalogEntry(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Failed to create catalog entry", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog entry created", slog.String("catalogEntryId", entry.ID.String()))
		response.Success(w, http.StatusCreated, entry)
	}
}

func (h *CatalogHandler) GetCatalogEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid catalog entry id"))

			return
		}

		entry, err := h.catalogService.GetCatalogEntryByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, entry)
	}
}

// for eg: GET /catalog?search=wooden+chair&category=Furniture&page=1
func (h *CatalogHandler) SearchCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		q := models.CatalogQuery{
			Search:   r.URL.Query().Get("search"),
			Category: r.URL.Query().Get("category"),
			Page:     utils.QueryInt(r, "page", 1),
			PageSize: utils.QueryInt(r, "pageSize", 0),
		}

		entries, pagination, err := h.catalogService.SearchCatalog(r.Context(), q)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Catalog search failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"entries":    entries,
			"pagination": pagination,
		})
	}
}

func (h *CatalogHandler) GetCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.GetCategories(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{"categories": categories})
	}
}

func (h *CatalogHandler) ListPending() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entries, pagination, err := h.catalogService.ListPending(r.Context(),
			utils.QueryInt(r, "page", 1), utils.QueryInt(r, "pageSize", 0))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"entries":    entries,
			"pagination": pagination,
		})
	}
}

func (h *CatalogHandler) ApproveCatalogEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid catalog entry id"))

			return
		}

		entry, err := h.catalogService.ApproveCatalogEntry(r.Context(), id, claims.UserID)
		if err != nil {
			logger.Error("Failed to approve catalog entry", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog entry approved", slog.String("catalogEntryId", id.String()))
		response.Success(w, http.StatusOK, entry)
	}
}

func (h *CatalogHandler) RejectCatalogEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid catalog entry id"))

			return
		}

		var req models.RejectCatalogEntryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		entry, err := h.catalogService.RejectCatalogEntry(r.Context(), id, claims.UserID, req.Reason)
		if err != nil {
			logger.Error("Failed to reject catalog entry", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog entry rejected", slog.String("catalogEntryId", id.String()))
		response.Success(w, http.StatusOK, entry)
	}
}
