package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/homebase-labs/seller-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid input data")))
		return false
	}

	return true

}

// QueryInt reads an integer query parameter, falling back on garbage input.
// Bad pagination is clamped, never rejected.
func QueryInt(r *http.Request, key string, fallback int) int {

	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

// QueryBool reads an optional boolean query parameter. Returns nil when the
// parameter is absent or unparsable.
func QueryBool(r *http.Request, key string) *bool {

	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &v
}
