package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightincognito/internal/history"
	"github.com/dharmasatrya/flightincognito/internal/models"
)

// HistoryStore is the persistence contract the handlers need; the
// sqlite store satisfies it.
type HistoryStore interface {
	Save(ctx context.Context, req models.SearchRequest) (int64, error)
	Recent(ctx context.Context, limit int) ([]history.Record, error)
	PopularRoutes(ctx context.Context, limit int) ([]history.RouteStat, error)
	ByID(ctx context.Context, id int64) (history.Record, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ClearAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
}

type HistoryHandler struct {
	store HistoryStore
}

func NewHistoryHandler(store HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) Recent(c echo.Context) error {
	limit := queryInt(c, "limit", 10)

	records, err := h.store.Recent(c.Request().Context(), limit)
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"searches": records,
		"count":    len(records),
	})
}

func (h *HistoryHandler) Popular(c echo.Context) error {
	limit := queryInt(c, "limit", 5)

	routes, err := h.store.PopularRoutes(c.Request().Context(), limit)
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"routes": routes,
		"count":  len(routes),
	})
}

func (h *HistoryHandler) Count(c echo.Context) error {
	total, err := h.store.Count(c.Request().Context())
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_searches": total,
	})
}

func (h *HistoryHandler) ByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "invalid search id",
			Code:    http.StatusBadRequest,
		})
	}

	record, err := h.store.ByID(c.Request().Context(), id)
	if errors.Is(err, history.ErrNotFound) {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
	}
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

func (h *HistoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "invalid search id",
			Code:    http.StatusBadRequest,
		})
	}

	deleted, err := h.store.Delete(c.Request().Context(), id)
	if err != nil {
		return historyError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "search not found",
			Code:    http.StatusNotFound,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"deleted": true,
	})
}

func (h *HistoryHandler) Clear(c echo.Context) error {
	deleted, err := h.store.ClearAll(c.Request().Context())
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"deleted": deleted,
	})
}

func historyError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "history_error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryInt(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
