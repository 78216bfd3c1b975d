package readiness

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/theatreops/tom/internal/platform/auth"
)

type Handler struct {
	evaluator *Evaluator
}

func NewHandler(evaluator *Evaluator) *Handler {
	return &Handler{evaluator: evaluator}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "coordinator", "clinician"))
	readGroup.GET("/theatres/:id/readiness", h.Evaluate)
}

func (h *Handler) Evaluate(c echo.Context) error {
	theatreID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid theatre id")
	}

	var caseID *uuid.UUID
	if raw := c.QueryParam("case_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid case_id")
		}
		caseID = &id
	}

	check, err := h.evaluator.Evaluate(c.Request().Context(), theatreID, caseID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTheatreNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "theatre not found")
		case errors.Is(err, ErrStoreUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable, retry later")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, check)
}
