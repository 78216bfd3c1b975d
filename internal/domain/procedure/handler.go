package procedure

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/theatreops/tom/internal/platform/auth"
	"github.com/theatreops/tom/internal/platform/query"
	"github.com/theatreops/tom/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	readGroup := api.Group("", auth.RequireRole("admin", "coordinator", "clinician"))
	readGroup.GET("/procedure-cards", h.ListCards)
	readGroup.GET("/procedure-cards/:id", h.GetCard)
	readGroup.GET("/procedure-cards/:id/detail", h.GetDetail)
	readGroup.GET("/procedure-cards/:id/staff-requirements", h.GetStaffRequirements)
	readGroup.GET("/procedure-cards/:id/equipment-requirements", h.GetEquipmentRequirements)
	readGroup.GET("/procedure-cards/:id/consumable-requirements", h.GetConsumableRequirements)

	writeGroup := api.Group("", auth.RequireRole("admin", "coordinator"))
	writeGroup.POST("/procedure-cards", h.CreateCard)
	writeGroup.PUT("/procedure-cards/:id", h.UpdateCard)
	writeGroup.DELETE("/procedure-cards/:id", h.DeleteCard)
	writeGroup.POST("/procedure-cards/:id/staff-requirements", h.AddStaffRequirement)
	writeGroup.DELETE("/procedure-cards/:id/staff-requirements/:reqId", h.RemoveStaffRequirement)
	writeGroup.POST("/procedure-cards/:id/equipment-requirements", h.AddEquipmentRequirement)
	writeGroup.DELETE("/procedure-cards/:id/equipment-requirements/:reqId", h.RemoveEquipmentRequirement)
	writeGroup.POST("/procedure-cards/:id/consumable-requirements", h.AddConsumableRequirement)
	writeGroup.DELETE("/procedure-cards/:id/consumable-requirements/:reqId", h.RemoveConsumableRequirement)
}

func (h *Handler) CreateCard(c echo.Context) error {
	var card Card
	if err := c.Bind(&card); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateCard(c.Request().Context(), &card); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) GetCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	card, err := h.svc.GetCard(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "procedure card not found")
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) GetDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	detail, err := h.svc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "procedure card not found")
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListCards(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.SearchCards(c.Request().Context(), query.ExtractParams(c), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var card Card
	if err := c.Bind(&card); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	card.ID = id
	if err := h.svc.UpdateCard(c.Request().Context(), &card); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteCard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteCard(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Staff requirement handlers --

func (h *Handler) AddStaffRequirement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var sr StaffRequirement
	if err := c.Bind(&sr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sr.CardID = id
	if err := h.svc.AddStaffRequirement(c.Request().Context(), &sr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, sr)
}

func (h *Handler) GetStaffRequirements(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.GetStaffRequirements(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RemoveStaffRequirement(c echo.Context) error {
	reqID, err := uuid.Parse(c.Param("reqId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid requirement id")
	}
	if err := h.svc.RemoveStaffRequirement(c.Request().Context(), reqID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Equipment requirement handlers --

func (h *Handler) AddEquipmentRequirement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var er EquipmentRequirement
	if err := c.Bind(&er); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	er.CardID = id
	if err := h.svc.AddEquipmentRequirement(c.Request().Context(), &er); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, er)
}

func (h *Handler) GetEquipmentRequirements(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.GetEquipmentRequirements(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RemoveEquipmentRequirement(c echo.Context) error {
	reqID, err := uuid.Parse(c.Param("reqId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid requirement id")
	}
	if err := h.svc.RemoveEquipmentRequirement(c.Request().Context(), reqID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Consumable requirement handlers --

func (h *Handler) AddConsumableRequirement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var cr ConsumableRequirement
	if err := c.Bind(&cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cr.CardID = id
	if err := h.svc.AddConsumableRequirement(c.Request().Context(), &cr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *Handler) GetConsumableRequirements(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	items, err := h.svc.GetConsumableRequirements(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RemoveConsumableRequirement(c echo.Context) error {
	reqID, err := uuid.Parse(c.Param("reqId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid requirement id")
	}
	if err := h.svc.RemoveConsumableRequirement(c.Request().Context(), reqID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
