package controllers

import (
	"net/http"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/internal/services"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

// GET /api/equipments?status=&category=[&format=xlsx]
func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter, err := parseEquipmentFilter(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	list, err := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetEquipments: ошибка при получении списка оборудования", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if wantsXLSX(ctx) {
		return exportEquipments(ctx, list)
	}
	return utils.SuccessResponse(ctx, dto.NewEquipmentDTOs(list, time.Now()), "", http.StatusOK, len(list))
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTO(res, time.Now()), "", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("CreateEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTO(res, time.Now()), "Оборудование успешно создано", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("UpdateEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewEquipmentDTO(res, time.Now()), "Оборудование успешно обновлено", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Оборудование успешно удалено", http.StatusOK)
}

func parseEquipmentFilter(ctx echo.Context) (entities.EquipmentFilter, error) {
	var filter entities.EquipmentFilter
	if raw := firstQuery(ctx, "status", "statut"); raw != "" {
		status, ok := entities.ParseEquipmentStatus(raw)
		if !ok {
			return filter, apperrors.NewValidationError("status", "недопустимое значение '%s'", raw)
		}
		filter.Status = status
	}
	if raw := firstQuery(ctx, "category", "categorie"); raw != "" {
		category, ok := entities.ParseEquipmentCategory(raw)
		if !ok {
			return filter, apperrors.NewValidationError("category", "недопустимое значение '%s'", raw)
		}
		filter.Category = category
	}
	return filter, nil
}
