package controllers

import (
	"net/http"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/internal/services"
	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/utils"
	"smart-gmao/pkg/validation"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
	logger        *zap.Logger
}

func NewTicketController(
	service services.TicketServiceInterface,
	logger *zap.Logger,
) *TicketController {
	return &TicketController{
		ticketService: service,
		logger:        logger,
	}
}

// GET /api/tickets?statut=&priorite=&equipmentId=[&format=xlsx]
func (c *TicketController) GetTickets(ctx echo.Context) error {
	filter, err := parseTicketFilter(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	list, err := c.ticketService.GetTickets(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetTickets: ошибка при получении списка тикетов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if wantsXLSX(ctx) {
		return exportTickets(ctx, list)
	}
	return utils.SuccessResponse(ctx, dto.NewTicketDTOs(list, time.Now()), "", http.StatusOK, len(list))
}

func (c *TicketController) GetTicketStats(ctx echo.Context) error {
	stats, err := c.ticketService.GetTicketStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, stats, "", http.StatusOK)
}

func (c *TicketController) FindTicket(ctx echo.Context) error {
	res, err := c.ticketService.FindTicket(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "", http.StatusOK)
}

func (c *TicketController) CreateTicket(ctx echo.Context) error {
	var payload dto.CreateTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("CreateTicket: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.CreateTicket(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "Тикет успешно создан", http.StatusCreated)
}

func (c *TicketController) UpdateTicket(ctx echo.Context) error {
	var payload dto.UpdateTicketDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Warn("UpdateTicket: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.UpdateTicket(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "Тикет успешно обновлён", http.StatusOK)
}

func (c *TicketController) AddComment(ctx echo.Context) error {
	var payload dto.AddCommentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.AddComment(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "Комментарий добавлен", http.StatusCreated)
}

// POST /api/tickets/:id/photos (multipart: photo, description)
func (c *TicketController) AddPhoto(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewValidationError("photo", "файл не передан"), c.logger)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, config.UploadTicketPhoto, "photo"); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.AddPhoto(ctx.Request().Context(), ctx.Param("id"), src, fileHeader.Filename, ctx.FormValue("description"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "Фото добавлено", http.StatusCreated)
}

func (c *TicketController) StartIntervention(ctx echo.Context) error {
	res, err := c.ticketService.StartIntervention(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "Работы начаты", http.StatusOK)
}

func (c *TicketController) FinishIntervention(ctx echo.Context) error {
	var payload dto.FinishInterventionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, badBody(err), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.ticketService.FinishIntervention(ctx.Request().Context(), ctx.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NewTicketDTO(res, time.Now()), "Работы завершены", http.StatusOK)
}

func (c *TicketController) DeleteTicket(ctx echo.Context) error {
	if err := c.ticketService.DeleteTicket(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Тикет успешно удалён", http.StatusOK)
}

func parseTicketFilter(ctx echo.Context) (entities.TicketFilter, error) {
	filter := entities.TicketFilter{EquipmentID: firstQuery(ctx, "equipmentId", "equipement")}
	if raw := firstQuery(ctx, "statut", "status"); raw != "" {
		status, ok := entities.ParseTicketStatus(raw)
		if !ok {
			return filter, apperrors.NewValidationError("statut", "недопустимое значение '%s'", raw)
		}
		filter.Status = status
	}
	if raw := firstQuery(ctx, "priorite", "priority"); raw != "" {
		priority, ok := entities.ParseTicketPriority(raw)
		if !ok {
			return filter, apperrors.NewValidationError("priorite", "недопустимое значение '%s'", raw)
		}
		filter.Priority = priority
	}
	return filter, nil
}
