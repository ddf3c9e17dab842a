package controller

import (
	"errors"

	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type ILogController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type logController struct {
	logger logger.ILogger
}

func NewLogController(log logger.ILogger) ILogController {
	return &logController{logger: log}
}

func (c *logController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/logs/v1")
	h.Get("", c.GetLogs)
	h.Get("/:id", c.GetLogDetail)
}

func (c *logController) GetLogs(ctx *fiber.Ctx) error {
	var req dto.ListLogsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Limit == 0 {
		req.Limit = 50
	}

	entries, err := c.logger.GetLogs(logger.LogFilter{
		Level:  req.Level,
		Module: req.Module,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return err
	}

	res := make([]dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, toLogListResponse(e))
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

func (c *logController) GetLogDetail(ctx *fiber.Ctx) error {
	logId := ctx.Params("id") // md5 of the raw line, not a UUID

	entry, err := c.logger.GetLogById(logId)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Log not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Log detail", dto.LogDetailResponse{
		LogListResponse: toLogListResponse(*entry),
		Details:         entry.Details,
	}))
}

func toLogListResponse(e logger.LogEntry) dto.LogListResponse {
	return dto.LogListResponse{
		Id:        e.Id,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		Timestamp: e.Timestamp,
	}
}
