package controller

import (
	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/pkg/serverutils"
	"moodmovie-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	SetFavorite(ctx *fiber.Ctx) error
}

type historyController struct {
	service service.IHistoryService
}

func NewHistoryController(service service.IHistoryService) IHistoryController {
	return &historyController{service: service}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/history/v1")
	h.Get("", c.List)
	h.Delete("", c.Clear)
	h.Put("/:id/favorite", c.SetFavorite)
}

func (c *historyController) List(ctx *fiber.Ctx) error {
	var req dto.ListHistoryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *historyController) Clear(ctx *fiber.Ctx) error {
	if err := c.service.Clear(ctx.UserContext(), serverutils.SessionID(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear history", nil))
}

func (c *historyController) SetFavorite(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid history id")
	}

	var req dto.FavoriteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SetFavorite(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		if res != nil {
			// The stored state lets the client revert its optimistic toggle.
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.Response[*dto.HistoryResponse]{
				Success: false,
				Code:    fiber.StatusInternalServerError,
				Message: "Could not update favorite",
				Data:    res,
			})
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update favorite", res))
}
