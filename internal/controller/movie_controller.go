package controller

import (
	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/pkg/serverutils"
	"moodmovie-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMovieController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type movieController struct {
	service service.IMovieService
}

func NewMovieController(service service.IMovieService) IMovieController {
	return &movieController{service: service}
}

func (c *movieController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/movie/v1")
	h.Get("", c.List)
	h.Get("/:id", c.Show)
}

func (c *movieController) List(ctx *fiber.Ctx) error {
	var req dto.ListMoviesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get movies", res))
}

func (c *movieController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid movie id")
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show movie", res))
}
