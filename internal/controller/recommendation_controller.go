package controller

import (
	"moodmovie-be/internal/dto"
	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/internal/pkg/serverutils"
	"moodmovie-be/internal/service"
	internalWS "moodmovie-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Watch(ctx *fiber.Ctx) error
	Skip(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	ServeWs(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
	hub     *internalWS.Hub
	logger  logger.ILogger
}

func NewRecommendationController(service service.IRecommendationService, hub *internalWS.Hub, log logger.ILogger) IRecommendationController {
	return &recommendationController{service: service, hub: hub, logger: log}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recommendation/v1")
	h.Post("/search", c.Search)
	h.Get("/current", c.Current)
	h.Get("/ws", c.ServeWs)
	h.Post("/:movieId/watch", c.Watch)
	h.Post("/:movieId/skip", c.Skip)
}

func (c *recommendationController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if req.Prompt == "" && (req.Mood == "" || req.Energy == "") {
		return fiber.NewError(fiber.StatusBadRequest, "Provide a prompt or both mood and energy")
	}

	res, err := c.service.Search(ctx.UserContext(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search movies", res))
}

func (c *recommendationController) Watch(ctx *fiber.Ctx) error {
	movieId, err := uuid.Parse(ctx.Params("movieId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid movie id")
	}

	res, err := c.service.Watch(ctx.UserContext(), serverutils.SessionID(ctx), movieId)
	if err != nil {
		return err
	}

	msg := "Enjoy the movie"
	if !res.Saved {
		msg = "Enjoy the movie, but we could not save it to your history"
	}
	return ctx.JSON(serverutils.SuccessResponse(msg, res))
}

func (c *recommendationController) Skip(ctx *fiber.Ctx) error {
	movieId, err := uuid.Parse(ctx.Params("movieId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid movie id")
	}

	res, err := c.service.Skip(ctx.UserContext(), serverutils.SessionID(ctx), movieId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success skip movie", res))
}

func (c *recommendationController) Current(ctx *fiber.Ctx) error {
	res, err := c.service.Current(ctx.UserContext(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current recommendations", res))
}

// ServeWs upgrades the request and streams poster updates for the caller's session.
func (c *recommendationController) ServeWs(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}
	sessionID := serverutils.SessionID(ctx)
	return websocket.New(func(conn *websocket.Conn) {
		c.logger.Info("RecommendationController", "WebSocket session started", map[string]interface{}{"session_id": sessionID})
		internalWS.ServeWs(c.hub, conn, sessionID)
		c.logger.Info("RecommendationController", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
	})(ctx)
}
