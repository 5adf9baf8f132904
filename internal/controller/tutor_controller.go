package controller

import (
	"studytrail-be/internal/dto"
	"studytrail-be/internal/pkg/serverutils"
	"studytrail-be/internal/service"
	"studytrail-be/pkg/connectivity"

	"github.com/gofiber/fiber/v2"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
}

type tutorController struct {
	tutorService service.ITutorService
	tracker      *connectivity.Tracker
}

func NewTutorController(tutorService service.ITutorService, tracker *connectivity.Tracker) ITutorController {
	return &tutorController{
		tutorService: tutorService,
		tracker:      tracker,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tutor/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("ask", c.Ask)
	h.Get("status", c.Status)
}

func (c *tutorController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskTutorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tutorService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success ask tutor", res))
}

func (c *tutorController) Status(ctx *fiber.Ctx) error {
	offline := c.tracker != nil && c.tracker.IsOffline()
	return ctx.JSON(serverutils.SuccessResponse("Success show tutor status", fiber.Map{
		"offline": offline,
	}))
}
