package controller

import (
	"strconv"

	"studytrail-be/internal/dto"
	"studytrail-be/internal/pkg/serverutils"
	"studytrail-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReadingController interface {
	RegisterRoutes(r fiber.Router)
}

type readingController struct {
	readingService service.IReadingService
}

func NewReadingController(readingService service.IReadingService) IReadingController {
	return &readingController{
		readingService: readingService,
	}
}

func (c *readingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reading/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("chapter", c.BeginChapter)
	h.Get("chapter/:textbookId/:chapterNumber", c.GetState)
	h.Delete("chapter/:textbookId/:chapterNumber", c.DeleteSnapshot)
	h.Get("snapshots", c.ListSnapshots)
	h.Put("navigate", c.Navigate)
	h.Put("complete-section", c.CompleteSection)
	h.Put("reading-time", c.AddReadingTime)
	h.Put("highlight-mode", c.ToggleHighlightMode)
	h.Post("highlight", c.AddHighlight)
	h.Post("highlight/remove", c.RemoveHighlight)
	h.Put("highlight", c.UpdateHighlight)
	h.Post("bookmark", c.AddBookmark)
	h.Post("bookmark/remove", c.RemoveBookmark)
	h.Put("bookmark", c.UpdateBookmark)
	h.Put("metadata", c.SetMetadata)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func chapterParams(ctx *fiber.Ctx) (string, int, error) {
	textbookId := ctx.Params("textbookId")
	chapterNumber, err := strconv.Atoi(ctx.Params("chapterNumber"))
	if err != nil || chapterNumber < 1 {
		return "", 0, serverutils.NewAppError(fiber.StatusBadRequest, "invalid chapter number")
	}
	return textbookId, chapterNumber, nil
}

func (c *readingController) BeginChapter(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.BeginChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.readingService.BeginChapter(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success begin chapter", res))
}

func (c *readingController) GetState(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	textbookId, chapterNumber, err := chapterParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.readingService.GetState(ctx.Context(), userId, textbookId, chapterNumber)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrNotFound
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show reading state", res))
}

func (c *readingController) DeleteSnapshot(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	textbookId, chapterNumber, err := chapterParams(ctx)
	if err != nil {
		return err
	}

	if err := c.readingService.DeleteSnapshot(ctx.Context(), userId, textbookId, chapterNumber); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete reading state", fiber.Map{}))
}

func (c *readingController) ListSnapshots(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	textbookId := ctx.Query("textbook_id")

	res, err := c.readingService.ListSnapshots(ctx.Context(), userId, textbookId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list snapshots", res))
}

func (c *readingController) Navigate(ctx *fiber.Ctx) error {
	var req dto.NavigateRequest
	return c.mutation(ctx, &req, "Success navigate", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.Navigate(ctx.Context(), userId, &req)
	})
}

func (c *readingController) CompleteSection(ctx *fiber.Ctx) error {
	var req dto.CompleteSectionRequest
	return c.mutation(ctx, &req, "Success complete section", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.CompleteSection(ctx.Context(), userId, &req)
	})
}

func (c *readingController) AddReadingTime(ctx *fiber.Ctx) error {
	var req dto.AddReadingTimeRequest
	return c.mutation(ctx, &req, "Success add reading time", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.AddReadingTime(ctx.Context(), userId, &req)
	})
}

func (c *readingController) ToggleHighlightMode(ctx *fiber.Ctx) error {
	var req dto.ToggleHighlightModeRequest
	return c.mutation(ctx, &req, "Success toggle highlight mode", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.ToggleHighlightMode(ctx.Context(), userId, &req)
	})
}

func (c *readingController) AddHighlight(ctx *fiber.Ctx) error {
	var req dto.AddHighlightRequest
	return c.mutation(ctx, &req, "Success add highlight", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.AddHighlight(ctx.Context(), userId, &req)
	})
}

func (c *readingController) RemoveHighlight(ctx *fiber.Ctx) error {
	var req dto.RemoveHighlightRequest
	return c.mutation(ctx, &req, "Success remove highlight", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.RemoveHighlight(ctx.Context(), userId, &req)
	})
}

func (c *readingController) UpdateHighlight(ctx *fiber.Ctx) error {
	var req dto.UpdateHighlightRequest
	return c.mutation(ctx, &req, "Success update highlight", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.UpdateHighlight(ctx.Context(), userId, &req)
	})
}

func (c *readingController) AddBookmark(ctx *fiber.Ctx) error {
	var req dto.AddBookmarkRequest
	return c.mutation(ctx, &req, "Success add bookmark", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.AddBookmark(ctx.Context(), userId, &req)
	})
}

func (c *readingController) RemoveBookmark(ctx *fiber.Ctx) error {
	var req dto.RemoveBookmarkRequest
	return c.mutation(ctx, &req, "Success remove bookmark", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.RemoveBookmark(ctx.Context(), userId, &req)
	})
}

func (c *readingController) UpdateBookmark(ctx *fiber.Ctx) error {
	var req dto.UpdateBookmarkRequest
	return c.mutation(ctx, &req, "Success update bookmark", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.UpdateBookmark(ctx.Context(), userId, &req)
	})
}

func (c *readingController) SetMetadata(ctx *fiber.Ctx) error {
	var req dto.SetMetadataRequest
	return c.mutation(ctx, &req, "Success set metadata", func(userId uuid.UUID) (*dto.StateResponse, error) {
		return c.readingService.SetMetadata(ctx.Context(), userId, &req)
	})
}

// mutation runs the shared parse/validate/respond path every state mutation
// follows. A nil response means no chapter was started for the key.
func (c *readingController) mutation(ctx *fiber.Ctx, req interface{}, message string, run func(userId uuid.UUID) (*dto.StateResponse, error)) error {
	userId := currentUserId(ctx)

	if err := ctx.BodyParser(req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := run(userId)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.ErrNotFound
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}
