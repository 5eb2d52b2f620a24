package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/yogeshthakur11/resume-parser-project/internal/models"
	"github.com/yogeshthakur11/resume-parser-project/internal/services"
)

type ParseHandler struct {
	parserService services.ParserService
}

func NewParseHandler(parserService services.ParserService) *ParseHandler {
	return &ParseHandler{
		parserService: parserService,
	}
}

// HandleParseResume accepts a multipart batch of resume files and returns the
// aggregate parse result. The response status reflects the batch as a whole:
// 200 when every file succeeds, 207 on a mix, 400 when nothing succeeds.
func (h *ParseHandler) HandleParseResume(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		// Single-file clients may still use the old field name.
		files = form.File["file"]
	}

	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.BatchResponse{
			Message: "No files uploaded. Attach one or more resumes under the 'files' field.",
			Results: []models.FileResult{},
		})
	}

	resp := h.parserService.ParseBatch(c.Context(), files)

	return c.Status(aggregateStatus(resp)).JSON(resp)
}

func aggregateStatus(resp *models.BatchResponse) int {
	switch {
	case resp.Successful == 0:
		return http.StatusBadRequest
	case resp.Failed > 0:
		return http.StatusMultiStatus
	default:
		return http.StatusOK
	}
}
