package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	service "recipe-service/internal/services"
	"recipe-service/internal/utils"
)

type uploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	RecipeID    string `json:"recipeId"`
}

type UploadHandler struct {
	svc *service.UploadService
	log *zap.SugaredLogger
}

func NewUploadHandler(svc *service.UploadService, log *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{svc: svc, log: log}
}

// CreateUploadURL handles POST /api/s3/upload. The response contains the
// derived object key and a signed URL good for one PUT of the given content
// type within the expiry window.
func (h *UploadHandler) CreateUploadURL(c *fiber.Ctx) error {
	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.Filename == "" || req.ContentType == "" || req.RecipeID == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "missing filename, contentType, or recipeId")
	}

	url, key, err := h.svc.IssueCredential(c.Context(), req.Filename, req.ContentType, req.RecipeID)
	if err != nil {
		h.log.Errorw("presign failed", "filename", req.Filename, "err", err)
		return utils.JSONErrorDetails(c, fiber.StatusInternalServerError, "could not create pre-signed URL", err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "url": url, "key": key})
}
